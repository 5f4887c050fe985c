package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
)

func TestParseWidth(t *testing.T) {
	tests := []struct {
		in   string
		want table.Width
	}{
		{"", table.Flex(1)},
		{"flex", table.Flex(1)},
		{"Flex(3)", table.Flex(3)},
		{"fixed(96)", table.Fixed(96)},
		{"120", table.Fixed(120)},
		{"intrinsic", table.Intrinsic()},
		{"auto", table.Intrinsic()},
		{"fraction(0.5)", table.Fraction(0.5)},
		{"25%", table.Fraction(0.25)},
	}
	for _, tt := range tests {
		got, err := ParseWidth(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"wide", "fraction(2)", "0", "-5", "150%", "fixed()"} {
		_, err := ParseWidth(bad)
		assert.Error(t, err, bad)
	}
}

func TestParsePadding(t *testing.T) {
	tests := []struct {
		in   string
		want components.Spacing
	}{
		{"1", components.UniformSpacing(1)},
		{"0 2", components.Spacing{Right: 2, Left: 2}},
		{"1 2 3", components.Spacing{Top: 1, Right: 2, Bottom: 3, Left: 2}},
		{"1 2 3 4", components.Spacing{Top: 1, Right: 2, Bottom: 3, Left: 4}},
	}
	for _, tt := range tests {
		got, err := ParsePadding(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "a", "-1", "1 2 3 4 5"} {
		_, err := ParsePadding(bad)
		assert.Error(t, err, bad)
	}
}
