package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
)

var widthCallPattern = regexp.MustCompile(`^(flex|fixed|fraction)\(\s*([0-9]*\.?[0-9]+)\s*\)$`)

// ParseWidth parses a column width:
//
//	flex | flex(2)        weighted share of the remaining space
//	fixed(120) | 120      fixed size in layout units
//	fraction(0.25) | 25%  fraction of the table width
//	intrinsic | auto      fit the widest cell
func ParseWidth(spec string) (table.Width, error) {
	s := strings.ToLower(strings.TrimSpace(spec))

	switch s {
	case "", "flex":
		return table.Flex(1), nil
	case "intrinsic", "auto":
		return table.Intrinsic(), nil
	}

	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil || v <= 0 || v > 100 {
			return table.Width{}, fmt.Errorf("invalid percentage width %q", spec)
		}
		return table.Fraction(v / 100), nil
	}

	if m := widthCallPattern.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil || v <= 0 {
			return table.Width{}, fmt.Errorf("invalid width %q", spec)
		}
		switch m[1] {
		case "flex":
			return table.Flex(v), nil
		case "fixed":
			return table.Fixed(v), nil
		default:
			if v > 1 {
				return table.Width{}, fmt.Errorf("fraction must be at most 1 in %q", spec)
			}
			return table.Fraction(v), nil
		}
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
		return table.Fixed(v), nil
	}

	return table.Width{}, fmt.Errorf("invalid width %q", spec)
}

// ParsePadding parses CSS-style shorthand: "1", "0 1", "0 1 2" or "0 1 2 3".
func ParsePadding(spec string) (components.Spacing, error) {
	fields := strings.Fields(spec)
	vals := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return components.Spacing{}, fmt.Errorf("invalid padding %q", spec)
		}
		vals[i] = v
	}

	switch len(vals) {
	case 1:
		return components.UniformSpacing(vals[0]), nil
	case 2:
		return components.SymmetricSpacing(vals[0], vals[1]), nil
	case 3:
		return components.Spacing{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[1]}, nil
	case 4:
		return components.Spacing{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	default:
		return components.Spacing{}, fmt.Errorf("invalid padding %q", spec)
	}
}
