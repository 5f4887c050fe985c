package config

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/ui"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
)

func TestDocumentBuild(t *testing.T) {
	doc, err := ParseBytes("inline.yaml", []byte(validYAML))
	require.NoError(t, err)

	cfg, err := doc.Build(components.DefaultTheme())
	require.NoError(t, err)

	require.Len(t, cfg.Columns, 3)
	assert.Equal(t, table.Flex(2), *cfg.Columns[0].Width)
	assert.Equal(t, table.Intrinsic(), *cfg.Columns[1].Width)
	assert.Equal(t, table.Fraction(0.25), *cfg.Columns[2].Width)
	require.NotNil(t, cfg.Columns[1].Alignment)
	assert.Equal(t, components.AlignEnd, *cfg.Columns[1].Alignment)
	assert.Equal(t, "Service", cfg.Columns[0].Header.View())

	assert.True(t, cfg.ShowCheckboxes)
	assert.Equal(t, []int{0}, cfg.SelectedRows)
	assert.Equal(t, []int{1}, cfg.ExpandedRows)
	require.NotNil(t, cfg.Sort)
	assert.Equal(t, table.SortSpec{Column: 1, Ascending: false}, *cfg.Sort)
	require.NotNil(t, cfg.Theme)
	assert.NotNil(t, cfg.Theme.AlternateRowDecoration)
	assert.IsType(t, &components.Divider{}, cfg.Divider)

	require.Len(t, cfg.Groups, 2)
	assert.Equal(t, "Batch", cfg.Groups[1].Header.View())
	require.Len(t, cfg.FooterRows, 1)
	require.NotNil(t, cfg.FooterRows[0].Decoration)
	assert.True(t, cfg.FooterRows[0].Decoration.GetBold())

	require.NotNil(t, cfg.ExpandableRowBuilder)
	assert.Equal(t, "Public HTTP API", ui.PlainText(cfg.ExpandableRowBuilder(cfg.Rows[0], 0)))
	assert.Nil(t, cfg.ExpandableRowBuilder(cfg.Rows[1], 1))
}

func TestDocumentBuildDefaults(t *testing.T) {
	doc := validDocument()

	cfg, err := doc.Build(components.DefaultTheme())
	require.NoError(t, err)

	assert.NotNil(t, cfg.SelectedRows)
	assert.Empty(t, cfg.SelectedRows)
	assert.Nil(t, cfg.Groups)
	assert.Nil(t, cfg.Divider)
	assert.Nil(t, cfg.ExpandableRowBuilder)
	assert.True(t, cfg.Theme.ShowBorder)

	v := table.New().Build(cfg)
	assert.Equal(t, table.ViewEmpty, v.Kind)
}

func TestDocumentBuildBorderAndHover(t *testing.T) {
	doc := validDocument()
	off := false
	doc.Settings.Hover = &off
	doc.Settings.Border = "none"
	doc.Settings.Empty = "nothing here"

	cfg, err := doc.Build(components.DefaultTheme())
	require.NoError(t, err)
	assert.False(t, cfg.Theme.EnableHover)
	assert.False(t, cfg.Theme.ShowBorder)
	assert.Nil(t, cfg.Border)
	assert.Equal(t, "nothing here", ui.PlainText(cfg.EmptyBuilder()))

	doc.Settings.Border = "double"
	cfg, err = doc.Build(components.DefaultTheme())
	require.NoError(t, err)
	require.NotNil(t, cfg.Border)
	assert.Equal(t, lipgloss.DoubleBorder(), *cfg.Border)
}

func TestDetailsFollowReorderedRows(t *testing.T) {
	doc := validDocument()
	doc.Rows = []RowSpec{{Cells: []string{"a"}, Details: "first"}, {Cells: []string{"b"}}}

	cfg, err := doc.Build(components.DefaultTheme())
	require.NoError(t, err)

	doc.Rows[0], doc.Rows[1] = doc.Rows[1], doc.Rows[0]
	assert.Nil(t, cfg.ExpandableRowBuilder(table.Row{}, 0))
	assert.Equal(t, "first", ui.PlainText(cfg.ExpandableRowBuilder(table.Row{}, 1)))
}

func TestExampleDocumentsBuild(t *testing.T) {
	t.Parallel()

	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		doc, err := ParseDocument(path)
		require.NoError(t, err, path)

		cfg, err := doc.Build(components.DefaultTheme())
		require.NoError(t, err, path)
		assert.Len(t, cfg.Columns, len(doc.Columns), path)
	}
}
