package table

import (
	"strconv"

	"github.com/alexisbeaulieu97/tablekit/internal/ui"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

// composer turns one Config into grid rows for a single build pass.
type composer struct {
	table *Table
	cfg   *Config
	theme Theme
	plan  WidthPlan
	snap  snapshot
}

func (c *composer) header() GridRow {
	cells := make([]Cell, 0, len(c.plan))

	if c.cfg.ShowCheckboxes {
		total := len(c.cfg.Rows)
		state := HeaderState(c.snap.selected.CountBelow(total), total)
		onChanged := func(v bool) { c.table.toggleAll(v, total, c.cfg.OnSelectAll) }
		cells = append(cells, c.structuralCell(CellCheckbox,
			c.checkboxContent(state, onChanged),
			func() { onChanged(NextHeaderValue(state)) }))
	}

	for ci := range c.cfg.Columns {
		cells = append(cells, c.headerCell(ci))
	}

	if c.hasExpansion() {
		cells = append(cells, spacerCell(-1))
	}

	return GridRow{
		Kind:       RowHeader,
		Index:      -1,
		Key:        "header",
		Cells:      normalize(cells, c.plan),
		Decoration: c.theme.HeaderDecoration,
	}
}

// body emits the grouped or flat row sequence.
func (c *composer) body() []GridRow {
	total := len(c.cfg.Rows)

	if c.cfg.Groups == nil {
		return c.members(0, total-1)
	}

	var rows []GridRow
	for gi, g := range c.cfg.Groups {
		rows = append(rows, c.groupHeader(g, gi))
		start := max(g.Start, 0)
		end := min(g.End, total-1)
		rows = append(rows, c.members(start, end)...)
	}
	return rows
}

// members emits rows start..end (inclusive), each followed by its expansion
// row and, between consecutive rows, a divider.
func (c *composer) members(start, end int) []GridRow {
	var rows []GridRow
	for i := start; i <= end; i++ {
		row := c.cfg.Rows[i]
		rows = append(rows, c.dataRow(row, i))

		if expansion, ok := c.expansionRow(row, i); ok {
			rows = append(rows, expansion)
		}
		if c.cfg.Divider != nil && i < end {
			rows = append(rows, c.dividerRow(row, i))
		}
	}
	return rows
}

func (c *composer) dataRow(row Row, i int) GridRow {
	selected := c.snap.selected.Has(i)
	hovered := c.snap.hovered[i]
	expanded := c.snap.expanded.Has(i)

	cells := make([]Cell, 0, len(c.plan))

	if c.cfg.ShowCheckboxes {
		toggle := func() { c.table.toggleRow(i, c.cfg.OnRowSelected) }
		value := Unchecked
		if selected {
			value = Checked
		}
		cells = append(cells, c.structuralCell(CellCheckbox,
			c.checkboxContent(value, func(bool) { toggle() }), toggle))
	}

	for ci := range c.cfg.Columns {
		cells = append(cells, c.dataCell(row, i, ci))
	}

	if c.hasExpansion() {
		cells = append(cells, c.expandToggle(row, i, expanded))
	}

	grid := GridRow{
		Kind:       RowData,
		Index:      i,
		Key:        rowKey(row, i),
		Cells:      cells,
		Decoration: c.theme.rowDecoration(row.Decoration, i, selected, hovered),
		Selected:   selected,
		Hovered:    hovered,
		Expanded:   expanded,
		OnHover:    func(h bool) { c.table.setHovered(i, h) },
	}

	switch {
	case row.OnTap != nil:
		grid.OnTap = row.OnTap
	case c.cfg.OnRowTap != nil:
		fn := c.cfg.OnRowTap
		grid.OnTap = func() { fn(i) }
	}
	if fn := c.cfg.OnRowDoubleTap; fn != nil {
		grid.OnDoubleTap = func() { fn(i) }
	}
	if fn := c.cfg.OnRowLongPress; fn != nil {
		grid.OnLongPress = func() { fn(i) }
	}

	if c.cfg.RowBuilder != nil {
		grid = c.cfg.RowBuilder(row, i, grid)
	}
	grid.Cells = normalize(grid.Cells, c.plan)
	return grid
}

// expandToggle probes the expansion builder; rows without content get a
// non-interactive blank toggle.
func (c *composer) expandToggle(row Row, i int, expanded bool) Cell {
	if ui.IsBlank(c.cfg.ExpandableRowBuilder(row, i)) {
		return c.structuralCell(CellExpandToggle, ui.Blank{}, nil)
	}
	onExpanded := c.cfg.OnRowExpanded
	return c.structuralCell(CellExpandToggle,
		components.NewExpandIcon(expanded),
		func() { c.table.toggleExpanded(i, onExpanded) })
}

func (c *composer) expansionRow(row Row, i int) (GridRow, bool) {
	if !c.hasExpansion() || !c.snap.expanded.Has(i) {
		return GridRow{}, false
	}

	grid := GridRow{
		Kind:       RowExpansion,
		Index:      i,
		Key:        "expansion:" + rowKey(row, i),
		Decoration: c.theme.ExpandedDecoration,
		Expanded:   true,
	}

	content := c.cfg.ExpandableRowBuilder(row, i)
	if ui.IsBlank(content) {
		grid.Cells = blankRow(c.plan)
		return grid, true
	}

	grid.Cells = spanningRow(len(c.plan), Cell{
		Kind:      CellContent,
		Content:   content,
		Padding:   c.theme.ExpandedPadding,
		Alignment: components.AlignStart,
		TextStyle: lipgloss.NewStyle(),
		Column:    -1,
	})
	return grid, true
}

func (c *composer) dividerRow(row Row, i int) GridRow {
	return GridRow{
		Kind:       RowDivider,
		Index:      -1,
		Key:        "divider:" + rowKey(row, i),
		Decoration: lipgloss.NewStyle(),
		Cells: spanningRow(len(c.plan), Cell{
			Kind:      CellContent,
			Content:   c.cfg.Divider,
			TextStyle: lipgloss.NewStyle(),
			Column:    -1,
		}),
	}
}

func (c *composer) groupHeader(g Group, gi int) GridRow {
	cell := Cell{
		Kind:      CellContent,
		Content:   g.Header,
		Padding:   c.theme.GroupHeaderPadding,
		Alignment: components.AlignStart,
		TextStyle: c.theme.GroupHeaderTextStyle,
		Column:    -1,
	}
	if c.cfg.GroupHeaderBuilder != nil {
		cell.Content = c.cfg.GroupHeaderBuilder(g, gi)
		cell.Padding = components.Spacing{}
		cell.TextStyle = lipgloss.NewStyle()
	}
	if cell.Content == nil {
		cell.Content = ui.Blank{}
	}

	return GridRow{
		Kind:       RowGroupHeader,
		Index:      gi,
		Key:        "group:" + strconv.Itoa(gi),
		Cells:      spanningRow(len(c.plan), cell),
		Decoration: c.theme.GroupHeaderDecoration,
	}
}

func (c *composer) footers() []GridRow {
	rows := make([]GridRow, 0, len(c.cfg.FooterRows))
	for fi, row := range c.cfg.FooterRows {
		cells := make([]Cell, 0, len(c.plan))
		if c.cfg.ShowCheckboxes {
			cells = append(cells, spacerCell(-1))
		}
		for ci := range c.cfg.Columns {
			cells = append(cells, c.footerCell(row, ci))
		}
		if c.hasExpansion() {
			cells = append(cells, spacerCell(-1))
		}

		decoration := c.theme.FooterDecoration
		if row.Decoration != nil {
			decoration = *row.Decoration
		}

		key := "footer:" + strconv.Itoa(fi)
		if row.Key != "" {
			key = "footer:" + row.Key
		}
		rows = append(rows, GridRow{
			Kind:       RowFooter,
			Index:      fi,
			Key:        key,
			Cells:      normalize(cells, c.plan),
			Decoration: decoration,
			OnTap:      row.OnTap,
		})
	}
	return rows
}

func (c *composer) hasExpansion() bool {
	return c.cfg.ExpandableRowBuilder != nil
}

func rowKey(row Row, i int) string {
	if row.Key != "" {
		return row.Key
	}
	return strconv.Itoa(i)
}
