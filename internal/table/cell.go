package table

import (
	"github.com/alexisbeaulieu97/tablekit/internal/ui"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

// cellContent returns the raw content of row at column index ci. Missing
// cells resolve to a blank placeholder.
func cellContent(row Row, ci int) Content {
	if ci < 0 || ci >= len(row.Cells) || row.Cells[ci] == nil {
		return ui.Blank{}
	}
	return row.Cells[ci]
}

// ResolvePadding applies the column, row, fallback precedence.
func ResolvePadding(col Column, row Row, fallback components.Spacing) components.Spacing {
	switch {
	case col.Padding != nil:
		return *col.Padding
	case row.Padding != nil:
		return *row.Padding
	default:
		return fallback
	}
}

// ResolveAlignment applies the column, row, fallback precedence.
func ResolveAlignment(col Column, row Row, fallback components.Alignment) components.Alignment {
	switch {
	case col.Alignment != nil:
		return *col.Alignment
	case row.Alignment != nil:
		return *row.Alignment
	default:
		return fallback
	}
}

func (c *composer) dataCell(row Row, ri, ci int) Cell {
	col := c.cfg.Columns[ci]
	raw := cellContent(row, ci)

	cell := Cell{
		Kind:        CellContent,
		Content:     raw,
		Padding:     ResolvePadding(col, row, c.theme.CellPadding),
		Alignment:   ResolveAlignment(col, row, c.theme.CellAlignment),
		Constraints: col.Constraints,
		TextStyle:   c.theme.CellTextStyle,
		Span:        1,
		Column:      ci,
	}

	// Builder output is used as is: no padding, alignment or text style.
	if c.cfg.CellBuilder != nil {
		cell.Content = c.cfg.CellBuilder(raw, col, row, ri, ci)
		cell.Padding = components.Spacing{}
		cell.Alignment = components.AlignStart
		cell.TextStyle = lipgloss.NewStyle()
	}
	if cell.Content == nil {
		cell.Content = ui.Blank{}
	}

	if fn := c.cfg.OnCellTap; fn != nil {
		cell.Interactive = true
		cell.OnTap = func() { fn(ri, ci) }
	}
	return cell
}

func (c *composer) headerCell(ci int) Cell {
	col := c.cfg.Columns[ci]

	cell := Cell{
		Kind:        CellHeader,
		Padding:     ResolvePadding(col, Row{}, c.theme.HeaderPadding),
		Alignment:   ResolveAlignment(col, Row{}, c.theme.HeaderAlignment),
		Constraints: col.Constraints,
		TextStyle:   lipgloss.NewStyle(),
		Span:        1,
		Column:      ci,
	}

	// A custom header replaces the default composition entirely, including
	// the sort indicator and tap routing.
	if c.cfg.HeaderBuilder != nil {
		cell.Content = c.cfg.HeaderBuilder(col, ci)
		cell.Padding = components.Spacing{}
		cell.Alignment = components.AlignStart
	} else {
		cell.TextStyle = c.theme.HeaderTextStyle
		cell.Content = col.Header
		if sort := c.cfg.Sort; col.Sortable && sort != nil && sort.Column == ci {
			cell.Content = components.NewInline(col.Header, components.NewSortIndicator(sort.Ascending))
		}
		switch {
		case col.Sortable && c.cfg.OnSort != nil:
			onSort := c.cfg.OnSort
			cell.OnTap = func() { onSort(ci) }
		case col.OnTap != nil:
			cell.OnTap = col.OnTap
		}
	}
	if cell.Content == nil {
		cell.Content = ui.Blank{}
	}
	cell.Interactive = cell.OnTap != nil
	return cell
}

func (c *composer) footerCell(row Row, ci int) Cell {
	col := c.cfg.Columns[ci]
	return Cell{
		Kind:        CellContent,
		Content:     cellContent(row, ci),
		Padding:     ResolvePadding(col, row, c.theme.footerPadding()),
		Alignment:   ResolveAlignment(col, row, c.theme.footerAlignment()),
		Constraints: col.Constraints,
		TextStyle:   c.theme.FooterTextStyle,
		Span:        1,
		Column:      ci,
	}
}

func (c *composer) checkboxContent(value Tristate, onChanged func(bool)) Content {
	if c.cfg.CheckboxBuilder != nil {
		if content := c.cfg.CheckboxBuilder(value, onChanged); content != nil {
			return content
		}
		return ui.Blank{}
	}
	if value == Indeterminate {
		return components.MixedCheckbox()
	}
	return components.NewCheckbox(value == Checked)
}

func (c *composer) structuralCell(kind CellKind, content Content, onTap func()) Cell {
	return Cell{
		Kind:        kind,
		Content:     content,
		Alignment:   components.AlignCenter,
		TextStyle:   lipgloss.NewStyle(),
		Span:        1,
		Column:      -1,
		Interactive: onTap != nil,
		OnTap:       onTap,
	}
}
