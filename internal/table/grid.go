package table

import (
	"github.com/alexisbeaulieu97/tablekit/internal/ui"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

// RowKind classifies grid rows.
type RowKind int

const (
	RowHeader RowKind = iota
	RowData
	RowGroupHeader
	RowExpansion
	RowDivider
	RowFooter
)

func (k RowKind) String() string {
	switch k {
	case RowHeader:
		return "header"
	case RowData:
		return "data"
	case RowGroupHeader:
		return "group-header"
	case RowExpansion:
		return "expansion"
	case RowDivider:
		return "divider"
	case RowFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// CellKind classifies grid cells.
type CellKind int

const (
	CellContent CellKind = iota
	CellHeader
	CellCheckbox
	CellExpandToggle
	CellSpacer
)

func (k CellKind) String() string {
	switch k {
	case CellContent:
		return "content"
	case CellHeader:
		return "header"
	case CellCheckbox:
		return "checkbox"
	case CellExpandToggle:
		return "expand-toggle"
	case CellSpacer:
		return "spacer"
	default:
		return "unknown"
	}
}

// Cell is one slot of a grid row.
type Cell struct {
	Kind        CellKind
	Content     Content
	Padding     components.Spacing
	Alignment   components.Alignment
	Constraints *components.Constraints
	TextStyle   lipgloss.Style

	// Span is the number of slots the cell occupies, starting at its own.
	Span int
	// Covered marks a slot absorbed by a spanning cell to its left.
	Covered bool

	// Column is the data column index, or -1 outside data slots.
	Column      int
	Interactive bool
	OnTap       func()
}

// IsBlank reports whether the cell renders nothing.
func (c Cell) IsBlank() bool {
	return c.Covered || ui.IsBlank(c.Content)
}

// Tap invokes the cell's tap handler, if any, and reports whether one ran.
func (c Cell) Tap() bool {
	if c.OnTap == nil {
		return false
	}
	c.OnTap()
	return true
}

func spacerCell(column int) Cell {
	return Cell{Kind: CellSpacer, Content: ui.Blank{}, TextStyle: lipgloss.NewStyle(), Span: 1, Column: column}
}

func coveredCell() Cell {
	return Cell{Kind: CellSpacer, Content: ui.Blank{}, TextStyle: lipgloss.NewStyle(), Span: 1, Column: -1, Covered: true}
}

// GridRow is one physical row of the assembled grid.
type GridRow struct {
	Kind RowKind
	// Index is the logical row index for data and expansion rows, the group
	// index for group headers, the footer index for footers and -1 otherwise.
	Index      int
	Key        string
	Cells      []Cell
	Decoration lipgloss.Style

	Selected bool
	Hovered  bool
	Expanded bool

	OnTap       func()
	OnDoubleTap func()
	OnLongPress func()
	OnHover     func(hovered bool)
}

// Slot returns the cell at slot i.
func (r GridRow) Slot(i int) (Cell, bool) {
	if i < 0 || i >= len(r.Cells) {
		return Cell{}, false
	}
	return r.Cells[i], true
}

// CellOfKind returns the first cell of the given kind.
func (r GridRow) CellOfKind(kind CellKind) (Cell, bool) {
	for _, c := range r.Cells {
		if c.Kind == kind {
			return c, true
		}
	}
	return Cell{}, false
}

// Grid is the assembled output: a width plan and rows that all match it.
type Grid struct {
	Plan  WidthPlan
	Rows  []GridRow
	Theme Theme
}

// Slots returns the number of physical columns.
func (g Grid) Slots() int {
	return len(g.Plan)
}

// Header returns the header row.
func (g Grid) Header() GridRow {
	for _, r := range g.Rows {
		if r.Kind == RowHeader {
			return r
		}
	}
	return GridRow{Kind: RowHeader, Index: -1}
}

// DataRow returns the grid row of logical row index.
func (g Grid) DataRow(index int) (GridRow, bool) {
	for _, r := range g.Rows {
		if r.Kind == RowData && r.Index == index {
			return r, true
		}
	}
	return GridRow{}, false
}

// RowsOfKind returns every row of the given kind in grid order.
func (g Grid) RowsOfKind(kind RowKind) []GridRow {
	var out []GridRow
	for _, r := range g.Rows {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// spanningRow builds a row whose first slot spans the whole plan.
func spanningRow(slots int, first Cell) []Cell {
	if slots == 0 {
		return nil
	}
	first.Span = slots
	cells := make([]Cell, slots)
	cells[0] = first
	for i := 1; i < slots; i++ {
		cells[i] = coveredCell()
	}
	return cells
}

// blankRow builds a row of plain spacers.
func blankRow(plan WidthPlan) []Cell {
	cells := make([]Cell, len(plan))
	for i, s := range plan {
		cells[i] = spacerCell(s.Column)
	}
	return cells
}

// normalize pads or truncates cells to the plan length and repairs spans so
// that every spanning cell is followed by exactly Span-1 covered slots.
func normalize(cells []Cell, plan WidthPlan) []Cell {
	slots := len(plan)
	out := make([]Cell, slots)
	for i := 0; i < slots; i++ {
		if i < len(cells) {
			out[i] = cells[i]
		} else {
			out[i] = spacerCell(plan[i].Column)
		}
	}

	for i := 0; i < slots; {
		c := &out[i]
		if c.Covered {
			// An orphan covered slot becomes a plain spacer.
			*c = spacerCell(plan[i].Column)
		}
		span := min(max(c.Span, 1), slots-i)
		c.Span = span
		for j := i + 1; j < i+span; j++ {
			out[j] = coveredCell()
		}
		i += span
	}
	return out
}
