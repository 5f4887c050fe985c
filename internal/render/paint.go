package render

import (
	"strings"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box is a one-dimensional extent: a line range for rows, a column range for
// slots.
type Box struct {
	Start int
	Size  int
}

// Contains reports whether p falls inside the box.
func (b Box) Contains(p int) bool {
	return p >= b.Start && p < b.Start+b.Size
}

// Frame is a painted table together with the geometry needed to map screen
// positions back to grid rows and slots.
type Frame struct {
	Grid  table.Grid
	Lines []string
	// Rows holds one line range per grid row, in grid order.
	Rows []Box
	// Columns holds one column range per slot.
	Columns []Box
}

// String joins the painted lines.
func (f Frame) String() string {
	return strings.Join(f.Lines, "\n")
}

// Height returns the number of painted lines.
func (f Frame) Height() int {
	return len(f.Lines)
}

// Hit maps a screen position to a grid row and the slot of the cell drawn
// there. Positions inside a spanning cell resolve to the span's first slot.
func (f Frame) Hit(x, y int) (row, slot int, ok bool) {
	row = -1
	for i, b := range f.Rows {
		if b.Contains(y) {
			row = i
			break
		}
	}
	if row < 0 {
		return -1, -1, false
	}

	slot = -1
	for i, b := range f.Columns {
		if b.Contains(x) {
			slot = i
			break
		}
	}
	if slot < 0 {
		return row, -1, false
	}

	cells := f.Grid.Rows[row].Cells
	for slot > 0 && slot < len(cells) && cells[slot].Covered {
		slot--
	}
	return row, slot, true
}

// PaintView paints any build outcome. Loading and empty views render their
// content on its own.
func PaintView(v table.View, opts Options) Frame {
	if v.Kind != table.ViewGrid {
		ctx := components.DefaultContext()
		if opts.Width > 0 {
			ctx = ctx.WithParentWidth(opts.Width)
		}
		text := components.ViewIn(v.Content, ctx)
		return Frame{Lines: clipLines(strings.Split(text, "\n"), opts.Width)}
	}
	return Paint(v.Grid, opts)
}

// Paint lays out and paints a grid.
func Paint(g table.Grid, opts Options) Frame {
	widths := Layout(g, opts)
	ctx := components.DefaultContext().WithTheme(g.Theme.Ambient)

	inset := 0
	if g.Theme.ShowBorder {
		inset = 1
	}

	frame := Frame{Grid: g, Columns: make([]Box, len(widths))}
	x := inset
	for i, w := range widths {
		frame.Columns[i] = Box{Start: x, Size: w}
		x += w
	}

	var body []string
	for _, row := range g.Rows {
		lines := strings.Split(paintRow(row, widths, ctx), "\n")
		frame.Rows = append(frame.Rows, Box{Start: inset + len(body), Size: len(lines)})
		body = append(body, lines...)
	}

	if g.Theme.ShowBorder {
		boxed := g.Theme.BorderStyle.Border(g.Theme.Border).Render(strings.Join(body, "\n"))
		frame.Lines = strings.Split(boxed, "\n")
	} else {
		frame.Lines = body
	}
	frame.Lines = clipLines(frame.Lines, opts.Width)
	return frame
}

type paintedCell struct {
	lines []string
	style lipgloss.Style
	width int
}

// paintRow renders every visible cell of row at the resolved widths and joins
// them. All cells are padded to the tallest cell so row decorations fill the
// full row.
func paintRow(row table.GridRow, widths []int, ctx components.RenderContext) string {
	var cells []paintedCell
	height := 1

	for i := 0; i < len(row.Cells) && i < len(widths); i++ {
		cell := row.Cells[i]
		if cell.Covered {
			continue
		}
		w := spanWidth(widths, i, cell.Span)
		if w <= 0 {
			continue
		}

		inner := max(w-cell.Padding.Horizontal(), 0)
		cellCtx := ctx.WithParentWidth(inner)
		cellCtx.Constraints = components.WithMaxWidth(inner)

		text := components.ViewIn(cell.Content, cellCtx)
		lines := strings.Split(text, "\n")
		for j, line := range lines {
			lines[j] = ansi.Truncate(line, inner, "…")
		}

		style := cell.TextStyle.Inherit(row.Decoration)
		style = cell.Padding.Apply(style).
			Width(w).
			MaxWidth(w).
			Align(cell.Alignment.ToLipglossPosition())

		cells = append(cells, paintedCell{lines: lines, style: style, width: w})
		height = max(height, len(lines)+cell.Padding.Vertical())
	}

	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.style.Height(height).Render(strings.Join(c.lines, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func spanWidth(widths []int, start, span int) int {
	span = max(span, 1)
	total := 0
	for i := start; i < start+span && i < len(widths); i++ {
		total += widths[i]
	}
	return total
}

func clipLines(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = ansi.Truncate(l, width, "")
	}
	return out
}
