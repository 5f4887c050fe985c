// Package render resolves a table.Grid into terminal columns and paints it
// with lipgloss.
package render

import (
	"math"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

// DefaultScale is the number of layout units per terminal column.
const DefaultScale = 8

// Options controls layout and painting.
type Options struct {
	// Width is the total number of terminal columns available, border
	// included. Zero lays the table out at its natural width.
	Width int
	// Scale converts layout units (fixed widths, min/max hints) to terminal
	// columns. Defaults to DefaultScale.
	Scale float64
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return DefaultScale
	}
	return o.Scale
}

func (o Options) toCols(units float64) int {
	if units <= 0 {
		return 0
	}
	return int(math.Ceil(units / o.scale()))
}

// Layout resolves the grid's width plan into terminal column widths, one per
// slot. Fixed slots and fractions are sized first, intrinsic slots fit their
// widest non-spanning cell, and flex slots share what is left by weight. With
// no Width, flex slots fall back to their intrinsic width.
func Layout(g table.Grid, opts Options) []int {
	slots := len(g.Plan)
	widths := make([]int, slots)
	if slots == 0 {
		return widths
	}

	intrinsic := intrinsicWidths(g)
	available := opts.Width
	if available > 0 && g.Theme.ShowBorder {
		available -= 2
	}

	var flex []int
	used := 0
	for i, slot := range g.Plan {
		w := slot.Width
		switch w.Kind {
		case table.WidthFixed:
			widths[i] = opts.toCols(w.Value)
		case table.WidthFraction:
			if available > 0 {
				widths[i] = int(math.Floor(w.Value * float64(available)))
			} else {
				widths[i] = intrinsic[i]
			}
		case table.WidthIntrinsic:
			widths[i] = intrinsic[i]
		default:
			if available > 0 {
				flex = append(flex, i)
				continue
			}
			widths[i] = intrinsic[i]
		}
		widths[i] = clampSlot(widths[i], w, opts)
		used += widths[i]
	}

	if len(flex) > 0 {
		distributeFlex(g.Plan, flex, widths, available-used, opts)
	}

	for i := range widths {
		widths[i] = applyConstraints(widths[i], columnConstraints(g, i))
	}
	return widths
}

func distributeFlex(plan table.WidthPlan, flex []int, widths []int, remaining int, opts Options) {
	remaining = max(remaining, 0)

	total := 0.0
	for _, i := range flex {
		total += max(plan[i].Width.Value, 0)
	}

	given := 0
	for _, i := range flex {
		share := 0
		if total > 0 {
			share = int(math.Floor(float64(remaining) * max(plan[i].Width.Value, 0) / total))
		}
		widths[i] = share
		given += share
	}

	// Hand out rounding leftovers left to right.
	for k := 0; given < remaining && total > 0; k = (k + 1) % len(flex) {
		if plan[flex[k]].Width.Value > 0 {
			widths[flex[k]]++
			given++
		}
	}

	for _, i := range flex {
		widths[i] = max(clampSlot(widths[i], plan[i].Width, opts), 1)
	}
}

func clampSlot(w int, width table.Width, opts Options) int {
	if width.Min > 0 {
		w = max(w, opts.toCols(width.Min))
	}
	if width.Max > 0 {
		w = min(w, opts.toCols(width.Max))
	}
	return w
}

// intrinsicWidths measures the widest single-slot cell per slot, padding
// included.
func intrinsicWidths(g table.Grid) []int {
	ctx := components.DefaultContext().WithTheme(g.Theme.Ambient)
	out := make([]int, len(g.Plan))
	for _, row := range g.Rows {
		for i, cell := range row.Cells {
			if i >= len(out) || cell.Covered || cell.Span > 1 {
				continue
			}
			w := lipgloss.Width(components.ViewIn(cell.Content, ctx)) + cell.Padding.Horizontal()
			out[i] = max(out[i], w)
		}
	}
	return out
}

// columnConstraints returns the constraints declared for the data column in
// slot i, if any.
func columnConstraints(g table.Grid, slot int) *components.Constraints {
	for _, row := range g.Rows {
		if slot < len(row.Cells) && row.Cells[slot].Constraints != nil {
			return row.Cells[slot].Constraints
		}
	}
	return nil
}

func applyConstraints(w int, c *components.Constraints) int {
	if c == nil {
		return w
	}
	w, _ = c.Constrain(w, 0)
	return w
}
