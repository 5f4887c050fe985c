package table

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/tablekit/internal/ui"
)

func columns(names ...string) []Column {
	out := make([]Column, len(names))
	for i, n := range names {
		out[i] = Column{Header: ui.String(n)}
	}
	return out
}

func textRow(cells ...string) Row {
	out := Row{Cells: make([]Content, len(cells))}
	for i, c := range cells {
		out.Cells[i] = ui.String(c)
	}
	return out
}

func rowsOf(n, width int) []Row {
	out := make([]Row, n)
	for i := range out {
		cells := make([]string, width)
		for j := range cells {
			cells[j] = fmt.Sprintf("r%dc%d", i, j)
		}
		out[i] = textRow(cells...)
	}
	return out
}

// shape summarises a grid as "kind[:index]" entries.
func shape(g Grid) []string {
	out := make([]string, len(g.Rows))
	for i, r := range g.Rows {
		switch r.Kind {
		case RowHeader, RowDivider:
			out[i] = r.Kind.String()
		default:
			out[i] = fmt.Sprintf("%s:%d", r.Kind, r.Index)
		}
	}
	return out
}

func cellKinds(r GridRow) string {
	parts := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		parts[i] = c.Kind.String()
		if c.Covered {
			parts[i] = "covered"
		}
	}
	return strings.Join(parts, ",")
}

func build(t *Table, cfg Config) Grid {
	return t.Build(cfg).Grid
}
