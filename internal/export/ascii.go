package export

import (
	"io"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
	"github.com/olekukonko/tablewriter"
)

// WriteASCII writes g as a plain ASCII table. A single footer row becomes the
// table footer; several are appended after the body.
func WriteASCII(w io.Writer, g table.Grid) error {
	header, records := Flatten(g)

	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeader(header)
	tw.SetColumnAlignment(columnAlignments(g))

	var footers [][]string
	for _, r := range records {
		if r.Kind == table.RowFooter {
			footers = append(footers, r.Cells)
			continue
		}
		tw.Append(r.Cells)
	}
	switch len(footers) {
	case 0:
	case 1:
		tw.SetFooter(footers[0])
	default:
		tw.AppendBulk(footers)
	}

	tw.Render()
	return nil
}

// columnAlignments maps the alignment of each data column's first body cell to
// tablewriter constants.
func columnAlignments(g table.Grid) []int {
	var out []int
	for i, slot := range g.Plan {
		if slot.Kind != table.SlotData {
			continue
		}
		align := tablewriter.ALIGN_LEFT
		for _, row := range g.Rows {
			if row.Kind != table.RowData || i >= len(row.Cells) {
				continue
			}
			switch row.Cells[i].Alignment {
			case components.AlignCenter:
				align = tablewriter.ALIGN_CENTER
			case components.AlignEnd:
				align = tablewriter.ALIGN_RIGHT
			}
			break
		}
		out = append(out, align)
	}
	return out
}
