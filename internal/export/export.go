// Package export writes an assembled table grid in non-interactive formats.
//
// Exporters see a flattened view of the grid: structural slots are dropped,
// group headers and expansion content land in the first data column, and
// divider rows are skipped.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/ui"
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

// Format names an output format.
type Format string

const (
	FormatASCII Format = "ascii"
	FormatBox   Format = "box"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatASCII, FormatBox, FormatCSV, FormatJSON}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", name)
}

// Record is one flattened body or footer row.
type Record struct {
	Kind     table.RowKind
	Index    int
	Key      string
	Selected bool
	Expanded bool
	Cells    []string
}

// Flatten extracts header labels and records from g.
func Flatten(g table.Grid) (header []string, records []Record) {
	dataSlots := make([]int, 0, len(g.Plan))
	for i, slot := range g.Plan {
		if slot.Kind == table.SlotData {
			dataSlots = append(dataSlots, i)
		}
	}

	for _, row := range g.Rows {
		switch row.Kind {
		case table.RowHeader:
			header = texts(row, dataSlots)
		case table.RowDivider:
			continue
		case table.RowGroupHeader, table.RowExpansion:
			cells := make([]string, len(dataSlots))
			if len(cells) > 0 && len(row.Cells) > 0 {
				cells[0] = cellText(row.Cells[0])
			}
			records = append(records, recordOf(row, cells))
		default:
			records = append(records, recordOf(row, texts(row, dataSlots)))
		}
	}
	return header, records
}

// Write renders g to w in format.
func Write(w io.Writer, g table.Grid, format Format) error {
	var err error
	switch format {
	case FormatASCII:
		err = WriteASCII(w, g)
	case FormatBox:
		err = WriteBox(w, g)
	case FormatCSV:
		err = WriteCSV(w, g)
	case FormatJSON:
		err = WriteJSON(w, g)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return tkerrors.NewRenderError(string(format), err)
	}
	return nil
}

func recordOf(row table.GridRow, cells []string) Record {
	return Record{
		Kind:     row.Kind,
		Index:    row.Index,
		Key:      row.Key,
		Selected: row.Selected,
		Expanded: row.Expanded,
		Cells:    cells,
	}
}

func texts(row table.GridRow, slots []int) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		if s < len(row.Cells) {
			out[i] = cellText(row.Cells[s])
		}
	}
	return out
}

func cellText(c table.Cell) string {
	if c.IsBlank() {
		return ""
	}
	lines := strings.Split(ui.PlainText(c.Content), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Join(lines, " ")
}
