package export

import (
	"encoding/csv"
	"io"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
)

// WriteCSV writes the header and every record as CSV. Group headers and
// expansion rows keep their text in the first column.
func WriteCSV(w io.Writer, g table.Grid) error {
	header, records := Flatten(g)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.Cells); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
