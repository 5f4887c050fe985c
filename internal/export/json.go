package export

import (
	"encoding/json"
	"io"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
)

type jsonDocument struct {
	Columns []string  `json:"columns"`
	Slots   []string  `json:"slots"`
	Rows    []jsonRow `json:"rows"`
}

type jsonRow struct {
	Kind     string   `json:"kind"`
	Index    int      `json:"index"`
	Key      string   `json:"key,omitempty"`
	Selected bool     `json:"selected,omitempty"`
	Expanded bool     `json:"expanded,omitempty"`
	Cells    []string `json:"cells"`
}

// WriteJSON writes the flattened grid as an indented JSON document, including
// the width strategy of every slot.
func WriteJSON(w io.Writer, g table.Grid) error {
	header, records := Flatten(g)

	doc := jsonDocument{
		Columns: header,
		Slots:   make([]string, len(g.Plan)),
		Rows:    make([]jsonRow, len(records)),
	}
	for i, slot := range g.Plan {
		doc.Slots[i] = slot.Width.String()
	}
	for i, r := range records {
		doc.Rows[i] = jsonRow{
			Kind:     r.Kind.String(),
			Index:    r.Index,
			Key:      r.Key,
			Selected: r.Selected,
			Expanded: r.Expanded,
			Cells:    r.Cells,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
