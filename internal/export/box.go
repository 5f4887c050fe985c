package export

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

// WriteBox writes g as a lipgloss box table using the grid theme's border and
// header style. Selected rows keep the theme's selected decoration.
func WriteBox(w io.Writer, g table.Grid) error {
	header, records := Flatten(g)

	border := g.Theme.Border
	if !g.Theme.ShowBorder || border == (lipgloss.Border{}) {
		border = lipgloss.NormalBorder()
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Cells
	}

	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	headerStyle := g.Theme.HeaderTextStyle.Padding(0, 1)

	t := lgtable.New().
		Border(border).
		BorderStyle(g.Theme.BorderStyle).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			if row < 0 || row >= len(records) {
				return cellStyle
			}
			switch r := records[row]; {
			case r.Kind == table.RowFooter:
				return g.Theme.FooterTextStyle.Padding(0, 1)
			case r.Kind == table.RowGroupHeader:
				return g.Theme.GroupHeaderTextStyle.Padding(0, 1)
			case r.Selected:
				return g.Theme.SelectedDecoration.Padding(0, 1)
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
