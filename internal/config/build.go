package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/ui"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

// Build converts the document into a table configuration. Callbacks are left
// for the caller to attach. Selection and expansion flags become non-nil seed
// slices, so a reloaded document only resets table state when those flags
// actually change.
func (d *Document) Build(app components.Theme) (table.Config, error) {
	theme, ok := table.ThemeByName(d.Settings.Theme, app)
	if !ok {
		return table.Config{}, tkerrors.NewValidationError("settings.theme", "unknown theme "+d.Settings.Theme, nil)
	}
	if d.Settings.Hover != nil {
		theme.EnableHover = *d.Settings.Hover
	}

	cfg := table.Config{
		Theme:          &theme,
		ShowCheckboxes: d.Settings.Checkboxes,
		IsLoading:      d.Settings.Loading,
		Divider:        dividerFor(d.Settings.Divider),
		SelectedRows:   []int{},
		ExpandedRows:   []int{},
	}

	if d.Settings.Border != "" {
		variant, _ := components.ParseBorderVariant(d.Settings.Border)
		if variant == components.BorderVariantNone {
			theme.ShowBorder = false
		} else {
			border := components.BorderForVariant(theme.Ambient, variant)
			cfg.Border = &border
		}
	}

	if d.Settings.Empty != "" {
		msg := d.Settings.Empty
		cfg.EmptyBuilder = func() table.Content { return components.MutedText(msg) }
	}

	for i, spec := range d.Columns {
		col, err := buildColumn(spec)
		if err != nil {
			return table.Config{}, tkerrors.NewValidationError(fieldFor("columns", i, "width"), err.Error(), err)
		}
		cfg.Columns = append(cfg.Columns, col)
	}

	details := false
	for i, spec := range d.Rows {
		cfg.Rows = append(cfg.Rows, buildRow(spec, theme.Ambient))
		if spec.Selected {
			cfg.SelectedRows = append(cfg.SelectedRows, i)
		}
		if spec.Expanded {
			cfg.ExpandedRows = append(cfg.ExpandedRows, i)
		}
		details = details || spec.Details != ""
	}
	if details {
		cfg.ExpandableRowBuilder = d.detailsBuilder()
	}

	for _, spec := range d.Footer {
		cfg.FooterRows = append(cfg.FooterRows, buildRow(spec, theme.Ambient))
	}

	if d.Groups != nil {
		cfg.Groups = make([]table.Group, len(d.Groups))
		for i, g := range d.Groups {
			cfg.Groups[i] = table.Group{Start: g.Start, End: g.End, Header: ui.String(g.Title)}
		}
	}

	cfg.Sort = d.InitialSort()

	return cfg, nil
}

// ColumnIndex returns the position of the column with key, or -1.
func (d *Document) ColumnIndex(key string) int {
	for i, c := range d.Columns {
		if c.Key == key {
			return i
		}
	}
	return -1
}

// detailsBuilder reads details from the document at call time, so it stays
// valid after the caller reorders d.Rows.
func (d *Document) detailsBuilder() table.ExpandableRowBuilder {
	return func(_ table.Row, index int) table.Content {
		if index < 0 || index >= len(d.Rows) || d.Rows[index].Details == "" {
			return nil
		}
		return components.NewText(d.Rows[index].Details)
	}
}

func buildColumn(spec ColumnSpec) (table.Column, error) {
	width, err := ParseWidth(spec.Width)
	if err != nil {
		return table.Column{}, err
	}

	col := table.Column{
		Header:   ui.String(spec.Label()),
		Width:    &width,
		Sortable: spec.Sortable,
		MinWidth: spec.MinWidth,
		MaxWidth: spec.MaxWidth,
	}
	if a, ok := components.ParseAlignment(spec.Align); ok && spec.Align != "" {
		col.Alignment = &a
	}
	if spec.Padding != "" {
		if p, err := ParsePadding(spec.Padding); err == nil {
			col.Padding = &p
		}
	}
	return col, nil
}

func buildRow(spec RowSpec, app components.Theme) table.Row {
	row := table.Row{Key: spec.Key, Cells: make([]table.Content, len(spec.Cells))}
	for i, c := range spec.Cells {
		row.Cells[i] = ui.String(c)
	}
	if a, ok := components.ParseAlignment(spec.Align); ok && spec.Align != "" {
		row.Alignment = &a
	}
	if spec.Padding != "" {
		if p, err := ParsePadding(spec.Padding); err == nil {
			row.Padding = &p
		}
	}
	if style, ok := rowStyle(spec.Style, app); ok {
		row.Decoration = &style
	}
	return row
}

func rowStyle(name string, app components.Theme) (lipgloss.Style, bool) {
	p := app.Palette
	switch name {
	case "bold":
		return lipgloss.NewStyle().Bold(true), true
	case "muted":
		return lipgloss.NewStyle().Foreground(p.Neutral.Base), true
	case "danger":
		return lipgloss.NewStyle().Foreground(p.Danger.Base), true
	case "success":
		return lipgloss.NewStyle().Foreground(p.Success.Base), true
	case "warning":
		return lipgloss.NewStyle().Foreground(p.Warning.Base), true
	default:
		return lipgloss.Style{}, false
	}
}

func dividerFor(name string) table.Content {
	switch name {
	case "solid":
		return components.NewDivider()
	case "dashed":
		return components.DashedDivider()
	case "dotted":
		return components.DottedDivider()
	default:
		return nil
	}
}
