package table

import (
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the fallback values used when columns and rows carry no
// override. Themes are plain values; the factories below never share state.
type Theme struct {
	// Ambient is the application theme handed to contextual cell content.
	Ambient components.Theme

	HeaderDecoration       lipgloss.Style
	RowDecoration          lipgloss.Style
	AlternateRowDecoration *lipgloss.Style
	SelectedDecoration     lipgloss.Style
	HoveredDecoration      lipgloss.Style
	GroupHeaderDecoration  lipgloss.Style
	ExpandedDecoration     lipgloss.Style
	FooterDecoration       lipgloss.Style

	HeaderPadding      components.Spacing
	CellPadding        components.Spacing
	FooterPadding      *components.Spacing
	GroupHeaderPadding components.Spacing
	ExpandedPadding    components.Spacing

	HeaderAlignment components.Alignment
	CellAlignment   components.Alignment
	FooterAlignment *components.Alignment

	HeaderTextStyle      lipgloss.Style
	CellTextStyle        lipgloss.Style
	FooterTextStyle      lipgloss.Style
	GroupHeaderTextStyle lipgloss.Style

	Border      lipgloss.Border
	BorderStyle lipgloss.Style
	ShowBorder  bool
	EnableHover bool
}

// DefaultTheme derives a table theme from the application theme.
func DefaultTheme(app components.Theme) Theme {
	p := app.Palette
	bold := lipgloss.NewStyle().Bold(true)

	return Theme{
		Ambient: app,

		HeaderDecoration:      lipgloss.NewStyle().Background(p.Surface.Muted),
		RowDecoration:         lipgloss.NewStyle(),
		SelectedDecoration:    lipgloss.NewStyle().Background(p.Accent.Muted),
		HoveredDecoration:     lipgloss.NewStyle().Background(p.Neutral.Muted),
		GroupHeaderDecoration: lipgloss.NewStyle().Foreground(p.Alternate.Base),
		ExpandedDecoration:    lipgloss.NewStyle().Foreground(p.Neutral.Base),
		FooterDecoration:      lipgloss.NewStyle().Background(p.Surface.Muted),

		HeaderPadding:      components.HorizontalSpacing(1),
		CellPadding:        components.HorizontalSpacing(1),
		GroupHeaderPadding: components.HorizontalSpacing(1),
		ExpandedPadding:    components.Spacing{Left: 4, Right: 1},

		HeaderAlignment: components.AlignStart,
		CellAlignment:   components.AlignStart,

		HeaderTextStyle:      bold.Foreground(p.Surface.OnBase),
		CellTextStyle:        lipgloss.NewStyle(),
		FooterTextStyle:      bold,
		GroupHeaderTextStyle: bold,

		Border:      components.BorderForVariant(app, components.BorderVariantRounded),
		BorderStyle: lipgloss.NewStyle().Foreground(p.Neutral.Base),
		ShowBorder:  true,
		EnableHover: true,
	}
}

// MinimalTheme is an undecorated, borderless theme with hover effects off.
func MinimalTheme() Theme {
	plain := lipgloss.NewStyle()
	bold := plain.Bold(true)

	return Theme{
		Ambient: components.DefaultTheme(),

		HeaderDecoration:      plain,
		RowDecoration:         plain,
		SelectedDecoration:    plain.Reverse(true),
		HoveredDecoration:     plain,
		GroupHeaderDecoration: plain,
		ExpandedDecoration:    plain,
		FooterDecoration:      plain,

		HeaderPadding:      components.HorizontalSpacing(1),
		CellPadding:        components.HorizontalSpacing(1),
		GroupHeaderPadding: components.HorizontalSpacing(1),
		ExpandedPadding:    components.Spacing{Left: 4, Right: 1},

		HeaderTextStyle:      bold,
		CellTextStyle:        plain,
		FooterTextStyle:      bold,
		GroupHeaderTextStyle: bold,
		BorderStyle:          plain,
	}
}

// StripedTheme is DefaultTheme with alternating row backgrounds.
func StripedTheme(app components.Theme) Theme {
	theme := DefaultTheme(app)
	stripe := lipgloss.NewStyle().Background(app.Palette.Neutral.Muted)
	theme.AlternateRowDecoration = &stripe
	theme.HoveredDecoration = lipgloss.NewStyle().Background(app.Palette.Neutral.Contrast)
	return theme
}

// ThemeByName maps a configuration name to a theme built on app. Unknown names
// report false.
func ThemeByName(name string, app components.Theme) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(app), true
	case "dark":
		return DefaultTheme(components.DarkTheme()), true
	case "minimal":
		return MinimalTheme(), true
	case "striped":
		return StripedTheme(app), true
	default:
		return Theme{}, false
	}
}

// rowDecoration applies the decoration precedence: row override, selected,
// hovered (when enabled), then the default or alternate decoration.
func (t Theme) rowDecoration(override *lipgloss.Style, index int, selected, hovered bool) lipgloss.Style {
	switch {
	case override != nil:
		return *override
	case selected:
		return t.SelectedDecoration
	case hovered && t.EnableHover:
		return t.HoveredDecoration
	case t.AlternateRowDecoration != nil && index%2 == 1:
		return *t.AlternateRowDecoration
	default:
		return t.RowDecoration
	}
}

func (t Theme) footerPadding() components.Spacing {
	if t.FooterPadding != nil {
		return *t.FooterPadding
	}
	return t.CellPadding
}

func (t Theme) footerAlignment() components.Alignment {
	if t.FooterAlignment != nil {
		return *t.FooterAlignment
	}
	return t.CellAlignment
}
