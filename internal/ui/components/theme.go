package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet is one semantic colour with the colours drawn on top of it.
// Muted is a quieter variant used for row highlights, Contrast an accent that
// stands out against Base.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette holds the colour slots tables draw from. Accent marks selection and
// active controls, Alternate group headers, Surface the table body.
type Palette struct {
	Accent    ColourSet
	Alternate ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Neutral   ColourSet
}

// BorderVariant names one of the theme borders.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// ParseBorderVariant maps a document border name to a BorderVariant.
func ParseBorderVariant(name string) (BorderVariant, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return BorderVariantNone, true
	case "normal":
		return BorderVariantNormal, true
	case "thick":
		return BorderVariantThick, true
	case "rounded":
		return BorderVariantRounded, true
	case "double":
		return BorderVariantDouble, true
	default:
		return BorderVariantNone, false
	}
}

// TypographyVariant selects one of the theme text styles.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantHeading
	TypographyVariantStrong
	TypographyVariantMuted
)

// TypographyScale holds the text styles cells fall back to.
type TypographyScale struct {
	Base    lipgloss.Style
	Heading lipgloss.Style
	Strong  lipgloss.Style
	Muted   lipgloss.Style
}

// Theme is the immutable application theme. The table package derives its own
// fallback values from it; it is never mutated after construction.
type Theme struct {
	Name       string
	Palette    Palette
	Typography TypographyScale
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func basePalette() Palette {
	return Palette{
		Accent: ColourSet{
			Base:     adaptive("#3b82f6", "#60a5fa"),
			OnBase:   adaptive("#f8fafc", "#0b1120"),
			Muted:    adaptive("#dbeafe", "#1e3a8a"),
			Contrast: adaptive("#facc15", "#ca8a04"),
		},
		Alternate: ColourSet{
			Base:     adaptive("#a855f7", "#c084fc"),
			OnBase:   adaptive("#f8fafc", "#1f2937"),
			Muted:    adaptive("#f3e8ff", "#581c87"),
			Contrast: adaptive("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     adaptive("#f9fafb", "#111827"),
			OnBase:   adaptive("#111827", "#f9fafb"),
			Muted:    adaptive("#e2e8f0", "#1f2937"),
			Contrast: adaptive("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:   adaptive("#22c55e", "#4ade80"),
			OnBase: adaptive("#052e16", "#022c22"),
			Muted:  adaptive("#16a34a", "#15803d"),
		},
		Warning: ColourSet{
			Base:   adaptive("#eab308", "#facc15"),
			OnBase: adaptive("#422006", "#422006"),
			Muted:  adaptive("#ca8a04", "#a16207"),
		},
		Danger: ColourSet{
			Base:   adaptive("#ef4444", "#f87171"),
			OnBase: adaptive("#7f1d1d", "#450a0a"),
			Muted:  adaptive("#dc2626", "#b91c1c"),
		},
		Neutral: ColourSet{
			Base:     adaptive("#64748b", "#94a3b8"),
			OnBase:   adaptive("#f1f5f9", "#0f172a"),
			Muted:    adaptive("#f1f5f9", "#1e293b"),
			Contrast: adaptive("#cbd5e1", "#334155"),
		},
	}
}

func newTheme(name string, p Palette) Theme {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return Theme{
		Name:    name,
		Palette: p,
		Typography: TypographyScale{
			Base:    base,
			Heading: base.Bold(true).Foreground(p.Accent.Base),
			Strong:  base.Bold(true),
			Muted:   base.Foreground(p.Neutral.Base),
		},
	}
}

// DefaultTheme returns the adaptive light/dark application theme.
func DefaultTheme() Theme {
	return newTheme("default", basePalette())
}

// DarkTheme returns the default palette with dark surfaces regardless of the
// terminal background.
func DarkTheme() Theme {
	p := basePalette()
	p.Surface = ColourSet{
		Base:     adaptive("#111827", "#0b1120"),
		OnBase:   adaptive("#f9fafb", "#e5e7eb"),
		Muted:    adaptive("#1f2937", "#111827"),
		Contrast: adaptive("#3b82f6", "#60a5fa"),
	}
	p.Neutral = ColourSet{
		Base:     adaptive("#475569", "#334155"),
		OnBase:   adaptive("#e5e7eb", "#cbd5f5"),
		Muted:    adaptive("#1e293b", "#0f172a"),
		Contrast: adaptive("#334155", "#1e293b"),
	}
	return newTheme("dark", p)
}

// BorderForVariant returns the lipgloss border for variant. The theme is
// accepted so callers can resolve borders the same way as colours.
func BorderForVariant(_ Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return lipgloss.NormalBorder()
	case BorderVariantThick:
		return lipgloss.ThickBorder()
	case BorderVariantDouble:
		return lipgloss.DoubleBorder()
	case BorderVariantRounded:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.Border{}
	}
}

// TypographyStyle returns the text style for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyVariantHeading:
		return theme.Typography.Heading
	case TypographyVariantStrong:
		return theme.Typography.Strong
	case TypographyVariantMuted:
		return theme.Typography.Muted
	default:
		return theme.Typography.Base
	}
}

// PaletteSlot picks a colour set out of a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background paints the slot's base colour behind the content and its
// on-base colour in front.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground colours the content with the slot's base colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border draws a theme border around the content.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// Typography layers a theme text style under the content's own style.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
