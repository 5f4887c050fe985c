package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "default", theme.Name)
	assert.Equal(t, "#3b82f6", theme.Palette.Accent.Base.Light)
	assert.Equal(t, "#111827", theme.Palette.Surface.OnBase.Light)

	assert.True(t, theme.Typography.Heading.GetBold(), "heading typography should be bold")
	assert.True(t, theme.Typography.Strong.GetBold(), "strong typography should be bold")
	assert.False(t, theme.Typography.Muted.GetBold())
}

func TestDarkTheme(t *testing.T) {
	light := DefaultTheme()
	dark := DarkTheme()

	assert.Equal(t, "dark", dark.Name)
	assert.Equal(t, light.Palette.Accent, dark.Palette.Accent, "accent colours are shared")
	assert.NotEqual(t, light.Palette.Surface.Base.Light, dark.Palette.Surface.Base.Light, "dark theme should invert surface base")
	assert.NotEqual(t, light.Typography.Base.GetForeground(), dark.Typography.Base.GetForeground(), "dark theme should adjust typography foreground")
}

func TestBorderForVariant(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, lipgloss.NormalBorder(), BorderForVariant(theme, BorderVariantNormal))
	assert.Equal(t, lipgloss.DoubleBorder(), BorderForVariant(theme, BorderVariantDouble))
	assert.Equal(t, lipgloss.RoundedBorder(), BorderForVariant(theme, BorderVariantRounded))
	assert.Equal(t, lipgloss.Border{}, BorderForVariant(theme, BorderVariantNone))
}

func TestParseBorderVariant(t *testing.T) {
	cases := map[string]BorderVariant{
		"":        BorderVariantNone,
		"none":    BorderVariantNone,
		"Rounded": BorderVariantRounded,
		"thick":   BorderVariantThick,
		"double":  BorderVariantDouble,
		"normal":  BorderVariantNormal,
	}
	for name, want := range cases {
		got, ok := ParseBorderVariant(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := ParseBorderVariant("zigzag")
	assert.False(t, ok)
}

func TestTypographyStyle(t *testing.T) {
	theme := DefaultTheme()
	assert.True(t, TypographyStyle(theme, TypographyVariantStrong).GetBold())
	assert.Equal(t, theme.Typography.Base, TypographyStyle(theme, TypographyVariant(99)))
}

func TestStyleFuncs(t *testing.T) {
	theme := DefaultTheme()

	style := Background(PaletteAccent)(lipgloss.NewStyle(), theme)
	assert.Equal(t, theme.Palette.Accent.Base, style.GetBackground())
	assert.Equal(t, theme.Palette.Accent.OnBase, style.GetForeground())

	style = Foreground(PaletteDanger)(lipgloss.NewStyle(), theme)
	assert.Equal(t, theme.Palette.Danger.Base, style.GetForeground())

	style = Foreground(PaletteNeutral)(lipgloss.NewStyle(), theme)
	assert.Equal(t, theme.Palette.Neutral.Base, style.GetForeground())

	style = Border(BorderVariantRounded)(lipgloss.NewStyle(), theme)
	assert.Equal(t, lipgloss.RoundedBorder(), style.GetBorderStyle())
}
