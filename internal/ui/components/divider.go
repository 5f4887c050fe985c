package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider renders a horizontal separator line. Without an explicit width it
// fills the parent width from the render context, so a divider placed in a
// spanning table cell stretches across the whole table.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider drawn with "─".
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width

	if width <= 0 && ctx.Constraints.MaxWidth >= 0 {
		width = ctx.Constraints.MaxWidth
	}
	if width <= 0 && ctx.ParentWidth > 0 {
		width = ctx.ParentWidth
	}
	if width <= 0 {
		width = 40
	}

	unit := lipgloss.Width(d.char)
	if unit <= 0 {
		unit = 1
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width/unit))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}

// Char returns the divider glyph.
func (d *Divider) Char() string {
	return d.char
}

// DashedDivider creates a dashed divider.
func DashedDivider() *Divider {
	return NewDivider().WithChar("-")
}

// DottedDivider creates a dotted divider.
func DottedDivider() *Divider {
	return NewDivider().WithChar("·")
}
