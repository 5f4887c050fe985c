package components

import "github.com/charmbracelet/lipgloss"

// Checkbox renders a terminal check control. It is a controlled component: it
// displays the state it was given and never flips itself. Mixed takes
// precedence over Checked and is used by "select all" headers.
type Checkbox struct {
	BaseComponent
	checked bool
	mixed   bool
}

// NewCheckbox creates a checkbox in the given state.
func NewCheckbox(checked bool) *Checkbox {
	return &Checkbox{
		BaseComponent: NewBaseComponent(),
		checked:       checked,
	}
}

// MixedCheckbox creates a checkbox showing the indeterminate state.
func MixedCheckbox() *Checkbox {
	cb := NewCheckbox(false)
	cb.mixed = true
	return cb
}

// View renders the checkbox.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the checkbox, highlighting checked and mixed states
// with the theme's primary colour.
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if c.checked || c.mixed {
		style = style.Foreground(ctx.Theme.Palette.Accent.Base)
	}
	return style.Render(c.Glyph())
}

// Glyph returns the unstyled glyph for the current state.
func (c *Checkbox) Glyph() string {
	switch {
	case c.mixed:
		return "[-]"
	case c.checked:
		return "[x]"
	default:
		return "[ ]"
	}
}

// Checked reports whether the checkbox shows a check mark.
func (c *Checkbox) Checked() bool {
	return c.checked && !c.mixed
}

// Mixed reports whether the checkbox shows the indeterminate state.
func (c *Checkbox) Mixed() bool {
	return c.mixed
}

// WithStyle sets the lipgloss style directly.
func (c *Checkbox) WithStyle(style lipgloss.Style) *Checkbox {
	c.SetStyle(style)
	return c
}
