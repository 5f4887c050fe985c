package components

import (
	"github.com/alexisbeaulieu97/tablekit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent provides the styling plumbing shared by all components.
// Embed this in component structs.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// StyleFunc applies a theme-aware transformation to a lipgloss.Style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle returns the raw style with every applier folded in, in order.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.style
	for _, fn := range b.appliers {
		style = fn(style, theme)
	}
	return style
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the style appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.appliers = append([]StyleFunc(nil), appliers...)
}

// AddAppliers appends appliers after the existing ones.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, len(b.appliers), len(b.appliers)+len(appliers))
	copy(next, b.appliers)
	b.appliers = append(next, appliers...)
}

// Spacing represents padding around cell content.
// Uses CSS box model ordering: Top, Right, Bottom, Left.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// HorizontalSpacing creates spacing on left and right sides only.
func HorizontalSpacing(size int) Spacing {
	return Spacing{Right: size, Left: size}
}

// SymmetricSpacing creates spacing with different horizontal and vertical values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns the total horizontal spacing (left + right).
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns the total vertical spacing (top + bottom).
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

// Apply sets the spacing as lipgloss padding on style.
func (s Spacing) Apply(style lipgloss.Style) lipgloss.Style {
	return style.Padding(s.Top, s.Right, s.Bottom, s.Left)
}

// Constraints defines sizing constraints in terminal cells. A negative maximum
// means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithWidth creates constraints with a fixed width.
func WithWidth(width int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// Constrain applies the constraints to a given size.
func (c Constraints) Constrain(width, height int) (int, int) {
	w, h := width, height
	if c.MinWidth > 0 && w < c.MinWidth {
		w = c.MinWidth
	}
	if c.MaxWidth >= 0 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	if c.MinHeight > 0 && h < c.MinHeight {
		h = c.MinHeight
	}
	if c.MaxHeight >= 0 && h > c.MaxHeight {
		h = c.MaxHeight
	}
	return w, h
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// RenderContext carries the application theme and the width available to a
// component while it renders.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithParentWidth returns a new context with the given parent width.
func (r RenderContext) WithParentWidth(width int) RenderContext {
	r.ParentWidth = width
	return r
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// ViewIn renders r with ctx when it understands a RenderContext, otherwise
// through its plain View.
func ViewIn(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// Alignment specifies how content is aligned inside its cell.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// ToLipglossPosition converts Alignment to lipgloss.Position.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// String returns the configuration name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// ParseAlignment maps "start", "center" and "end" (plus "left"/"right") to an
// Alignment. Unknown names report false.
func ParseAlignment(name string) (Alignment, bool) {
	switch name {
	case "start", "left":
		return AlignStart, true
	case "center", "centre":
		return AlignCenter, true
	case "end", "right":
		return AlignEnd, true
	default:
		return AlignStart, false
	}
}
