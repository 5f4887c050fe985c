package components

// SortIndicator shows the active sort direction next to a header label.
type SortIndicator struct {
	BaseComponent
	ascending bool
}

// NewSortIndicator creates an indicator for the given direction.
func NewSortIndicator(ascending bool) *SortIndicator {
	return &SortIndicator{BaseComponent: NewBaseComponent(), ascending: ascending}
}

// View renders the indicator.
func (s *SortIndicator) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the indicator in the theme's primary colour.
func (s *SortIndicator) ViewWithContext(ctx RenderContext) string {
	return s.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Palette.Accent.Base).Render(s.Glyph())
}

// Glyph returns the unstyled arrow.
func (s *SortIndicator) Glyph() string {
	if s.ascending {
		return "▲"
	}
	return "▼"
}

// Ascending reports the direction shown.
func (s *SortIndicator) Ascending() bool {
	return s.ascending
}

// ExpandIcon is the toggle shown in a table's expansion column.
type ExpandIcon struct {
	BaseComponent
	expanded bool
}

// NewExpandIcon creates an icon for the given state.
func NewExpandIcon(expanded bool) *ExpandIcon {
	return &ExpandIcon{BaseComponent: NewBaseComponent(), expanded: expanded}
}

// View renders the icon.
func (e *ExpandIcon) View() string {
	return e.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the icon with theme styling.
func (e *ExpandIcon) ViewWithContext(ctx RenderContext) string {
	return e.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Palette.Neutral.Base).Render(e.Glyph())
}

// Glyph returns the unstyled glyph.
func (e *ExpandIcon) Glyph() string {
	if e.expanded {
		return "▾"
	}
	return "▸"
}

// Expanded reports the state shown.
func (e *ExpandIcon) Expanded() bool {
	return e.expanded
}
