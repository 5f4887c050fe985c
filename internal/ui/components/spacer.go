package components

import "strings"

// Spacer renders empty space. A zero spacer renders nothing, which is how the
// table marks structural blank slots.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: width, height: height}
}

// HorizontalSpacer creates a one-line spacer of the given width.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// View renders the spacer as empty space.
func (s *Spacer) View() string {
	w := max(s.width, 0)
	h := max(s.height, 0)
	if w == 0 && h == 0 {
		return ""
	}

	line := strings.Repeat(" ", w)
	if h <= 1 {
		return line
	}

	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Width returns the spacer width.
func (s *Spacer) Width() int {
	return s.width
}

// Height returns the spacer height.
func (s *Spacer) Height() int {
	return s.height
}
