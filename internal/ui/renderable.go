// Package ui defines the minimal content contract shared by the component
// library, the table core and the renderers.
package ui

import "github.com/charmbracelet/x/ansi"

// Renderable is anything that can render itself to a terminal string.
type Renderable interface {
	View() string
}

// Blank is the empty placeholder content. It renders nothing.
type Blank struct{}

// View implements Renderable.
func (Blank) View() string { return "" }

// IsBlank reports whether r renders nothing at all. A nil Renderable is blank.
func IsBlank(r Renderable) bool {
	if r == nil {
		return true
	}
	if _, ok := r.(Blank); ok {
		return true
	}
	return false
}

// PlainText renders r and strips any ANSI styling, for exporters and clipboard
// output. A nil Renderable yields an empty string.
func PlainText(r Renderable) string {
	if r == nil {
		return ""
	}
	return ansi.Strip(r.View())
}

// String adapts a plain string to Renderable.
type String string

// View implements Renderable.
func (s String) View() string { return string(s) }
