package components

import (
	"strings"

	"github.com/alexisbeaulieu97/tablekit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Inline lays out renderables side by side, separated by Gap spaces.
// Blank parts are skipped so an absent label does not leave a stray gap.
type Inline struct {
	Parts []ui.Renderable
	Gap   int
}

// NewInline creates an Inline with a one-space gap.
func NewInline(parts ...ui.Renderable) Inline {
	return Inline{Parts: parts, Gap: 1}
}

// View renders the parts with the default context.
func (in Inline) View() string {
	return in.ViewWithContext(DefaultContext())
}

// ViewWithContext renders each part with ctx and joins them horizontally.
func (in Inline) ViewWithContext(ctx RenderContext) string {
	rendered := make([]string, 0, len(in.Parts)*2)
	gap := strings.Repeat(" ", max(in.Gap, 0))
	for _, part := range in.Parts {
		if ui.IsBlank(part) {
			continue
		}
		if len(rendered) > 0 && gap != "" {
			rendered = append(rendered, gap)
		}
		rendered = append(rendered, ViewIn(part, ctx))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
