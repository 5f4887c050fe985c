package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tablekit/internal/table"
)

// View renders the current model state
func (m Model) View() string {
	sections := []string{m.renderHeader()}
	if m.showError {
		sections = append(sections, m.renderErrorBanner())
	}
	sections = append(sections, m.viewport.View(), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the document title and a summary of table state.
func (m Model) renderHeader() string {
	name := "table"
	if m.doc != nil && m.doc.Name != "" {
		name = m.doc.Name
	}
	title := titleStyle.Render(name)

	var parts []string
	switch m.view.Kind {
	case table.ViewLoading:
		parts = append(parts, m.spinner.View()+" loading")
	case table.ViewEmpty:
		parts = append(parts, "empty")
	default:
		rows := len(m.doc.Rows)
		parts = append(parts, fmt.Sprintf("%d rows", rows))
		if m.view.Grid.Plan.HasCheckbox() {
			parts = append(parts, fmt.Sprintf("%d selected", len(below(m.selected, rows))))
		}
		if len(m.expanded) > 0 {
			parts = append(parts, fmt.Sprintf("%d expanded", len(m.expanded)))
		}
	}
	summary := summaryStyle.Render(strings.Join(parts, " · "))

	line := title + summary
	if m.sort != nil && m.sort.Column < len(m.doc.Columns) {
		arrow := "▲"
		if !m.sort.Ascending {
			arrow = "▼"
		}
		line += "  " + sortStyle.Render(fmt.Sprintf("%s %s", m.doc.Columns[m.sort.Column].Label(), arrow))
	}
	return line
}

func (m Model) renderErrorBanner() string {
	return errorBannerStyle.Render(m.errorMsg + "  (x to dismiss)")
}

// renderFooter renders the status line and key help.
func (m Model) renderFooter() string {
	status := m.status
	if status == "" && m.view.Kind == table.ViewGrid && len(m.doc.Columns) > 0 {
		status = "Column: " + m.doc.Columns[m.column].Label()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Render(status),
		m.help.View(m.keys),
	)
}

// chromeTop is the number of lines above the viewport.
func (m Model) chromeTop() int {
	h := lipgloss.Height(m.renderHeader())
	if m.showError {
		h += lipgloss.Height(m.renderErrorBanner())
	}
	return h
}

// chromeBottom is the number of lines below the viewport.
func (m Model) chromeBottom() int {
	return lipgloss.Height(m.renderFooter())
}
