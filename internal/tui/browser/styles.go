package browser

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingRight(2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	sortStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				PaddingLeft(1).
				PaddingRight(1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(errorColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)
)
