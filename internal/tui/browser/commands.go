package browser

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loadCmd reads the document at path asynchronously.
func loadCmd(path string, load Loader) tea.Cmd {
	return func() tea.Msg {
		doc, err := load(path)
		if err != nil {
			return ErrorMsg{Message: fmt.Sprintf("Reload failed: %v", err)}
		}
		return DocumentLoadedMsg{Doc: doc}
	}
}

// copyCmd writes text to the clipboard.
func copyCmd(text string, rows int, write func(string) error) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return ErrorMsg{Message: fmt.Sprintf("Clipboard error: %v", err)}
		}
		return StatusMsg{Message: fmt.Sprintf("Copied %d row(s)", rows)}
	}
}

// clearErrorCmd hides the error banner after d.
func clearErrorCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}
