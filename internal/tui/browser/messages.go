package browser

import "github.com/alexisbeaulieu97/tablekit/internal/config"

// ReloadMsg asks the browser to read its document again, typically sent by a
// file watcher.
type ReloadMsg struct {
	Path string
}

// DocumentLoadedMsg carries a freshly parsed document.
type DocumentLoadedMsg struct {
	Doc *config.Document
}

// StatusMsg replaces the status line.
type StatusMsg struct {
	Message string
}

// ErrorMsg shows the error banner.
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg hides the error banner.
type ClearErrorMsg struct{}
