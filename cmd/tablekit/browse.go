package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablekit/internal/config"
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
	"github.com/alexisbeaulieu97/tablekit/internal/tui/browser"
	"github.com/alexisbeaulieu97/tablekit/internal/watch"
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

type browseOptions struct {
	watch   bool
	logFile string
	theme   string
}

func newBrowseCmd(root *rootFlags) *cobra.Command {
	opts := &browseOptions{}

	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse a table document interactively",
		Long: `Open a table document in an interactive viewer. Rows can be hovered,
selected, expanded and sorted with the keyboard or the mouse, and the
selection can be copied to the clipboard.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, args[0], opts, root)
		},
	}

	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the document when it changes on disk")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write interaction logs to this file")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Override the document theme")

	return cmd
}

func runBrowse(cmd *cobra.Command, path string, opts *browseOptions, root *rootFlags) error {
	log, closeLog, err := browseLogger(opts.logFile, root)
	if err != nil {
		return newCommandError("browse", "opening log file", err, "Check that the --log-file directory exists and is writable.")
	}
	defer closeLog()

	m, err := newBrowser(path, opts, log)
	if err != nil {
		return newCommandError("browse", "loading "+path, err, documentSuggestion(cmd, path))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))

	if opts.watch {
		w := watch.New(path, func(changed string) {
			p.Send(browser.ReloadMsg{Path: changed})
		}, watch.WithLogger(log))
		if err := w.Start(ctx); err != nil {
			return newCommandError("browse", "watching "+path, err, "Run without --watch or check file permissions.")
		}
		defer w.Close()
	}

	log.WithFields(map[string]any{
		"path":  path,
		"watch": opts.watch,
		"level": log.Level(),
	}).Info("browser started")
	if _, err := p.Run(); err != nil {
		log.Error(err, "browser exited")
		return newCommandError("browse", "running the browser", err, "Make sure the command runs in an interactive terminal.")
	}
	log.Info("browser closed")
	return nil
}

// newBrowser loads the document and builds the model. Reloads go through the
// same theme override as the first load.
func newBrowser(path string, opts *browseOptions, log *logger.Logger) (browser.Model, error) {
	doc, err := loadDocument(path, opts.theme)
	if err != nil {
		return browser.Model{}, err
	}
	load := func(p string) (*config.Document, error) {
		return loadDocument(p, opts.theme)
	}
	m, err := browser.New(path, doc, browser.WithLogger(log), browser.WithLoader(load))
	if err != nil {
		return browser.Model{}, tkerrors.InDocument(err, path)
	}
	return m, nil
}

func browseLogger(path string, root *rootFlags) (*logger.Logger, func(), error) {
	if path == "" {
		return logger.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	level := "info"
	if root.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Writer: f, Component: "browse"})
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return log, func() { f.Close() }, nil
}
