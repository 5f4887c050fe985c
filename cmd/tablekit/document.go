package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablekit/internal/config"
	"github.com/alexisbeaulieu97/tablekit/internal/logger"
)

// loadDocument parses path and applies a --theme override.
func loadDocument(path, theme string) (*config.Document, error) {
	doc, err := config.ParseDocument(path)
	if err != nil {
		return nil, err
	}
	if theme != "" {
		doc.Settings.Theme = theme
	}
	return doc, nil
}

func newCommandLogger(w io.Writer, flags *rootFlags, component string) (*logger.Logger, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: w, Component: component})
}

func documentSuggestion(cmd *cobra.Command, path string) string {
	return "Run `" + cmd.Root().Name() + " validate " + path + "` for details and fix the document."
}
