package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tablekit/internal/export"
	"github.com/alexisbeaulieu97/tablekit/internal/render"
	"github.com/alexisbeaulieu97/tablekit/internal/table"
	"github.com/alexisbeaulieu97/tablekit/internal/ui"
	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

const formatTerminal = "term"

type renderOptions struct {
	format string
	width  int
	theme  string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a table document once and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts, root)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTerminal, "Output format: term, ascii, box, csv or json")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Total width in columns (defaults to the terminal width)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Override the document theme")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOptions, root *rootFlags) error {
	log, err := newCommandLogger(cmd.ErrOrStderr(), root, "render")
	if err != nil {
		return newCommandError("render", "creating logger", err, "Check the --verbose flag and try again.")
	}

	var format export.Format
	if opts.format != formatTerminal {
		format, err = export.ParseFormat(opts.format)
		if err != nil {
			return newCommandError("render", "selecting output format", err, "Use one of: term, ascii, box, csv, json.")
		}
	}
	if opts.width < 0 {
		return newCommandError("render", "sizing output", fmt.Errorf("width %d is negative", opts.width), "Pass a positive --width or omit it.")
	}

	doc, err := loadDocument(path, opts.theme)
	if err != nil {
		return newCommandError("render", "loading "+path, err, documentSuggestion(cmd, path))
	}
	if spec := doc.InitialSort(); spec != nil {
		doc.SortRows(*spec)
	}

	cfg, err := doc.Build(components.DefaultTheme())
	if err != nil {
		return newCommandError("render", "building table", tkerrors.InDocument(err, path), documentSuggestion(cmd, path))
	}
	view := table.New().Build(cfg)

	out := cmd.OutOrStdout()
	log.DebugFields("rendering document", map[string]any{
		"path":   path,
		"format": opts.format,
		"view":   view.Kind.String(),
		"rows":   len(doc.Rows),
	})

	if opts.format == formatTerminal {
		width := opts.width
		if width == 0 {
			width = terminalWidth(out)
		}
		frame := render.PaintView(view, render.Options{Width: width})
		_, err = fmt.Fprintln(out, frame.String())
		return err
	}

	if view.Kind != table.ViewGrid {
		_, err = fmt.Fprintln(out, ui.PlainText(view.Content))
		return err
	}
	if err := export.Write(out, view.Grid, format); err != nil {
		return newCommandError("render", "writing "+string(format)+" output", err, "Try another --format.")
	}
	return nil
}

// terminalWidth reports the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
