package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tablekit/internal/ui/components"
	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a table document without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], root)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, path string, root *rootFlags) error {
	log, err := newCommandLogger(cmd.ErrOrStderr(), root, "validate")
	if err != nil {
		return newCommandError("validate", "creating logger", err, "Check the --verbose flag and try again.")
	}

	doc, err := loadDocument(path, "")
	if err != nil {
		return newCommandError("validate", path, err, "Fix the reported field and run validate again.")
	}
	if _, err := doc.Build(components.DefaultTheme()); err != nil {
		return newCommandError("validate", path, tkerrors.InDocument(err, path), "Fix the reported field and run validate again.")
	}

	log.DebugFields("document valid", map[string]any{"path": path, "name": doc.Name})
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (%d columns, %d rows)\n", path, len(doc.Columns), len(doc.Rows))
	return nil
}
