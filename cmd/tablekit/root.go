package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tablekit",
		Short:         "tablekit renders and browses declarative table documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyEnvironment(cmd.Root()); err != nil {
				return err
			}
			if cmd != cmd.Root() {
				return applyEnvironment(cmd)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
