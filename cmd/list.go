package cmd

import (
	"github.com/spf13/cobra"

	"gooze.dev/pkg/lit/internal/domain"
)

var listParallelFlag int

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "list [paths...]",
		Short:  "List source files and their translation calls",
		Long:   listLongDescription,
		PreRun: bindLocalFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := sourceArgs(args)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{SourceArgs: source})
		},
	}

	addParallelFlag(cmd, &listParallelFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
