package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/lit/internal/domain"
	m "gooze.dev/pkg/lit/internal/model"
)

const viewLongDescription = `Print the missing keys stored in a report written by "lit find --report".
Without an argument the configured output.report file is read.`

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "Print the missing keys of a saved report",
		Long:  viewLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report := viper.GetString(outputReportKey)
			if len(args) == 1 {
				report = args[0]
			}

			if report == "" {
				return errors.New("no report given: pass a path or set " + outputReportKey)
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Report: m.Path(report)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
