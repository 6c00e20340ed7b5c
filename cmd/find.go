package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/lit/internal/domain"
	m "gooze.dev/pkg/lit/internal/model"
)

var findParallelFlag int
var findSortedFlag bool
var findBaseFlag string
var findReportFlag string
var findMetricsFlag string

// findCmd represents the find command.
var findCmd = newFindCmd()

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "find <locale> [paths...]",
		Short:  "Find translation keys missing from a locale",
		Long:   findLongDescription,
		Args:   cobra.MinimumNArgs(1),
		PreRun: bindLocalFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := sourceArgs(args[1:])
			if err != nil {
				return err
			}

			return workflow.Find(cmd.Context(), domain.FindArgs{
				SourceArgs: source,
				Locale:     args[0],
				BaseLocale: viper.GetString(localeBaseKey),
				Sorted:     viper.GetBool(scanSortedKey),
				Report:     m.Path(viper.GetString(outputReportKey)),
				Metrics:    m.Path(viper.GetString(outputMetricsKey)),
			})
		},
	}

	configureFindFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func configureFindFlags(cmd *cobra.Command) {
	addParallelFlag(cmd, &findParallelFlag)

	cmd.Flags().BoolVar(&findSortedFlag, sortedFlagName, viper.GetBool(scanSortedKey), "print missing keys in lexicographic order")

	cmd.Flags().StringVar(&findBaseFlag, baseFlagName, viper.GetString(localeBaseKey), "base locale the keys are written in")

	cmd.Flags().StringVar(&findReportFlag, reportFlagName, viper.GetString(outputReportKey), "write the scan result as YAML to this file")

	cmd.Flags().StringVar(&findMetricsFlag, metricsFlagName, viper.GetString(outputMetricsKey), "write Prometheus textfile metrics to this file")
}
