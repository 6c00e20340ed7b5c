package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/lit/internal/domain"
)

var keysParallelFlag int
var keysSortedFlag bool

// keysCmd represents the keys command.
var keysCmd = newKeysCmd()

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "keys [paths...]",
		Short:  "List translation keys and where they are used",
		Long:   keysLongDescription,
		PreRun: bindLocalFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := sourceArgs(args)
			if err != nil {
				return err
			}

			return workflow.Keys(cmd.Context(), domain.KeysArgs{
				SourceArgs: source,
				Sorted:     viper.GetBool(scanSortedKey),
			})
		},
	}

	addParallelFlag(cmd, &keysParallelFlag)

	cmd.Flags().BoolVar(&keysSortedFlag, sortedFlagName, viper.GetBool(scanSortedKey), "print keys in lexicographic order")

	return cmd
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
