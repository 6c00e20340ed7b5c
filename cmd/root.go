// Package cmd provides the root command and CLI setup for lit.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/lit/internal/adapter"
	"gooze.dev/pkg/lit/internal/controller"
	"gooze.dev/pkg/lit/internal/domain"
	m "gooze.dev/pkg/lit/internal/model"
)

var goFileAdapter adapter.GoFileAdapter
var templateAdapter adapter.TemplateAdapter
var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var metricsWriter adapter.MetricsWriter
var extractor domain.Extractor
var finder domain.Finder
var workflow domain.Workflow
var ui controller.UI

// verboseFlag enables debug logging and dynamic-key warnings.
var verboseFlag bool

// excludePatterns is a root-level flag that filters files for every command.
var excludePatterns []string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stderr))
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	templateAdapter = adapter.NewLocalTemplateAdapter(templateDelims())
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	metricsWriter = adapter.NewTextfileMetricsWriter()
	extractor = domain.NewExtractor(fsAdapter, goFileAdapter, templateAdapter)
	finder = domain.NewFinder(extractor, ui)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		metricsWriter,
		ui,
		finder,
		openCatalog,
	)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./web/...      recursively scan web directory
  - ./cmd ./web    scan multiple directories (non-recursive)`

const rootLongDescription = `lit finds the translation keys your Go code and templates use and reports
the ones a locale does not define yet. Run it before shipping a new locale.

` + pathPatternsHelp

const findLongDescription = `Report the translation keys used in the given paths that the locale is
missing (default: current module). The locale must differ from the base
locale, which is the one the keys are written in.

` + pathPatternsHelp

const listLongDescription = `List source files with their translation call sites and keys.

` + pathPatternsHelp

const keysLongDescription = `List every literal translation key with the places that use it.
No locale is consulted.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lit",
		Short:        "Find missing translation keys",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger("", viper.GetBool(logVerboseKey))
			return configErr
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level and print skipped dynamic keys")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// sourceArgs builds the scan arguments shared by every command. Paths given
// on the command line replace the configured scan.paths.
func sourceArgs(args []string) (domain.SourceArgs, error) {
	if len(args) == 0 {
		args = viper.GetStringSlice(scanPathsKey)
	}

	entryPoints, err := domain.ParseEntryPoints(viper.GetStringSlice(entryPointsKey))
	if err != nil {
		return domain.SourceArgs{}, fmt.Errorf("parse %s: %w", entryPointsKey, err)
	}

	return domain.SourceArgs{
		Paths:       parsePaths(args),
		Exclude:     viper.GetStringSlice(excludeConfigKey),
		Filter:      fileFilter(),
		EntryPoints: entryPoints,
		Threads:     viper.GetInt(scanParallelKey),
		Verbose:     viper.GetBool(logVerboseKey),
	}, nil
}

// localFlagKeys maps subcommand flags to the config keys they override.
var localFlagKeys = map[string]string{
	parallelFlagName: scanParallelKey,
	sortedFlagName:   scanSortedKey,
	baseFlagName:     localeBaseKey,
	reportFlagName:   outputReportKey,
	metricsFlagName:  outputMetricsKey,
}

// bindLocalFlags binds the flags of the command about to run. Several
// subcommands share flag names, so they are bound once a command is selected.
func bindLocalFlags(cmd *cobra.Command, _ []string) {
	cmd.LocalFlags().VisitAll(func(flag *pflag.Flag) {
		if key, ok := localFlagKeys[flag.Name]; ok {
			bindFlagToConfig(flag, key)
		}
	})
}

func addParallelFlag(cmd *cobra.Command, target *int) {
	cmd.Flags().IntVarP(target, parallelFlagName, "p", viper.GetInt(scanParallelKey), "number of files parsed in parallel (0 = number of CPUs)")
}
