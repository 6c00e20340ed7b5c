package controller

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/lit/internal/model"
)

// SimpleUI implements UI using the cobra command's output streams. Results go
// to stdout, warnings to stderr, and progress is not drawn.
type SimpleUI struct {
	cmd *cobra.Command

	mu      sync.Mutex
	verbose bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)

	s.mu.Lock()
	s.verbose = cfg.verbose
	s.mu.Unlock()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayState logs state transitions.
func (s *SimpleUI) DisplayState(_ context.Context, state m.ScanState) {
	slog.Debug("Scan state", "state", state.String())
}

// DisplayProgress is a no-op; plain output stays machine readable.
func (s *SimpleUI) DisplayProgress(_ context.Context, _, _ int, _ m.SourceFile) {}

// DisplayWarning prints a dynamic-key warning in verbose mode.
func (s *SimpleUI) DisplayWarning(ctx context.Context, warning m.Warning) {
	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.verbose {
		return
	}

	_, _ = fmt.Fprintln(s.cmd.ErrOrStderr(), FormatWarning(warning))
}

// FormatWarning renders a warning the way every UI prints it.
func FormatWarning(warning m.Warning) string {
	if warning.Reason == m.ReasonMissing {
		return fmt.Sprintf("%s: skipping %s call without a language key", warning.Location, warning.Target)
	}

	return fmt.Sprintf("%s: skipping dynamic language key: `%s`", warning.Location, warning.Source)
}

// DisplayMissingKeys prints one key per line.
func (s *SimpleUI) DisplayMissingKeys(ctx context.Context, keys []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		s.printf("%s\n", key)
	}

	return nil
}

// DisplayFileSummary prints a table of call-site counts per file.
func (s *SimpleUI) DisplayFileSummary(ctx context.Context, results []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("%s", renderSummaryTable(results))

	return nil
}

func renderSummaryTable(results []m.FileResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Calls", "Keys", "Dynamic"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	var calls, keys, dynamic int

	for _, result := range results {
		table.Append([]string{
			result.Source.DisplayPath(),
			fmt.Sprintf("%d", result.CallSites),
			fmt.Sprintf("%d", result.Keys.Len()),
			fmt.Sprintf("%d", len(result.Warnings)),
		})

		calls += result.CallSites
		keys += result.Keys.Len()
		dynamic += len(result.Warnings)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", calls),
		fmt.Sprintf("%d", keys),
		fmt.Sprintf("%d", dynamic),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayKeyReferences prints each key followed by where it is used.
func (s *SimpleUI) DisplayKeyReferences(ctx context.Context, keys []string, refs map[string][]m.Location) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		locations := make([]string, 0, len(refs[key]))
		for _, location := range refs[key] {
			locations = append(locations, location.String())
		}

		s.printf("%s\t%s\n", key, strings.Join(locations, ", "))
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
