package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gooze.dev/pkg/lit/internal/adapter"
	"gooze.dev/pkg/lit/internal/controller"
	m "gooze.dev/pkg/lit/internal/model"
)

// SourceArgs selects the files to scan and how to scan them.
type SourceArgs struct {
	Paths       []m.Path
	Exclude     []string
	Filter      adapter.FileFilter
	EntryPoints []m.EntryPoint
	Threads     int
	Verbose     bool
}

// FindArgs contains the arguments for a missing-key search.
type FindArgs struct {
	SourceArgs
	Locale     string
	BaseLocale string
	Sorted     bool
	Report     m.Path
	Metrics    m.Path
}

// ListArgs contains the arguments for listing scanned files.
type ListArgs struct {
	SourceArgs
}

// KeysArgs contains the arguments for listing reported keys.
type KeysArgs struct {
	SourceArgs
	Sorted bool
}

// ViewArgs selects a saved scan report to print.
type ViewArgs struct {
	Report m.Path
}

// CatalogOpener opens the locale catalog configured for the current run.
type CatalogOpener func(ctx context.Context) (adapter.LocaleCatalog, error)

// Workflow defines the commands exposed by the CLI.
type Workflow interface {
	Find(ctx context.Context, args FindArgs) error
	List(ctx context.Context, args ListArgs) error
	Keys(ctx context.Context, args KeysArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	adapter.MetricsWriter
	controller.UI
	Finder
	openCatalog CatalogOpener
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	metricsWriter adapter.MetricsWriter,
	ui controller.UI,
	finder Finder,
	openCatalog CatalogOpener,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		MetricsWriter:   metricsWriter,
		UI:              ui,
		Finder:          finder,
		openCatalog:     openCatalog,
	}
}

// Find reports the keys used by the sources that args.Locale lacks.
// Asking for the base locale is refused before any file is read.
func (w *workflow) Find(ctx context.Context, args FindArgs) (err error) {
	if adapter.SameLocale(args.Locale, args.BaseLocale) {
		return fmt.Errorf("%w: %q is the base locale", m.ErrSameLocale, args.Locale)
	}

	catalog, err := w.openCatalog(ctx)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}

	if closer, ok := catalog.(io.Closer); ok {
		defer func() {
			if closeErr := closer.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close catalog: %w", closeErr)
			}
		}()
	}

	sources, err := w.sources(ctx, args.SourceArgs)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithFindMode(), controller.WithTotal(len(sources)), controller.WithVerbose(args.Verbose)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	result, err := w.Scan(ctx, sources, catalog, ScanArgs{
		Locale:      args.Locale,
		EntryPoints: args.EntryPoints,
		Threads:     args.Threads,
		Sorted:      args.Sorted,
	})

	w.Close(ctx)

	if err != nil {
		return fmt.Errorf("scan sources: %w", err)
	}

	if err := w.DisplayMissingKeys(ctx, result.Missing.Keys(args.Sorted)); err != nil {
		return fmt.Errorf("display missing keys: %w", err)
	}

	if args.Report != "" {
		if err := w.SaveReport(ctx, args.Report, newReport(result, args)); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	if args.Metrics != "" {
		if err := w.WriteMetrics(ctx, args.Metrics, result); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// List prints a per-file summary of call sites and keys.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	result, err := w.collect(ctx, args.SourceArgs, controller.WithListMode(), false)
	if err != nil {
		return err
	}

	if err := w.DisplayFileSummary(ctx, result.Files); err != nil {
		return fmt.Errorf("display file summary: %w", err)
	}

	return nil
}

// Keys prints every reported key with the locations that use it.
func (w *workflow) Keys(ctx context.Context, args KeysArgs) error {
	result, err := w.collect(ctx, args.SourceArgs, controller.WithKeysMode(), args.Sorted)
	if err != nil {
		return err
	}

	if err := w.DisplayKeyReferences(ctx, result.Reported.Keys(args.Sorted), result.References()); err != nil {
		return fmt.Errorf("display keys: %w", err)
	}

	return nil
}

// View prints the missing keys recorded in a report saved by Find.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	slog.Info("Loaded report", "id", report.ID, "locale", report.Locale, "created_at", report.CreatedAt, "missing", len(report.Missing))

	if err := w.DisplayMissingKeys(ctx, report.Missing); err != nil {
		return fmt.Errorf("display missing keys: %w", err)
	}

	return nil
}

func (w *workflow) collect(ctx context.Context, args SourceArgs, mode controller.StartOption, sorted bool) (m.ScanResult, error) {
	sources, err := w.sources(ctx, args)
	if err != nil {
		return m.ScanResult{}, err
	}

	if err := w.Start(ctx, mode, controller.WithTotal(len(sources)), controller.WithVerbose(args.Verbose)); err != nil {
		return m.ScanResult{}, fmt.Errorf("start ui: %w", err)
	}

	result, err := w.Collect(ctx, sources, ScanArgs{
		EntryPoints: args.EntryPoints,
		Threads:     args.Threads,
		Sorted:      sorted,
	})

	w.Close(ctx)

	if err != nil {
		return m.ScanResult{}, fmt.Errorf("scan sources: %w", err)
	}

	return result, nil
}

func (w *workflow) sources(ctx context.Context, args SourceArgs) ([]m.SourceFile, error) {
	sources, err := w.Get(ctx, args.Paths, args.Filter, args.Exclude...)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	slog.Debug("Collected sources", "count", len(sources))

	return sources, nil
}

func newReport(result m.ScanResult, args FindArgs) m.Report {
	report := m.Report{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Locale:     args.Locale,
		BaseLocale: args.BaseLocale,
		Files:      len(result.Files),
		CallSites:  result.CallSites,
		Reported:   result.Reported.Keys(args.Sorted),
		Missing:    result.Missing.Keys(args.Sorted),
	}

	for _, warning := range result.Warnings {
		report.Warnings = append(report.Warnings, m.ReportWarning{
			Location: warning.Location.String(),
			Reason:   string(warning.Reason),
			Source:   warning.Source,
		})
	}

	return report
}
