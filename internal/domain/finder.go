package domain

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/lit/internal/adapter"
	"gooze.dev/pkg/lit/internal/controller"
	m "gooze.dev/pkg/lit/internal/model"
)

// ScanArgs configures a scan.
type ScanArgs struct {
	Locale      string
	EntryPoints []m.EntryPoint
	Threads     int
	Sorted      bool
}

func (a ScanArgs) threads() int {
	if a.Threads > 0 {
		return a.Threads
	}

	return runtime.NumCPU()
}

// Finder collects the literal keys used by a set of files and checks them
// against a locale catalog.
type Finder interface {
	// Collect scans files and aggregates their keys without consulting a catalog.
	Collect(ctx context.Context, files []m.SourceFile, args ScanArgs) (m.ScanResult, error)
	// Scan collects keys and fills ScanResult.Missing with the keys the
	// catalog does not have for args.Locale.
	Scan(ctx context.Context, files []m.SourceFile, catalog adapter.LocaleCatalog, args ScanArgs) (m.ScanResult, error)
}

type finder struct {
	Extractor
	controller.UI
}

// NewFinder creates a Finder reporting progress to ui.
func NewFinder(extractor Extractor, ui controller.UI) Finder {
	return &finder{
		Extractor: extractor,
		UI:        ui,
	}
}

// Collect parses files on a bounded worker pool. Each file is folded into its
// own FileResult; results are merged in file order once every worker is done,
// so the reported key order only depends on the input. The first failure
// cancels the remaining work and is returned.
func (f *finder) Collect(ctx context.Context, files []m.SourceFile, args ScanArgs) (m.ScanResult, error) {
	f.DisplayState(ctx, m.StatePending)

	results := make([]m.FileResult, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(args.threads())

	var done atomic.Int64

	f.DisplayState(ctx, m.StateScanning)

	for i, source := range files {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			result, err := f.Extract(groupCtx, source, args.EntryPoints)
			if err != nil {
				slog.Error("Failed to scan source", "file", source.DisplayPath(), "parse", adapter.IsParseError(err), "error", err)
				return fmt.Errorf("scan %s: %w", source.DisplayPath(), err)
			}

			results[i] = result
			f.DisplayProgress(groupCtx, int(done.Add(1)), len(files), source)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.ScanResult{}, err
	}

	// Nothing was scheduled when ctx was already done.
	if err := ctx.Err(); err != nil {
		return m.ScanResult{}, err
	}

	return f.merge(ctx, results, args), nil
}

func (f *finder) merge(ctx context.Context, results []m.FileResult, args ScanArgs) m.ScanResult {
	scan := m.ScanResult{
		Locale:   args.Locale,
		Files:    results,
		Reported: m.NewKeySet(),
		Missing:  m.NewKeySet(),
	}

	for _, result := range results {
		scan.Reported.Merge(result.Keys)
		scan.CallSites += result.CallSites

		for _, warning := range result.Warnings {
			slog.Debug("skipping dynamic language key", "location", warning.Location.String(), "argument", warning.Source, "reason", warning.Reason)
			f.DisplayWarning(ctx, warning)
			scan.Warnings = append(scan.Warnings, warning)
		}
	}

	return scan
}

// Scan runs Collect, then asks the catalog about every reported key.
// Catalog errors are fatal: no partial result is returned.
func (f *finder) Scan(ctx context.Context, files []m.SourceFile, catalog adapter.LocaleCatalog, args ScanArgs) (m.ScanResult, error) {
	scan, err := f.Collect(ctx, files, args)
	if err != nil {
		return m.ScanResult{}, err
	}

	f.DisplayState(ctx, m.StateAggregating)

	keys := scan.Reported.Keys(args.Sorted)
	present := make([]bool, len(keys))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(args.threads())

	for i, key := range keys {
		group.Go(func() error {
			ok, err := catalog.HasKey(groupCtx, key, args.Locale)
			if err != nil {
				return fmt.Errorf("check key %q in locale %s: %w", key, args.Locale, err)
			}

			present[i] = ok

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Locale catalog lookup failed", "locale", args.Locale, "error", err)
		return m.ScanResult{}, err
	}

	for i, key := range keys {
		if !present[i] {
			scan.Missing.Add(key)
		}
	}

	f.DisplayState(ctx, m.StateDone)

	slog.Info("Scan finished", "locale", args.Locale, "files", len(files), "reported", scan.Reported.Len(), "missing", scan.Missing.Len(), "dynamic", len(scan.Warnings))

	return scan, nil
}
