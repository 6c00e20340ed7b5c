// Package domain contains the call-site extraction engine and the scan
// workflows built on it.
package domain

import (
	"context"
	"fmt"
	"go/token"
	"iter"
	"log/slog"

	"gooze.dev/pkg/lit/internal/adapter"
	m "gooze.dev/pkg/lit/internal/model"
)

// Extractor turns one source file into the keys and warnings it contributes.
type Extractor interface {
	Extract(ctx context.Context, source m.SourceFile, entryPoints []m.EntryPoint) (m.FileResult, error)
}

type extractor struct {
	fsAdapter       adapter.SourceFSAdapter
	goFileAdapter   adapter.GoFileAdapter
	templateAdapter adapter.TemplateAdapter
}

// NewExtractor creates an Extractor backed by the given adapters.
func NewExtractor(
	fsAdapter adapter.SourceFSAdapter,
	goFileAdapter adapter.GoFileAdapter,
	templateAdapter adapter.TemplateAdapter,
) Extractor {
	return &extractor{
		fsAdapter:       fsAdapter,
		goFileAdapter:   goFileAdapter,
		templateAdapter: templateAdapter,
	}
}

// Extract parses source, matches its call sites, and resolves each key.
// Parse failures are returned as *model.ParseError.
func (e *extractor) Extract(ctx context.Context, source m.SourceFile, entryPoints []m.EntryPoint) (m.FileResult, error) {
	content, err := e.fsAdapter.ReadFile(ctx, source.Path)
	if err != nil {
		return m.FileResult{}, fmt.Errorf("read %s: %w", source.Path, err)
	}

	sites, err := e.callSites(ctx, source, content, entryPoints)
	if err != nil {
		return m.FileResult{}, err
	}

	result := m.FileResult{Source: source, Keys: m.NewKeySet()}

	for site := range sites {
		result.CallSites++

		resolved := ResolveKey(site)
		if key, ok := resolved.Literal(); ok {
			result.Keys.Add(key)
			result.References = append(result.References, m.KeyReference{Key: key, Location: site.Location})

			continue
		}

		result.Warnings = append(result.Warnings, m.Warning{
			Location: site.Location,
			Target:   site.Target,
			Reason:   resolved.Reason(),
			Source:   resolved.Source(),
		})
	}

	slog.Debug("Extracted keys", "file", source.DisplayPath(), "calls", result.CallSites, "keys", result.Keys.Len(), "dynamic", len(result.Warnings))

	return result, nil
}

func (e *extractor) callSites(ctx context.Context, source m.SourceFile, content []byte, entryPoints []m.EntryPoint) (iter.Seq[m.CallSite], error) {
	filename := source.DisplayPath()

	switch source.Kind {
	case m.KindTemplate:
		trees, err := e.templateAdapter.Parse(ctx, filename, content)
		if err != nil {
			return nil, err
		}

		return FindTemplateCallSites(filename, content, trees, entryPoints), nil

	case m.KindGo:
		fset := token.NewFileSet()

		file, err := e.goFileAdapter.Parse(ctx, fset, filename, content)
		if err != nil {
			return nil, err
		}

		return FindCallSites(fset, file, content, entryPoints), nil

	default:
		return nil, fmt.Errorf("unsupported source kind %q for %s", source.Kind, filename)
	}
}
