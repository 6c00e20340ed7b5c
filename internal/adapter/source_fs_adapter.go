// Package adapter contains the infrastructure adapters used by the scanner:
// filesystem access, source parsers, locale catalogs, and report writers.
package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	m "gooze.dev/pkg/lit/internal/model"
)

const recursiveSuffix = "..."

// skippedDirs are never descended into when walking recursively.
var skippedDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
	"testdata":     true,
}

// FileFilter selects which files are scanned, by extension.
type FileFilter struct {
	GoExtensions       []string
	TemplateExtensions []string
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects.
type SourceFSAdapter interface {
	// Get expands path patterns into the deduplicated, path-sorted list of
	// source files accepted by filter. Files matching an exclude regex are
	// dropped. Supported patterns: "./..." (recursive), a directory
	// (non-recursive), or a single file.
	Get(ctx context.Context, paths []m.Path, filter FileFilter, exclude ...string) ([]m.SourceFile, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get lists the source files selected by paths.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, filter FileFilter, exclude ...string) ([]m.SourceFile, error) {
	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		paths = []m.Path{"./" + recursiveSuffix}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	seen := make(map[m.Path]struct{})

	var sources []m.SourceFile

	for _, pattern := range paths {
		root, recursive := splitPattern(pattern)

		err := a.Walk(ctx, root, recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if recursive && path != string(root) && skippedDirs[info.Name()] {
					return filepath.SkipDir
				}

				return nil
			}

			kind, ok := m.KindForExtension(path, filter.GoExtensions, filter.TemplateExtensions)
			if !ok || isExcluded(path, excludes) {
				return nil
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}

			if _, dup := seen[m.Path(abs)]; dup {
				return nil
			}

			seen[m.Path(abs)] = struct{}{}

			short, err := a.RelPath(ctx, m.Path(cwd), m.Path(abs))
			if err != nil || strings.HasPrefix(string(short), "..") {
				short = m.Path(path)
			}

			sources = append(sources, m.SourceFile{Path: m.Path(abs), ShortPath: short, Kind: kind})

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", pattern, err)
		}
	}

	slices.SortFunc(sources, func(x, y m.SourceFile) int {
		return strings.Compare(string(x.Path), string(y.Path))
	})

	slog.Debug("Discovered sources", "patterns", len(paths), "count", len(sources))

	return sources, nil
}

func splitPattern(pattern m.Path) (m.Path, bool) {
	p := string(pattern)
	if !strings.HasSuffix(p, recursiveSuffix) {
		return pattern, false
	}

	root := strings.TrimSuffix(p, recursiveSuffix)
	root = strings.TrimSuffix(root, "/")
	root = strings.TrimSuffix(root, string(filepath.Separator))

	if root == "" {
		root = "."
	}

	return m.Path(root), true
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func isExcluded(path string, excludes []*regexp.Regexp) bool {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)

	for _, re := range excludes {
		if re.MatchString(slashed) || re.MatchString(base) {
			return true
		}
	}

	return false
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
