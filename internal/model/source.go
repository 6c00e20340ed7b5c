// Package model defines the data structures shared by the scanner.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// SourceKind classifies how a source file is parsed.
type SourceKind string

const (
	// KindGo is a Go source file parsed with go/parser.
	KindGo SourceKind = "go"
	// KindTemplate is a text/template or html/template file.
	KindTemplate SourceKind = "template"
)

// SourceFile is one file handed to the scanner. It is read once per scan and
// never mutated.
type SourceFile struct {
	Path      Path
	ShortPath Path
	Kind      SourceKind
}

// DisplayPath returns the short path when known, the full path otherwise.
func (s SourceFile) DisplayPath() string {
	if s.ShortPath != "" {
		return string(s.ShortPath)
	}

	return string(s.Path)
}

// KindForExtension returns the kind registered for the file extension of path.
// The boolean is false when the extension is in neither list.
func KindForExtension(path string, goExts, templateExts []string) (SourceKind, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "", false
	}

	for _, e := range goExts {
		if strings.EqualFold(normalizeExt(e), ext) {
			return KindGo, true
		}
	}

	for _, e := range templateExts {
		if strings.EqualFold(normalizeExt(e), ext) {
			return KindTemplate, true
		}
	}

	return "", false
}

func normalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}
