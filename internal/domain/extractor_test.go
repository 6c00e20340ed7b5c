package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/lit/internal/adapter"
	m "gooze.dev/pkg/lit/internal/model"
)

func newTestExtractor() Extractor {
	return NewExtractor(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalGoFileAdapter(),
		adapter.NewLocalTemplateAdapter("", ""),
	)
}

func writeSource(t *testing.T, dir, name, contents string) m.SourceFile {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	kind, ok := m.KindForExtension(path, []string{".go"}, []string{".tmpl"})
	require.True(t, ok)

	return m.SourceFile{Path: m.Path(path), ShortPath: m.Path(name), Kind: kind}
}

func TestExtractor_GoFile(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "a.go", `package web

func page(name string) {
	T("greeting.hello")
	T(name)
	T("greeting.hello")
	T()
}
`)

	result, err := newTestExtractor().Extract(context.Background(), source, mustEntryPoints(t, "T"))
	require.NoError(t, err)

	assert.Equal(t, source, result.Source)
	assert.Equal(t, 4, result.CallSites)
	assert.Equal(t, []string{"greeting.hello"}, result.Keys.Keys(false))
	require.Len(t, result.References, 2)
	assert.Equal(t, m.Location{File: "a.go", Line: 4, Column: 2}, result.References[0].Location)

	require.Len(t, result.Warnings, 2)
	assert.Equal(t, m.Warning{
		Location: m.Location{File: "a.go", Line: 5, Column: 2},
		Target:   "T",
		Reason:   m.ReasonNonString,
		Source:   "name",
	}, result.Warnings[0])
	assert.Equal(t, m.ReasonMissing, result.Warnings[1].Reason)
}

func TestExtractor_TemplateFile(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "page.tmpl", "<h1>{{ .T \"home.title\" }}</h1>\n{{ .T .Dynamic }}\n")

	result, err := newTestExtractor().Extract(context.Background(), source, mustEntryPoints(t, DefaultEntryPoints...))
	require.NoError(t, err)

	assert.Equal(t, []string{"home.title"}, result.Keys.Keys(false))
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, ".Dynamic", result.Warnings[0].Source)
	assert.Equal(t, 2, result.Warnings[0].Location.Line)
}

func TestExtractor_ParseError(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "broken.go", "package web\n\nfunc f() {\n")

	_, err := newTestExtractor().Extract(context.Background(), source, mustEntryPoints(t, "T"))
	require.Error(t, err)

	var parseErr *m.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, m.Path("broken.go"), parseErr.File)
}

func TestExtractor_MissingFile(t *testing.T) {
	source := m.SourceFile{Path: m.Path(filepath.Join(t.TempDir(), "gone.go")), Kind: m.KindGo}

	_, err := newTestExtractor().Extract(context.Background(), source, mustEntryPoints(t, "T"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestExtractor_UnknownKind(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "a.go", "package web\n")
	source.Kind = "markdown"

	_, err := newTestExtractor().Extract(context.Background(), source, mustEntryPoints(t, "T"))
	require.ErrorContains(t, err, "unsupported source kind")
}
