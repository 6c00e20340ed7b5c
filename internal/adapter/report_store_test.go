package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/lit/internal/model"
)

func TestYAMLReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "reports", "fr.yaml"))

	report := m.Report{
		ID:         "4a1c",
		CreatedAt:  "2026-01-02T03:04:05Z",
		Locale:     "fr",
		BaseLocale: "en",
		Files:      2,
		CallSites:  4,
		Reported:   []string{"greeting.hello", "greeting.bye"},
		Missing:    []string{"greeting.bye"},
		Warnings:   []m.ReportWarning{{Location: "b.go:3:2", Reason: "non-string-argument", Source: "name"}},
	}

	require.NoError(t, store.SaveReport(context.Background(), path, report))

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(content), "missing:\n    - greeting.bye")

	loaded, err := store.LoadReport(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, report, loaded)
}

func TestYAMLReportStore_LoadErrors(t *testing.T) {
	store := NewReportStore()
	dir := t.TempDir()

	_, err := store.LoadReport(context.Background(), m.Path(filepath.Join(dir, "missing.yaml")))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("missing: [unclosed"), 0o600))

	_, err = store.LoadReport(context.Background(), m.Path(bad))
	require.Error(t, err)
}
