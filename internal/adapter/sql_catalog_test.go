package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/lit/internal/model"
)

func newTestSQLCatalog(t *testing.T, options ...CatalogOption) *SQLCatalog {
	t.Helper()

	config := DefaultSQLConfig()
	config.DSN = filepath.Join(t.TempDir(), "catalog.db")

	db, err := sqlx.Open(config.Driver, config.DSN)
	require.NoError(t, err)

	db.MustExec(`CREATE TABLE translations (locale TEXT NOT NULL, msg_key TEXT NOT NULL, msg_value TEXT)`)
	db.MustExec(`INSERT INTO translations (locale, msg_key, msg_value) VALUES
		('fr', 'greeting.hello', 'Bonjour'),
		('fr', 'greeting.bye', 'greeting.bye'),
		('fr', 'nav.home', NULL),
		('de', 'greeting.hello', 'Hallo'),
		('pt_BR', 'greeting.hello', 'Olá')`)
	require.NoError(t, db.Close())

	catalog, err := NewSQLCatalog(config, options...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = catalog.Close() })

	return catalog
}

func TestSQLCatalog_HasKey(t *testing.T) {
	catalog := newTestSQLCatalog(t)
	ctx := context.Background()

	for _, tc := range []struct {
		key, locale string
		want        bool
	}{
		{"greeting.hello", "fr", true},
		{"greeting.bye", "fr", true},
		{"nav.home", "fr", true},
		{"nav.about", "fr", false},
		{"greeting.hello", "de", true},
		{"greeting.bye", "de", false},
	} {
		ok, err := catalog.HasKey(ctx, tc.key, tc.locale)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ok, "%s in %s", tc.key, tc.locale)
	}

	_, err := catalog.HasKey(ctx, "greeting.hello", "es")
	require.ErrorIs(t, err, m.ErrUnknownLocale)
}

func TestSQLCatalog_UnderscoreLocaleRows(t *testing.T) {
	catalog := newTestSQLCatalog(t)
	ctx := context.Background()

	for _, locale := range []string{"pt_BR", "pt-BR", "pt-br"} {
		ok, err := catalog.HasKey(ctx, "greeting.hello", locale)
		require.NoError(t, err, locale)
		assert.True(t, ok, locale)

		ok, err = catalog.HasKey(ctx, "greeting.bye", locale)
		require.NoError(t, err, locale)
		assert.False(t, ok, locale)
	}

	_, err := catalog.HasKey(ctx, "greeting.hello", "pt_PT")
	require.ErrorIs(t, err, m.ErrUnknownLocale)
	assert.Contains(t, err.Error(), "pt_BR")
}

func TestSQLCatalog_Strict(t *testing.T) {
	catalog := newTestSQLCatalog(t, WithStrict(true))
	ctx := context.Background()

	ok, err := catalog.HasKey(ctx, "greeting.bye", "fr")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = catalog.HasKey(ctx, "nav.home", "fr")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLCatalog_Locales(t *testing.T) {
	locales, err := newTestSQLCatalog(t).Locales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "fr", "pt_BR"}, locales)
}

func TestSQLCatalog_RejectsBadIdentifiers(t *testing.T) {
	config := DefaultSQLConfig()
	config.DSN = filepath.Join(t.TempDir(), "catalog.db")
	config.Table = "translations; DROP TABLE x"

	_, err := NewSQLCatalog(config)
	require.ErrorContains(t, err, "invalid SQL identifier")
}
