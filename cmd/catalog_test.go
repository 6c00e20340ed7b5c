package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/lit/internal/adapter"
)

func writeLocaleFile(t *testing.T, dir, name, contents string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o600))
}

func TestOpenCatalog_BundleByDefault(t *testing.T) {
	dir := chdirTemp(t)
	writeLocaleFile(t, filepath.Join(dir, defaultLocaleDir), "fr.json", `{"greeting.hello": "Bonjour"}`)

	catalog, err := openCatalog(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &adapter.BundleCatalog{}, catalog)

	ok, err := catalog.HasKey(context.Background(), "greeting.hello", "fr")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOpenCatalog_Nested(t *testing.T) {
	dir := chdirTemp(t)
	writeLocaleFile(t, filepath.Join(dir, "i18n"), "fr.yaml", "greeting:\n  hello: Bonjour\n")
	viper.Set(localeDirKey, "i18n")
	viper.Set(localeFormatKey, formatNested)

	catalog, err := openCatalog(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &adapter.NestedCatalog{}, catalog)

	ok, err := catalog.HasKey(context.Background(), "greeting.hello", "fr")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOpenCatalog_StrictOption(t *testing.T) {
	dir := chdirTemp(t)
	writeLocaleFile(t, filepath.Join(dir, defaultLocaleDir), "fr.json", `{"greeting.hello": "greeting.hello"}`)
	viper.Set(localeStrictKey, true)

	catalog, err := openCatalog(context.Background())
	require.NoError(t, err)

	ok, err := catalog.HasKey(context.Background(), "greeting.hello", "fr")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenCatalog_SQL(t *testing.T) {
	dir := chdirTemp(t)
	viper.Set(catalogDriverKey, driverSQL)
	viper.Set(catalogSQLDSNKey, filepath.Join(dir, "catalog.db"))

	catalog, err := openCatalog(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &adapter.SQLCatalog{}, catalog)
	require.NoError(t, catalog.(*adapter.SQLCatalog).Close())
}

func TestOpenCatalog_Redis(t *testing.T) {
	chdirTemp(t)
	viper.Set(catalogDriverKey, driverRedis)

	catalog, err := openCatalog(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &adapter.RedisCatalog{}, catalog)
}

func TestOpenCatalog_UnknownDriverAndFormat(t *testing.T) {
	chdirTemp(t)

	viper.Set(catalogDriverKey, "mongo")
	_, err := openCatalog(context.Background())
	require.ErrorContains(t, err, "mongo")

	viper.Set(catalogDriverKey, driverFile)
	viper.Set(localeFormatKey, "xliff")
	_, err = openCatalog(context.Background())
	require.ErrorContains(t, err, "xliff")
}

func TestOpenCatalog_MissingLocaleDir(t *testing.T) {
	chdirTemp(t)

	_, err := openCatalog(context.Background())
	require.Error(t, err)
}
