package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type unmarshalFunc func([]byte, any) error

var nestedUnmarshalers = map[string]unmarshalFunc{
	".json": json.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

// NestedCatalog is a LocaleCatalog backed by one nested document per locale
// (en.json, fr-FR.yaml, ...). Nested objects are flattened into dotted keys,
// so {"errors": {"required": "..."}} defines "errors.required".
type NestedCatalog struct {
	entries map[string]map[string]string
	cfg     catalogConfig
}

// NewNestedCatalog loads every <locale>.<ext> file found directly under dir.
func NewNestedCatalog(dir string, options ...CatalogOption) (*NestedCatalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read locale dir: %w", err)
	}

	catalog := &NestedCatalog{
		entries: make(map[string]map[string]string),
		cfg:     newCatalogConfig(options),
	}

	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))

		unmarshal, ok := nestedUnmarshalers[ext]
		if entry.IsDir() || !ok {
			continue
		}

		locale, err := NormalizeLocale(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		if err != nil {
			slog.Debug("Skipping locale file with unrecognised name", "file", entry.Name(), "error", err)
			continue
		}

		path := filepath.Join(dir, entry.Name())

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read locale file %s: %w", path, err)
		}

		var doc map[string]any
		if err := unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("parse locale file %s: %w", path, err)
		}

		flat, ok := catalog.entries[locale]
		if !ok {
			flat = make(map[string]string)
			catalog.entries[locale] = flat
		}

		flatten("", doc, flat)
		slog.Debug("Loaded locale file", "path", path, "locale", locale, "keys", len(flat))
	}

	return catalog, nil
}

// flatten writes the leaves of doc into out using dotted keys.
func flatten(prefix string, doc map[string]any, out map[string]string) {
	for key, value := range doc {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			flatten(full, v, out)
		case string:
			out[full] = v
		case nil:
			out[full] = ""
		default:
			out[full] = fmt.Sprint(v)
		}
	}
}

// HasKey reports whether key is translated for locale.
func (c *NestedCatalog) HasKey(ctx context.Context, key, locale string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	normalized, err := NormalizeLocale(locale)
	if err != nil {
		return false, err
	}

	flat, ok := c.entries[normalized]
	if !ok {
		available, _ := c.Locales(ctx)
		return false, unknownLocale(locale, available)
	}

	value, found := flat[key]

	return c.cfg.translated(key, value, found), nil
}

// Locales returns the loaded locales.
func (c *NestedCatalog) Locales(_ context.Context) ([]string, error) {
	locales := make([]string, 0, len(c.entries))
	for locale := range c.entries {
		locales = append(locales, locale)
	}

	sort.Strings(locales)

	return locales, nil
}
