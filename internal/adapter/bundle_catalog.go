package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// bundleExtensions are the message file formats registered on the bundle.
var bundleExtensions = []string{".json", ".toml", ".yaml", ".yml"}

// BundleCatalog is a LocaleCatalog backed by go-i18n message files such as
// active.fr.toml or fr.json. The language of each file comes from its name.
type BundleCatalog struct {
	bundle   *i18n.Bundle
	messages map[string]map[string]string
	cfg      catalogConfig
}

// NewBundleCatalog loads every message file found directly under dir.
func NewBundleCatalog(dir string, baseLocale string, options ...CatalogOption) (*BundleCatalog, error) {
	base, err := ParseLocale(baseLocale)
	if err != nil {
		base = language.English
	}

	bundle := i18n.NewBundle(base)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	catalog := &BundleCatalog{
		bundle:   bundle,
		messages: make(map[string]map[string]string),
		cfg:      newCatalogConfig(options),
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read locale dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !slices.Contains(bundleExtensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			continue
		}

		if err := catalog.load(filepath.Join(dir, entry.Name())); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

func (c *BundleCatalog) load(path string) error {
	file, err := c.bundle.LoadMessageFile(path)
	if err != nil {
		return fmt.Errorf("load message file %s: %w", path, err)
	}

	locale := file.Tag.String()

	messages, ok := c.messages[locale]
	if !ok {
		messages = make(map[string]string, len(file.Messages))
		c.messages[locale] = messages
	}

	for _, message := range file.Messages {
		messages[message.ID] = messageText(message)
	}

	slog.Debug("Loaded message file", "path", path, "locale", locale, "messages", len(file.Messages))

	return nil
}

// messageText returns the first non-empty plural form of message.
func messageText(message *i18n.Message) string {
	for _, text := range []string{message.Other, message.One, message.Zero, message.Two, message.Few, message.Many} {
		if text != "" {
			return text
		}
	}

	return ""
}

// HasKey reports whether key is translated for locale.
func (c *BundleCatalog) HasKey(ctx context.Context, key, locale string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	normalized, err := NormalizeLocale(locale)
	if err != nil {
		return false, err
	}

	messages, ok := c.messages[normalized]
	if !ok {
		available, _ := c.Locales(ctx)
		return false, unknownLocale(locale, available)
	}

	value, found := messages[key]

	return c.cfg.translated(key, value, found), nil
}

// Locales returns the languages with at least one loaded message file.
func (c *BundleCatalog) Locales(_ context.Context) ([]string, error) {
	locales := make([]string, 0, len(c.messages))
	for _, tag := range c.bundle.LanguageTags() {
		if _, ok := c.messages[tag.String()]; ok {
			locales = append(locales, tag.String())
		}
	}

	slices.Sort(locales)

	return locales, nil
}
