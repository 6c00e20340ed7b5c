package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"

	m "gooze.dev/pkg/lit/internal/model"
)

// LocaleCatalog answers whether a translation key exists for a locale.
// Implementations return an error wrapping model.ErrUnknownLocale when the
// catalog holds nothing for the requested locale.
type LocaleCatalog interface {
	HasKey(ctx context.Context, key, locale string) (bool, error)
	Locales(ctx context.Context) ([]string, error)
}

// CatalogOption configures the catalogs in this package.
type CatalogOption func(*catalogConfig)

type catalogConfig struct {
	strict bool
}

// WithStrict makes catalogs report keys as absent when their translation is
// empty or equal to the key itself, which is how most localizers fall back.
func WithStrict(strict bool) CatalogOption {
	return func(c *catalogConfig) {
		c.strict = strict
	}
}

func newCatalogConfig(options []CatalogOption) catalogConfig {
	var cfg catalogConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// translated applies the existence predicate to a looked-up value.
func (c catalogConfig) translated(key, value string, found bool) bool {
	if !found {
		return false
	}

	if !c.strict {
		return true
	}

	value = strings.TrimSpace(value)

	return value != "" && value != key
}

// NormalizeLocale canonicalises a locale identifier into a BCP 47 tag string,
// so "en_US", "en-us" and "en-US" all compare equal.
func NormalizeLocale(locale string) (string, error) {
	tag, err := ParseLocale(locale)
	if err != nil {
		return "", err
	}

	return tag.String(), nil
}

// ParseLocale parses a locale identifier, accepting underscores as separators.
func ParseLocale(locale string) (language.Tag, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if cleaned == "" {
		return language.Und, fmt.Errorf("empty locale")
	}

	tag, err := language.Parse(cleaned)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return tag, nil
}

// SameLocale reports whether two locale identifiers name the same tag.
// Unparseable identifiers are compared case-insensitively.
func SameLocale(a, b string) bool {
	na, errA := NormalizeLocale(a)
	nb, errB := NormalizeLocale(b)

	if errA != nil || errB != nil {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}

	return na == nb
}

// localeIndex maps normalised locale tags to the spelling a store uses, so
// rows saved as "pt_BR" answer lookups for "pt-BR" and the reverse. It is
// filled from the store's locale list on first use.
type localeIndex struct {
	mu        sync.Mutex
	loaded    bool
	stored    map[string]string
	available []string
}

func (i *localeIndex) resolve(ctx context.Context, locale string, list func(context.Context) ([]string, error)) (string, error) {
	normalized, err := NormalizeLocale(locale)
	if err != nil {
		return "", err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.loaded {
		available, err := list(ctx)
		if err != nil {
			return "", err
		}

		i.stored = make(map[string]string, len(available))

		for _, name := range available {
			tag := name
			if n, err := NormalizeLocale(name); err == nil {
				tag = n
			}

			if _, dup := i.stored[tag]; !dup {
				i.stored[tag] = name
			}
		}

		i.available = available
		i.loaded = true
	}

	stored, ok := i.stored[normalized]
	if !ok {
		return "", unknownLocale(locale, i.available)
	}

	return stored, nil
}

func unknownLocale(locale string, available []string) error {
	return fmt.Errorf("%w %q (available: %s)", m.ErrUnknownLocale, locale, strings.Join(available, ", "))
}
