package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	// Database drivers selectable through SQLConfig.Driver.
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// SQLConfig describes the translations table.
type SQLConfig struct {
	Driver      string
	DSN         string
	Table       string
	LocaleCol   string
	KeyCol      string
	ValueCol    string
	MaxOpenConn int
}

// DefaultSQLConfig returns the default table layout:
// translations(locale, msg_key, msg_value).
func DefaultSQLConfig() SQLConfig {
	return SQLConfig{
		Driver:      "sqlite3",
		Table:       "translations",
		LocaleCol:   "locale",
		KeyCol:      "msg_key",
		ValueCol:    "msg_value",
		MaxOpenConn: 4,
	}
}

var sqlIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// SQLCatalog is a LocaleCatalog backed by a translations table.
type SQLCatalog struct {
	db         *sqlx.DB
	valueQuery string
	listQuery  string
	locales    localeIndex
	cfg        catalogConfig
}

// NewSQLCatalog opens the database described by config.
func NewSQLCatalog(config SQLConfig, options ...CatalogOption) (*SQLCatalog, error) {
	db, err := sqlx.Open(config.Driver, config.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", config.Driver, err)
	}

	if config.MaxOpenConn > 0 {
		db.SetMaxOpenConns(config.MaxOpenConn)
	}

	catalog, err := newSQLCatalog(db, config, options...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return catalog, nil
}

func newSQLCatalog(db *sqlx.DB, config SQLConfig, options ...CatalogOption) (*SQLCatalog, error) {
	defaults := DefaultSQLConfig()
	if config.Table == "" {
		config.Table = defaults.Table
	}

	if config.LocaleCol == "" {
		config.LocaleCol = defaults.LocaleCol
	}

	if config.KeyCol == "" {
		config.KeyCol = defaults.KeyCol
	}

	if config.ValueCol == "" {
		config.ValueCol = defaults.ValueCol
	}

	for _, ident := range []string{config.Table, config.LocaleCol, config.KeyCol, config.ValueCol} {
		if !sqlIdentifier.MatchString(ident) {
			return nil, fmt.Errorf("invalid SQL identifier %q", ident)
		}
	}

	return &SQLCatalog{
		db: db,
		valueQuery: db.Rebind(fmt.Sprintf(
			"SELECT %s FROM %s WHERE %s = ? AND %s = ?", config.ValueCol, config.Table, config.LocaleCol, config.KeyCol)),
		listQuery: fmt.Sprintf(
			"SELECT DISTINCT %s FROM %s ORDER BY %s", config.LocaleCol, config.Table, config.LocaleCol),
		cfg: newCatalogConfig(options),
	}, nil
}

// HasKey reports whether key is translated for locale.
func (c *SQLCatalog) HasKey(ctx context.Context, key, locale string) (bool, error) {
	stored, err := c.locales.resolve(ctx, locale, c.Locales)
	if err != nil {
		return false, err
	}

	var value sql.NullString

	err = c.db.GetContext(ctx, &value, c.valueQuery, stored, key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("lookup %s: %w", key, err)
	}

	return c.cfg.translated(key, value.String, true), nil
}

// Locales lists the distinct locales in the table.
func (c *SQLCatalog) Locales(ctx context.Context) ([]string, error) {
	var locales []string
	if err := c.db.SelectContext(ctx, &locales, c.listQuery); err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}

	return locales, nil
}

// Close releases the database handle.
func (c *SQLCatalog) Close() error {
	return c.db.Close()
}
