package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"gooze.dev/pkg/lit/internal/adapter"
)

// openCatalog builds the locale catalog selected by catalog.driver.
func openCatalog(_ context.Context) (adapter.LocaleCatalog, error) {
	options := []adapter.CatalogOption{adapter.WithStrict(viper.GetBool(localeStrictKey))}
	driver := strings.ToLower(strings.TrimSpace(viper.GetString(catalogDriverKey)))

	slog.Debug("Opening locale catalog", "driver", driver)

	switch driver {
	case driverFile, "":
		return openFileCatalog(options)

	case driverRedis:
		return adapter.NewRedisCatalog(adapter.RedisConfig{
			Addr:      viper.GetString(catalogRedisAddrKey),
			Password:  viper.GetString(catalogRedisPasswordKey),
			DB:        viper.GetInt(catalogRedisDBKey),
			KeyPrefix: viper.GetString(catalogRedisPrefixKey),
		}, options...), nil

	case driverSQL:
		return adapter.NewSQLCatalog(adapter.SQLConfig{
			Driver:      viper.GetString(catalogSQLDriverKey),
			DSN:         viper.GetString(catalogSQLDSNKey),
			Table:       viper.GetString(catalogSQLTableKey),
			LocaleCol:   viper.GetString(catalogSQLLocaleColKey),
			KeyCol:      viper.GetString(catalogSQLKeyColKey),
			ValueCol:    viper.GetString(catalogSQLValueColKey),
			MaxOpenConn: viper.GetInt(catalogSQLMaxOpenKey),
		}, options...)

	default:
		return nil, fmt.Errorf("unknown %s %q (want %s, %s or %s)", catalogDriverKey, driver, driverFile, driverRedis, driverSQL)
	}
}

func openFileCatalog(options []adapter.CatalogOption) (adapter.LocaleCatalog, error) {
	dir := viper.GetString(localeDirKey)
	format := strings.ToLower(strings.TrimSpace(viper.GetString(localeFormatKey)))

	switch format {
	case formatBundle, "":
		return adapter.NewBundleCatalog(dir, viper.GetString(localeBaseKey), options...)
	case formatNested:
		return adapter.NewNestedCatalog(dir, options...)
	default:
		return nil, fmt.Errorf("unknown %s %q (want %s or %s)", localeFormatKey, format, formatBundle, formatNested)
	}
}
