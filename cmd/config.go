package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"gooze.dev/pkg/lit/internal/adapter"
	"gooze.dev/pkg/lit/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "lit"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	dotEnvFileName   = ".env"

	verboseFlagName  = "verbose"
	excludeFlagName  = "exclude"
	parallelFlagName = "parallel"
	sortedFlagName   = "sorted"
	reportFlagName   = "report"
	metricsFlagName  = "metrics"
	baseFlagName     = "base"

	localeBaseKey   = "locale.base"
	localeDirKey    = "locale.dir"
	localeFormatKey = "locale.format"
	localeStrictKey = "locale.strict"

	catalogDriverKey        = "catalog.driver"
	catalogRedisAddrKey     = "catalog.redis.addr"
	catalogRedisPasswordKey = "catalog.redis.password"
	catalogRedisDBKey       = "catalog.redis.db"
	catalogRedisPrefixKey   = "catalog.redis.prefix"
	catalogSQLDriverKey     = "catalog.sql.driver"
	catalogSQLDSNKey        = "catalog.sql.dsn"
	catalogSQLTableKey      = "catalog.sql.table"
	catalogSQLLocaleColKey  = "catalog.sql.locale_column"
	catalogSQLKeyColKey     = "catalog.sql.key_column"
	catalogSQLValueColKey   = "catalog.sql.value_column"
	catalogSQLMaxOpenKey    = "catalog.sql.max_open_conns"

	scanPathsKey              = "scan.paths"
	scanExtensionsKey         = "scan.extensions"
	scanTemplateExtensionsKey = "scan.template_extensions"
	scanParallelKey           = "scan.parallel"
	scanSortedKey             = "scan.sorted"
	excludeConfigKey          = "paths.exclude"
	entryPointsKey            = "entry_points"
	templateDelimsKey         = "template.delims"
	outputReportKey           = "output.report"
	outputMetricsKey          = "output.metrics"

	formatBundle = "bundle"
	formatNested = "nested"

	driverFile  = "file"
	driverRedis = "redis"
	driverSQL   = "sql"

	defaultLocaleBase    = "en"
	defaultLocaleDir     = "locales"
	defaultLocaleFormat  = formatBundle
	defaultLocaleStrict  = false
	defaultCatalogDriver = driverFile
	defaultRedisAddr     = "localhost:6379"
	defaultScanParallel  = 0
	defaultScanSorted    = false

	envPrefix = "LIT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".lit.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	defaultScanExtensions         = []string{".go"}
	defaultScanTemplateExtensions = []string{".tmpl", ".gohtml"}
	defaultTemplateDelims         = []string{adapter.DefaultLeftDelim, adapter.DefaultRightDelim}
)

var globalLogger *slog.Logger

// configErr holds the last failure to read lit.yaml. A missing file is not
// an error.
var configErr error

func init() {
	initConfig()
}

// initConfig loads .env, the config file, and the defaults into viper.
func initConfig() {
	// A missing .env is fine; values already in the environment win.
	_ = godotenv.Load(dotEnvFileName)

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	configErr = nil

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		slog.Warn("Failed to read config file", "file", viper.ConfigFileUsed(), "error", err)
		configErr = fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err)
	}
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(localeBaseKey, defaultLocaleBase)
	viper.SetDefault(localeDirKey, defaultLocaleDir)
	viper.SetDefault(localeFormatKey, defaultLocaleFormat)
	viper.SetDefault(localeStrictKey, defaultLocaleStrict)

	sqlDefaults := adapter.DefaultSQLConfig()
	viper.SetDefault(catalogDriverKey, defaultCatalogDriver)
	viper.SetDefault(catalogRedisAddrKey, defaultRedisAddr)
	viper.SetDefault(catalogRedisPasswordKey, "")
	viper.SetDefault(catalogRedisDBKey, 0)
	viper.SetDefault(catalogRedisPrefixKey, adapter.DefaultRedisKeyPrefix)
	viper.SetDefault(catalogSQLDriverKey, sqlDefaults.Driver)
	viper.SetDefault(catalogSQLDSNKey, sqlDefaults.DSN)
	viper.SetDefault(catalogSQLTableKey, sqlDefaults.Table)
	viper.SetDefault(catalogSQLLocaleColKey, sqlDefaults.LocaleCol)
	viper.SetDefault(catalogSQLKeyColKey, sqlDefaults.KeyCol)
	viper.SetDefault(catalogSQLValueColKey, sqlDefaults.ValueCol)
	viper.SetDefault(catalogSQLMaxOpenKey, sqlDefaults.MaxOpenConn)

	viper.SetDefault(scanPathsKey, []string{})
	viper.SetDefault(scanExtensionsKey, defaultScanExtensions)
	viper.SetDefault(scanTemplateExtensionsKey, defaultScanTemplateExtensions)
	viper.SetDefault(scanParallelKey, defaultScanParallel)
	viper.SetDefault(scanSortedKey, defaultScanSorted)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(entryPointsKey, domain.DefaultEntryPoints)
	viper.SetDefault(templateDelimsKey, defaultTemplateDelims)
	viper.SetDefault(outputReportKey, "")
	viper.SetDefault(outputMetricsKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// templateDelims returns the configured template delimiters, falling back to
// the defaults when the setting is not a pair.
func templateDelims() (string, string) {
	delims := viper.GetStringSlice(templateDelimsKey)
	if len(delims) != 2 {
		return adapter.DefaultLeftDelim, adapter.DefaultRightDelim
	}

	return delims[0], delims[1]
}

func fileFilter() adapter.FileFilter {
	return adapter.FileFilter{
		GoExtensions:       viper.GetStringSlice(scanExtensionsKey),
		TemplateExtensions: viper.GetStringSlice(scanTemplateExtensionsKey),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
