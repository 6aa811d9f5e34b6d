package cmd

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName = "confdig"
	configFileName = configBaseName + ".yaml"

	workdirFlagName     = "workdir"
	originFlagName      = "origin"
	excludeFlagName     = "exclude"
	excludeGlobFlagName = "exclude-glob"
	extensionsFlagName  = "ext"
	dirsFlagName        = "dirs"
	logFileFlagName     = "log-file"
	verboseFlagName     = "verbose"

	excludeConfigKey     = "paths.exclude"
	excludeGlobConfigKey = "paths.exclude_glob"
	extensionsConfigKey  = "resolve.extensions"

	envPrefix = "CONFDIG"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".confdig.log"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// defaultExcludedNames prunes the usual dependency directory; hidden
// directories are always pruned regardless.
var defaultExcludedNames = []string{"node_modules"}

// defaultExtensions is the candidate order offered to the resolve command.
var defaultExtensions = []string{".json", ".jsonc", ".yaml", ".yml", ".js"}

var globalLogger *slog.Logger

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(excludeConfigKey, defaultExcludedNames)
	viper.SetDefault(excludeGlobConfigKey, []string{})
	viper.SetDefault(extensionsConfigKey, defaultExtensions)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, int(slog.LevelInfo))
	viper.SetDefault(logVerboseKey, false)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// searchOptions describes a delegated configuration search. The search
// integration requires a non-empty base name and at least one place to
// look, in priority order.
type searchOptions struct {
	Name   string
	Places []string
}

func (o searchOptions) validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return errors.New("search options: name must be a non-empty string")
	}

	if len(o.Places) == 0 {
		return errors.New("search options: at least one search place is required")
	}

	return nil
}

// configureSearch points viper at the tool's own configuration file.
// Malformed options are reported immediately; a missing or unreadable
// config file degrades silently, same as project configuration lookups.
func configureSearch(opts searchOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	viper.SetConfigName(opts.Name)
	viper.SetConfigType("yaml")

	for _, place := range opts.Places {
		viper.AddConfigPath(place)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Warn("tool configuration could not be read", "error", err)
		}
	}

	return nil
}

// configureLogger routes slog output to a rotating file. The default level
// is Info; verbose forces Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	level := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		level = slog.LevelDebug
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
		Level:     level,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

func parseSlogLevel(value string, fallback slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))

	switch level {
	case "":
		return fallback
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

	return fallback
}
