package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"gooze.dev/pkg/mutor/internal/domain"
	m "gooze.dev/pkg/mutor/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mutor"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	excludeFlagName     = "exclude"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"
	runParallelFlagName = "parallel"
	levelFlagName       = "level"
	ignoreFlagName      = "ignore"
	formatFlagName      = "format"
	diffFlagName        = "diff"

	runParallelConfigKey = "run.parallel"
	excludeConfigKey     = "paths.exclude"
	mutateLevelKey       = "mutate.level"
	mutateIgnoreKey      = "mutate.ignore"
	listFormatKey        = "list.format"
	listDiffKey          = "list.diff"

	defaultRunParallel = 1
	defaultLevel       = "standard"
	defaultFormat      = "table"
	defaultDiff        = false

	// defaultIgnoreReason is reported for kinds ignored without an explicit reason.
	defaultIgnoreReason = "ignored by configuration"

	envPrefix = "MUTOR"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".mutor.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// setDefaults registers every key mutor reads, so `mutor init` writes them all.
func setDefaults(v *viper.Viper) {
	v.SetDefault(configVersionKey, currentConfigVersion)
	v.SetDefault(runParallelConfigKey, defaultRunParallel)
	v.SetDefault(excludeConfigKey, []string{})
	v.SetDefault(mutateLevelKey, defaultLevel)
	v.SetDefault(mutateIgnoreKey, map[string]string{})
	v.SetDefault(listFormatKey, defaultFormat)
	v.SetDefault(listDiffKey, defaultDiff)

	// Logging defaults (used by config/env and as fallbacks for flags).
	v.SetDefault(logFilenameKey, defaultLogFilename)
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logVerboseKey, defaultLogVerbose)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)
}

// mutateConfig builds the orchestrator configuration from the mutate.* keys.
// Ignored kinds are applied in a stable order so errors are reproducible.
func mutateConfig(v *viper.Viper) (domain.Config, error) {
	level, err := m.ParseLevel(v.GetString(mutateLevelKey))
	if err != nil {
		return domain.Config{}, err
	}

	ignored := v.GetStringMapString(mutateIgnoreKey)
	names := make([]string, 0, len(ignored))

	for name := range ignored {
		names = append(names, name)
	}

	slices.Sort(names)

	filters := make(map[m.MutationKind]string, len(names))

	for _, name := range names {
		kind, err := m.ParseMutationKind(name)
		if err != nil {
			return domain.Config{}, fmt.Errorf("%s: %w", mutateIgnoreKey, err)
		}

		reason := strings.TrimSpace(ignored[name])
		if reason == "" {
			reason = defaultIgnoreReason
		}

		filters[kind] = reason
	}

	return domain.Config{Level: level, Filters: filters}, nil
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

// configureLogger configures the global slog logger from v's log.* keys.
//
// By default it logs at Info; if log.verbose is true it logs at Debug.
func configureLogger(v *viper.Viper) {
	logPath := strings.TrimSpace(v.GetString(logFilenameKey))
	if logPath == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if v.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(v.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    v.GetInt(logMaxSizeKey),
		MaxBackups: v.GetInt(logMaxBackupsKey),
		MaxAge:     v.GetInt(logMaxAgeKey),
		Compress:   v.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
