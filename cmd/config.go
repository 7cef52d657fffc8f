package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"gauntlet.dev/pkg/gauntlet/internal/domain"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "gauntlet"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName            = "output"
	verboseFlagName           = "verbose"
	logFileFlagName           = "log-file"
	programFlagName           = "program"
	tierFlagName              = "tier"
	seedFlagName              = "seed"
	testCommandFlagName       = "test-command"
	runParallelFlagName       = "parallel"
	mutationTimeoutFlagName   = "mutation-timeout"
	coverageTimeoutFlagName   = "coverage-timeout"
	scheduleThresholdFlagName = "schedule-threshold"
	retriesFlagName           = "retries"
	metricsFileFlagName       = "metrics-file"

	programConfigKey           = "subject.program"
	testCommandConfigKey       = "subject.test_command"
	tierConfigKey              = "run.tier"
	seedConfigKey              = "run.seed"
	runParallelConfigKey       = "run.parallel"
	mutationTimeoutKey         = "run.mutation_timeout"
	coverageTimeoutKey         = "run.coverage_timeout"
	scheduleThresholdConfigKey = "run.schedule_threshold"
	retriesConfigKey           = "run.retries"
	metricsFileConfigKey       = "metrics.file"

	defaultReportsDir        = ".gauntlet-reports"
	defaultProgram           = "program.gir"
	defaultTier              = "medium"
	defaultSeed              = 1
	defaultRunParallel       = 2
	defaultMutationTimeout   = time.Duration(0)
	defaultCoverageTimeout   = 5 * time.Minute
	defaultScheduleThreshold = 500
	defaultRetries           = 0

	envPrefix = "GAUNTLET"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".gauntlet.log"
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

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(programConfigKey, defaultProgram)
	viper.SetDefault(testCommandConfigKey, "")
	viper.SetDefault(tierConfigKey, defaultTier)
	viper.SetDefault(seedConfigKey, defaultSeed)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(mutationTimeoutKey, defaultMutationTimeout)
	viper.SetDefault(coverageTimeoutKey, defaultCoverageTimeout)
	viper.SetDefault(scheduleThresholdConfigKey, defaultScheduleThreshold)
	viper.SetDefault(retriesConfigKey, defaultRetries)
	viper.SetDefault(metricsFileConfigKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// subjectFromConfig describes the program under test rooted at projectDir.
func subjectFromConfig(projectDir string) m.Subject {
	return m.Subject{
		ProjectDir:  m.Path(projectDir),
		Program:     m.Path(viper.GetString(programConfigKey)),
		TestCommand: strings.Fields(viper.GetString(testCommandConfigKey)),
	}
}

func tierFromConfig() (m.Tier, error) {
	tier, err := m.ParseTier(viper.GetString(tierConfigKey))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", tierConfigKey, err)
	}

	return tier, nil
}

// runArgsFromConfig resolves the session arguments from flags, env and the
// config file.
func runArgsFromConfig(projectDir string) (domain.RunArgs, error) {
	subject := subjectFromConfig(projectDir)
	if len(subject.TestCommand) == 0 {
		return domain.RunArgs{}, fmt.Errorf("no test host command configured (set --%s or %s)", testCommandFlagName, testCommandConfigKey)
	}

	tier, err := tierFromConfig()
	if err != nil {
		return domain.RunArgs{}, err
	}

	parallel := viper.GetInt(runParallelConfigKey)
	if parallel < 1 {
		return domain.RunArgs{}, fmt.Errorf("invalid %s: must be at least 1, got %d", runParallelConfigKey, parallel)
	}

	retries := viper.GetInt(retriesConfigKey)
	if retries < 0 {
		return domain.RunArgs{}, fmt.Errorf("invalid %s: must not be negative, got %d", retriesConfigKey, retries)
	}

	return domain.RunArgs{
		Subject:           subject,
		Reports:           m.Path(viper.GetString(outputFlagName)),
		Parallel:          parallel,
		Tier:              tier,
		Seed:              viper.GetUint64(seedConfigKey),
		MutationTimeout:   viper.GetDuration(mutationTimeoutKey),
		CoverageTimeout:   viper.GetDuration(coverageTimeoutKey),
		ScheduleThreshold: viper.GetInt(scheduleThresholdConfigKey),
		Retries:           retries,
		MetricsFile:       m.Path(viper.GetString(metricsFileConfigKey)),
	}, nil
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
