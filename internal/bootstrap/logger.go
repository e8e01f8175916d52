package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/GardenPlanner_Go/internal/config"
	"github.com/osse101/GardenPlanner_Go/internal/logger"
)

// SetupLogger initializes the application logger. Output always goes to
// stdout; when cfg.LogDir is set it is also written to a timestamped session
// file and older session files beyond the retention count are removed.
// The returned file is nil without a log directory, otherwise the caller
// must close it.
func SetupLogger(cfg *config.Config, serviceName, version string) (*os.File, error) {
	addSource := cfg.Environment == logger.EnvironmentDev || cfg.Environment == "development"
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, serviceName, version, cfg.Environment, addSource)

	var (
		w       io.Writer = os.Stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, f)
	}

	log := logger.InitLoggerWithWriter(logCfg, w)

	log.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "format", cfg.LogFormat)
	log.Info(LogMsgStartingPlanner,
		"environment", cfg.Environment,
		"version", version)

	log.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"catalog_path", cfg.CatalogPath,
		"workers", cfg.Workers,
		"max_batch", cfg.MaxBatch,
		"cache_size", cfg.CacheSize,
		"cache_ttl", cfg.CacheTTL,
		"rate_limit_rps", cfg.RateLimitRPS)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
