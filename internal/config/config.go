package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	// LogDir receives rotated session logs in addition to stdout when set
	LogDir string

	// APIKey guards /api/v1 when set. An empty key leaves the API open.
	APIKey         string
	TrustedProxies []string

	// CatalogPath overrides the embedded crop catalog
	CatalogPath string

	// Planner service
	CacheSize int
	CacheTTL  time.Duration
	Workers   int
	MaxBatch  int

	// Per-client rate limit on the planner endpoints
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		LogDir:         getEnv(EnvLogDir, ""),
		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),
		CatalogPath:    getEnv(EnvCatalogPath, ""),
		CacheSize:      getEnvAsInt(EnvCacheSize, DefaultCacheSize),
		CacheTTL:       getEnvAsDuration(EnvCacheTTL, DefaultCacheTTL),
		Workers:        getEnvAsInt(EnvWorkers, DefaultWorkers),
		MaxBatch:       getEnvAsInt(EnvMaxBatch, DefaultMaxBatch),
		RateLimitRPS:   getEnvAsFloat(EnvRateLimitRPS, DefaultRateLimitRPS),
		RateLimitBurst: getEnvAsInt(EnvRateLimitBurst, DefaultRateLimitBurst),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.Workers < 1 {
		return nil, fmt.Errorf("invalid WORKERS value %d: must be at least 1", cfg.Workers)
	}
	if cfg.MaxBatch < 1 {
		return nil, fmt.Errorf("invalid MAX_BATCH value %d: must be at least 1", cfg.MaxBatch)
	}
	if cfg.RateLimitRPS < 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS value %g: must not be negative", cfg.RateLimitRPS)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
