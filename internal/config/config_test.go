package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars unsets every variable Load reads for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvPort, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvAPIKey, EnvTrustedProxies,
		EnvCatalogPath, EnvCacheSize, EnvCacheTTL, EnvWorkers, EnvMaxBatch,
		EnvRateLimitRPS, EnvRateLimitBurst, EnvSchemaVersion,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Empty(t, cfg.APIKey)
		assert.Empty(t, cfg.TrustedProxies)
		assert.Empty(t, cfg.CatalogPath)
		assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
		assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
		assert.Equal(t, DefaultWorkers, cfg.Workers)
		assert.Equal(t, DefaultMaxBatch, cfg.MaxBatch)
		assert.InDelta(t, DefaultRateLimitRPS, cfg.RateLimitRPS, 1e-9)
		assert.Equal(t, DefaultRateLimitBurst, cfg.RateLimitBurst)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvAPIKey, "custom-api-key")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "production")
		t.Setenv(EnvTrustedProxies, "10.0.0.1, 10.0.0.2,")
		t.Setenv(EnvCatalogPath, "configs/catalog.json")
		t.Setenv(EnvCacheSize, "1024")
		t.Setenv(EnvCacheTTL, "1h")
		t.Setenv(EnvWorkers, "8")
		t.Setenv(EnvMaxBatch, "32")
		t.Setenv(EnvRateLimitRPS, "2.5")
		t.Setenv(EnvRateLimitBurst, "5")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, "configs/catalog.json", cfg.CatalogPath)
		assert.Equal(t, 1024, cfg.CacheSize)
		assert.Equal(t, time.Hour, cfg.CacheTTL)
		assert.Equal(t, 8, cfg.Workers)
		assert.Equal(t, 32, cfg.MaxBatch)
		assert.InDelta(t, 2.5, cfg.RateLimitRPS, 1e-9)
		assert.Equal(t, 5, cfg.RateLimitBurst)
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvPort, "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("rejects bad planner limits", func(t *testing.T) {
		testCases := []struct {
			name  string
			key   string
			value string
			want  string
		}{
			{"zero workers", EnvWorkers, "0", "WORKERS"},
			{"zero batch", EnvMaxBatch, "0", "MAX_BATCH"},
			{"negative rate", EnvRateLimitRPS, "-1", "RATE_LIMIT_RPS"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(tc.key, tc.value)

				cfg, err := Load()

				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tc.want)
			})
		}
	})

	t.Run("handles PORT edge cases", func(t *testing.T) {
		testCases := []struct {
			name        string
			portValue   string
			shouldError bool
		}{
			{"zero port", "0", false},
			{"max valid port", "65535", false},
			{"above max port", "65536", false}, // Loads but invalid for use
			{"float port", "8080.5", true},
			{"empty string", "", true},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(EnvPort, tc.portValue)

				_, err := Load()

				if tc.shouldError {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}
