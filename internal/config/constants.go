package config

import "time"

// Environment variable names
const (
	EnvPort           = "PORT"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvLogDir         = "LOG_DIR"
	EnvEnvironment    = "ENVIRONMENT"
	EnvAPIKey         = "API_KEY"
	EnvTrustedProxies = "TRUSTED_PROXIES"
	EnvCatalogPath    = "CATALOG_PATH"
	EnvCacheSize      = "CACHE_SIZE"
	EnvCacheTTL       = "CACHE_TTL"
	EnvWorkers        = "WORKERS"
	EnvMaxBatch       = "MAX_BATCH"
	EnvRateLimitRPS   = "RATE_LIMIT_RPS"
	EnvRateLimitBurst = "RATE_LIMIT_BURST"
	EnvSchemaVersion  = "ENV_SCHEMA_VERSION"
)

// Defaults used when a variable is unset
const (
	DefaultPort           = "8080"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultCacheSize      = 256
	DefaultCacheTTL       = 10 * time.Minute
	DefaultWorkers        = 4
	DefaultMaxBatch       = 16
	DefaultRateLimitRPS   = 10.0
	DefaultRateLimitBurst = 20
)

// ExampleAPIKey is the placeholder shipped in .env.example
const ExampleAPIKey = "generate_with_openssl_rand_hex_32"
