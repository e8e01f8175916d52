package planner

import "time"

// Operation names, used for cache keys, metrics and logs
const (
	OpSimulate  = "simulate"
	OpProduce   = "produce"
	OpValue     = "value"
	OpNormalize = "normalize"
	OpCompare   = "compare"
)

// Defaults for Config
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
	DefaultWorkers   = 4
	DefaultMaxBatch  = 16
)

// CacheSchemaVersion is part of every cache key. Bump it when a report
// type changes shape.
const CacheSchemaVersion = "1"

// Failure reasons reported to metrics
const (
	ReasonInvalidInput  = "invalid_input"
	ReasonSaveFormat    = "invalid_save_format"
	ReasonPlacement     = "invalid_placement"
	ReasonUnknownCrop   = "unknown_crop"
	ReasonUnknownFert   = "unknown_fertiliser"
	ReasonCorruptState  = "corrupt_state"
	ReasonDivergence    = "simulation_divergence"
	ReasonCapReached    = "crafter_cap_reached"
	ReasonCancelled     = "cancelled"
	ReasonInternalError = "internal"
)

// Log messages
const (
	LogMsgRunFinished   = "Planner run finished"
	LogMsgRunFailed     = "Planner run failed"
	LogMsgCacheHit      = "Planner cache hit"
	LogMsgCompareFailed = "Compare entry failed"
	LogMsgShuttingDown  = "Shutting down planner service"
)

// Error format strings
const (
	ErrFmtInvalidRequest = "%w: %w"
	ErrFmtEmptyBatch     = "%w: compare needs at least one layout"
	ErrFmtBatchTooLarge  = "%w: compare accepts at most %d layouts, got %d"
	ErrFmtOptionCrop     = "%w: option %d: %w"
	ErrFmtCompareEntry   = "layout %d: %w"
)
