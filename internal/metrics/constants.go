package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Planner metric names
const (
	MetricNamePlannerRunsTotal    = "planner_runs_total"
	MetricNamePlannerRunFailures  = "planner_run_failures_total"
	MetricNamePlannerRunDuration  = "planner_run_duration_seconds"
	MetricNameSimulatedDays       = "planner_simulated_days"
	MetricNameCraftersAssigned    = "planner_crafters_assigned"
	MetricNameGoldValued          = "planner_gold_valued"
	MetricNameCacheHits           = "planner_cache_hits_total"
	MetricNameCacheMisses         = "planner_cache_misses_total"
	MetricNameSaveCodesNormalized = "planner_save_codes_normalized_total"
	MetricNameRateLimitedRequests = "http_rate_limited_requests_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Planner metric help text
const (
	HelpTextPlannerRunsTotal    = "Total number of planner runs by operation"
	HelpTextPlannerRunFailures  = "Total number of failed planner runs by operation and error kind"
	HelpTextPlannerRunDuration  = "Planner run latency in seconds"
	HelpTextSimulatedDays       = "Days walked per harvest or production run"
	HelpTextCraftersAssigned    = "Crafters assigned per production run"
	HelpTextGoldValued          = "Total gold per valued run"
	HelpTextCacheHits           = "Planner result cache hits by operation"
	HelpTextCacheMisses         = "Planner result cache misses by operation"
	HelpTextSaveCodesNormalized = "Save codes normalized by source version"
	HelpTextRateLimitedRequests = "Requests rejected by the rate limiter"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelReason    = "reason"
	LabelVersion   = "version"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RunLatencyBuckets covers planner runs from 100µs to 5s
var RunLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5}

// DayBuckets covers run lengths up to the 1000 day ceiling
var DayBuckets = []float64{7, 14, 28, 56, 112, 224, 448, 1000}

// CrafterBuckets covers roster sizes up to the 30 crafter cap
var CrafterBuckets = []float64{0, 1, 2, 5, 10, 20, 30}

// GoldBuckets spans small gardens to large production runs
var GoldBuckets = []float64{100, 1000, 10000, 100000, 1000000}
