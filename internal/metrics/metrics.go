package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	RateLimitedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitedRequests,
			Help: HelpTextRateLimitedRequests,
		},
		[]string{LabelPath},
	)
)

// Planner Metrics
var (
	PlannerRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlannerRunsTotal,
			Help: HelpTextPlannerRunsTotal,
		},
		[]string{LabelOperation},
	)

	PlannerRunFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlannerRunFailures,
			Help: HelpTextPlannerRunFailures,
		},
		[]string{LabelOperation, LabelReason},
	)

	PlannerRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNamePlannerRunDuration,
			Help:    HelpTextPlannerRunDuration,
			Buckets: RunLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	SimulatedDays = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSimulatedDays,
			Help:    HelpTextSimulatedDays,
			Buckets: DayBuckets,
		},
		[]string{LabelOperation},
	)

	CraftersAssigned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCraftersAssigned,
			Help:    HelpTextCraftersAssigned,
			Buckets: CrafterBuckets,
		},
	)

	GoldValued = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameGoldValued,
			Help:    HelpTextGoldValued,
			Buckets: GoldBuckets,
		},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheHits,
			Help: HelpTextCacheHits,
		},
		[]string{LabelOperation},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheMisses,
			Help: HelpTextCacheMisses,
		},
		[]string{LabelOperation},
	)

	SaveCodesNormalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaveCodesNormalized,
			Help: HelpTextSaveCodesNormalized,
		},
		[]string{LabelVersion},
	)
)
