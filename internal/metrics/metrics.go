// Package metrics defines Prometheus metrics for target-inventory.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tgt"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Target API metrics.
var (
	TargetAPICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "target_api_calls_total",
		Help:      "Total Target API calls by host and response status.",
	}, []string{"host", "status"})

	TargetAPICallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "target_api_call_duration_seconds",
		Help:      "Duration of Target API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"host"})

	TargetDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "target_daily_usage",
		Help:      "Current daily Target API call count within the rolling 24-hour window.",
	})

	TargetDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "target_daily_limit_hits_total",
		Help:      "Total number of times the daily Target API limit was reached.",
	})
)

// Location registry metrics.
var (
	RegistryFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registry_fetches_total",
		Help:      "Total location registry fetches by result.",
	}, []string{"result"})

	RegistryLocations = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "registry_locations",
		Help:      "Number of locations in the current registry snapshot.",
	})
)

// Resolution metrics.
var (
	ResolutionMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolution_misses_total",
		Help:      "Total lookups that resolved to nothing, by kind.",
	}, []string{"kind"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the liveness probe is passing (1 = up).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the readiness probe is passing (1 = ready).",
	})
)

// Watch metrics.
var (
	WatchChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "watch_checks_total",
		Help:      "Total watch checks by result.",
	}, []string{"result"})

	WatchCycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "watch_cycle_duration_seconds",
		Help:      "Duration of watch check cycles in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Alert metrics.
var (
	AlertsFiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alerts_fired_total",
		Help:      "Total number of stock alerts fired.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of notification webhook calls.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5},
	})
)
