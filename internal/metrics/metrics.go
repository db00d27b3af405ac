// Package metrics provides Prometheus metrics collection for the order intake service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// OrderSubmissionsTotal tracks order submissions by catalog version and
	// whether the total contains provisional "Evenly" estimates.
	OrderSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_submissions_total",
			Help: "Total number of submitted orders",
		},
		[]string{"catalog_version", "has_evenly"},
	)

	// QuotesTotal tracks quote computations.
	QuotesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quotes_total",
			Help: "Total number of price quotes computed",
		},
	)

	// PreferenceLookupsTotal tracks preference history lookups by outcome.
	// "degraded" means storage was unavailable and an empty history was served.
	PreferenceLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preference_lookups_total",
			Help: "Total number of customer preference lookups",
		},
		[]string{"result"},
	)

	// SnapshotRepairsTotal tracks repaired and failed orders across repair runs.
	SnapshotRepairsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_repairs_total",
			Help: "Total number of legacy orders touched by snapshot repair",
		},
		[]string{"result"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordOrderSubmission records metrics for a submitted order.
func RecordOrderSubmission(catalogVersion string, hasEvenly bool) {
	OrderSubmissionsTotal.WithLabelValues(catalogVersion, strconv.FormatBool(hasEvenly)).Inc()
}

// RecordQuote records one quote computation.
func RecordQuote() {
	QuotesTotal.Inc()
}

// RecordPreferenceLookup records a preference history lookup outcome.
func RecordPreferenceLookup(result string) {
	PreferenceLookupsTotal.WithLabelValues(result).Inc()
}

// RecordSnapshotRepair records the outcome counts of a repair run.
func RecordSnapshotRepair(repaired, failed int) {
	SnapshotRepairsTotal.WithLabelValues("repaired").Add(float64(repaired))
	SnapshotRepairsTotal.WithLabelValues("failed").Add(float64(failed))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
