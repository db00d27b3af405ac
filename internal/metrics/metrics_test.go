package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// counterDelta reads a counter before and after fn and returns the change.
// The collectors are process-global, so tests assert deltas rather than
// absolute values.
func counterDelta(c prometheus.Counter, fn func()) float64 {
	before := testutil.ToFloat64(c)
	fn()
	return testutil.ToFloat64(c) - before
}

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/orders", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/api/broken", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "counts a successful request", path: "/api/orders", status: http.StatusOK},
		{name: "counts a failed request", path: "/api/broken", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.path, strconv.Itoa(tt.status))
			delta := counterDelta(counter, func() {
				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
				assert.Equal(t, tt.status, w.Code)
			})
			assert.Equal(t, 1.0, delta)
		})
	}
}

func TestRecordOrderSubmission(t *testing.T) {
	plain := OrderSubmissionsTotal.WithLabelValues("2024.1", "false")
	evenly := OrderSubmissionsTotal.WithLabelValues("2024.1", "true")

	assert.Equal(t, 1.0, counterDelta(plain, func() { RecordOrderSubmission("2024.1", false) }))
	assert.Equal(t, 1.0, counterDelta(evenly, func() { RecordOrderSubmission("2024.1", true) }))
}

func TestRecordQuote(t *testing.T) {
	assert.Equal(t, 2.0, counterDelta(QuotesTotal, func() {
		RecordQuote()
		RecordQuote()
	}))
}

func TestRecordPreferenceLookup(t *testing.T) {
	for _, result := range []string{"hit", "miss", "degraded"} {
		counter := PreferenceLookupsTotal.WithLabelValues(result)
		assert.Equal(t, 1.0, counterDelta(counter, func() { RecordPreferenceLookup(result) }), result)
	}
}

func TestRecordSnapshotRepair(t *testing.T) {
	repaired := SnapshotRepairsTotal.WithLabelValues("repaired")
	failed := SnapshotRepairsTotal.WithLabelValues("failed")

	assert.Equal(t, 3.0, counterDelta(repaired, func() { RecordSnapshotRepair(3, 1) }))
	assert.Equal(t, 1.0, counterDelta(failed, func() { RecordSnapshotRepair(0, 1) }))
	assert.Equal(t, 0.0, counterDelta(repaired, func() { RecordSnapshotRepair(0, 0) }))
}

func TestRecordCacheOperation(t *testing.T) {
	hits := CacheOperationsTotal.WithLabelValues("get", "hit")

	assert.Equal(t, 1.0, counterDelta(hits, func() {
		RecordCacheOperation("get", "hit")
		RecordCacheOperation("get", "miss")
		RecordCacheOperation("set", "success")
	}))
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(50, 100)
	assert.Equal(t, 50.0, testutil.ToFloat64(CacheSize))
	assert.Equal(t, 100.0, testutil.ToFloat64(CacheCapacity))

	UpdateCacheMetrics(75, 100)
	assert.Equal(t, 75.0, testutil.ToFloat64(CacheSize))
}
