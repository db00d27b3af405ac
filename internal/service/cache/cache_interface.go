package cache

import "github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"

// Cache defines the interface for preference-set cache operations. Keys are
// normalized phone digits.
type Cache interface {
	Get(key string) ([]model.PreferenceSet, bool)
	Set(key string, value []model.PreferenceSet)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
