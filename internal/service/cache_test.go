package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
)

func sets(name string) []model.PreferenceSet {
	return []model.PreferenceSet{{LastOrderID: name, OrderCount: 1}}
}

func TestTTLCache_GetSet(t *testing.T) {
	c := newTTLCache(4, time.Minute)
	defer c.Stop()

	_, ok := c.Get("3305550199")
	assert.False(t, ok)

	c.Set("3305550199", sets("a"))
	got, ok := c.Get("3305550199")
	require.True(t, ok)
	assert.Equal(t, sets("a"), got)

	// Overwrite keeps a single entry
	c.Set("3305550199", sets("b"))
	got, _ = c.Get("3305550199")
	assert.Equal(t, sets("b"), got)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_Expiration(t *testing.T) {
	c := newTTLCache(4, 20*time.Millisecond)
	defer c.Stop()

	c.Set("key", sets("a"))
	_, ok := c.Get("key")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok = c.Get("key")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Metrics().Size)
}

func TestTTLCache_LRUEviction(t *testing.T) {
	c := newTTLCache(2, time.Minute)
	defer c.Stop()

	c.Set("a", sets("a"))
	c.Set("b", sets("b"))

	// Touch "a" so "b" is the least recently used
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", sets("c"))

	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)

	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTLCache_Invalidate(t *testing.T) {
	c := newTTLCache(4, time.Minute)
	defer c.Stop()

	c.Set("key", sets("a"))
	c.Invalidate("key")

	_, ok := c.Get("key")
	assert.False(t, ok)

	// Invalidating an absent key is a no-op
	c.Invalidate("missing")
}

func TestTTLCache_Clear(t *testing.T) {
	c := newTTLCache(4, time.Minute)
	defer c.Stop()

	c.Set("a", sets("a"))
	c.Set("b", sets("b"))
	c.Get("a")

	c.Clear()

	m := c.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Equal(t, int64(0), m.Hits)

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestTTLCache_Metrics(t *testing.T) {
	c := newTTLCache(4, time.Minute)
	defer c.Stop()

	c.Set("a", sets("a"))
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	m := c.Metrics()
	assert.Equal(t, int64(2), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 4, m.Capacity)
}
