package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewShardedRateLimiter(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{name: "default shards when zero", numShards: 0, wantShards: defaultNumShards},
		{name: "default shards when negative", numShards: -1, wantShards: defaultNumShards},
		{name: "custom shard count", numShards: 8, wantShards: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(10, time.Minute, tt.numShards)
			defer rl.Stop()

			assert.Equal(t, tt.wantShards, rl.numShards)
			assert.Len(t, rl.shards, tt.wantShards)
			assert.Equal(t, 10, rl.rate)
			assert.Equal(t, time.Minute, rl.window)
		})
	}
}

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(10, time.Minute)
	defer rl.Stop()

	assert.Equal(t, defaultNumShards, rl.numShards)
}

func TestShardedRateLimiter_CheckRateLimit(t *testing.T) {
	tests := []struct {
		name        string
		rate        int
		requests    int
		wantAllowed int
	}{
		{name: "under the limit", rate: 5, requests: 3, wantAllowed: 3},
		{name: "exactly at the limit", rate: 5, requests: 5, wantAllowed: 5},
		{name: "over the limit", rate: 5, requests: 8, wantAllowed: 5},
		{name: "rate of one", rate: 1, requests: 3, wantAllowed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(tt.rate, time.Minute, 4)
			defer rl.Stop()

			allowed := 0
			for i := 0; i < tt.requests; i++ {
				if ok, _ := rl.checkRateLimit("kiosk-lobby"); ok {
					allowed++
				}
			}

			assert.Equal(t, tt.wantAllowed, allowed)
		})
	}
}

func TestShardedRateLimiter_RemainingCountsDown(t *testing.T) {
	rl := NewShardedRateLimiter(3, time.Minute, 4)
	defer rl.Stop()

	for _, want := range []int{2, 1, 0} {
		_, remaining := rl.checkRateLimit("kiosk-lobby")
		assert.Equal(t, want, remaining)
	}

	allowed, remaining := rl.checkRateLimit("kiosk-lobby")
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestShardedRateLimiter_QuotasAreIndependent(t *testing.T) {
	rl := NewShardedRateLimiter(3, time.Minute, 4)
	defer rl.Stop()

	for _, id := range []string{"kiosk-lobby", "kiosk-dock", "staff:frontdesk"} {
		for i := 0; i < 3; i++ {
			allowed, _ := rl.checkRateLimit(id)
			assert.True(t, allowed, "request %d for %s", i+1, id)
		}
		allowed, _ := rl.checkRateLimit(id)
		assert.False(t, allowed, "over-quota request for %s", id)
	}
}

func TestShardedRateLimiter_RateLimit_Middleware(t *testing.T) {
	rl := NewShardedRateLimiter(3, time.Minute, 4)
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.RateLimit())
	router.GET("/api/orders", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	var last *httptest.ResponseRecorder
	okCount, blockedCount := 0, 0
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)

		switch last.Code {
		case http.StatusOK:
			okCount++
		case http.StatusTooManyRequests:
			blockedCount++
		}
	}

	assert.Equal(t, 3, okCount)
	assert.Equal(t, 2, blockedCount)

	assert.Equal(t, "3", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, time.Minute.String(), last.Header().Get("Retry-After"))
	assert.Contains(t, last.Body.String(), dto.ErrCodeRateLimit)
}

func TestShardedRateLimiter_UserRateLimit_Middleware(t *testing.T) {
	rl := NewShardedRateLimiter(3, time.Minute, 4)
	defer rl.Stop()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(staffClaimsKey, &dto.StaffClaims{Username: "frontdesk", Role: "staff"})
		c.Next()
	})
	router.Use(rl.UserRateLimit())
	router.GET("/api/staff/orders", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	okCount, blockedCount := 0, 0
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/staff/orders", nil))

		switch w.Code {
		case http.StatusOK:
			okCount++
		case http.StatusTooManyRequests:
			blockedCount++
		}
	}

	assert.Equal(t, 3, okCount)
	assert.Equal(t, 2, blockedCount)
}

func TestShardedRateLimiter_GetUserIdentifier(t *testing.T) {
	rl := NewShardedRateLimiter(10, time.Minute, 4)
	defer rl.Stop()

	t.Run("staff claims take priority", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set(staffClaimsKey, &dto.StaffClaims{Username: "frontdesk", Role: "staff"})

		assert.Equal(t, "staff:frontdesk", rl.getUserIdentifier(c))
	})

	t.Run("unauthenticated falls back to client IP", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.RemoteAddr = "192.168.1.1:12345"

		assert.Equal(t, "ip:192.168.1.1", rl.getUserIdentifier(c))
	})
}

func TestShardedRateLimiter_Stats(t *testing.T) {
	rl := NewShardedRateLimiter(10, time.Minute, 4)
	defer rl.Stop()

	for _, id := range []string{"kiosk-1", "kiosk-2", "kiosk-3", "staff:a", "staff:b"} {
		rl.checkRateLimit(id)
	}

	total, perShard := rl.Stats()
	assert.Equal(t, 5, total)
	assert.Len(t, perShard, 4)

	sum := 0
	for _, count := range perShard {
		sum += count
	}
	assert.Equal(t, total, sum)
}

func TestShardedRateLimiter_WindowReset(t *testing.T) {
	rl := NewShardedRateLimiter(2, 50*time.Millisecond, 4)
	defer rl.Stop()

	rl.checkRateLimit("kiosk-lobby")
	rl.checkRateLimit("kiosk-lobby")
	allowed, _ := rl.checkRateLimit("kiosk-lobby")
	assert.False(t, allowed)

	time.Sleep(60 * time.Millisecond)

	allowed, remaining := rl.checkRateLimit("kiosk-lobby")
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)
}
