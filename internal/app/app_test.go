//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/theroadeldorado/duma-deer-processing-sub000/config"
)

func TestInitializeApp(t *testing.T) {
	t.Run("creates router without database", func(t *testing.T) {
		cfg := config.Config{
			Server: config.ServerConfig{
				Port:       "8080",
				RateLimit:  100,
				RateWindow: time.Minute,
			},
			Cache: config.CacheConfig{
				Size: 1000,
				TTL:  5 * time.Minute,
			},
			Database: config.DatabaseConfig{
				Enabled: false,
			},
		}

		router := InitializeApp(cfg)
		defer Shutdown()

		assert.NotNil(t, router)

		// Liveness does not depend on the database
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		// Catalog is served from memory
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rate limiting disabled when limit is zero", func(t *testing.T) {
		cfg := config.Config{
			Server: config.ServerConfig{
				Port:      "8080",
				RateLimit: 0,
			},
			Database: config.DatabaseConfig{
				Enabled: false,
			},
		}

		router := InitializeApp(cfg)
		defer Shutdown()

		assert.NotNil(t, router)
	})
}

func TestInitializeDatabase_Disabled(t *testing.T) {
	components := InitializeDatabase(config.DatabaseConfig{Enabled: false})
	assert.Nil(t, components)
}
