// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/theroadeldorado/duma-deer-processing-sub000/config"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/http"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/middleware"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services
	serviceComponents := InitializeServices(cfg, dbComponents)

	// Audit writes go through the buffered worker pool
	if serviceComponents.Audit != nil {
		middleware.InitAsyncLogger(serviceComponents.Audit, middleware.DefaultAsyncLoggerConfig())
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(
		routerComponents.Handler,
		routerComponents.StaffHandler,
		routerComponents.HealthHandler,
		routerComponents.Config,
	)
}

// Shutdown releases global resources held by the application.
func Shutdown() {
	middleware.StopAsyncLogger()
}
