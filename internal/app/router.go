// Package app provides router configuration.
package app

import (
	"context"

	"github.com/theroadeldorado/duma-deer-processing-sub000/config"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	StaffHandler  *http.StaffHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(
		services.Catalog,
		services.Orders,
		services.Quotes,
		services.Navigator,
		services.Customers,
	)
	staffHandler := http.NewStaffHandler(services.Orders, services.Repair, services.Audit)
	healthHandler := http.NewHealthHandler()

	// Readiness covers the Mongo connection and both breakers.
	if dbComponents != nil {
		if dbComponents.DB != nil {
			db := dbComponents.DB
			healthHandler.RegisterChecker("database", http.CheckFunc(func() error {
				return db.HealthCheck(context.Background())
			}))
		}
		if dbComponents.OrdersCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_orders", dbComponents.OrdersCircuitBreaker)
		}
		if dbComponents.AuditCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_audit", dbComponents.AuditCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		AuditService:      services.Audit,
		AuthService:       services.Auth,
	}

	return &RouterComponents{
		Handler:       handler,
		StaffHandler:  staffHandler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
