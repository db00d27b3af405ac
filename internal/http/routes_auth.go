package http

import (
	"github.com/gin-gonic/gin"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/middleware"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/service"
)

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler     *AuthHandler
	authService service.AuthService
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(authService service.AuthService, auditService service.AuditService) *AuthRoutes {
	return &AuthRoutes{
		handler:     NewAuthHandler(authService, auditService),
		authService: authService,
	}
}

// RegisterPublicRoutes registers the login route. Login itself needs no token.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", r.handler.Login)
	}
}

// GetProtectedGroup returns a router group with JWT auth middleware applied,
// for the staff routes.
func (r *AuthRoutes) GetProtectedGroup(rg *gin.RouterGroup, cfg *RouterConfig) *gin.RouterGroup {
	protected := rg.Group("/staff")
	protected.Use(middleware.JWTAuth(r.authService))

	if cfg.RateLimit > 0 {
		staffLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		protected.Use(staffLimiter.UserRateLimit())
	}

	return protected
}
