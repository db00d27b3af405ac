package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup registers routes the kiosk reaches without credentials:
// the catalog, quotes, wizard navigation, order submission, and customer
// lookup.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup registers routes that sit behind the staff JWT guard:
// order management, the audit trail, and snapshot repair.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}
