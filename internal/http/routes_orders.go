package http

import (
	"github.com/gin-gonic/gin"
)

// OrderRoutes handles order intake and staff route registration.
type OrderRoutes struct {
	handler      *Handler
	staffHandler *StaffHandler
}

// NewOrderRoutes creates a new OrderRoutes instance.
func NewOrderRoutes(handler *Handler, staffHandler *StaffHandler) *OrderRoutes {
	return &OrderRoutes{
		handler:      handler,
		staffHandler: staffHandler,
	}
}

// RegisterPublicRoutes registers the customer-facing intake routes. Order
// submission is open; customers never log in.
func (r *OrderRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", r.handler.GetCatalog)
	rg.POST("/quote", r.handler.Quote)
	rg.POST("/wizard/navigate", r.handler.Navigate)
	rg.POST("/orders", r.handler.CreateOrder)
	rg.GET("/customers/lookup", r.handler.LookupCustomers)
	rg.GET("/customers/:phone/preference-sets", r.handler.PreferenceSets)
}

// RegisterProtectedRoutes registers the staff management routes on a group
// already guarded by JWT auth.
func (r *OrderRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	if r.staffHandler == nil {
		return
	}
	protected.GET("/orders", r.staffHandler.ListOrders)
	protected.GET("/orders/:id", r.staffHandler.GetOrder)
	protected.PATCH("/orders/:id", r.staffHandler.EditOrder)
	protected.GET("/audit", r.staffHandler.QueryAudit)
	protected.POST("/admin/snapshots/repair", r.staffHandler.RepairSnapshots)
}

// GetHandler returns the underlying intake handler.
func (r *OrderRoutes) GetHandler() *Handler {
	return r.handler
}
