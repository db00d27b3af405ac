package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/dto"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/i18n"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/middleware"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/service"
)

// StaffHandler provides HTTP handlers for staff order management routes.
type StaffHandler struct {
	orders service.OrderService
	repair service.SnapshotRepairService
	audit  service.AuditService
}

// NewStaffHandler creates a new StaffHandler instance.
func NewStaffHandler(orders service.OrderService, repair service.SnapshotRepairService, audit service.AuditService) *StaffHandler {
	return &StaffHandler{
		orders: orders,
		repair: repair,
		audit:  audit,
	}
}

// GetOrder handles GET /api/staff/orders/:id requests.
//
// @Summary      Get one order
// @Description  Returns an order with its frozen pricing metadata.
// @Tags         Staff
// @Produce      json
// @Param        id path string true "Order id"
// @Success      200 {object} dto.SuccessResponse "Order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed id"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/staff/orders/{id} [get]
func (h *StaffHandler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.orderError(builder, err)
		return
	}

	builder.SuccessOK(order)
}

// ListOrders handles GET /api/staff/orders requests.
//
// @Summary      List orders
// @Description  Returns a page of orders, most recent first. Optional phone filter matches normalized digit prefixes.
// @Tags         Staff
// @Produce      json
// @Param        phone query string false "Phone number or prefix"
// @Param        limit query int false "Page size (max 200)"
// @Param        skip query int false "Offset"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderListResponse} "Orders"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/staff/orders [get]
func (h *StaffHandler) ListOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, _ := strconv.Atoi(c.Query("limit"))
	skip, _ := strconv.Atoi(c.Query("skip"))

	list, err := h.orders.ListOrders(c.Request.Context(), service.OrderListFilter{
		Phone: c.Query("phone"),
		Limit: limit,
		Skip:  skip,
	})
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if list.Orders == nil {
		list.Orders = []model.Order{}
	}

	builder.SuccessOK(dto.OrderListResponse{Orders: list.Orders, Total: list.Total})
}

// EditOrder handles PATCH /api/staff/orders/:id requests.
//
// @Summary      Correct fields on an order
// @Description  Applies a staff correction to contact, deer, or selection fields. The frozen pricing fields cannot be edited and the edit never reprices the order.
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        id path string true "Order id"
// @Param        request body dto.EditOrderRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse "Updated order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - frozen or unknown field"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Security     BearerAuth
// @Router       /api/staff/orders/{id} [patch]
func (h *StaffHandler) EditOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.EditOrderRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	order, err := h.orders.EditOrder(c.Request.Context(), c.Param("id"), req.Fields, staffName(c))
	if err != nil {
		h.orderError(builder, err)
		return
	}

	builder.SuccessOK(order)
}

// QueryAudit handles GET /api/staff/audit requests.
//
// @Summary      Query the audit trail
// @Description  Returns audit entries filtered by order, action type, or time range, most recent first.
// @Tags         Staff
// @Produce      json
// @Param        order_id query string false "Order id"
// @Param        action_type query string false "Action type"
// @Param        limit query int false "Page size"
// @Param        skip query int false "Offset"
// @Success      200 {object} dto.SuccessResponse "Audit entries"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/staff/audit [get]
func (h *StaffHandler) QueryAudit(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, _ := strconv.Atoi(c.Query("limit"))
	skip, _ := strconv.Atoi(c.Query("skip"))
	opts := model.AuditQueryOptions{
		OrderID:    c.Query("order_id"),
		ActionType: c.Query("action_type"),
		Limit:      limit,
		Skip:       skip,
	}
	if raw := c.Query("start_time"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			opts.StartTime = &t
		}
	}
	if raw := c.Query("end_time"); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			opts.EndTime = &t
		}
	}

	entries, err := h.audit.QueryEntries(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if entries == nil {
		entries = []model.AuditEntry{}
	}

	builder.SuccessOK(entries)
}

// RepairSnapshots handles POST /api/staff/admin/snapshots/repair requests.
//
// @Summary      Backfill pricing snapshots on legacy orders
// @Description  Runs one repair pass: orders without a pricing snapshot get one computed from the pinned historical price table. Idempotent; a re-run finds nothing left to touch.
// @Tags         Staff
// @Accept       json
// @Produce     json
// @Param        request body dto.RepairRequest false "Batch size override"
// @Success      200 {object} dto.SuccessResponse "Repair report"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/staff/admin/snapshots/repair [post]
func (h *StaffHandler) RepairSnapshots(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.RepairRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
			return
		}
	}

	report, err := h.repair.Repair(c.Request.Context(), req.BatchSize)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(report)
}

// orderError maps order service errors to HTTP responses.
func (h *StaffHandler) orderError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidOrderID), errors.Is(err, service.ErrFieldNotEditable):
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrOrderNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// staffName returns the authenticated staff username from the request context.
func staffName(c *gin.Context) string {
	if claims := middleware.GetStaffClaims(c); claims != nil {
		return claims.Username
	}
	return ""
}
