package dto

import (
	"net/http"
	"time"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"customer.phone: phone is required"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// QuoteResponse is the priced view of in-progress selections.
// @Description Price quote for the current wizard selections
type QuoteResponse struct {
	TotalPrice model.Money            `json:"total_price" example:"260"`
	ItemPrices map[string]model.Money `json:"item_prices"`
	// HasEvenly is true when the total contains provisional per-lot
	// estimates for "Evenly" specialty selections.
	HasEvenly      bool   `json:"has_evenly" example:"false"`
	CatalogVersion string `json:"catalog_version" example:"2024.1"`
} // @name QuoteResponse

// NavigationResponse describes where the wizard lands after a move.
// @Description Wizard navigation result
type NavigationResponse struct {
	Step     string   `json:"step" example:"hind-legs"`
	Title    string   `json:"title" example:"Hind Legs"`
	Fields   []string `json:"fields,omitempty"`
	Terminal bool     `json:"terminal" example:"false"`
	// Errors lists required-field failures that blocked a forward move.
	Errors []FieldErrorResponse `json:"errors,omitempty"`
	// Selections is the effective selection map after decision-field resets.
	Selections map[string]interface{} `json:"selections" swaggertype:"object"`
} // @name NavigationResponse

// FieldErrorResponse is one required-field validation failure.
type FieldErrorResponse struct {
	Field   string `json:"field" example:"skinnedOrBoneless"`
	Message string `json:"message" example:"Processing Type is required"`
} // @name FieldErrorResponse

// OrderListResponse is a page of orders with its total count.
// @Description Page of orders, most recent first
type OrderListResponse struct {
	Orders []model.Order `json:"orders"`
	Total  int64         `json:"total" example:"42"`
} // @name OrderListResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
