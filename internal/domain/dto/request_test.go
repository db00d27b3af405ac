package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateOrderRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Customer: CustomerPayload{
			Name:  "Jane Hunter",
			Phone: "(555) 123-4567",
		},
		Deer: DeerPayload{
			TagNumber: "A123456",
		},
		Selections: map[string]interface{}{
			"skinnedOrBoneless": "Skinned, Cut, Ground, Vacuum packed",
		},
	}
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateOrderRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(r *CreateOrderRequest) {},
		},
		{
			name:      "missing name",
			mutate:    func(r *CreateOrderRequest) { r.Customer.Name = "" },
			wantField: "customer.name",
		},
		{
			name:      "whitespace name",
			mutate:    func(r *CreateOrderRequest) { r.Customer.Name = "   " },
			wantField: "customer.name",
		},
		{
			name:      "missing phone",
			mutate:    func(r *CreateOrderRequest) { r.Customer.Phone = "" },
			wantField: "customer.phone",
		},
		{
			name:      "missing tag number",
			mutate:    func(r *CreateOrderRequest) { r.Deer.TagNumber = " " },
			wantField: "deer.tag_number",
		},
		{
			name:      "empty selections",
			mutate:    func(r *CreateOrderRequest) { r.Selections = map[string]interface{}{} },
			wantField: "selections",
		},
		{
			name:      "nil selections",
			mutate:    func(r *CreateOrderRequest) { r.Selections = nil },
			wantField: "selections",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateOrderRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestQuoteRequest_Validate(t *testing.T) {
	valid := QuoteRequest{Selections: map[string]interface{}{"cape": "true"}}
	assert.NoError(t, valid.Validate())

	// An empty map is a legitimate zero-price quote
	empty := QuoteRequest{Selections: map[string]interface{}{}}
	assert.NoError(t, empty.Validate())

	missing := QuoteRequest{}
	assert.Error(t, missing.Validate())
}

func TestNavigateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     NavigateRequest
		wantErr bool
	}{
		{
			name: "next",
			req:  NavigateRequest{Current: "processing", Direction: "next"},
		},
		{
			name: "prev",
			req:  NavigateRequest{Current: "summary", Direction: "prev"},
		},
		{
			name: "empty current asks for the start step",
			req:  NavigateRequest{},
		},
		{
			name: "direction ignored when current empty",
			req:  NavigateRequest{Direction: "sideways"},
		},
		{
			name:    "bad direction with current",
			req:     NavigateRequest{Current: "processing", Direction: "sideways"},
			wantErr: true,
		},
		{
			name:    "missing direction with current",
			req:     NavigateRequest{Current: "processing"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Username: "staff", Password: "password123"}
	assert.NoError(t, valid.Validate())

	missing := LoginRequest{Password: "password123"}
	err := missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username")

	short := LoginRequest{Username: "staff", Password: "abc"}
	err = short.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 6 characters")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "customer.phone", Message: "phone is required"}
	assert.Equal(t, "customer.phone: phone is required", err.Error())
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusForbidden, ErrCodeForbidden},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrCodeFromStatus(tt.status))
	}
}
