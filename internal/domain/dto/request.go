// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "strings"

// CustomerPayload carries the contact fields of an order submission.
type CustomerPayload struct {
	Name          string `json:"name" binding:"required" example:"Jane Hunter"`
	Phone         string `json:"phone" binding:"required" example:"(555) 123-4567"`
	Address       string `json:"address,omitempty" example:"12 Ridge Rd"`
	City          string `json:"city,omitempty" example:"Millersburg"`
	State         string `json:"state,omitempty" example:"OH"`
	Zip           string `json:"zip,omitempty" example:"44654"`
	Communication string `json:"communication,omitempty" example:"call"`
}

// DeerPayload carries the per-animal fields of an order submission.
type DeerPayload struct {
	TagNumber        string `json:"tag_number" binding:"required" example:"A123456"`
	StateHarvestedIn string `json:"state_harvested_in,omitempty" example:"OH"`
	BuckOrDoe        string `json:"buck_or_doe,omitempty" example:"Buck"`
	DateHarvested    string `json:"date_harvested,omitempty" example:"2024-11-30"`
}

// CreateOrderRequest represents the JSON request body for the order
// submission endpoint.
//
// @Description Request to submit a completed processing order
type CreateOrderRequest struct {
	Customer CustomerPayload `json:"customer" binding:"required"`
	Deer     DeerPayload     `json:"deer" binding:"required"`
	// Selections maps catalog field keys to the values chosen in the wizard.
	Selections map[string]interface{} `json:"selections" binding:"required" swaggertype:"object"`
} // @name CreateOrderRequest

// QuoteRequest represents the JSON request body for the quote endpoint.
//
// @Description Request to price in-progress selections
type QuoteRequest struct {
	Selections map[string]interface{} `json:"selections" binding:"required" swaggertype:"object"`
} // @name QuoteRequest

// NavigateRequest represents the JSON request body for wizard navigation.
//
// @Description Request to move through the order wizard
type NavigateRequest struct {
	// Current is the step the client is on; empty asks for the start step.
	Current string `json:"current" example:"processing"`
	// Direction is "next" or "prev"; ignored when Current is empty.
	Direction  string                 `json:"direction" example:"next"`
	Selections map[string]interface{} `json:"selections" swaggertype:"object"`
} // @name NavigateRequest

// EditOrderRequest represents the JSON request body for staff order edits.
//
// @Description Request to correct fields on an existing order
type EditOrderRequest struct {
	// Fields maps dotted paths ("customer.phone", "selections.roast") to new
	// values. Pricing fields are frozen and rejected.
	Fields map[string]interface{} `json:"fields" binding:"required" swaggertype:"object"`
} // @name EditOrderRequest

// RepairRequest represents the JSON request body for the snapshot repair
// endpoint.
//
// @Description Request to backfill pricing snapshots onto legacy orders
type RepairRequest struct {
	// BatchSize bounds each pass over the collection; 0 uses the default.
	BatchSize int `json:"batch_size,omitempty" example:"100" minimum:"0"`
} // @name RepairRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *CreateOrderRequest) Validate() error {
	if strings.TrimSpace(r.Customer.Name) == "" {
		return &ValidationError{Field: "customer.name", Message: "name is required"}
	}
	if strings.TrimSpace(r.Customer.Phone) == "" {
		return &ValidationError{Field: "customer.phone", Message: "phone is required"}
	}
	if strings.TrimSpace(r.Deer.TagNumber) == "" {
		return &ValidationError{Field: "deer.tag_number", Message: "tag number is required"}
	}
	if len(r.Selections) == 0 {
		return &ValidationError{Field: "selections", Message: "selections are required"}
	}
	return nil
}

// Validate performs custom validation on the quote request.
func (r *QuoteRequest) Validate() error {
	if r.Selections == nil {
		return &ValidationError{Field: "selections", Message: "selections are required"}
	}
	return nil
}

// Validate performs custom validation on the navigate request.
func (r *NavigateRequest) Validate() error {
	if r.Current != "" && r.Direction != "next" && r.Direction != "prev" {
		return &ValidationError{Field: "direction", Message: "must be next or prev"}
	}
	return nil
}
