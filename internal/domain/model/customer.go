package model

import "time"

// CustomerSummary is one returning customer found by phone lookup. Orders
// sharing a normalized phone number collapse into a single summary; the
// contact fields come from the customer's most recent order.
type CustomerSummary struct {
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	PhoneDigits string    `json:"-"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Zip         string    `json:"zip,omitempty"`
	OrderCount  int       `json:"order_count"`
	LastOrderAt time.Time `json:"last_order_at"`
}

// PreferenceSet is a distinct way a customer has had deer processed before.
// Two past orders with the same preference fingerprint collapse into one
// set; the selections shown are from the most recent of them.
type PreferenceSet struct {
	Fingerprint   string                 `json:"-"`
	Selections    map[string]interface{} `json:"selections"`
	LastOrderID   string                 `json:"last_order_id"`
	LastOrderedAt time.Time              `json:"last_ordered_at"`
	OrderCount    int                    `json:"order_count"`
}
