package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerInfo holds the contact fields captured on the first wizard step.
// These identify the customer and never participate in pricing or
// preference fingerprinting.
type CustomerInfo struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
	// PhoneDigits is the normalized form indexed for prefix lookup. Set on
	// write from Phone; not part of the API payload.
	PhoneDigits   string `bson:"phone_digits,omitempty" json:"-"`
	Address       string `bson:"address" json:"address"`
	City          string `bson:"city" json:"city"`
	State         string `bson:"state" json:"state"`
	Zip           string `bson:"zip" json:"zip"`
	Communication string `bson:"communication,omitempty" json:"communication,omitempty"`
}

// DeerInfo holds the per-animal fields. They vary between two otherwise
// identical orders, so they are excluded from preference fingerprints.
type DeerInfo struct {
	TagNumber        string `bson:"tag_number" json:"tag_number"`
	StateHarvestedIn string `bson:"state_harvested_in,omitempty" json:"state_harvested_in,omitempty"`
	BuckOrDoe        string `bson:"buck_or_doe,omitempty" json:"buck_or_doe,omitempty"`
	DateHarvested    string `bson:"date_harvested,omitempty" json:"date_harvested,omitempty"`
}

// PriceSnapshot is the frozen price table captured when an order is created.
// One versioned record per order; later catalog changes never alter it.
type PriceSnapshot struct {
	// CatalogVersion identifies the catalog the prices were taken from.
	CatalogVersion string `bson:"catalog_version" json:"catalog_version"`
	// Prices maps flattened option keys ("field.optionValue" or a specialty
	// suboption key) to the unit price in effect at creation time.
	Prices map[string]Money `bson:"prices" json:"prices"`
}

// Order is one customer order: the field selections accumulated by the
// wizard plus the pricing metadata frozen at creation time.
//
// HistoricalItemPrices and PricingSnapshot are write-once. They are set in
// the same insert that creates the order and are only ever rewritten by the
// one-time snapshot repair job for legacy records.
type Order struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Customer CustomerInfo       `bson:"customer" json:"customer"`
	Deer     DeerInfo           `bson:"deer" json:"deer"`

	// Selections maps catalog field keys (and specialty suboption keys) to
	// raw selection values. Values keep the legacy scalar encoding the store
	// has always used: strings, numbers, booleans, or absent/empty for "not
	// selected".
	Selections map[string]interface{} `bson:"selections" json:"selections"`

	// TotalPrice is the total charged at creation time.
	TotalPrice Money `bson:"total_price_cents" json:"total_price"`
	// HasEvenly is true when any per-5-unit selection used the "Evenly"
	// sentinel, meaning the total includes provisional per-lot estimates.
	HasEvenly bool `bson:"has_evenly" json:"has_evenly"`

	// HistoricalItemPrices freezes the unit price charged per selected field.
	HistoricalItemPrices map[string]Money `bson:"historical_item_prices,omitempty" json:"historical_item_prices,omitempty"`
	// PricingSnapshot freezes the full price table for audit and repair.
	PricingSnapshot *PriceSnapshot `bson:"pricing_snapshot,omitempty" json:"pricing_snapshot,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Selection returns the raw value stored for a field key, or nil.
func (o *Order) Selection(key string) interface{} {
	if o.Selections == nil {
		return nil
	}
	return o.Selections[key]
}

// HistoricalPrice returns the frozen unit price for a field key, if one was
// captured.
func (o *Order) HistoricalPrice(key string) (Money, bool) {
	if o.HistoricalItemPrices == nil {
		return 0, false
	}
	p, ok := o.HistoricalItemPrices[key]
	return p, ok
}

// HasSnapshot reports whether the order carries its creation-time pricing
// snapshot. Legacy records imported before snapshotting existed do not.
func (o *Order) HasSnapshot() bool {
	return o.PricingSnapshot != nil && len(o.HistoricalItemPrices) > 0
}
