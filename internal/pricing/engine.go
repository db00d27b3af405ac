// Package pricing computes selection and order prices against a catalog.
//
// All functions are pure: the same catalog and selections always produce the
// same prices, and totals are independent of map iteration order because
// amounts are summed in integer cents.
package pricing

import (
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
)

// Engine prices selections against one immutable catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates a pricing engine bound to the given catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Catalog returns the catalog the engine prices against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// PriceOfSelection returns the price of one field selection.
//
// Per-5-unit options charge their flat price once for the "Evenly" sentinel
// (a provisional per-lot estimate; true weight is unknown until fulfillment)
// and price*(w/5) for a numeric weight w. Flat options charge their price for
// any selected value. Unselected sentinels, unknown keys, and unmatched
// option values price at zero; the engine never fails as the catalog evolves.
func (e *Engine) PriceOfSelection(key string, value interface{}) model.Money {
	normalized, selected := catalog.NormalizeValue(value)
	if !selected {
		return 0
	}

	if sub, ok := e.catalog.Suboption(key); ok {
		return perFiveUnitPrice(sub.Price, value)
	}

	field, ok := e.catalog.Field(key)
	if !ok {
		return 0
	}

	opt, ok := field.Option(normalized)
	if !ok {
		// Checkboxes store assorted truthy encodings; any selected value
		// means the single option is on.
		if field.Kind == catalog.KindCheckbox && len(field.Options) > 0 {
			opt = field.Options[0]
		} else {
			return 0
		}
	}

	if opt.PricePerFiveUnits {
		return perFiveUnitPrice(opt.Price, value)
	}
	return opt.Price
}

// Total sums PriceOfSelection over every field present in the selections.
// Unknown or retired keys contribute zero. The returned hasEvenly flag is
// true when any per-5-unit selection used the "Evenly" sentinel, i.e. the
// total contains provisional per-lot estimates.
//
// Total is the canonical home of the tenderized-cubed-steaks rule: the
// surcharge is charged once per order even when both hind legs are
// tenderized.
func (e *Engine) Total(selections map[string]interface{}) (model.Money, bool) {
	var total model.Money
	hasEvenly := false

	for key, value := range selections {
		total += e.PriceOfSelection(key, value)
		if e.isPerFiveUnit(key) && catalog.IsEvenly(value) {
			hasEvenly = true
		}
	}

	total -= e.duplicateTenderizedSurcharge(selections)
	return total, hasEvenly
}

// ItemPrices returns the unit price of every selected field known to the
// catalog, the per-field map frozen into an order's historical prices.
func (e *Engine) ItemPrices(selections map[string]interface{}) map[string]model.Money {
	prices := make(map[string]model.Money)
	for key, value := range selections {
		if !e.catalog.HasKey(key) || !catalog.IsSelected(value) {
			continue
		}
		prices[key] = e.PriceOfSelection(key, value)
	}
	return prices
}

// DisplayPrice returns the price to show for a field on an existing order.
// A frozen historical price wins unconditionally, even if the live catalog
// has since been repriced; orders are never retroactively repriced. Legacy
// orders without a snapshot fall back to the live engine as a best-effort
// approximation.
func (e *Engine) DisplayPrice(key string, value interface{}, order *model.Order) model.Money {
	if order != nil {
		if frozen, ok := order.HistoricalPrice(key); ok {
			return frozen
		}
	}
	return e.PriceOfSelection(key, value)
}

// Snapshot returns the versioned price table to freeze into a new order.
func (e *Engine) Snapshot() model.PriceSnapshot {
	return model.PriceSnapshot{
		CatalogVersion: e.catalog.Version(),
		Prices:         e.catalog.PriceTable(),
	}
}

// duplicateTenderizedSurcharge returns the amount to remove from a raw sum
// so the tenderizing surcharge is charged at most once.
func (e *Engine) duplicateTenderizedSurcharge(selections map[string]interface{}) model.Money {
	if !catalog.IsSelected(selections[catalog.KeyHindLegTenderized1]) ||
		!catalog.IsSelected(selections[catalog.KeyHindLegTenderized2]) {
		return 0
	}
	return e.PriceOfSelection(catalog.KeyHindLegTenderized2, selections[catalog.KeyHindLegTenderized2])
}

// isPerFiveUnit reports whether a key resolves to per-5-unit pricing.
func (e *Engine) isPerFiveUnit(key string) bool {
	if _, ok := e.catalog.Suboption(key); ok {
		return true
	}
	field, ok := e.catalog.Field(key)
	if !ok {
		return false
	}
	for _, opt := range field.Options {
		if opt.PricePerFiveUnits {
			return true
		}
	}
	return false
}

// perFiveUnitPrice applies per-5-unit semantics to a raw selection value.
func perFiveUnitPrice(price model.Money, value interface{}) model.Money {
	if catalog.IsEvenly(value) {
		return price
	}
	if quantity, ok := catalog.Quantity(value); ok {
		return price.PerFiveUnits(quantity)
	}
	// Selected but neither Evenly nor numeric: one per-lot charge.
	return price
}

// PriceFromTable prices one selection against a frozen, flattened price
// table instead of the live catalog. Used by the snapshot repair job with
// the pinned legacy table. A bare key in the table means per-5-unit
// semantics (specialty suboptions); "key.value" entries are flat option
// prices; everything else is zero.
func PriceFromTable(table map[string]model.Money, key string, value interface{}) model.Money {
	normalized, selected := catalog.NormalizeValue(value)
	if !selected {
		return 0
	}
	if price, ok := table[key]; ok {
		return perFiveUnitPrice(price, value)
	}
	if price, ok := table[key+"."+normalized]; ok {
		return price
	}
	return 0
}
