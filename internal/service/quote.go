package service

import (
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/pricing"
)

// Quote is a priced view of a selection set before it becomes an order.
type Quote struct {
	Total      model.Money
	ItemPrices map[string]model.Money
	// HasEvenly is true when the total contains provisional per-lot
	// estimates for "Evenly" specialty-meat selections.
	HasEvenly      bool
	CatalogVersion string
}

// QuoteService prices in-progress wizard selections.
type QuoteService interface {
	// Quote prices the given selections against the live catalog.
	Quote(selections map[string]interface{}) Quote
	// PriceOfSelection prices a single field selection.
	PriceOfSelection(key string, value interface{}) model.Money
}

// QuoteServiceImpl implements QuoteService on the live pricing engine.
type QuoteServiceImpl struct {
	engine *pricing.Engine
}

// NewQuoteService creates a quote service over the given catalog.
func NewQuoteService(c *catalog.Catalog) *QuoteServiceImpl {
	return &QuoteServiceImpl{engine: pricing.NewEngine(c)}
}

// Quote prices the given selections against the live catalog.
func (s *QuoteServiceImpl) Quote(selections map[string]interface{}) Quote {
	total, hasEvenly := s.engine.Total(selections)
	return Quote{
		Total:          total,
		ItemPrices:     s.engine.ItemPrices(selections),
		HasEvenly:      hasEvenly,
		CatalogVersion: s.engine.Catalog().Version(),
	}
}

// PriceOfSelection prices a single field selection.
func (s *QuoteServiceImpl) PriceOfSelection(key string, value interface{}) model.Money {
	return s.engine.PriceOfSelection(key, value)
}
