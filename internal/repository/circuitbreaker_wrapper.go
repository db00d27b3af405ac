// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/circuitbreaker"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
)

// OrdersRepositoryWithCircuitBreaker wraps OrdersRepository with circuit
// breaker protection. Reads against an open circuit come back empty so the
// history-driven features (customer lookup, preference sets) degrade to
// "no prior orders" instead of blocking the wizard.
type OrdersRepositoryWithCircuitBreaker struct {
	repo           *OrdersRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrdersRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewOrdersRepositoryWithCircuitBreaker(repo *OrdersRepository, cb *circuitbreaker.CircuitBreaker) *OrdersRepositoryWithCircuitBreaker {
	return &OrdersRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts an order with circuit breaker protection. Creation is a
// customer-facing write and must surface its failure.
func (r *OrdersRepositoryWithCircuitBreaker) Create(ctx context.Context, order *model.Order) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, order)
	})
}

// FindByID returns an order with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	var result *model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// Find queries orders with circuit breaker protection. An open circuit
// returns no orders rather than an error.
func (r *OrdersRepositoryWithCircuitBreaker) Find(ctx context.Context, filter OrderFilter, limit, skip int) ([]model.Order, error) {
	var result []model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Find(ctx, filter, limit, skip)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Count counts orders with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) Count(ctx context.Context, filter OrderFilter) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, filter)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return 0, nil
	}
	return result, err
}

// UpdateByID applies a partial update with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Order, error) {
	var result *model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.UpdateByID(ctx, id, fields)
		return cbErr
	})
	return result, err
}

// SetSnapshot writes frozen pricing fields with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) SetSnapshot(ctx context.Context, id primitive.ObjectID, itemPrices map[string]model.Money, snapshot model.PriceSnapshot) (bool, error) {
	var repaired bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		repaired, cbErr = r.repo.SetSnapshot(ctx, id, itemPrices, snapshot)
		return cbErr
	})
	return repaired, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrdersRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// AuditRepositoryWithCircuitBreaker wraps AuditRepository with circuit breaker protection.
type AuditRepositoryWithCircuitBreaker struct {
	repo           *AuditRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewAuditRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewAuditRepositoryWithCircuitBreaker(repo *AuditRepository, cb *circuitbreaker.CircuitBreaker) *AuditRepositoryWithCircuitBreaker {
	return &AuditRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single audit entry with circuit breaker protection.
// If the circuit is open the entry is dropped; the audit trail is non-critical.
func (r *AuditRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *AuditEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple audit entries with circuit breaker protection.
// If the circuit is open the entries are dropped; the audit trail is non-critical.
func (r *AuditRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*AuditEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves audit entries with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) Query(ctx context.Context, opts AuditQueryOptions) ([]*AuditEntryDocument, error) {
	var result []*AuditEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of audit entries with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) Count(ctx context.Context, opts AuditQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *AuditRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
