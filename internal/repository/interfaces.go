// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
)

// OrdersRepositoryInterface defines the order store primitives the core
// depends on. Nothing above this layer assumes a particular storage engine.
type OrdersRepositoryInterface interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	Find(ctx context.Context, filter OrderFilter, limit, skip int) ([]model.Order, error)
	Count(ctx context.Context, filter OrderFilter) (int64, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Order, error)
	SetSnapshot(ctx context.Context, id primitive.ObjectID, itemPrices map[string]model.Money, snapshot model.PriceSnapshot) (bool, error)
}

// AuditRepositoryInterface defines the interface for audit trail operations.
type AuditRepositoryInterface interface {
	Create(ctx context.Context, entry *AuditEntryDocument) error
	CreateMany(ctx context.Context, entries []*AuditEntryDocument) error
	Query(ctx context.Context, opts AuditQueryOptions) ([]*AuditEntryDocument, error)
	Count(ctx context.Context, opts AuditQueryOptions) (int64, error)
}
