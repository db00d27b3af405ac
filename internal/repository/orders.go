// Package repository provides data access for customer orders.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
)

// OrderFilter narrows order queries. Zero-value fields are ignored.
type OrderFilter struct {
	// PhoneDigits matches orders whose normalized customer phone starts
	// with these digits.
	PhoneDigits string
	// ExactPhoneDigits matches the normalized phone exactly.
	ExactPhoneDigits string
	// MissingSnapshot selects legacy orders without a pricing snapshot.
	MissingSnapshot bool
	// CreatedAfter / CreatedBefore bound the creation time.
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

func (f OrderFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.ExactPhoneDigits != "" {
		filter["customer.phone_digits"] = f.ExactPhoneDigits
	} else if f.PhoneDigits != "" {
		filter["customer.phone_digits"] = bson.M{"$regex": "^" + f.PhoneDigits}
	}
	if f.MissingSnapshot {
		filter["pricing_snapshot"] = bson.M{"$exists": false}
	}
	if f.CreatedAfter != nil || f.CreatedBefore != nil {
		timeFilter := bson.M{}
		if f.CreatedAfter != nil {
			timeFilter["$gte"] = *f.CreatedAfter
		}
		if f.CreatedBefore != nil {
			timeFilter["$lte"] = *f.CreatedBefore
		}
		filter["created_at"] = timeFilter
	}
	return filter
}

// OrdersRepository provides methods for order operations.
type OrdersRepository struct {
	collection *mongo.Collection
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{
		collection: db.Orders,
	}
}

// Create inserts a new order document. The order and its pricing snapshot
// live in one document, so the insert is atomic: there is no window where an
// order exists without its frozen prices.
func (r *OrdersRepository) Create(ctx context.Context, order *model.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	order.Customer.PhoneDigits = model.NormalizePhone(order.Customer.Phone)

	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// FindByID returns an order by id, or nil when no such order exists.
func (r *OrdersRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	var order model.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Find returns orders matching the filter, most recent first.
func (r *OrdersRepository) Find(ctx context.Context, filter OrderFilter, limit, skip int) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if skip > 0 {
		opts.SetSkip(int64(skip))
	}

	cursor, err := r.collection.Find(ctx, filter.toBSON(), opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Count returns the number of orders matching the filter.
func (r *OrdersRepository) Count(ctx context.Context, filter OrderFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, filter.toBSON())
}

// UpdateByID applies a partial update and returns the updated order. Callers
// own the allow-listing of fields; the repository only refuses the frozen
// pricing fields so no update path can rewrite a snapshot.
func (r *OrdersRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Order, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		if isFrozenField(k) {
			continue
		}
		set[k] = v
	}
	if phone, ok := set["customer.phone"].(string); ok {
		set["customer.phone_digits"] = model.NormalizePhone(phone)
	}

	var order model.Order
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SetSnapshot writes the frozen pricing fields of one legacy order. The
// filter only matches orders still lacking a snapshot, which makes the
// repair batch idempotent: a re-run finds nothing left to touch.
func (r *OrdersRepository) SetSnapshot(ctx context.Context, id primitive.ObjectID, itemPrices map[string]model.Money, snapshot model.PriceSnapshot) (bool, error) {
	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "pricing_snapshot": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{
			"historical_item_prices": itemPrices,
			"pricing_snapshot":       snapshot,
			"updated_at":             time.Now(),
		}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// isFrozenField reports whether an update path touches the write-once
// pricing fields captured at order creation.
func isFrozenField(path string) bool {
	frozen := []string{"historical_item_prices", "pricing_snapshot", "total_price_cents", "has_evenly", "created_at"}
	for _, f := range frozen {
		if path == f || len(path) > len(f) && path[:len(f)+1] == f+"." {
			return true
		}
	}
	return false
}
