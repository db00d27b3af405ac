package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/metrics"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/pricing"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/repository"
)

var (
	// ErrOrderNotFound is returned when no order exists for the given id.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidOrderID is returned for a malformed order id.
	ErrInvalidOrderID = errors.New("invalid order id")
	// ErrMissingRequired is returned when a submission lacks required fields.
	ErrMissingRequired = errors.New("missing required fields")
	// ErrFieldNotEditable is returned when an edit touches a frozen or
	// unknown field path.
	ErrFieldNotEditable = errors.New("field not editable")
)

// NewOrder is the payload of an order submission: contact, deer, and the
// final selection map from the wizard.
type NewOrder struct {
	Customer   model.CustomerInfo
	Deer       model.DeerInfo
	Selections map[string]interface{}
}

// OrderList is a page of orders with its total count.
type OrderList struct {
	Orders []model.Order
	Total  int64
}

// OrderListFilter narrows staff order listings.
type OrderListFilter struct {
	Phone         string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Limit         int
	Skip          int
}

// OrderService provides order submission and staff management operations.
type OrderService interface {
	// CreateOrder prices the selections, freezes the pricing metadata, and
	// stores the order in a single insert.
	CreateOrder(ctx context.Context, in NewOrder) (*model.Order, error)
	// GetOrder returns one order by its hex id.
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	// ListOrders returns a page of orders, most recent first.
	ListOrders(ctx context.Context, filter OrderListFilter) (OrderList, error)
	// EditOrder applies a staff correction to contact, deer, or selection
	// fields. Pricing metadata is frozen and cannot be edited.
	EditOrder(ctx context.Context, id string, fields map[string]interface{}, staff string) (*model.Order, error)
	// DisplayPrice returns the price to show for one field of an order,
	// preferring the frozen historical price over the live catalog.
	DisplayPrice(key string, value interface{}, order *model.Order) model.Money
}

// OrderServiceImpl implements OrderService.
type OrderServiceImpl struct {
	repo   repository.OrdersRepositoryInterface
	engine *pricing.Engine
	audit  AuditService
}

// NewOrderService creates an order service over the given catalog and store.
func NewOrderService(repo repository.OrdersRepositoryInterface, c *catalog.Catalog, audit AuditService) *OrderServiceImpl {
	return &OrderServiceImpl{
		repo:   repo,
		engine: pricing.NewEngine(c),
		audit:  audit,
	}
}

// CreateOrder prices the selections and stores the order. The total, the
// per-field historical prices, and the versioned snapshot are computed from
// the same catalog and written in the same insert as the order itself, so an
// order can never exist without its frozen prices.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context, in NewOrder) (*model.Order, error) {
	if err := validateNewOrder(in); err != nil {
		return nil, err
	}

	selections := make(map[string]interface{}, len(in.Selections))
	for k, v := range in.Selections {
		selections[k] = v
	}

	total, hasEvenly := s.engine.Total(selections)
	snapshot := s.engine.Snapshot()

	order := &model.Order{
		Customer:             in.Customer,
		Deer:                 in.Deer,
		Selections:           selections,
		TotalPrice:           total,
		HasEvenly:            hasEvenly,
		HistoricalItemPrices: s.engine.ItemPrices(selections),
		PricingSnapshot:      &snapshot,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	metrics.RecordOrderSubmission(snapshot.CatalogVersion, hasEvenly)
	s.recordAction(ctx, order.ID.Hex(), "", model.ActionOrderCreated, map[string]interface{}{
		"total_price":     order.TotalPrice.ToDollars(),
		"catalog_version": snapshot.CatalogVersion,
	})

	return order, nil
}

// GetOrder returns one order by its hex id.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidOrderID
	}
	order, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrders returns a page of orders, most recent first.
func (s *OrderServiceImpl) ListOrders(ctx context.Context, filter OrderListFilter) (OrderList, error) {
	repoFilter := repository.OrderFilter{
		PhoneDigits:   model.NormalizePhone(filter.Phone),
		CreatedAfter:  filter.CreatedAfter,
		CreatedBefore: filter.CreatedBefore,
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	orders, err := s.repo.Find(ctx, repoFilter, limit, filter.Skip)
	if err != nil {
		return OrderList{}, fmt.Errorf("failed to list orders: %w", err)
	}
	total, err := s.repo.Count(ctx, repoFilter)
	if err != nil {
		return OrderList{}, fmt.Errorf("failed to count orders: %w", err)
	}
	return OrderList{Orders: orders, Total: total}, nil
}

// EditOrder applies a staff correction. Only contact, deer, and selection
// fields may change; the frozen pricing fields are refused here and again at
// the repository, and the edit never triggers repricing.
func (s *OrderServiceImpl) EditOrder(ctx context.Context, id string, fields map[string]interface{}, staff string) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidOrderID
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields given", ErrFieldNotEditable)
	}

	set := bson.M{}
	for path, value := range fields {
		if !editablePath(path) {
			return nil, fmt.Errorf("%w: %s", ErrFieldNotEditable, path)
		}
		set[path] = value
	}

	order, err := s.repo.UpdateByID(ctx, oid, set)
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	s.recordAction(ctx, id, staff, model.ActionOrderEdited, fields)
	return order, nil
}

// DisplayPrice returns the price to show for one field of an order.
func (s *OrderServiceImpl) DisplayPrice(key string, value interface{}, order *model.Order) model.Money {
	return s.engine.DisplayPrice(key, value, order)
}

// recordAction writes an audit entry. Audit failures are logged, never
// propagated; the order operation already succeeded.
func (s *OrderServiceImpl) recordAction(ctx context.Context, orderID, staff, action string, fields map[string]interface{}) {
	if s.audit == nil {
		return
	}
	entry := &model.AuditEntry{
		Level:      "info",
		Message:    action,
		OrderID:    orderID,
		Staff:      staff,
		ActionType: action,
		Fields:     fields,
	}
	if err := s.audit.RecordEntry(ctx, entry); err != nil {
		log.Warn().Err(err).Str("order_id", orderID).Str("action", action).
			Msg("Failed to write audit entry")
	}
}

// validateNewOrder checks the submission-level required fields. Step-level
// validation already happened in the wizard; this is the last gate before
// the store.
func validateNewOrder(in NewOrder) error {
	var missing []string
	if strings.TrimSpace(in.Customer.Name) == "" {
		missing = append(missing, catalog.KeyName)
	}
	if strings.TrimSpace(in.Customer.Phone) == "" {
		missing = append(missing, catalog.KeyPhone)
	}
	if strings.TrimSpace(in.Deer.TagNumber) == "" {
		missing = append(missing, catalog.KeyTagNumber)
	}
	if !catalog.IsSelected(in.Selections[catalog.KeySkinnedOrBoneless]) {
		missing = append(missing, catalog.KeySkinnedOrBoneless)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}
	return nil
}

// editablePath reports whether a dotted update path may be staff-edited.
func editablePath(path string) bool {
	prefixes := []string{"customer.", "deer.", "selections."}
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) && len(path) > len(p) {
			// Phone digits are derived, never set directly.
			return path != "customer.phone_digits"
		}
	}
	return false
}
