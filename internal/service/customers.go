package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/fingerprint"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/metrics"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/repository"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/service/cache"
)

// ErrPhoneTooShort is returned when a lookup phone has fewer usable digits
// than the search minimum.
var ErrPhoneTooShort = errors.New("phone number too short")

// minLookupDigits keeps prefix searches from scanning the whole collection.
const minLookupDigits = 4

// historyWindow caps how far back preference sets reach.
const historyWindow = 200

// CustomerService finds returning customers and their past processing
// preferences by phone number.
type CustomerService interface {
	// LookupByPhone returns returning customers whose normalized phone starts
	// with the given digits, most recently seen first.
	LookupByPhone(ctx context.Context, phone string) ([]model.CustomerSummary, error)
	// PreferenceSets returns the distinct ways a customer has had deer
	// processed, deduplicated by preference fingerprint, most recent first.
	// History is a convenience: on storage failure it degrades to an empty
	// result instead of surfacing an error.
	PreferenceSets(ctx context.Context, phone string) ([]model.PreferenceSet, error)
}

// CustomerOption configures a CustomerServiceImpl.
type CustomerOption func(*CustomerServiceImpl)

// WithPreferenceCache enables caching of preference-set lookups with the
// specified capacity and TTL.
func WithPreferenceCache(capacity int, ttl time.Duration) CustomerOption {
	return func(s *CustomerServiceImpl) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithPreferenceCacheInterface allows injecting a custom cache implementation.
func WithPreferenceCacheInterface(c cache.Cache) CustomerOption {
	return func(s *CustomerServiceImpl) {
		s.cache = c
	}
}

// CustomerServiceImpl implements CustomerService over the order history.
type CustomerServiceImpl struct {
	repo    repository.OrdersRepositoryInterface
	catalog *catalog.Catalog
	cache   cache.Cache
}

// NewCustomerService creates a customer service with the given options.
func NewCustomerService(repo repository.OrdersRepositoryInterface, c *catalog.Catalog, opts ...CustomerOption) *CustomerServiceImpl {
	s := &CustomerServiceImpl{
		repo:    repo,
		catalog: c,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LookupByPhone returns returning customers matching a phone prefix. Orders
// sharing normalized digits and a case-insensitive name collapse into one
// summary carrying the most recent contact details.
func (s *CustomerServiceImpl) LookupByPhone(ctx context.Context, phone string) ([]model.CustomerSummary, error) {
	digits := model.NormalizePhone(phone)
	if len(digits) < minLookupDigits {
		return nil, ErrPhoneTooShort
	}

	orders, err := s.repo.Find(ctx, repository.OrderFilter{PhoneDigits: digits}, historyWindow, 0)
	if err != nil {
		return nil, err
	}

	// Orders arrive most recent first, so the first order seen per customer
	// provides the display fields.
	byCustomer := make(map[string]*model.CustomerSummary)
	var ordered []*model.CustomerSummary
	for i := range orders {
		o := &orders[i]
		key := o.Customer.PhoneDigits + "\x1f" + strings.ToLower(strings.TrimSpace(o.Customer.Name))
		if summary, ok := byCustomer[key]; ok {
			summary.OrderCount++
			continue
		}
		summary := &model.CustomerSummary{
			Name:        o.Customer.Name,
			Phone:       o.Customer.Phone,
			PhoneDigits: o.Customer.PhoneDigits,
			Address:     o.Customer.Address,
			City:        o.Customer.City,
			State:       o.Customer.State,
			Zip:         o.Customer.Zip,
			OrderCount:  1,
			LastOrderAt: o.CreatedAt,
		}
		byCustomer[key] = summary
		ordered = append(ordered, summary)
	}

	result := make([]model.CustomerSummary, len(ordered))
	for i, summary := range ordered {
		result[i] = *summary
	}
	return result, nil
}

// PreferenceSets returns the customer's distinct processing preferences.
// Two past orders fingerprint identically exactly when every preference
// field matches after normalization; identity and per-deer fields never
// participate, so the same preferences on a different deer still collapse.
func (s *CustomerServiceImpl) PreferenceSets(ctx context.Context, phone string) ([]model.PreferenceSet, error) {
	digits := model.NormalizePhone(phone)
	if len(digits) < minLookupDigits {
		return nil, ErrPhoneTooShort
	}

	if s.cache != nil {
		if sets, ok := s.cache.Get(digits); ok {
			return sets, nil
		}
	}

	orders, err := s.repo.Find(ctx, repository.OrderFilter{ExactPhoneDigits: digits}, historyWindow, 0)
	if err != nil {
		log.Warn().Err(err).Str("phone_digits", digits).
			Msg("Preference history unavailable, returning empty")
		metrics.RecordPreferenceLookup("degraded")
		return []model.PreferenceSet{}, nil
	}

	fields := fingerprint.PreferenceFields(s.catalog)
	byFingerprint := make(map[string]*model.PreferenceSet)
	var ordered []*model.PreferenceSet
	for i := range orders {
		o := &orders[i]
		fp := fingerprint.Build(o.Selections, fields)
		if set, ok := byFingerprint[fp]; ok {
			set.OrderCount++
			continue
		}
		set := &model.PreferenceSet{
			Fingerprint:   fp,
			Selections:    fingerprint.ExtractReorderPreferences(o),
			LastOrderID:   o.ID.Hex(),
			LastOrderedAt: o.CreatedAt,
			OrderCount:    1,
		}
		byFingerprint[fp] = set
		ordered = append(ordered, set)
	}

	sets := make([]model.PreferenceSet, len(ordered))
	for i, set := range ordered {
		sets[i] = *set
	}

	if s.cache != nil {
		s.cache.Set(digits, sets)
	}
	metrics.RecordPreferenceLookup("ok")
	return sets, nil
}

// InvalidatePreferences drops a customer's cached preference sets, called
// after a new order lands for that phone.
func (s *CustomerServiceImpl) InvalidatePreferences(phone string) {
	if s.cache != nil {
		s.cache.Invalidate(model.NormalizePhone(phone))
	}
}
