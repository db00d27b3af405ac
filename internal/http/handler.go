package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/dto"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/i18n"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/metrics"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/service"
)

// Handler provides HTTP handlers for the customer-facing order intake routes.
type Handler struct {
	orders    service.OrderService
	quotes    service.QuoteService
	navigator service.WizardNavigator
	customers service.CustomerService

	// catalogView is precomputed: the catalog is immutable for the process
	// lifetime, so the response body never changes.
	catalogView catalogResponse
}

// NewHandler creates a new Handler instance.
func NewHandler(
	c *catalog.Catalog,
	orders service.OrderService,
	quotes service.QuoteService,
	navigator service.WizardNavigator,
	customers service.CustomerService,
) *Handler {
	return &Handler{
		orders:      orders,
		quotes:      quotes,
		navigator:   navigator,
		customers:   customers,
		catalogView: buildCatalogResponse(c),
	}
}

// GetCatalog handles GET /api/catalog requests.
//
// @Summary      Get the order form catalog
// @Description  Returns the versioned field catalog the wizard renders: every field with its options and prices, plus the specialty meat groups.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Catalog"
// @Router       /api/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.catalogView)
}

// Quote handles POST /api/quote requests.
//
// @Summary      Price in-progress selections
// @Description  Prices the current wizard selections against the live catalog. Unknown fields price at zero; the quote never fails on a malformed selection value.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Current selections"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse} "Quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.QuoteRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	quote := h.quotes.Quote(req.Selections)
	metrics.RecordQuote()

	builder.SuccessOK(dto.QuoteResponse{
		TotalPrice:     quote.Total,
		ItemPrices:     quote.ItemPrices,
		HasEvenly:      quote.HasEvenly,
		CatalogVersion: quote.CatalogVersion,
	})
}

// Navigate handles POST /api/wizard/navigate requests.
//
// @Summary      Move through the order wizard
// @Description  Computes the next or previous step for the given selections. A forward move is blocked with per-field errors until the step's required fields are set. With an empty current step it returns the start step.
// @Tags         Wizard
// @Accept       json
// @Produce      json
// @Param        request body dto.NavigateRequest true "Current step, direction, and selections"
// @Success      200 {object} dto.SuccessResponse{data=dto.NavigationResponse} "Navigation result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown step or direction"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/wizard/navigate [post]
func (h *Handler) Navigate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.NavigateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	var result service.NavigationResult
	if req.Current == "" {
		result, err = h.navigator.Start(req.Selections)
	} else {
		result, err = h.navigator.Navigate(req.Current, req.Direction, req.Selections)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownStep), errors.Is(err, service.ErrUnknownDirection):
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(navigationResponse(result))
}

// CreateOrder handles POST /api/orders requests.
//
// @Summary      Submit a completed order
// @Description  Prices the final selections, freezes the pricing snapshot, and stores the order. Supports idempotency via Idempotency-Key header.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CreateOrderRequest true "Completed order"
// @Success      201 {object} dto.SuccessResponse "Stored order with frozen pricing"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid or incomplete submission"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateOrderRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), service.NewOrder{
		Customer: model.CustomerInfo{
			Name:          req.Customer.Name,
			Phone:         req.Customer.Phone,
			Address:       req.Customer.Address,
			City:          req.Customer.City,
			State:         req.Customer.State,
			Zip:           req.Customer.Zip,
			Communication: req.Customer.Communication,
		},
		Deer: model.DeerInfo{
			TagNumber:        req.Deer.TagNumber,
			StateHarvestedIn: req.Deer.StateHarvestedIn,
			BuckOrDoe:        req.Deer.BuckOrDoe,
			DateHarvested:    req.Deer.DateHarvested,
		},
		Selections: req.Selections,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingRequired) {
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessCreated(order)
}

// LookupCustomers handles GET /api/customers/lookup requests.
//
// @Summary      Find returning customers by phone
// @Description  Returns customers whose normalized phone number starts with the given digits, most recently seen first. Formatting characters and a leading US country code are ignored.
// @Tags         Customers
// @Produce      json
// @Param        phone query string true "Phone number or prefix (at least 4 digits)"
// @Success      200 {object} dto.SuccessResponse "Matching customers"
// @Failure      400 {object} dto.ErrorResponse "Bad request - phone too short"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/customers/lookup [get]
func (h *Handler) LookupCustomers(c *gin.Context) {
	builder := NewResponseBuilder(c)

	phone := c.Query("phone")
	summaries, err := h.customers.LookupByPhone(c.Request.Context(), phone)
	if err != nil {
		if errors.Is(err, service.ErrPhoneTooShort) {
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if summaries == nil {
		summaries = []model.CustomerSummary{}
	}

	builder.SuccessOK(summaries)
}

// PreferenceSets handles GET /api/customers/:phone/preference-sets requests.
//
// @Summary      Get a customer's past processing preferences
// @Description  Returns the distinct ways this customer has had deer processed, deduplicated by preference fingerprint, most recent first. Identity and per-deer fields are excluded, so selecting a set pre-fills a reorder without copying the old deer's tag.
// @Tags         Customers
// @Produce      json
// @Param        phone path string true "Customer phone number"
// @Success      200 {object} dto.SuccessResponse "Preference sets"
// @Failure      400 {object} dto.ErrorResponse "Bad request - phone too short"
// @Router       /api/customers/{phone}/preference-sets [get]
func (h *Handler) PreferenceSets(c *gin.Context) {
	builder := NewResponseBuilder(c)

	phone := c.Param("phone")
	sets, err := h.customers.PreferenceSets(c.Request.Context(), phone)
	if err != nil {
		if errors.Is(err, service.ErrPhoneTooShort) {
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if sets == nil {
		sets = []model.PreferenceSet{}
	}

	builder.SuccessOK(sets)
}

// navigationResponse converts a service navigation result to its DTO.
func navigationResponse(result service.NavigationResult) dto.NavigationResponse {
	resp := dto.NavigationResponse{
		Step:       string(result.Step),
		Title:      result.Title,
		Fields:     result.Fields,
		Terminal:   result.Terminal,
		Selections: result.Selections,
	}
	for _, fe := range result.Errors {
		resp.Errors = append(resp.Errors, dto.FieldErrorResponse(fe))
	}
	return resp
}

// catalogResponse is the serialized catalog served to the wizard UI.
type catalogResponse struct {
	Version string               `json:"version"`
	Fields  []catalogField       `json:"fields"`
	Groups  []specialtyMeatGroup `json:"specialty_meat_groups"`
}

type catalogField struct {
	Key          string          `json:"key"`
	Section      string          `json:"section"`
	Label        string          `json:"label"`
	Kind         string          `json:"kind"`
	Required     bool            `json:"required,omitempty"`
	DefaultValue string          `json:"default_value,omitempty"`
	Options      []catalogOption `json:"options,omitempty"`
}

type catalogOption struct {
	Value             string      `json:"value"`
	Label             string      `json:"label"`
	Price             model.Money `json:"price"`
	PricePerFiveUnits bool        `json:"price_per_five_units,omitempty"`
}

type specialtyMeatGroup struct {
	Name       string               `json:"name"`
	Image      string               `json:"image,omitempty"`
	Suboptions []specialtySuboption `json:"suboptions"`
}

type specialtySuboption struct {
	Key   string      `json:"key"`
	Label string      `json:"label"`
	Price model.Money `json:"price"`
}

func buildCatalogResponse(c *catalog.Catalog) catalogResponse {
	resp := catalogResponse{Version: c.Version()}

	for _, f := range c.Fields() {
		cf := catalogField{
			Key:          f.Key,
			Section:      f.Section,
			Label:        f.Label,
			Kind:         string(f.Kind),
			Required:     f.Required,
			DefaultValue: f.DefaultValue,
		}
		for _, opt := range f.Options {
			cf.Options = append(cf.Options, catalogOption{
				Value:             opt.Value,
				Label:             opt.Label,
				Price:             opt.Price,
				PricePerFiveUnits: opt.PricePerFiveUnits,
			})
		}
		resp.Fields = append(resp.Fields, cf)
	}

	for _, g := range c.SpecialtyMeatGroups() {
		group := specialtyMeatGroup{Name: g.Name, Image: g.Image}
		for _, sub := range g.Suboptions {
			group.Suboptions = append(group.Suboptions, specialtySuboption{
				Key:   sub.Key,
				Label: sub.Label,
				Price: sub.Price,
			})
		}
		resp.Groups = append(resp.Groups, group)
	}

	return resp
}
