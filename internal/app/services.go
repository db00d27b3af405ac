// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/theroadeldorado/duma-deer-processing-sub000/config"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/service"
)

// ServiceComponents holds the business services built on top of the catalog
// and, when available, the database.
type ServiceComponents struct {
	Catalog   *catalog.Catalog
	Quotes    service.QuoteService
	Navigator service.WizardNavigator

	// The following are nil when the database is unavailable.
	Orders    service.OrderService
	Customers service.CustomerService
	Repair    service.SnapshotRepairService
	Audit     service.AuditService
	Auth      service.AuthService
}

// InitializeServices initializes business logic services. Quote and wizard
// navigation are stateless and always available; order storage, customer
// lookup, repair, and audit need the database.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	deerCatalog := catalog.DeerCatalog()

	components := &ServiceComponents{
		Catalog:   deerCatalog,
		Quotes:    service.NewQuoteService(deerCatalog),
		Navigator: service.NewWizardNavigator(deerCatalog),
	}

	if dbComponents == nil {
		return components
	}

	components.Audit = service.NewAuditService(dbComponents.AuditRepo)
	components.Orders = service.NewOrderService(dbComponents.OrdersRepo, deerCatalog, components.Audit)

	var customerOpts []service.CustomerOption
	if cfg.Cache.Size > 0 {
		customerOpts = append(customerOpts, service.WithPreferenceCache(cfg.Cache.Size, cfg.Cache.TTL))
	}
	components.Customers = service.NewCustomerService(dbComponents.OrdersRepo, deerCatalog, customerOpts...)

	pinnedTable, err := catalog.LoadLegacyPriceTable(cfg.Repair.PinnedTablePath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Repair.PinnedTablePath).
			Msg("Failed to load pinned price table, using built-in table")
		pinnedTable = catalog.LegacyPriceTable()
	}
	components.Repair = service.NewSnapshotRepairService(dbComponents.OrdersRepo, pinnedTable, components.Audit)

	if cfg.Auth.Enabled {
		components.Auth = service.NewAuthService(cfg.Auth, components.Audit)
	}

	return components
}
