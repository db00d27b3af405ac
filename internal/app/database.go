// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/theroadeldorado/duma-deer-processing-sub000/config"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/circuitbreaker"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                   *repository.MongoDB
	OrdersRepo           repository.OrdersRepositoryInterface
	AuditRepo            repository.AuditRepositoryInterface
	OrdersCircuitBreaker *circuitbreaker.CircuitBreaker
	AuditCircuitBreaker  *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the order
// and audit repositories behind circuit breakers.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Audit entries expire; orders are kept forever.
	ttlDays := int(cfg.AuditTTL.Hours() / 24)
	if err := db.SetAuditLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set audit TTL index (may already exist)")
	}

	ordersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-orders",
	})

	auditCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-audit",
	})

	ordersRepo := repository.NewOrdersRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	return &DatabaseComponents{
		DB:                   db,
		OrdersRepo:           repository.NewOrdersRepositoryWithCircuitBreaker(ordersRepo, ordersCB),
		AuditRepo:            repository.NewAuditRepositoryWithCircuitBreaker(auditRepo, auditCB),
		OrdersCircuitBreaker: ordersCB,
		AuditCircuitBreaker:  auditCB,
	}
}
