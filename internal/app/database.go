// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/campuskitchen/lunch-service/config"
	"github.com/campuskitchen/lunch-service/internal/circuitbreaker"
	"github.com/campuskitchen/lunch-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                   *repository.MongoDB
	MenuItemsRepo        repository.MenuItemsRepositoryInterface
	ScheduleRepo         repository.ScheduleRepositoryInterface
	PreferencesRepo      repository.PreferencesRepositoryInterface
	OrdersRepo           repository.OrdersRepositoryInterface
	LogsRepo             repository.LogsRepositoryInterface
	TxRunner             repository.TxRunner
	OrdersCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker   *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the repositories. The
// store holds the catalog, the schedule, and the ledger; the service cannot
// run without it, so a failed connection is fatal.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for request logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// The ledger and the request logs take writes on every request; both
	// sit behind circuit breakers so a struggling MongoDB degrades fast
	// instead of piling up timeouts.
	ordersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-orders",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	ordersRepo := repository.NewOrdersRepositoryWithCircuitBreaker(repository.NewOrdersRepository(db), ordersCB)
	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)

	var txRunner repository.TxRunner = repository.NoTxRunner{}
	if cfg.TransactionsEnabled {
		txRunner = db
	} else {
		log.Info().Msg("MongoDB transactions disabled, schedule writes run without a transaction")
	}

	return &DatabaseComponents{
		DB:                   db,
		MenuItemsRepo:        repository.NewMenuItemsRepository(db),
		ScheduleRepo:         repository.NewScheduleRepository(db),
		PreferencesRepo:      repository.NewPreferencesRepository(db),
		OrdersRepo:           ordersRepo,
		LogsRepo:             logsRepo,
		TxRunner:             txRunner,
		OrdersCircuitBreaker: ordersCB,
		LogsCircuitBreaker:   logsCB,
	}
}
