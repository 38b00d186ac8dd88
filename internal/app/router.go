// Package app provides router configuration.
package app

import (
	"context"

	"github.com/campuskitchen/lunch-service/config"
	"github.com/campuskitchen/lunch-service/internal/http"
	"github.com/campuskitchen/lunch-service/internal/repository"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// mongoChecker adapts the MongoDB ping to the health checker interface.
type mongoChecker struct {
	db *repository.MongoDB
}

func (c mongoChecker) Check() error {
	return c.db.HealthCheck(context.Background())
}

// InitializeRouter initializes the health handler and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	db *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	if db != nil {
		if db.DB != nil {
			healthHandler.RegisterChecker("mongodb", mongoChecker{db: db.DB})
		}
		if db.OrdersCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_orders", db.OrdersCircuitBreaker)
		}
		if db.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", db.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		AuthEnabled:       cfg.Auth.Enabled,
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		CORSOrigins:       cfg.Server.CORSOrigins,
		LoggingService:    services.Logging,
		AuthService:       services.Auth,
		CatalogService:    services.Catalog,
		ScheduleService:   services.Schedule,
		PreferenceService: services.Preference,
		LedgerService:     services.Ledger,
		Resolver:          services.Resolver,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
