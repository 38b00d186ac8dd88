// Package app provides service initialization.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/campuskitchen/lunch-service/config"
	"github.com/campuskitchen/lunch-service/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Auth       service.AuthService
	Catalog    service.CatalogService
	Schedule   service.ScheduleService
	Preference service.PreferenceService
	Ledger     service.LedgerService
	Resolver   service.MealResolver
	Logging    service.LoggingService
}

// InitializeServices builds the business services over the repositories and
// seeds the catalog with the default meals when it is empty.
func InitializeServices(db *DatabaseComponents, cfg config.Config) *ServiceComponents {
	resolver := service.NewMealResolverService()
	catalog := service.NewCatalogService(db.MenuItemsRepo)

	components := &ServiceComponents{
		Auth:       service.NewAuthService(cfg.Auth),
		Catalog:    catalog,
		Schedule:   service.NewScheduleService(db.ScheduleRepo, db.PreferencesRepo, db.OrdersRepo, resolver, db.TxRunner),
		Preference: service.NewPreferenceService(db.PreferencesRepo),
		Ledger:     service.NewLedgerService(db.OrdersRepo),
		Resolver:   resolver,
		Logging:    service.NewLoggingService(db.LogsRepo),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := catalog.Seed(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to seed the default menu catalog")
	}

	return components
}
