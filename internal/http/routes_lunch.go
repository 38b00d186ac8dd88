package http

import (
	"github.com/gin-gonic/gin"

	"github.com/campuskitchen/lunch-service/internal/domain/dto"
	"github.com/campuskitchen/lunch-service/internal/middleware"
)

// LunchRoutes handles registration of the menu, schedule, order, and
// preference routes.
type LunchRoutes struct {
	menuHandler       *MenuHandler
	scheduleHandler   *ScheduleHandler
	orderHandler      *OrderHandler
	preferenceHandler *PreferenceHandler
}

// NewLunchRoutes creates a new LunchRoutes instance from the configured
// services.
func NewLunchRoutes(cfg *RouterConfig) *LunchRoutes {
	return &LunchRoutes{
		menuHandler:       NewMenuHandler(cfg.CatalogService, cfg.ScheduleService, cfg.PreferenceService, cfg.Resolver),
		scheduleHandler:   NewScheduleHandler(cfg.ScheduleService, cfg.CatalogService),
		orderHandler:      NewOrderHandler(cfg.LedgerService),
		preferenceHandler: NewPreferenceHandler(cfg.PreferenceService),
	}
}

// RegisterProtectedRoutes registers all business routes on the authenticated
// group. Catalog and schedule management plus the ledger overview are
// restricted to the admin role; the rest is open to any authenticated caller.
func (r *LunchRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	// Student-facing routes. Available to every authenticated caller,
	// including the admin.
	protected.GET("/menu/today", r.menuHandler.TodayMenu)
	protected.POST("/orders", r.orderHandler.SubmitOrder)
	protected.GET("/preferences", r.preferenceHandler.GetPreference)
	protected.PUT("/preferences", r.preferenceHandler.SetPreference)

	// Admin routes.
	admin := protected.Group("")
	admin.Use(middleware.RequireRole(dto.RoleAdmin))
	{
		admin.GET("/menu", r.menuHandler.ListMenuItems)
		admin.POST("/menu", r.menuHandler.AddMenuItem)
		admin.DELETE("/menu/:id", r.menuHandler.DeleteMenuItem)
		admin.GET("/schedule", r.scheduleHandler.ListSchedule)
		admin.POST("/schedule", r.scheduleHandler.ScheduleItem)
		admin.GET("/orders", r.orderHandler.ListOrders)
		admin.POST("/orders/:id/pickup", r.orderHandler.MarkPickedUp)
	}
}
