package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/campuskitchen/lunch-service/internal/metrics"
	"github.com/campuskitchen/lunch-service/internal/middleware"
	"github.com/campuskitchen/lunch-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	// AuthEnabled selects bearer token authentication for the protected
	// routes. When false identity comes from the X-Student-ID header,
	// for local development only.
	AuthEnabled       bool
	RateLimit         int
	RateWindow        time.Duration
	CORSOrigins       []string
	LoggingService    service.LoggingService
	AuthService       service.AuthService
	CatalogService    service.CatalogService
	ScheduleService   service.ScheduleService
	PreferenceService service.PreferenceService
	LedgerService     service.LedgerService
	Resolver          service.MealResolver
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		AuthEnabled: true,
		RateLimit:   100,
		RateWindow:  time.Minute,
		Resolver:    service.NewMealResolverService(),
	}
}

// NewRouter creates and configures the Gin router for the lunch service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	if cfg.Resolver == nil {
		cfg.Resolver = service.NewMealResolverService()
	}

	configureGlobalMiddleware(router, &cfg)

	// Infrastructure routes (health, metrics, swagger)
	registerInfrastructureRoutes(router, healthHandler)

	api := router.Group("/api")

	authRoutes := NewAuthRoutes(cfg.AuthService)
	authRoutes.RegisterPublicRoutes(api)

	protected := authRoutes.GetProtectedGroup(api, &cfg)

	lunchRoutes := NewLunchRoutes(&cfg)
	lunchRoutes.RegisterProtectedRoutes(protected, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	// CORS configuration
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "accept", "Cache-Control", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	// Core middleware stack
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	// Handlers pull the logging service back off the context for audit
	// entries.
	router.Use(func(c *gin.Context) {
		c.Set("logging_service", cfg.LoggingService)
		c.Next()
	})

	// Global rate limiting
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
