package http

import (
	"github.com/gin-gonic/gin"

	"github.com/campuskitchen/lunch-service/internal/middleware"
	"github.com/campuskitchen/lunch-service/internal/service"
)

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler     *AuthHandler
	authService service.AuthService
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(authService service.AuthService) *AuthRoutes {
	return &AuthRoutes{
		handler:     NewAuthHandler(authService),
		authService: authService,
	}
}

// RegisterPublicRoutes registers public authentication routes.
// These routes don't require authentication.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", r.handler.Login)
	}
}

// GetProtectedGroup returns a router group with bearer token authentication
// applied, plus per-subject rate limiting when configured. Route registrars
// hang their protected routes off this group. With authentication disabled
// the group reads identity from the X-Student-ID header instead.
func (r *AuthRoutes) GetProtectedGroup(rg *gin.RouterGroup, cfg *RouterConfig) *gin.RouterGroup {
	protected := rg.Group("")
	if cfg.AuthEnabled {
		protected.Use(middleware.RequireAuth(r.authService))
	} else {
		protected.Use(middleware.HeaderIdentity())
	}

	if cfg.RateLimit > 0 {
		subjectLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		protected.Use(subjectLimiter.RateLimit())
	}

	return protected
}
