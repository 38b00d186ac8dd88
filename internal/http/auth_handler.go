package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskitchen/lunch-service/internal/domain/dto"
	"github.com/campuskitchen/lunch-service/internal/i18n"
	"github.com/campuskitchen/lunch-service/internal/middleware"
	"github.com/campuskitchen/lunch-service/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// contextLoggingService returns the logging service placed on the context by
// the router, or nil when it is absent.
func contextLoggingService(c *gin.Context) service.LoggingService {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			return ls
		}
	}
	return nil
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login
// @Description  Authenticates the admin with username and password, or a student by numeric id, and returns a JWT token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse} "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	login, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if ls := contextLoggingService(c); ls != nil {
				middleware.AuditLogError(ls, c, "login_failed", "Failed login attempt", err, map[string]interface{}{
					"username": req.Username,
				})
			}
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidCredentials, locale)
			builder.ErrorWithMessage(http.StatusUnauthorized, message, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "login", "Caller logged in successfully", map[string]interface{}{
			"subject": login.Subject,
			"role":    login.Role,
		})
	}

	builder.SuccessOK(login)
}
