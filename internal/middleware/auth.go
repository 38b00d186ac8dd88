// Package middleware provides JWT authentication middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campuskitchen/lunch-service/internal/domain/dto"
	"github.com/campuskitchen/lunch-service/internal/i18n"
	"github.com/campuskitchen/lunch-service/internal/service"
)

const (
	// SubjectKey is the context key holding the authenticated subject.
	SubjectKey = "auth_subject"
	// RoleKey is the context key holding the authenticated role.
	RoleKey = "auth_role"
	// ClaimsKey is the context key holding the full token claims.
	ClaimsKey = "auth_claims"
)

// RequireAuth returns a middleware that validates bearer tokens and stores
// the caller's identity in the request context.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyTokenRequired, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Set(RoleKey, claims.Role)
		c.Set(ClaimsKey, claims)

		c.Next()
	}
}

// StudentIDHeader carries the caller's identity when authentication is
// disabled for local development.
const StudentIDHeader = "X-Student-ID"

// HeaderIdentity returns a middleware that reads the caller's identity from
// the X-Student-ID header instead of a bearer token. Only wired when
// authentication is disabled; identity stays explicit and request scoped.
// All-numeric values are students, anything else is treated as the admin.
func HeaderIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetHeader(StudentIDHeader)
		if subject == "" {
			locale := i18n.GetLocale(c)
			requestID := GetRequestID(c)
			message := i18n.GetTranslator().Translate(i18n.ErrKeyUnauthorized, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		role := dto.RoleAdmin
		if allDigits(subject) {
			role = dto.RoleStudent
		}

		c.Set(SubjectKey, subject)
		c.Set(RoleKey, role)

		c.Next()
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// RequireRole returns a middleware that rejects callers whose role does not
// match. It must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != role {
			locale := i18n.GetLocale(c)
			requestID := GetRequestID(c)
			message := i18n.GetTranslator().Translate(i18n.ErrKeyForbidden, locale)
			errorResp := dto.NewError(dto.ErrCodeForbidden, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusForbidden, errorResp)
			return
		}
		c.Next()
	}
}

// GetSubject retrieves the authenticated subject from the gin context.
func GetSubject(c *gin.Context) string {
	if v, exists := c.Get(SubjectKey); exists {
		if subject, ok := v.(string); ok {
			return subject
		}
	}
	return ""
}

// GetRole retrieves the authenticated role from the gin context.
func GetRole(c *gin.Context) string {
	if v, exists := c.Get(RoleKey); exists {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
