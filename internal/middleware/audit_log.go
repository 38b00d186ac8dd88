// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuskitchen/lunch-service/internal/domain/model"
	"github.com/campuskitchen/lunch-service/internal/service"
)

// AuditLog logs a caller action for audit purposes. Use it for actions that
// change state: login, scheduling, order writes.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	auditEntry(loggingService, c, "info", actionType, message, "", fields)
}

// AuditLogError logs a failed caller action for audit purposes.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	auditEntry(loggingService, c, "error", actionType, message, err.Error(), fields)
}

func auditEntry(loggingService service.LoggingService, c *gin.Context, level, actionType, message, errMsg string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Error:      errMsg,
		Subject:    GetSubject(c),
		Role:       GetRole(c),
		Fields:     fields,
	}

	// Store asynchronously to avoid blocking the request.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
