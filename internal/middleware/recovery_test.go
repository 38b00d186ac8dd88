package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campuskitchen/lunch-service/internal/domain/dto"
)

func TestRecovery(t *testing.T) {
	tests := []struct {
		name           string
		handler        gin.HandlerFunc
		expectedStatus int
	}{
		{
			name: "recovers from panic",
			handler: func(c *gin.Context) {
				panic("something went wrong")
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "passes through normal requests",
			handler: func(c *gin.Context) {
				c.Status(http.StatusOK)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Recovery())
			router.GET("/test", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusInternalServerError {
				assert.Contains(t, w.Body.String(), dto.ErrCodeInternal)
			}
		})
	}
}
