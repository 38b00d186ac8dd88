package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campuskitchen/lunch-service/config"
	"github.com/campuskitchen/lunch-service/internal/domain/dto"
	"github.com/campuskitchen/lunch-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newHandlerTestAuthService(t *testing.T) service.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	return service.NewAuthService(config.AuthConfig{
		JWTSecretKey:      "handler-test-secret",
		TokenTTL:          time.Hour,
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	})
}

func performRequest(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name             string
		requestBody      interface{}
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "admin login succeeds",
			requestBody:    dto.LoginRequest{Username: "admin", Password: "s3cret"},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

				data, ok := response.Data.(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, dto.RoleAdmin, data["role"])
				assert.Equal(t, "admin", data["subject"])
				assert.NotEmpty(t, data["token"])
			},
		},
		{
			name:           "student login by numeric id succeeds without a password",
			requestBody:    dto.LoginRequest{Username: "420000123"},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response dto.SuccessResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

				data, ok := response.Data.(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, dto.RoleStudent, data["role"])
				assert.Equal(t, "420000123", data["subject"])
			},
		},
		{
			name:           "wrong admin password is unauthorized",
			requestBody:    dto.LoginRequest{Username: "admin", Password: "wrong"},
			expectedStatus: http.StatusUnauthorized,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, dto.ErrCodeUnauthorized, response.Error)
			},
		},
		{
			name:           "non numeric username without admin match is unauthorized",
			requestBody:    dto.LoginRequest{Username: "someone"},
			expectedStatus: http.StatusUnauthorized,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, dto.ErrCodeUnauthorized, response.Error)
			},
		},
		{
			name:           "missing username is a bad request",
			requestBody:    map[string]interface{}{"password": "s3cret"},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, dto.ErrCodeInvalidRequest, response.Error)
			},
		},
		{
			name:           "malformed json is a bad request",
			requestBody:    "not-an-object",
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.NotEmpty(t, response.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			handler := NewAuthHandler(newHandlerTestAuthService(t))
			router.POST("/api/auth/login", handler.Login)

			w := performRequest(router, http.MethodPost, "/api/auth/login", tt.requestBody, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}
