package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campuskitchen/lunch-service/config"
	"github.com/campuskitchen/lunch-service/internal/domain/dto"
	"github.com/campuskitchen/lunch-service/internal/service"
)

func testAuthConfig(t *testing.T) config.AuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	return config.AuthConfig{
		JWTSecretKey:      "test-secret",
		TokenTTL:          time.Hour,
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
	}
}

func TestAuthService_Login(t *testing.T) {
	svc := service.NewAuthService(testAuthConfig(t))

	tests := []struct {
		name          string
		username      string
		password      string
		expectedRole  string
		expectedError error
	}{
		{
			name:         "admin with correct password",
			username:     "admin",
			password:     "s3cret",
			expectedRole: dto.RoleAdmin,
		},
		{
			name:          "admin with wrong password",
			username:      "admin",
			password:      "nope",
			expectedError: service.ErrInvalidCredentials,
		},
		{
			name:         "numeric username is a student",
			username:     "420000123",
			password:     "",
			expectedRole: dto.RoleStudent,
		},
		{
			name:          "non-numeric unknown username is rejected",
			username:      "mallory",
			password:      "whatever",
			expectedError: service.ErrInvalidCredentials,
		},
		{
			name:          "empty username is rejected",
			username:      "",
			password:      "",
			expectedError: service.ErrInvalidCredentials,
		},
		{
			name:          "mixed alphanumeric username is rejected",
			username:      "42abc",
			password:      "",
			expectedError: service.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedRole, resp.Role)
			assert.Equal(t, tt.username, resp.Subject)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, int64(3600), resp.ExpiresIn)
		})
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	cfg := testAuthConfig(t)
	svc := service.NewAuthService(cfg)

	t.Run("accepts its own tokens", func(t *testing.T) {
		resp, err := svc.Login("420000123", "")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "420000123", claims.Subject)
		assert.Equal(t, dto.RoleStudent, claims.Role)
		assert.True(t, claims.IsStudent())
	})

	t.Run("rejects tokens signed with another key", func(t *testing.T) {
		other := service.NewTokenService(service.TokenConfig{SecretKey: "other-secret", TokenTTL: time.Hour})
		token, err := other.IssueToken("admin", dto.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		claims, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		expired := service.NewTokenService(service.TokenConfig{SecretKey: cfg.JWTSecretKey, TokenTTL: -time.Minute})
		token, err := expired.IssueToken("42", dto.RoleStudent)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
		assert.Nil(t, claims)
	})
}
