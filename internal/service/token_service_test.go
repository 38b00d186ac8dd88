package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskitchen/lunch-service/internal/domain/dto"
	"github.com/campuskitchen/lunch-service/internal/service"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := service.NewTokenService(service.TokenConfig{
		SecretKey: "test-secret",
		TokenTTL:  30 * time.Minute,
	})

	token, err := svc.IssueToken("admin", dto.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, dto.RoleAdmin, claims.Role)
	assert.True(t, claims.IsAdmin())
}

func TestTokenService_TokenTTL(t *testing.T) {
	svc := service.NewTokenService(service.TokenConfig{
		SecretKey: "test-secret",
		TokenTTL:  12 * time.Hour,
	})

	assert.Equal(t, 12*time.Hour, svc.TokenTTL())
}

func TestTokenService_ValidateToken_TamperedToken(t *testing.T) {
	svc := service.NewTokenService(service.TokenConfig{
		SecretKey: "test-secret",
		TokenTTL:  time.Hour,
	})

	token, err := svc.IssueToken("42", dto.RoleStudent)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token + "x")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Nil(t, claims)
}
