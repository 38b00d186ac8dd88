package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campuskitchen/lunch-service/config"
	"github.com/campuskitchen/lunch-service/internal/domain/dto"
)

// ClaimsWithJWT extends dto.Claims with JWT RegisteredClaims for token generation.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// TokenService provides token-related operations.
type TokenService interface {
	// IssueToken signs a token carrying the given identity.
	IssueToken(subject, role string) (string, error)
	// ValidateToken verifies a token and returns its claims.
	ValidateToken(tokenString string) (*dto.Claims, error)
	// TokenTTL returns the lifetime of issued tokens.
	TokenTTL() time.Duration
}

// TokenServiceImpl implements TokenService.
type TokenServiceImpl struct {
	secretKey []byte
	tokenTTL  time.Duration
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey string
	TokenTTL  time.Duration
}

// NewTokenConfigFromAuthConfig creates TokenConfig from config.AuthConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey: authConfig.JWTSecretKey,
		TokenTTL:  authConfig.TokenTTL,
	}
}

// NewTokenService creates a new token service.
func NewTokenService(cfg TokenConfig) TokenService {
	return &TokenServiceImpl{
		secretKey: []byte(cfg.SecretKey),
		tokenTTL:  cfg.TokenTTL,
	}
}

// IssueToken signs a token carrying the given identity.
func (s *TokenServiceImpl) IssueToken(subject, role string) (string, error) {
	now := time.Now()

	claims := &ClaimsWithJWT{
		Claims: dto.Claims{
			Subject: subject,
			Role:    role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken verifies a token and returns its claims.
func (s *TokenServiceImpl) ValidateToken(tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claimsWithJWT, ok := token.Claims.(*ClaimsWithJWT); ok && token.Valid {
		return &claimsWithJWT.Claims, nil
	}

	return nil, ErrInvalidToken
}

// TokenTTL returns the lifetime of issued tokens.
func (s *TokenServiceImpl) TokenTTL() time.Duration {
	return s.tokenTTL
}
