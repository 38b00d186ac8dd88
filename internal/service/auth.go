package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/campuskitchen/lunch-service/config"
	"github.com/campuskitchen/lunch-service/internal/domain/dto"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService provides authentication operations.
type AuthService interface {
	// Login authenticates a caller and returns a signed token with its role.
	Login(username, password string) (*dto.LoginResponse, error)
	// ValidateToken verifies a token and returns its claims.
	ValidateToken(tokenString string) (*dto.Claims, error)
}

// AuthServiceImpl implements AuthService.
//
// Two kinds of callers exist. The single kitchen admin logs in with the
// configured username and a bcrypt-checked password. Students identify by
// their numeric campus ID; there is no student password store, holding a
// valid ID is the credential.
type AuthServiceImpl struct {
	adminUsername     string
	adminPasswordHash string
	tokenService      TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(authConfig config.AuthConfig) AuthService {
	tokenService := NewTokenService(NewTokenConfigFromAuthConfig(authConfig))

	return &AuthServiceImpl{
		adminUsername:     authConfig.AdminUsername,
		adminPasswordHash: authConfig.AdminPasswordHash,
		tokenService:      tokenService,
	}
}

// NewAuthServiceWithTokenService creates an authentication service with an
// existing TokenService. Useful for testing.
func NewAuthServiceWithTokenService(authConfig config.AuthConfig, tokenService TokenService) AuthService {
	return &AuthServiceImpl{
		adminUsername:     authConfig.AdminUsername,
		adminPasswordHash: authConfig.AdminPasswordHash,
		tokenService:      tokenService,
	}
}

// Login authenticates a caller and returns a signed token with its role.
func (s *AuthServiceImpl) Login(username, password string) (*dto.LoginResponse, error) {
	role, err := s.authenticate(username, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenService.IssueToken(username, role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		Role:      role,
		Subject:   username,
		ExpiresIn: int64(s.tokenService.TokenTTL().Seconds()),
	}, nil
}

// ValidateToken verifies a token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(tokenString string) (*dto.Claims, error) {
	return s.tokenService.ValidateToken(tokenString)
}

// authenticate maps credentials to a role.
func (s *AuthServiceImpl) authenticate(username, password string) (string, error) {
	if username == s.adminUsername {
		err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password))
		if err != nil {
			return "", ErrInvalidCredentials
		}
		return dto.RoleAdmin, nil
	}

	if isStudentID(username) {
		return dto.RoleStudent, nil
	}

	return "", ErrInvalidCredentials
}

// isStudentID reports whether the username is a campus student ID,
// a non-empty string of digits.
func isStudentID(username string) bool {
	if username == "" {
		return false
	}
	for _, r := range username {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
