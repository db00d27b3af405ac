package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/theroadeldorado/duma-deer-processing-sub000/config"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/dto"
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// ClaimsWithJWT extends dto.StaffClaims with JWT RegisteredClaims for token
// generation and parsing.
type ClaimsWithJWT struct {
	dto.StaffClaims
	jwt.RegisteredClaims
}

// AuthService authenticates shop staff. Customer order submission is open;
// the token only gates the staff endpoints (order management, audit, repair).
// Credentials come from configuration: a single shared staff login with a
// bcrypt password hash, no user store.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*dto.TokenPair, error)
	ValidateToken(tokenString string) (*dto.StaffClaims, error)
}

// AuthServiceImpl implements AuthService.
type AuthServiceImpl struct {
	username     string
	passwordHash string
	secretKey    []byte
	tokenTTL     time.Duration
	audit        AuditService
}

// NewAuthService creates a new authentication service from configuration.
func NewAuthService(cfg config.AuthConfig, audit AuditService) *AuthServiceImpl {
	return &AuthServiceImpl{
		username:     cfg.StaffUsername,
		passwordHash: cfg.StaffPasswordHash,
		secretKey:    []byte(cfg.JWTSecretKey),
		tokenTTL:     cfg.AccessTokenTTL,
		audit:        audit,
	}
}

// Login verifies the staff credentials and returns a signed access token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*dto.TokenPair, error) {
	if s.passwordHash == "" {
		return nil, fmt.Errorf("staff login disabled: no password hash configured")
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password))
	if !usernameMatch || err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.recordLogin(ctx, username)

	return &dto.TokenPair{
		AccessToken: token,
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

// ValidateToken validates an access token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(tokenString string) (*dto.StaffClaims, error) {
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
		return &claimsWithJWT.StaffClaims, nil
	}

	return nil, ErrInvalidToken
}

// generateAccessToken creates a new JWT access token for a staff member.
func (s *AuthServiceImpl) generateAccessToken(username string) (string, error) {
	now := time.Now()

	claims := &ClaimsWithJWT{
		StaffClaims: dto.StaffClaims{
			Username: username,
			Role:     "staff",
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

func (s *AuthServiceImpl) recordLogin(ctx context.Context, username string) {
	if s.audit == nil {
		return
	}
	entry := &model.AuditEntry{
		Timestamp:  time.Now(),
		Level:      "info",
		Message:    "staff login",
		Staff:      username,
		ActionType: model.ActionStaffLogin,
	}
	if err := s.audit.RecordEntry(ctx, entry); err != nil {
		log.Warn().Err(err).Str("staff", username).Msg("Failed to write login audit entry")
	}
}
