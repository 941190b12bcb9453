package services

import (
	"fmt"
	"time"

	"jobsapi/internal/config"
	"jobsapi/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	Issue(userID uuid.UUID, name string) (string, error)
	Verify(token string) (*models.Identity, error)
}

type tokenService struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewTokenService creates a token service signing with cfg.JWTSecret.
func NewTokenService(cfg config.AuthConfig) TokenService {
	return &tokenService{
		secret:   []byte(cfg.JWTSecret),
		lifetime: cfg.JWTLifetime,
		now:      time.Now,
	}
}

// Issue signs {userId, name} with HS256 and an expiry of now + lifetime.
func (s *tokenService) Issue(userID uuid.UUID, name string) (string, error) {
	now := s.now()
	claims := models.TokenClaims{
		UserID: userID.String(),
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the embedded
// identity unchanged. The credential store is not consulted.
func (s *tokenService) Verify(token string) (*models.Identity, error) {
	claims := &models.TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad userId claim", ErrInvalidToken)
	}

	return &models.Identity{UserID: userID, Name: claims.Name}, nil
}
