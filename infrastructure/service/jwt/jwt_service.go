package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/infrastructure/config"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	// ErrTokenExpired matches ErrInvalidToken under errors.Is.
	ErrTokenExpired  = fmt.Errorf("%w: token expired", ErrInvalidToken)
	ErrMissingSecret = errors.New("jwt secret is required")
)

// JWTService issues and verifies HS256 bearer tokens signed with one
// process-wide secret.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type accessClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func NewJWTService(cfg *config.Config) (*JWTService, error) {
	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	return &JWTService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.JWTExpiration,
		now:    time.Now,
	}, nil
}

// WithClock replaces the time source used for iat, exp and validation.
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

// GenerateAccessToken signs claims with the configured lifetime.
func (s *JWTService) GenerateAccessToken(claims outbound.TokenClaims) (string, error) {
	return s.GenerateAccessTokenWithTTL(claims, s.ttl)
}

// GenerateAccessTokenWithTTL signs claims valid for ttl. A ttl of zero or less
// produces a token that is already expired.
func (s *JWTService) GenerateAccessTokenWithTTL(claims outbound.TokenClaims, ttl time.Duration) (string, error) {
	issuedAt := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ValidateAccessToken verifies signature, algorithm and expiry and returns the
// embedded claims.
func (s *JWTService) ValidateAccessToken(tokenString string) (*outbound.TokenClaims, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, s.handleValidationError(err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	result := &outbound.TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}

func (s *JWTService) handleValidationError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrTokenExpired
	}
	return ErrInvalidToken
}
