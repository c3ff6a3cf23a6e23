package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/infrastructure/config"
)

var testClaims = outbound.TokenClaims{UserID: "user-123", Email: "ana@pradera.cl", Role: "SUPERVISOR"}

func newTestService(t *testing.T, secret string, now time.Time) *JWTService {
	t.Helper()
	service, err := NewJWTService(&config.Config{JWTSecret: secret, JWTExpiration: 8 * time.Hour})
	require.NoError(t, err)
	return service.WithClock(func() time.Time { return now })
}

func TestJWTService(t *testing.T) {
	issued := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	service := newTestService(t, "test-secret", issued)

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := service.GenerateAccessToken(testClaims)
		require.NoError(t, err)
		assert.Len(t, strings.Split(token, "."), 3)

		claims, err := service.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
		assert.Equal(t, "ana@pradera.cl", claims.Email)
		assert.Equal(t, "SUPERVISOR", claims.Role)
		assert.True(t, claims.IssuedAt.Equal(issued))
		assert.True(t, claims.ExpiresAt.Equal(issued.Add(8*time.Hour)))
	})

	t.Run("ExpiresAtBoundary", func(t *testing.T) {
		token, err := service.GenerateAccessTokenWithTTL(testClaims, time.Hour)
		require.NoError(t, err)

		before := newTestService(t, "test-secret", issued.Add(time.Hour-time.Second))
		_, err = before.ValidateAccessToken(token)
		assert.NoError(t, err)

		at := newTestService(t, "test-secret", issued.Add(time.Hour))
		_, err = at.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("NonPositiveTTL", func(t *testing.T) {
		for _, ttl := range []time.Duration{0, -time.Minute} {
			token, err := service.GenerateAccessTokenWithTTL(testClaims, ttl)
			require.NoError(t, err)

			_, err = service.ValidateAccessToken(token)
			assert.ErrorIs(t, err, ErrTokenExpired)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := service.GenerateAccessToken(testClaims)
		require.NoError(t, err)

		other := newTestService(t, "other-secret", issued)
		_, err = other.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.False(t, errors.Is(err, ErrTokenExpired))
	})

	t.Run("TamperedPayload", func(t *testing.T) {
		token, err := service.GenerateAccessToken(testClaims)
		require.NoError(t, err)

		forged, err := service.GenerateAccessToken(outbound.TokenClaims{UserID: "admin", Role: "ADMIN"})
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		parts[1] = strings.Split(forged, ".")[1]
		_, err = service.ValidateAccessToken(strings.Join(parts, "."))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, token := range []string{"", "invalid-token", "a.b", "a.b.c.d"} {
			_, err := service.ValidateAccessToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken, token)
		}
	})

	t.Run("WrongAlgorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
			"id":  "user-123",
			"exp": issued.Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = service.ValidateAccessToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("MissingExpiry", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "user-123"})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = service.ValidateAccessToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.ErrorIs(t, err, ErrMissingSecret)
}
