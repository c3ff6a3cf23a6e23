package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/http/validator"
	"github.com/pradera/pradera/infrastructure/metrics"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

var (
	ErrMissingToken    = errors.New("authorization header required")
	ErrMalformedHeader = errors.New("invalid authorization header format")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

type authUserKey struct{}

// Authenticate decides whether an Authorization header value carries a valid
// bearer token and returns its claims.
func Authenticate(tokens outbound.TokenService, header string) (*outbound.TokenClaims, error) {
	if header == "" {
		return nil, ErrMissingToken
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, ErrMalformedHeader
	}

	if !validator.ValidateJWT(parts[1]) {
		return nil, ErrInvalidToken
	}
	claims, err := tokens.ValidateAccessToken(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type AuthMiddleware struct {
	tokenService outbound.TokenService
	logger       logger.Logger
	metrics      *metrics.Metrics
}

func NewAuthMiddleware(tokenService outbound.TokenService, log logger.Logger, m *metrics.Metrics) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		logger:       log,
		metrics:      m,
	}
}

// RequireAuth rejects requests without a valid bearer token with a 401
// envelope. Accepted requests carry the claims in their context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := Authenticate(m.tokenService, r.Header.Get("Authorization"))
		if err != nil {
			m.metrics.IncAuthRejected(rejectReason(err))
			m.logger.Debug(r.Context(), "Request rejected by auth gate", map[string]interface{}{
				"path":   r.URL.Path,
				"reason": err.Error(),
			})
			response.Unauthorized(w, rejectMessage(err))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserClaims(r.Context(), claims)))
	})
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingToken):
		return "missing_token"
	case errors.Is(err, ErrMalformedHeader):
		return "malformed_header"
	}
	return "invalid_token"
}

func rejectMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingToken):
		return "Authorization header required"
	case errors.Is(err, ErrMalformedHeader):
		return "Invalid authorization header format"
	}
	return "Invalid or expired token"
}

// WithUserClaims stores claims on ctx.
func WithUserClaims(ctx context.Context, claims *outbound.TokenClaims) context.Context {
	return context.WithValue(ctx, authUserKey{}, claims)
}

// GetUserClaims retrieves user claims from context
func GetUserClaims(ctx context.Context) *outbound.TokenClaims {
	if claims, ok := ctx.Value(authUserKey{}).(*outbound.TokenClaims); ok {
		return claims
	}
	return nil
}
