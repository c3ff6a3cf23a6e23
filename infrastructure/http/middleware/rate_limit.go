package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/metrics"
	"github.com/pradera/pradera/infrastructure/service/logger"
	"github.com/pradera/pradera/infrastructure/service/ratelimit"
)

// RateLimitMiddleware throttles login attempts per client IP. Failed attempts
// are counted; once the count reaches the limit the IP is blocked. Limiter
// errors let the request through.
type RateLimitMiddleware struct {
	rateLimitService ratelimit.RateLimitService
	logger           logger.Logger
	metrics          *metrics.Metrics
	limit            int
	window           time.Duration
	blockDuration    time.Duration
}

func NewRateLimitMiddleware(service ratelimit.RateLimitService, cfg ratelimit.RateLimitConfig, log logger.Logger, m *metrics.Metrics) *RateLimitMiddleware {
	mw := &RateLimitMiddleware{
		rateLimitService: service,
		logger:           log,
		metrics:          m,
		limit:            cfg.IPAttempts,
		window:           cfg.IPWindow,
		blockDuration:    cfg.BlockDuration,
	}
	if mw.limit <= 0 {
		mw.limit = 5
	}
	if mw.window <= 0 {
		mw.window = 15 * time.Minute
	}
	if mw.blockDuration <= 0 {
		mw.blockDuration = 30 * time.Minute
	}
	return mw
}

func (m *RateLimitMiddleware) LoginThrottle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.rateLimitService == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		clientIP := getClientIP(r)
		key := fmt.Sprintf("login:ip:%s", clientIP)

		blocked, err := m.rateLimitService.IsBlocked(ctx, key)
		if err != nil {
			m.logger.Error(ctx, "Failed to check block status", err, map[string]interface{}{
				"ip":  clientIP,
				"key": key,
			})
		}
		if blocked {
			m.reject(w, r, clientIP, "rate_limit_blocked")
			return
		}

		allowed, err := m.rateLimitService.CheckLimit(ctx, key, m.limit)
		if err != nil {
			m.logger.Error(ctx, "Failed to check rate limit", err, map[string]interface{}{
				"ip":  clientIP,
				"key": key,
			})
			allowed = true
		}
		if !allowed {
			if err := m.rateLimitService.Block(ctx, key, m.blockDuration, "Too many failed login attempts"); err != nil {
				m.logger.Error(ctx, "Failed to block IP", err, map[string]interface{}{
					"ip":  clientIP,
					"key": key,
				})
			}
			m.reject(w, r, clientIP, "rate_limit_exceeded")
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.status >= 200 && rec.status <= 299 {
			return
		}
		if err := m.rateLimitService.Increment(ctx, key, m.window); err != nil {
			m.logger.Error(ctx, "Failed to count login attempt", err, map[string]interface{}{
				"ip":  clientIP,
				"key": key,
			})
		}
	})
}

func (m *RateLimitMiddleware) reject(w http.ResponseWriter, r *http.Request, clientIP, event string) {
	m.metrics.IncLoginThrottled()
	logger.LogSecurityEvent(r.Context(), m.logger, event, "HIGH", map[string]interface{}{
		"ip":        clientIP,
		"path":      r.URL.Path,
		"userAgent": r.UserAgent(),
	})

	w.Header().Set("Retry-After", fmt.Sprintf("%d", int(m.blockDuration.Seconds())))
	response.TooManyRequests(w, "Too many requests. Please try again later.")
}

// getClientIP extracts client IP from request
func getClientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
