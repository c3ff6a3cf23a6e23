package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/pradera/pradera/infrastructure/metrics"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

const slowRequestThreshold = time.Second

// RequestLogger logs every request and observes its latency. Either
// dependency may be disabled: logRequests=false skips the log line, a nil
// Metrics skips observation. Slow requests are always logged.
func RequestLogger(log logger.Logger, m *metrics.Metrics, logRequests bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			duration := time.Since(start)

			route := "unmatched"
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			m.ObserveRequest(r.Method, route, rec.status, duration)
			if duration >= slowRequestThreshold {
				logger.LogPerformance(r.Context(), log, r.Method+" "+route, duration, map[string]interface{}{"status": rec.status})
			}

			if !logRequests {
				return
			}
			fields := map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       route,
				"status":      rec.status,
				"duration_ms": duration.Milliseconds(),
				"ip":          getClientIP(r),
			}
			if rec.status >= 500 {
				log.Warn(r.Context(), "HTTP request failed", fields)
				return
			}
			log.Info(r.Context(), "HTTP request", fields)
		})
	}
}
