package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	domainerr "github.com/pradera/pradera/domain/error"
	"github.com/pradera/pradera/infrastructure/http/middleware"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

var errTrailingData = errors.New("unexpected data after JSON body")

// Routes carries the middleware every resource handler composes its routes
// with.
type Routes struct {
	// Auth guards a route with the bearer token check.
	Auth func(http.Handler) http.Handler
	// Audit records successful mutations.
	Audit *middleware.AuditMiddleware
	// LoginThrottle limits login attempts. Nil leaves login unthrottled.
	LoginThrottle func(http.Handler) http.Handler
}

func (rt Routes) protected(h http.HandlerFunc) http.Handler {
	return rt.Auth(h)
}

// audited runs the auth gate first so the recorder sees the caller.
func (rt Routes) audited(action entity.AuditAction, entityKind string, h http.HandlerFunc) http.Handler {
	return rt.Auth(rt.Audit.Record(action, entityKind)(h))
}

// EnvelopeErrors makes r answer unmatched paths and methods with the
// response envelope. Subrouters do not inherit these handlers from their
// parent, so every router that owns routes needs them.
func EnvelopeErrors(r *mux.Router) *mux.Router {
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	return r
}

func mount(r *mux.Router, prefix string) *mux.Router {
	return EnvelopeErrors(r.PathPrefix(prefix).Subrouter())
}

// decodeJSON reads exactly one JSON value from the body into dst. Malformed
// input or trailing data answers 400, an oversized body 413.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err == nil {
		if extra := dec.Decode(&struct{}{}); !errors.Is(extra, io.EOF) {
			err = errTrailingData
		}
	}
	switch {
	case err == nil:
		return true
	case middleware.IsBodyTooLarge(err):
		response.Error(w, http.StatusRequestEntityTooLarge, "Request body too large")
	default:
		response.BadRequest(w, "Invalid request body")
	}
	return false
}

func pathParam(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

// actor returns the authenticated caller. Routes behind the auth gate always
// have one.
func actor(w http.ResponseWriter, r *http.Request) (outbound.TokenClaims, bool) {
	claims := middleware.GetUserClaims(r.Context())
	if claims == nil {
		response.Unauthorized(w, "Authorization header required")
		return outbound.TokenClaims{}, false
	}
	return *claims, true
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerr.ErrInvalidValue(name, raw)
	}
	return n, nil
}

// writeError answers with the status of err. Anything that is not a client
// error is logged and reported with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := domainerr.GetHTTPStatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Error(r.Context(), "Request failed", err, map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
		})
		response.InternalServerError(w, "Internal server error")
		return
	}

	message := err.Error()
	var appErr *domainerr.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	response.Error(w, status, message)
}
