package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/infrastructure/config"
	"github.com/pradera/pradera/infrastructure/http/handler"
	"github.com/pradera/pradera/infrastructure/http/middleware"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/metrics"
	"github.com/pradera/pradera/infrastructure/service/logger"
	"github.com/pradera/pradera/infrastructure/service/ratelimit"
)

// Dependencies is everything the HTTP surface is built from.
type Dependencies struct {
	Config  *config.Config
	Logger  logger.Logger
	Metrics *metrics.Metrics

	Tokens      outbound.TokenService
	RateLimiter ratelimit.RateLimitService
	// Ping reports storage health for /health. Nil means always healthy.
	Ping func(ctx context.Context) error

	Auth           inbound.AuthUseCase
	Projects       inbound.ProjectUseCase
	Workers        inbound.WorkerUseCase
	Crews          inbound.CrewUseCase
	Materials      inbound.MaterialUseCase
	SiteLogs       inbound.SiteLogUseCase
	Communications inbound.CommunicationUseCase
	Certificates   inbound.CertificateUseCase
	Planning       inbound.PlanningUseCase
	Reports        inbound.ReportUseCase
	Audit          inbound.AuditUseCase
}

// Router is the composed API handler. Audit must be drained with Wait after
// the server stops accepting requests.
type Router struct {
	http.Handler
	Audit *middleware.AuditMiddleware
}

type registrar interface {
	RegisterRoutes(r *mux.Router, rt handler.Routes)
}

func New(deps Dependencies) *Router {
	cfg := deps.Config
	log := deps.Logger

	authMiddleware := middleware.NewAuthMiddleware(deps.Tokens, log, deps.Metrics)
	auditMiddleware := middleware.NewAuditMiddleware(deps.Audit, log, deps.Metrics, cfg.AuditWriteTimeout)

	routes := handler.Routes{
		Auth:  authMiddleware.RequireAuth,
		Audit: auditMiddleware,
	}
	if deps.RateLimiter != nil {
		throttle := middleware.NewRateLimitMiddleware(deps.RateLimiter, ratelimit.RateLimitConfig{
			IPAttempts:    cfg.RateLimitIPAttempts,
			IPWindow:      cfg.RateLimitIPWindow,
			BlockDuration: cfg.RateLimitBlockDuration,
		}, log, deps.Metrics)
		routes.LoginThrottle = throttle.LoginThrottle
	}

	r := handler.EnvelopeErrors(mux.NewRouter())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log, deps.Metrics, cfg.LogEnableRequestLog))

	r.HandleFunc("/health", health(deps.Ping)).Methods(http.MethodGet)
	if cfg.MetricsEnabled {
		r.Handle("/metrics", deps.Metrics.Handler()).Methods(http.MethodGet)
	}

	api := handler.EnvelopeErrors(r.PathPrefix("/api").Subrouter())
	handlers := []registrar{
		handler.NewAuthHandler(deps.Auth, log),
		handler.NewProjectHandler(deps.Projects, log),
		handler.NewWorkerHandler(deps.Workers, log),
		handler.NewCrewHandler(deps.Crews, log),
		handler.NewMaterialHandler(deps.Materials, log),
		handler.NewSiteLogHandler(deps.SiteLogs, log),
		handler.NewCommunicationHandler(deps.Communications, log),
		handler.NewCertificateHandler(deps.Certificates, log),
		handler.NewPlanningHandler(deps.Planning, log),
		handler.NewReportHandler(deps.Reports, log),
		handler.NewAuditHandler(deps.Audit, log),
	}
	for _, h := range handlers {
		h.RegisterRoutes(api, routes)
	}

	// CORS sits outside the router so preflight requests never hit method
	// matching.
	var h http.Handler = r
	if cfg.CORSEnabled && len(cfg.CORSAllowedOrigins) > 0 {
		h = middleware.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials)(h)
	}
	h = middleware.BodyLimit(cfg.MaxBodyBytes)(h)
	h = middleware.CorrelationID(cfg.LogCorrelationIDHeader)(h)

	return &Router{Handler: h, Audit: auditMiddleware}
}

func health(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				response.Error(w, http.StatusServiceUnavailable, "unhealthy")
				return
			}
		}
		response.OK(w, "healthy", nil)
	}
}
