package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the API. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	AuditWritten        *prometheus.CounterVec
	AuditWriteFailures  *prometheus.CounterVec
	AuthRejected        *prometheus.CounterVec
	LoginThrottled      prometheus.Counter
	ReportBuildDuration *prometheus.HistogramVec
}

// New creates a registry with the process and Go collectors plus the API
// metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pradera_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pradera_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AuditWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pradera_audit_records_written_total",
			Help: "Total number of audit records persisted",
		}, []string{"action", "entity"}),
		AuditWriteFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pradera_audit_write_failures_total",
			Help: "Total number of audit records that could not be persisted",
		}, []string{"action", "entity"}),
		AuthRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pradera_auth_rejected_total",
			Help: "Total number of requests rejected by the auth gate",
		}, []string{"reason"}),
		LoginThrottled: factory.NewCounter(prometheus.CounterOpts{
			Name: "pradera_login_throttled_total",
			Help: "Total number of login attempts refused by the rate limiter",
		}),
		ReportBuildDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pradera_report_build_duration_seconds",
			Help:    "Time spent assembling reports",
			Buckets: prometheus.DefBuckets,
		}, []string{"report"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncAuditWritten(action, entity string) {
	if m == nil {
		return
	}
	m.AuditWritten.WithLabelValues(action, entity).Inc()
}

func (m *Metrics) IncAuditWriteFailure(action, entity string) {
	if m == nil {
		return
	}
	m.AuditWriteFailures.WithLabelValues(action, entity).Inc()
}

func (m *Metrics) IncAuthRejected(reason string) {
	if m == nil {
		return
	}
	m.AuthRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncLoginThrottled() {
	if m == nil {
		return
	}
	m.LoginThrottled.Inc()
}

func (m *Metrics) ObserveReport(report string, duration time.Duration) {
	if m == nil {
		return
	}
	m.ReportBuildDuration.WithLabelValues(report).Observe(duration.Seconds())
}
