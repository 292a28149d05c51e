package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the authorization service
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Authorization metrics
	AuthzDecisionsTotal   *prometheus.CounterVec
	ScopeDerivationsTotal *prometheus.CounterVec
	FilteredItemsTotal    *prometheus.CounterVec
	RouteGateTotal        *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vendascope_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vendascope_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		AuthzDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vendascope_authz_decisions_total",
				Help: "Authorization decisions by operation, outcome, and caller role",
			},
			[]string{"operation", "outcome", "role"},
		),
		ScopeDerivationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vendascope_scope_derivations_total",
				Help: "Scopes derived from inbound identity attributes, by resolved role",
			},
			[]string{"role"},
		),
		FilteredItemsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vendascope_filtered_items_total",
				Help: "Items kept or dropped by collection filtering",
			},
			[]string{"role", "result"},
		),
		RouteGateTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vendascope_route_gate_total",
				Help: "Route-permission gate outcomes, including fail-open unmapped routes",
			},
			[]string{"outcome"},
		),
		registry: registry,
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AuthzDecisionsTotal,
		m.ScopeDerivationsTotal,
		m.FilteredItemsTotal,
		m.RouteGateTotal,
	)

	return m
}

// RecordDecision increments the decision counter for one authorization check.
func (m *Metrics) RecordDecision(operation string, allowed bool, role string) {
	outcome := "deny"
	if allowed {
		outcome = "allow"
	}
	m.AuthzDecisionsTotal.WithLabelValues(operation, outcome, role).Inc()
}

// Handler returns the Prometheus scrape handler for this metrics registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
