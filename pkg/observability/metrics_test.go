package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewMetrics_RegistersAll(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/clients", "200").Inc()
	m.RecordDecision("check", true, "BRANCH_MANAGER")
	m.RecordDecision("check", false, "SALESPERSON")

	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.AuthzDecisionsTotal.WithLabelValues("check", "allow", "BRANCH_MANAGER")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.AuthzDecisionsTotal.WithLabelValues("check", "deny", "SALESPERSON")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics(nil)
	m.RecordDecision("access", false, "SALESPERSON")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "vendascope_authz_decisions_total")
}
