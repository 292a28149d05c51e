package observability

import (
	"encoding/json"
	"net/http"
	"time"
)

const (
	StatusHealthy = "healthy"
)

// HealthStatus is the body returned by the health endpoints.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
}

// HealthChecker serves liveness and readiness probes. The authorization core
// has no external dependencies (its tables are compiled in), so readiness is
// equivalent to liveness; the split endpoints exist for probe configuration
// symmetry with the platform's other services.
type HealthChecker struct {
	version string
}

// NewHealthChecker creates a health checker reporting the given version.
func NewHealthChecker(version string) *HealthChecker {
	return &HealthChecker{version: version}
}

// Liveness always returns 200 while the process is serving.
func (h *HealthChecker) Liveness(w http.ResponseWriter, r *http.Request) {
	h.write(w)
}

// Readiness always returns 200; kept separate from Liveness for probe wiring.
func (h *HealthChecker) Readiness(w http.ResponseWriter, r *http.Request) {
	h.write(w)
}

func (h *HealthChecker) write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(HealthStatus{
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Version:   h.version,
	})
}
