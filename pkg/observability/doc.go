// Package observability provides structured logging, Prometheus metrics,
// health probes, optional OpenTelemetry tracing, and graceful shutdown for
// the authorization service.
//
// The Metrics type carries the service's decision-level counters: every
// capability check, entity validation, and route gate records its outcome and
// the caller's role, which is how operators watch for unexpected denial
// spikes after a permission-table change.
package observability
