package middleware

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/vendascope/vendascope/pkg/contextkeys"
	"github.com/vendascope/vendascope/pkg/httputil"
	"github.com/vendascope/vendascope/pkg/observability"
)

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging logs each request and records HTTP metrics. Metrics may be nil when
// metrics are disabled.
func Logging(logger *observability.Logger, metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			logger.WithFields(map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rw.statusCode,
				"duration_ms": duration.Milliseconds(),
				"request_id":  contextkeys.RequestIDFrom(r.Context()),
			}).Info("request handled")

			if metrics != nil {
				metrics.HTTPRequestsTotal.WithLabelValues(
					r.Method, r.URL.Path, strconv.Itoa(rw.statusCode)).Inc()
				metrics.HTTPRequestDuration.WithLabelValues(
					r.Method, r.URL.Path).Observe(duration.Seconds())
			}
		})
	}
}

// Recovery recovers from handler panics and returns a 500 JSON error.
func Recovery(logger *observability.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.WithFields(map[string]interface{}{
						"panic": err,
						"stack": string(debug.Stack()),
						"path":  r.URL.Path,
					}).Error("handler panic")
					httputil.WriteErrorMessage(w, r, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
