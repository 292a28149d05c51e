package middleware

import (
	"net/http"

	"github.com/vendascope/vendascope/pkg/contextkeys"
	"github.com/vendascope/vendascope/pkg/observability"
	"github.com/vendascope/vendascope/pkg/scope"
)

// ScopeContext derives the request's UserScope from its identity headers and
// stores it on the context. Derivation never fails; requests without identity
// headers proceed with a salesperson scope carrying no identifiers, which the
// downstream guards and filters treat as minimally privileged.
func ScopeContext(metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := scope.FromHeaders(r.Header)
			if metrics != nil {
				metrics.ScopeDerivationsTotal.WithLabelValues(string(s.Role)).Inc()
			}
			ctx := contextkeys.WithScope(r.Context(), s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ScopeFromRequest extracts the derived scope from the request, deriving it
// on the spot when the middleware did not run. Handlers should prefer this
// over reading the context key directly.
func ScopeFromRequest(r *http.Request) scope.UserScope {
	if s, ok := contextkeys.ScopeFrom(r.Context()); ok {
		return s
	}
	return scope.FromHeaders(r.Header)
}
