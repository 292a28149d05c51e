package middleware

import (
	"fmt"
	"net/http"

	"github.com/vendascope/vendascope/pkg/authz"
	"github.com/vendascope/vendascope/pkg/httputil"
	"github.com/vendascope/vendascope/pkg/observability"
	"github.com/vendascope/vendascope/pkg/routes"
)

// RoutePermissions gates requests through the static route-permission table.
// Unmapped paths pass through; see routes.IsRouteAllowed.
func RoutePermissions(metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := ScopeFromRequest(r)
			held := authz.PermissionsOf(s.Role)

			allowed := routes.IsRouteAllowed(r.URL.Path, held)
			if metrics != nil {
				outcome := "deny"
				if allowed {
					outcome = "allow"
					if routes.RequiredPermissions(r.URL.Path) == nil {
						outcome = "allow_unmapped"
					}
				}
				metrics.RouteGateTotal.WithLabelValues(outcome).Inc()
			}

			if !allowed {
				httputil.WriteForbidden(w, r, fmt.Sprintf(
					"Você não tem permissão para acessar este recurso. Seu perfil atual é %s.",
					s.Role.Translate()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission wraps a handler with a single-permission capability
// guard. Denials surface the evaluator's translated message: 401 for an
// unauthenticated caller, 403 for a recognized role lacking the capability.
func RequirePermission(perm authz.Permission, metrics *observability.Metrics) func(http.Handler) http.Handler {
	return guardMiddleware(authz.RequirePermission(perm), metrics)
}

// RequireAnyPermission wraps a handler with an any-of capability guard.
func RequireAnyPermission(metrics *observability.Metrics, perms ...authz.Permission) func(http.Handler) http.Handler {
	return guardMiddleware(authz.RequireAnyPermission(perms...), metrics)
}

func guardMiddleware(guard authz.Guard, metrics *observability.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := ScopeFromRequest(r)
			decision := guard.Evaluate(s.Role)

			if metrics != nil {
				metrics.RecordDecision("guard", decision.Allowed, string(s.Role))
			}

			if !decision.Allowed {
				status := http.StatusForbidden
				if !authz.RoleExists(s.Role) {
					status = http.StatusUnauthorized
				}
				httputil.WriteErrorMessage(w, r, status, decision.Error)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
