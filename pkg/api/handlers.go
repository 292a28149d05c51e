// Package api exposes the authorization engine over HTTP for services that
// cannot link the Go packages directly. Every endpoint derives the caller's
// scope from the identity headers (or the scope middleware, when mounted) and
// answers a single question: may this scope do / see / keep this.
package api

import (
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/vendascope/vendascope/pkg/authz"
	"github.com/vendascope/vendascope/pkg/httputil"
	"github.com/vendascope/vendascope/pkg/middleware"
	"github.com/vendascope/vendascope/pkg/observability"
	"github.com/vendascope/vendascope/pkg/scopefilter"
)

// AuthzHandlers serves the authorization API.
type AuthzHandlers struct {
	logger  *logrus.Logger
	metrics *observability.Metrics
}

// NewAuthzHandlers creates the authorization API handlers.
func NewAuthzHandlers(logger *logrus.Logger, metrics *observability.Metrics) *AuthzHandlers {
	return &AuthzHandlers{logger: logger, metrics: metrics}
}

// RegisterRoutes registers the authorization API routes.
func (h *AuthzHandlers) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/v1/authz/check", h.CheckPermissions).Methods("POST")
	r.HandleFunc("/api/v1/authz/access", h.ValidateAccess).Methods("POST")
	r.HandleFunc("/api/v1/authz/filter", h.FilterCollection).Methods("POST")
	r.HandleFunc("/api/v1/authz/permissions", h.ListPermissions).Methods("GET")
}

// CheckPermissionsRequest asks whether the caller's role holds the named
// permissions. When Any is set one match suffices, otherwise all are required.
type CheckPermissionsRequest struct {
	Permissions []authz.Permission `json:"permissions"`
	Any         bool               `json:"any,omitempty"`
}

// CheckPermissionsResponse carries the decision plus the resolved role so
// callers can log what the engine actually evaluated.
type CheckPermissionsResponse struct {
	Allowed bool       `json:"allowed"`
	Error   string     `json:"error,omitempty"`
	Role    authz.Role `json:"role"`
}

// CheckPermissions evaluates a capability check for the caller's scope.
func (h *AuthzHandlers) CheckPermissions(w http.ResponseWriter, r *http.Request) {
	var req CheckPermissionsRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}
	if len(req.Permissions) == 0 {
		httputil.WriteBadRequest(w, r, "permissions is required")
		return
	}

	s := middleware.ScopeFromRequest(r)

	var guard authz.Guard
	if req.Any {
		guard = authz.RequireAnyPermission(req.Permissions...)
	} else if len(req.Permissions) == 1 {
		guard = authz.RequirePermission(req.Permissions[0])
	} else {
		guard = authz.RequireAllPermissions(req.Permissions...)
	}

	decision := guard.Evaluate(s.Role)
	h.metrics.RecordDecision("check", decision.Allowed, string(s.Role))
	if !decision.Allowed {
		h.logger.WithFields(logrus.Fields{
			"role":        s.Role,
			"permissions": req.Permissions,
		}).Info("Permission check denied")
	}

	httputil.WriteSuccess(w, CheckPermissionsResponse{
		Allowed: decision.Allowed,
		Error:   decision.Error,
		Role:    s.Role,
	})
}

// ValidateAccessRequest carries the hierarchy identifiers of one target
// entity. Absent fields mean the entity is not scoped at that granularity.
type ValidateAccessRequest struct {
	Target scopefilter.RecordFields `json:"target"`
}

// ValidateAccessResponse is the point-wise access decision.
type ValidateAccessResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// ValidateAccess decides whether the caller's scope may access one entity.
func (h *AuthzHandlers) ValidateAccess(w http.ResponseWriter, r *http.Request) {
	var req ValidateAccessRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}

	s := middleware.ScopeFromRequest(r)
	result := scopefilter.Validate(s, req.Target)
	h.metrics.RecordDecision("access", result.Allowed, string(s.Role))

	httputil.WriteSuccess(w, ValidateAccessResponse{
		Allowed: result.Allowed,
		Reason:  result.Reason,
	})
}

// FilterCollectionRequest carries the hierarchy identifiers of each item in a
// collection, in caller order.
type FilterCollectionRequest struct {
	Items []scopefilter.RecordFields `json:"items"`
}

// FilterCollectionResponse returns the visible subset in the original order
// plus the counts on both sides of the cut.
type FilterCollectionResponse struct {
	Items    []scopefilter.RecordFields `json:"items"`
	Total    int                        `json:"total"`
	Filtered int                        `json:"filtered"`
}

// FilterCollection keeps only the items visible to the caller's scope.
func (h *AuthzHandlers) FilterCollection(w http.ResponseWriter, r *http.Request) {
	var req FilterCollectionRequest
	if !httputil.ParseJSONOrError(w, r, &req) {
		return
	}

	s := middleware.ScopeFromRequest(r)
	kept := scopefilter.FilterCollection(req.Items, s)
	if kept == nil {
		kept = []scopefilter.RecordFields{}
	}

	role := string(s.Role)
	h.metrics.FilteredItemsTotal.WithLabelValues(role, "kept").Add(float64(len(kept)))
	h.metrics.FilteredItemsTotal.WithLabelValues(role, "dropped").Add(float64(len(req.Items) - len(kept)))

	httputil.WriteSuccess(w, FilterCollectionResponse{
		Items:    kept,
		Total:    len(req.Items),
		Filtered: len(req.Items) - len(kept),
	})
}

// PermissionEntry pairs a permission with its pt-BR display label.
type PermissionEntry struct {
	Name  authz.Permission `json:"name"`
	Label string           `json:"label"`
}

// ListPermissionsResponse is the caller's full capability set.
type ListPermissionsResponse struct {
	Role        authz.Role        `json:"role"`
	RoleLabel   string            `json:"roleLabel"`
	Permissions []PermissionEntry `json:"permissions"`
}

// ListPermissions returns every permission the caller's role holds, with
// display labels, sorted by permission name.
func (h *AuthzHandlers) ListPermissions(w http.ResponseWriter, r *http.Request) {
	s := middleware.ScopeFromRequest(r)

	perms := authz.PermissionsOf(s.Role).List()
	sort.Slice(perms, func(i, j int) bool { return perms[i] < perms[j] })

	entries := make([]PermissionEntry, 0, len(perms))
	for _, p := range perms {
		entries = append(entries, PermissionEntry{Name: p, Label: p.Translate()})
	}

	httputil.WriteSuccess(w, ListPermissionsResponse{
		Role:        s.Role,
		RoleLabel:   s.Role.Translate(),
		Permissions: entries,
	})
}
