// Package routes holds the static route-to-permission table consulted by the
// transport layer before a handler runs.
//
// The table is an ordered list of path prefixes; the first matching prefix
// wins, so more specific prefixes must be listed before the general ones they
// extend. Requirements are OR semantics: holding any one listed permission
// admits the caller.
//
// The table is built at process start and read-only afterwards.
package routes

import (
	"strings"

	"github.com/vendascope/vendascope/pkg/authz"
)

// Entry maps a path prefix to the permissions that may enter it.
type Entry struct {
	Prefix      string
	Required    []authz.Permission
	Description string
}

// The order matters: first prefix match wins.
var table = []Entry{
	{
		Prefix:      "/api/v1/admin",
		Required:    []authz.Permission{authz.PermManageSystemSettings},
		Description: "system administration",
	},
	{
		Prefix:      "/api/v1/users",
		Required:    []authz.Permission{authz.PermViewBranchUsers, authz.PermViewRegionalUsers, authz.PermViewAllUsers},
		Description: "user management",
	},
	{
		Prefix:      "/api/v1/profile",
		Required:    []authz.Permission{authz.PermViewOwnProfile},
		Description: "own profile",
	},
	{
		Prefix:      "/api/v1/portfolio/reassign",
		Required:    []authz.Permission{authz.PermReassignPortfolio},
		Description: "portfolio reassignment",
	},
	{
		Prefix:      "/api/v1/portfolio",
		Required:    []authz.Permission{authz.PermViewOwnPortfolio, authz.PermViewBranchPortfolio},
		Description: "portfolio",
	},
	{
		Prefix:      "/api/v1/clients/transfer",
		Required:    []authz.Permission{authz.PermTransferClient},
		Description: "client transfer",
	},
	{
		Prefix:      "/api/v1/clients",
		Required:    []authz.Permission{authz.PermViewOwnClients, authz.PermViewAllClients},
		Description: "clients",
	},
	{
		Prefix:      "/api/v1/sellers",
		Required:    []authz.Permission{authz.PermViewSellers},
		Description: "sellers",
	},
	{
		Prefix: "/api/v1/dashboards",
		Required: []authz.Permission{
			authz.PermViewOwnDashboard,
			authz.PermViewBranchDashboard,
			authz.PermViewRegionalDashboard,
			authz.PermViewDirectorateDashboard,
			authz.PermViewGlobalDashboard,
		},
		Description: "dashboards and analytics",
	},
	{
		Prefix:      "/api/v1/goals",
		Required:    []authz.Permission{authz.PermViewOwnGoals, authz.PermSetBranchGoals},
		Description: "goals",
	},
	{
		Prefix:      "/api/v1/rfv/settings",
		Required:    []authz.Permission{authz.PermConfigureRFVParams},
		Description: "RFV parameter tuning",
	},
	{
		Prefix:      "/api/v1/rfv",
		Required:    []authz.Permission{authz.PermViewOwnRFV, authz.PermViewRFVSegments},
		Description: "RFV segmentation",
	},
	{
		Prefix:      "/api/v1/insights",
		Required:    []authz.Permission{authz.PermViewAIRecommendations, authz.PermViewTeamAIInsights},
		Description: "AI insights",
	},
	{
		Prefix: "/api/v1/reports",
		Required: []authz.Permission{
			authz.PermViewOwnReports,
			authz.PermViewBranchReports,
			authz.PermViewRegionalReports,
			authz.PermViewDirectorateReports,
		},
		Description: "reporting",
	},
	{
		Prefix:      "/api/v1/agenda",
		Required:    []authz.Permission{authz.PermViewOwnAgenda, authz.PermViewTeamAgenda},
		Description: "agenda",
	},
	{
		Prefix:      "/api/v1/funnel",
		Required:    []authz.Permission{authz.PermViewOwnFunnel, authz.PermViewBranchFunnel},
		Description: "sales funnel",
	},
}

// Table returns the route permission table for inspection and documentation
// endpoints. Callers must not modify the returned entries.
func Table() []Entry {
	return table
}

// RequiredPermissions returns the permission set gating path, or nil when no
// prefix matches.
func RequiredPermissions(path string) []authz.Permission {
	for _, e := range table {
		if strings.HasPrefix(path, e.Prefix) {
			return e.Required
		}
	}
	return nil
}

// IsRouteAllowed reports whether a caller holding the given permissions may
// enter path. Any one required permission is enough.
func IsRouteAllowed(path string, held authz.PermissionSet) bool {
	required := RequiredPermissions(path)
	if required == nil {
		return allowUnmapped()
	}
	for _, p := range required {
		if held.Has(p) {
			return true
		}
	}
	return false
}

// allowUnmapped is the policy for paths absent from the table. The platform
// has always failed open here so that new endpoints work before the table
// catches up. Flip this in one place when that posture changes.
// TODO(authz hardening): default unmapped routes to deny once every public
// endpoint has a table entry.
func allowUnmapped() bool {
	return true
}
