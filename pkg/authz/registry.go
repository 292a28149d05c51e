package authz

// PermissionSet is an immutable set of permissions. Treat values returned by
// this package as read-only; they are shared across requests.
type PermissionSet map[Permission]struct{}

// Has reports whether the set contains the permission.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// List returns the set's members as a slice, in unspecified order.
func (s PermissionSet) List() []Permission {
	out := make([]Permission, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	return out
}

func newSet(perms ...Permission) PermissionSet {
	s := make(PermissionSet, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// grow returns a new set containing everything in base plus extra. Manager
// sets are built by growing the next-narrower role's set, so each role's
// permissions contain the previous role's by construction.
func grow(base PermissionSet, extra ...Permission) PermissionSet {
	s := make(PermissionSet, len(base)+len(extra))
	for p := range base {
		s[p] = struct{}{}
	}
	for _, p := range extra {
		s[p] = struct{}{}
	}
	return s
}

var salespersonPermissions = newSet(
	PermViewOwnProfile,
	PermEditOwnProfile,
	PermViewOwnPortfolio,
	PermManageOwnPortfolio,
	PermViewOwnClients,
	PermCreateClient,
	PermEditClient,
	PermViewClientHistory,
	PermViewClientContacts,
	PermViewOwnDashboard,
	PermViewOwnGoals,
	PermViewOwnRFV,
	PermViewRFVSegments,
	PermViewAIRecommendations,
	PermViewChurnAlerts,
	PermViewOwnReports,
	PermExportOwnReports,
	PermViewOwnAgenda,
	PermManageOwnAgenda,
	PermViewOwnFunnel,
	PermManageFunnelStages,
)

var branchManagerPermissions = grow(salespersonPermissions,
	PermViewBranchUsers,
	PermCreateUser,
	PermEditUser,
	PermDeactivateUser,
	PermResetUserPassword,
	PermViewBranchPortfolio,
	PermReassignPortfolio,
	PermTransferClient,
	PermViewSellers,
	PermEditSeller,
	PermViewSellerPerformance,
	PermCompareSellers,
	PermViewBranchDashboard,
	PermSetBranchGoals,
	PermViewBranchRFV,
	PermConfigureRFVAlerts,
	PermViewTeamAIInsights,
	PermViewBranchReports,
	PermExportBranchReports,
	PermViewTeamAgenda,
	PermViewBranchFunnel,
)

var regionalManagerPermissions = grow(branchManagerPermissions,
	PermViewRegionalUsers,
	PermViewRegionalDashboard,
	PermSetRegionalGoals,
	PermCompareBranches,
	PermViewRegionalRFV,
	PermViewRegionalReports,
	PermViewRegionalFunnel,
)

var directorateManagerPermissions = grow(regionalManagerPermissions,
	PermViewAllUsers,
	PermViewAllClients,
	PermViewDirectorateDashboard,
	PermSetDirectorateGoals,
	PermApproveGoalOverrides,
	PermCompareRegionals,
	PermViewDirectorateRFV,
	PermViewDirectorateReports,
	PermViewDirectorateFunnel,
)

var masterManagerPermissions = grow(directorateManagerPermissions,
	PermViewGlobalDashboard,
	PermExportGlobalReports,
	PermConfigureRFVParams,
	PermManageAIModels,
	PermManageCompanies,
	PermManageDirectorates,
	PermManageRegionals,
	PermManageBranches,
	PermManageRoles,
	PermManageSystemSettings,
	PermManageIntegrations,
	PermViewAuditLogs,
	PermRunDataSync,
	PermImpersonateUser,
)

var rolePermissions = map[Role]PermissionSet{
	RoleSalesperson:        salespersonPermissions,
	RoleBranchManager:      branchManagerPermissions,
	RoleRegionalManager:    regionalManagerPermissions,
	RoleDirectorateManager: directorateManagerPermissions,
	RoleMasterManager:      masterManagerPermissions,
}

var emptyPermissions = PermissionSet{}

// PermissionsOf returns the permission set granted to role. An unknown role
// yields an empty set, never an error: callers must treat "no permissions" as
// "deny everything".
func PermissionsOf(role Role) PermissionSet {
	if s, ok := rolePermissions[role]; ok {
		return s
	}
	return emptyPermissions
}

// RoleExists reports whether role is one of the five platform roles.
func RoleExists(role Role) bool {
	_, ok := rolePermissions[role]
	return ok
}

// Roles returns the five platform roles ordered from narrowest to widest
// visibility.
func Roles() []Role {
	return []Role{
		RoleSalesperson,
		RoleBranchManager,
		RoleRegionalManager,
		RoleDirectorateManager,
		RoleMasterManager,
	}
}
