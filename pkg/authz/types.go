package authz

// Role identifies a position in the sales-platform organizational hierarchy.
// The set is closed: these five values are the only roles the platform knows.
type Role string

const (
	// RoleSalesperson is the narrowest role, scoped to its own client wallet.
	RoleSalesperson Role = "SALESPERSON"
	// RoleBranchManager manages a single branch (filial).
	RoleBranchManager Role = "BRANCH_MANAGER"
	// RoleRegionalManager manages all branches of one regional.
	RoleRegionalManager Role = "REGIONAL_MANAGER"
	// RoleDirectorateManager manages all regionals of one directorate.
	RoleDirectorateManager Role = "DIRECTORATE_MANAGER"
	// RoleMasterManager has unrestricted visibility plus exclusive
	// system-administration capabilities.
	RoleMasterManager Role = "MASTER_MANAGER"
)

// Permission is a named, atomic capability token. Capabilities are orthogonal
// to data scope: a role either holds a permission everywhere inside its data
// scope, or nowhere.
type Permission string

// User management
const (
	PermViewOwnProfile    Permission = "VIEW_OWN_PROFILE"
	PermEditOwnProfile    Permission = "EDIT_OWN_PROFILE"
	PermViewBranchUsers   Permission = "VIEW_BRANCH_USERS"
	PermViewRegionalUsers Permission = "VIEW_REGIONAL_USERS"
	PermViewAllUsers      Permission = "VIEW_ALL_USERS"
	PermCreateUser        Permission = "CREATE_USER"
	PermEditUser          Permission = "EDIT_USER"
	PermDeactivateUser    Permission = "DEACTIVATE_USER"
	PermResetUserPassword Permission = "RESET_USER_PASSWORD"
)

// Portfolio
const (
	PermViewOwnPortfolio    Permission = "VIEW_OWN_PORTFOLIO"
	PermManageOwnPortfolio  Permission = "MANAGE_OWN_PORTFOLIO"
	PermViewBranchPortfolio Permission = "VIEW_BRANCH_PORTFOLIO"
	PermReassignPortfolio   Permission = "REASSIGN_PORTFOLIO"
)

// Clients
const (
	PermViewOwnClients     Permission = "VIEW_OWN_CLIENTS"
	PermViewAllClients     Permission = "VIEW_ALL_CLIENTS"
	PermCreateClient       Permission = "CREATE_CLIENT"
	PermEditClient         Permission = "EDIT_CLIENT"
	PermTransferClient     Permission = "TRANSFER_CLIENT"
	PermViewClientHistory  Permission = "VIEW_CLIENT_HISTORY"
	PermViewClientContacts Permission = "VIEW_CLIENT_CONTACTS"
)

// Sellers
const (
	PermViewSellers           Permission = "VIEW_SELLERS"
	PermEditSeller            Permission = "EDIT_SELLER"
	PermViewSellerPerformance Permission = "VIEW_SELLER_PERFORMANCE"
	PermCompareSellers        Permission = "COMPARE_SELLERS"
)

// Dashboards and analytics
const (
	PermViewOwnDashboard         Permission = "VIEW_OWN_DASHBOARD"
	PermViewOwnGoals             Permission = "VIEW_OWN_GOALS"
	PermViewBranchDashboard      Permission = "VIEW_BRANCH_DASHBOARD"
	PermViewRegionalDashboard    Permission = "VIEW_REGIONAL_DASHBOARD"
	PermViewDirectorateDashboard Permission = "VIEW_DIRECTORATE_DASHBOARD"
	PermViewGlobalDashboard      Permission = "VIEW_GLOBAL_DASHBOARD"
	PermSetBranchGoals           Permission = "SET_BRANCH_GOALS"
	PermSetRegionalGoals         Permission = "SET_REGIONAL_GOALS"
	PermSetDirectorateGoals      Permission = "SET_DIRECTORATE_GOALS"
	PermApproveGoalOverrides     Permission = "APPROVE_GOAL_OVERRIDES"
	PermCompareBranches          Permission = "COMPARE_BRANCHES"
	PermCompareRegionals         Permission = "COMPARE_REGIONALS"
)

// RFV segmentation
const (
	PermViewOwnRFV         Permission = "VIEW_OWN_RFV"
	PermViewBranchRFV      Permission = "VIEW_BRANCH_RFV"
	PermViewRegionalRFV    Permission = "VIEW_REGIONAL_RFV"
	PermViewDirectorateRFV Permission = "VIEW_DIRECTORATE_RFV"
	PermViewRFVSegments    Permission = "VIEW_RFV_SEGMENTS"
	PermConfigureRFVAlerts Permission = "CONFIGURE_RFV_ALERTS"
	PermConfigureRFVParams Permission = "CONFIGURE_RFV_PARAMETERS"
)

// AI insights
const (
	PermViewAIRecommendations Permission = "VIEW_AI_RECOMMENDATIONS"
	PermViewChurnAlerts       Permission = "VIEW_CHURN_ALERTS"
	PermViewTeamAIInsights    Permission = "VIEW_TEAM_AI_INSIGHTS"
	PermManageAIModels        Permission = "MANAGE_AI_MODELS"
)

// Reporting
const (
	PermViewOwnReports         Permission = "VIEW_OWN_REPORTS"
	PermExportOwnReports       Permission = "EXPORT_OWN_REPORTS"
	PermViewBranchReports      Permission = "VIEW_BRANCH_REPORTS"
	PermExportBranchReports    Permission = "EXPORT_BRANCH_REPORTS"
	PermViewRegionalReports    Permission = "VIEW_REGIONAL_REPORTS"
	PermViewDirectorateReports Permission = "VIEW_DIRECTORATE_REPORTS"
	PermExportGlobalReports    Permission = "EXPORT_GLOBAL_REPORTS"
)

// Agenda and sales funnel
const (
	PermViewOwnAgenda         Permission = "VIEW_OWN_AGENDA"
	PermManageOwnAgenda       Permission = "MANAGE_OWN_AGENDA"
	PermViewTeamAgenda        Permission = "VIEW_TEAM_AGENDA"
	PermViewOwnFunnel         Permission = "VIEW_OWN_FUNNEL"
	PermManageFunnelStages    Permission = "MANAGE_FUNNEL_STAGES"
	PermViewBranchFunnel      Permission = "VIEW_BRANCH_FUNNEL"
	PermViewRegionalFunnel    Permission = "VIEW_REGIONAL_FUNNEL"
	PermViewDirectorateFunnel Permission = "VIEW_DIRECTORATE_FUNNEL"
)

// System administration. These exist only for MASTER_MANAGER; they break the
// otherwise-monotone growth of permission sets along the hierarchy.
const (
	PermManageCompanies      Permission = "MANAGE_COMPANIES"
	PermManageDirectorates   Permission = "MANAGE_DIRECTORATES"
	PermManageRegionals      Permission = "MANAGE_REGIONALS"
	PermManageBranches       Permission = "MANAGE_BRANCHES"
	PermManageRoles          Permission = "MANAGE_ROLES"
	PermManageSystemSettings Permission = "MANAGE_SYSTEM_SETTINGS"
	PermManageIntegrations   Permission = "MANAGE_INTEGRATIONS"
	PermViewAuditLogs        Permission = "VIEW_AUDIT_LOGS"
	PermRunDataSync          Permission = "RUN_DATA_SYNC"
	PermImpersonateUser      Permission = "IMPERSONATE_USER"
)
