package authz

import "strings"

// The platform UI is pt-BR; denial messages surface these labels directly.

var roleLabels = map[Role]string{
	RoleSalesperson:        "Vendedor",
	RoleBranchManager:      "Gestor de Filial",
	RoleRegionalManager:    "Gestor Regional",
	RoleDirectorateManager: "Gestor de Diretoria",
	RoleMasterManager:      "Administrador Master",
}

var permissionLabels = map[Permission]string{
	PermViewOwnProfile:    "visualizar o próprio perfil",
	PermEditOwnProfile:    "editar o próprio perfil",
	PermViewBranchUsers:   "visualizar usuários da filial",
	PermViewRegionalUsers: "visualizar usuários da regional",
	PermViewAllUsers:      "visualizar todos os usuários",
	PermCreateUser:        "criar usuários",
	PermEditUser:          "editar usuários",
	PermDeactivateUser:    "desativar usuários",
	PermResetUserPassword: "redefinir senha de usuários",

	PermViewOwnPortfolio:    "visualizar a própria carteira",
	PermManageOwnPortfolio:  "gerenciar a própria carteira",
	PermViewBranchPortfolio: "visualizar carteiras da filial",
	PermReassignPortfolio:   "redistribuir carteiras",

	PermViewOwnClients:     "visualizar os próprios clientes",
	PermViewAllClients:     "visualizar todos os clientes",
	PermCreateClient:       "cadastrar clientes",
	PermEditClient:         "editar clientes",
	PermTransferClient:     "transferir clientes",
	PermViewClientHistory:  "visualizar histórico de clientes",
	PermViewClientContacts: "visualizar contatos de clientes",

	PermViewSellers:           "visualizar vendedores",
	PermEditSeller:            "editar vendedores",
	PermViewSellerPerformance: "visualizar desempenho de vendedores",
	PermCompareSellers:        "comparar vendedores",

	PermViewOwnDashboard:         "visualizar o próprio painel",
	PermViewOwnGoals:             "visualizar as próprias metas",
	PermViewBranchDashboard:      "visualizar o painel da filial",
	PermViewRegionalDashboard:    "visualizar o painel da regional",
	PermViewDirectorateDashboard: "visualizar o painel da diretoria",
	PermViewGlobalDashboard:      "visualizar o painel global",
	PermSetBranchGoals:           "definir metas da filial",
	PermSetRegionalGoals:         "definir metas da regional",
	PermSetDirectorateGoals:      "definir metas da diretoria",
	PermApproveGoalOverrides:     "aprovar ajustes de metas",
	PermCompareBranches:          "comparar filiais",
	PermCompareRegionals:         "comparar regionais",

	PermViewOwnRFV:         "visualizar o próprio RFV",
	PermViewBranchRFV:      "visualizar RFV da filial",
	PermViewRegionalRFV:    "visualizar RFV da regional",
	PermViewDirectorateRFV: "visualizar RFV da diretoria",
	PermViewRFVSegments:    "visualizar segmentos RFV",
	PermConfigureRFVAlerts: "configurar alertas RFV",
	PermConfigureRFVParams: "configurar parâmetros RFV",

	PermViewAIRecommendations: "visualizar recomendações de IA",
	PermViewChurnAlerts:       "visualizar alertas de churn",
	PermViewTeamAIInsights:    "visualizar insights de IA da equipe",
	PermManageAIModels:        "gerenciar modelos de IA",

	PermViewOwnReports:         "visualizar os próprios relatórios",
	PermExportOwnReports:       "exportar os próprios relatórios",
	PermViewBranchReports:      "visualizar relatórios da filial",
	PermExportBranchReports:    "exportar relatórios da filial",
	PermViewRegionalReports:    "visualizar relatórios da regional",
	PermViewDirectorateReports: "visualizar relatórios da diretoria",
	PermExportGlobalReports:    "exportar relatórios globais",

	PermViewOwnAgenda:         "visualizar a própria agenda",
	PermManageOwnAgenda:       "gerenciar a própria agenda",
	PermViewTeamAgenda:        "visualizar a agenda da equipe",
	PermViewOwnFunnel:         "visualizar o próprio funil",
	PermManageFunnelStages:    "gerenciar etapas do funil",
	PermViewBranchFunnel:      "visualizar o funil da filial",
	PermViewRegionalFunnel:    "visualizar o funil da regional",
	PermViewDirectorateFunnel: "visualizar o funil da diretoria",

	PermManageCompanies:      "gerenciar empresas",
	PermManageDirectorates:   "gerenciar diretorias",
	PermManageRegionals:      "gerenciar regionais",
	PermManageBranches:       "gerenciar filiais",
	PermManageRoles:          "gerenciar perfis de acesso",
	PermManageSystemSettings: "gerenciar configurações do sistema",
	PermManageIntegrations:   "gerenciar integrações",
	PermViewAuditLogs:        "visualizar logs de auditoria",
	PermRunDataSync:          "executar sincronização de dados",
	PermImpersonateUser:      "personificar usuários",
}

// Translate returns the pt-BR label for the role, or a de-slugified form of
// the raw token when no label is registered.
func (r Role) Translate() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return deslug(string(r))
}

// Translate returns the pt-BR label for the permission, or a de-slugified
// form of the raw token when no label is registered.
func (p Permission) Translate() string {
	if label, ok := permissionLabels[p]; ok {
		return label
	}
	return deslug(string(p))
}

// deslug turns "VIEW_ALL_CLIENTS" into "view all clients".
func deslug(token string) string {
	return strings.ToLower(strings.ReplaceAll(token, "_", " "))
}
