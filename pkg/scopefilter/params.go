package scopefilter

import (
	"net/url"
	"strconv"

	"github.com/vendascope/vendascope/pkg/authz"
	"github.com/vendascope/vendascope/pkg/scope"
)

// Query-parameter names understood by the platform's data services.
const (
	ParamCompanyID     = "companyId"
	ParamDirectorateID = "directorateId"
	ParamRegionalID    = "regionalId"
	ParamBranchID      = "branchId"
	ParamSalespersonID = "salespersonId"
)

// ScopedParams builds the outbound request parameters that narrow a
// downstream data call to the scope's visibility. Each role contributes only
// its own level's identifier; the company id rides along for every role as a
// tenant guard. MASTER_MANAGER contributes nothing beyond that guard.
func ScopedParams(s scope.UserScope) map[string]string {
	params := map[string]string{}

	switch s.Role {
	case authz.RoleSalesperson:
		// Prefer the salesperson identifier; fall back to the raw user
		// id when the identity service did not resolve one.
		if s.SalespersonID != nil {
			params[ParamSalespersonID] = formatID(s.SalespersonID)
		} else if s.UserID != nil {
			params[ParamSalespersonID] = formatID(s.UserID)
		}
		if s.BranchID != nil {
			params[ParamBranchID] = formatID(s.BranchID)
		}
	case authz.RoleBranchManager:
		if s.BranchID != nil {
			params[ParamBranchID] = formatID(s.BranchID)
		}
	case authz.RoleRegionalManager:
		if s.RegionalID != nil {
			params[ParamRegionalID] = formatID(s.RegionalID)
		}
	case authz.RoleDirectorateManager:
		if s.DirectorateID != nil {
			params[ParamDirectorateID] = formatID(s.DirectorateID)
		}
	case authz.RoleMasterManager:
		// No narrowing.
	}

	if s.CompanyID != nil {
		params[ParamCompanyID] = formatID(s.CompanyID)
	}
	return params
}

// ApplyToURL merges the scope's filter parameters into an existing URL's
// query string. Pre-existing parameters are kept; scope parameters overwrite
// same-named ones. An unparseable URL is returned unchanged rather than
// failing, matching the engine's no-error contract.
func ApplyToURL(rawURL string, s scope.UserScope) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	q := u.Query()
	for name, value := range ScopedParams(s) {
		q.Set(name, value)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func formatID(id *int64) string {
	return strconv.FormatInt(*id, 10)
}
