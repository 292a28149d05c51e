package scopefilter

import (
	"github.com/vendascope/vendascope/pkg/authz"
	"github.com/vendascope/vendascope/pkg/scope"
)

// FieldMap tells the engine which column or field name the current call site
// uses for each hierarchy level. Different data services name these fields
// differently (filial_id, branch_id, idFilial), so the caller owns the
// mapping. A level left empty is not constrainable at that call site.
type FieldMap struct {
	User        string
	Branch      string
	Regional    string
	Directorate string
}

// ApplyToConstraints adds the scope's narrowing constraint to a caller-built
// constraint map. At most one equality constraint is added, keyed by the
// role's level in the field map; the salesperson role prefers the user-mapped
// field over branch when the call site configures both. Existing caller
// constraints are never removed or overwritten from under the caller: the
// result is a fresh map.
func ApplyToConstraints(base map[string]any, s scope.UserScope, fields FieldMap) map[string]any {
	out := make(map[string]any, len(base)+1)
	for k, v := range base {
		out[k] = v
	}

	switch s.Role {
	case authz.RoleSalesperson:
		if fields.User != "" && s.UserID != nil {
			out[fields.User] = *s.UserID
		} else if fields.Branch != "" && s.BranchID != nil {
			out[fields.Branch] = *s.BranchID
		}
	case authz.RoleBranchManager:
		if fields.Branch != "" && s.BranchID != nil {
			out[fields.Branch] = *s.BranchID
		}
	case authz.RoleRegionalManager:
		if fields.Regional != "" && s.RegionalID != nil {
			out[fields.Regional] = *s.RegionalID
		}
	case authz.RoleDirectorateManager:
		if fields.Directorate != "" && s.DirectorateID != nil {
			out[fields.Directorate] = *s.DirectorateID
		}
	case authz.RoleMasterManager:
		// No constraint.
	}

	return out
}
