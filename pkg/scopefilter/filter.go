package scopefilter

import (
	"github.com/vendascope/vendascope/pkg/authz"
	"github.com/vendascope/vendascope/pkg/scope"
)

// FilterCollection narrows an in-memory collection to the items the scope may
// see. It is pure and idempotent; the input slice is never modified.
//
// The per-role defaults are asymmetric on purpose and must stay that way:
// a salesperson is denied any item that carries none of its identifying
// fields, while managers are allowed items that are simply not scoped at
// their granularity. The asymmetry is long-standing observed behavior that
// downstream consumers rely on.
func FilterCollection[T Record](items []T, s scope.UserScope) []T {
	if s.IsMaster() {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if itemVisible(item, s) {
			out = append(out, item)
		}
	}
	return out
}

func itemVisible(item Record, s scope.UserScope) bool {
	// Company is a cross-cutting tenant guard: a mismatch rejects the item
	// no matter what the role-specific rules below would say.
	if idsConflict(s.CompanyID, item.CompanyID()) {
		return false
	}

	switch s.Role {
	case authz.RoleSalesperson:
		// Deny by default: the item must positively match one of the
		// salesperson's identifying fields. Note the salespersonId
		// comparison is against the scope's userId, not its
		// salespersonId; portfolio records store the owning user id
		// under either name.
		if idsEqual(item.UserID(), s.UserID) {
			return true
		}
		if idsEqual(item.SalespersonID(), s.UserID) {
			return true
		}
		if idsEqual(item.BranchID(), s.BranchID) {
			return true
		}
		return false

	case authz.RoleBranchManager:
		// Allow by default: an item not scoped to any branch is visible.
		return !idsConflict(item.BranchID(), s.BranchID)

	case authz.RoleRegionalManager:
		return !idsConflict(item.RegionalID(), s.RegionalID)

	case authz.RoleDirectorateManager:
		return !idsConflict(item.DirectorateID(), s.DirectorateID)

	default:
		return false
	}
}
