package scopefilter

import (
	"github.com/vendascope/vendascope/pkg/authz"
	"github.com/vendascope/vendascope/pkg/scope"
)

// AccessResult is a point-wise authorization decision for a single entity.
// Reason is a terse machine-facing string meant for API error bodies, not for
// UI display.
type AccessResult struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// Denial reasons.
const (
	ReasonDifferentCompany     = "different company"
	ReasonDifferentBranch      = "different branch"
	ReasonDifferentRegional    = "different regional"
	ReasonDifferentDirectorate = "different directorate"
	ReasonDifferentUser        = "different user"
	ReasonUnknownRole          = "unknown role"
)

// Validate decides whether the scope may access one concrete entity.
//
// The manager branches mirror FilterCollection: an absent target field means
// the entity is not scoped at that granularity and is accessible. The
// salesperson branch is laxer than the collection filter's default-deny: it
// only denies when the target carries a userId that differs from the scope's.
// The divergence is observed production behavior; keep the two in their
// respective shapes.
func Validate(s scope.UserScope, target Record) AccessResult {
	if s.IsMaster() {
		return AccessResult{Allowed: true}
	}

	if idsConflict(s.CompanyID, target.CompanyID()) {
		return AccessResult{Allowed: false, Reason: ReasonDifferentCompany}
	}

	switch s.Role {
	case authz.RoleSalesperson:
		if idsConflict(s.UserID, target.UserID()) {
			return AccessResult{Allowed: false, Reason: ReasonDifferentUser}
		}
	case authz.RoleBranchManager:
		if idsConflict(s.BranchID, target.BranchID()) {
			return AccessResult{Allowed: false, Reason: ReasonDifferentBranch}
		}
	case authz.RoleRegionalManager:
		if idsConflict(s.RegionalID, target.RegionalID()) {
			return AccessResult{Allowed: false, Reason: ReasonDifferentRegional}
		}
	case authz.RoleDirectorateManager:
		if idsConflict(s.DirectorateID, target.DirectorateID()) {
			return AccessResult{Allowed: false, Reason: ReasonDifferentDirectorate}
		}
	default:
		return AccessResult{Allowed: false, Reason: ReasonUnknownRole}
	}

	return AccessResult{Allowed: true}
}

// CanAccess is the boolean-only form of Validate.
func CanAccess(s scope.UserScope, target Record) bool {
	return Validate(s, target).Allowed
}
