// Package scope derives and carries the per-request data-visibility scope of
// an authenticated identity: its role plus the hierarchy identifiers that
// bound what data it may see.
//
// A UserScope is built once per inbound request from transport-level identity
// attributes and discarded when the request finishes. It is a plain value
// with no storage of its own; callers must never mutate one after handing it
// to the filtering layer.
//
// Derivation is deliberately forgiving: malformed numeric attributes
// normalize to "absent" and a missing or unrecognized role token degrades to
// SALESPERSON, the narrowest role. Absence of identity information never
// produces an error, only a narrower scope.
package scope

import (
	"net/http"
	"strconv"

	"github.com/vendascope/vendascope/pkg/authz"
)

// Identity attribute names, used both as inbound request headers and as
// outbound propagation headers toward downstream trusted services.
const (
	HeaderRole          = "x-user-role"
	HeaderUserID        = "x-user-id"
	HeaderCompanyID     = "x-user-empresa-id"
	HeaderDirectorateID = "x-user-diretoria-id"
	HeaderRegionalID    = "x-user-regional-id"
	HeaderBranchID      = "x-user-filial-id"
	HeaderSalespersonID = "x-user-vendedor-id"
)

// UserScope is the resolved visibility scope of one request's identity.
//
// All identifiers are optional. A present identifier is authoritative only in
// combination with Role: a salesperson's scope may carry a BranchID, but that
// id only becomes the primary filter when the role is BRANCH_MANAGER.
// Identifiers above the role's own level act as cross-tenant guards, not
// primary filters.
type UserScope struct {
	Role          authz.Role `json:"role"`
	CompanyID     *int64     `json:"companyId,omitempty"`
	DirectorateID *int64     `json:"directorateId,omitempty"`
	RegionalID    *int64     `json:"regionalId,omitempty"`
	BranchID      *int64     `json:"branchId,omitempty"`
	UserID        *int64     `json:"userId,omitempty"`
	SalespersonID *int64     `json:"salespersonId,omitempty"`
}

// IsMaster reports whether the scope bypasses every data constraint.
func (s UserScope) IsMaster() bool {
	return s.Role == authz.RoleMasterManager
}

// FromHeaders builds a UserScope from inbound identity headers. It never
// fails: unparseable identifiers are treated as absent and an unknown role
// token falls back to SALESPERSON.
func FromHeaders(h http.Header) UserScope {
	attrs := map[string]string{
		HeaderRole:          h.Get(HeaderRole),
		HeaderUserID:        h.Get(HeaderUserID),
		HeaderCompanyID:     h.Get(HeaderCompanyID),
		HeaderDirectorateID: h.Get(HeaderDirectorateID),
		HeaderRegionalID:    h.Get(HeaderRegionalID),
		HeaderBranchID:      h.Get(HeaderBranchID),
		HeaderSalespersonID: h.Get(HeaderSalespersonID),
	}
	return FromAttributes(attrs)
}

// FromAttributes builds a UserScope from a flat bag of identity attributes
// keyed by the canonical header names.
func FromAttributes(attrs map[string]string) UserScope {
	role := authz.Role(attrs[HeaderRole])
	if !authz.RoleExists(role) {
		role = authz.RoleSalesperson
	}

	return UserScope{
		Role:          role,
		UserID:        parseID(attrs[HeaderUserID]),
		CompanyID:     parseID(attrs[HeaderCompanyID]),
		DirectorateID: parseID(attrs[HeaderDirectorateID]),
		RegionalID:    parseID(attrs[HeaderRegionalID]),
		BranchID:      parseID(attrs[HeaderBranchID]),
		SalespersonID: parseID(attrs[HeaderSalespersonID]),
	}
}

// Headers returns the outbound identity-propagation headers for the scope.
// Every present field is emitted unconditionally: propagation is not data
// narrowing, the downstream trusted service re-derives its own scope.
func (s UserScope) Headers() http.Header {
	h := http.Header{}
	h.Set(HeaderRole, string(s.Role))
	setID(h, HeaderUserID, s.UserID)
	setID(h, HeaderCompanyID, s.CompanyID)
	setID(h, HeaderDirectorateID, s.DirectorateID)
	setID(h, HeaderRegionalID, s.RegionalID)
	setID(h, HeaderBranchID, s.BranchID)
	setID(h, HeaderSalespersonID, s.SalespersonID)
	return h
}

// parseID parses a numeric identity attribute. Empty strings and the literal
// "undefined"/"null" tokens that upstream JavaScript clients are known to
// send normalize to absent, as does any other unparseable value.
func parseID(raw string) *int64 {
	switch raw {
	case "", "undefined", "null":
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

func setID(h http.Header, name string, id *int64) {
	if id != nil {
		h.Set(name, strconv.FormatInt(*id, 10))
	}
}

// ID is a convenience for building optional identifiers in literals and
// tests.
func ID(v int64) *int64 {
	return &v
}
