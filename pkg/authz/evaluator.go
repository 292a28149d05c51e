package authz

import (
	"fmt"
	"strings"
)

// HasPermission reports whether role holds the permission. Unknown roles hold
// nothing.
func HasPermission(role Role, perm Permission) bool {
	return PermissionsOf(role).Has(perm)
}

// HasAny reports whether role holds at least one of the permissions.
func HasAny(role Role, perms ...Permission) bool {
	for _, p := range perms {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

// HasAll reports whether role holds every one of the permissions.
func HasAll(role Role, perms ...Permission) bool {
	for _, p := range perms {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}

// Decision is the result of evaluating a capability guard against a role.
// When denied, Error carries a pt-BR message ready for UI display.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Error   string `json:"error,omitempty"`
}

const msgNotAuthenticated = "Usuário não autenticado"

// Guard is a precompiled capability requirement. Guards never inspect
// hierarchy identifiers: capability and data scope are orthogonal axes.
type Guard struct {
	required []Permission
	any      bool
}

// RequirePermission builds a guard that demands a single permission.
func RequirePermission(perm Permission) Guard {
	return Guard{required: []Permission{perm}}
}

// RequireAnyPermission builds a guard satisfied by any one of perms.
func RequireAnyPermission(perms ...Permission) Guard {
	return Guard{required: perms, any: true}
}

// RequireAllPermissions builds a guard that demands every one of perms.
func RequireAllPermissions(perms ...Permission) Guard {
	return Guard{required: perms}
}

// Evaluate checks the guard against a role. An absent or unrecognized role
// denies with a generic unauthenticated message; a recognized role lacking
// the capability denies with a message naming the missing capability and the
// caller's current role.
func (g Guard) Evaluate(role Role) Decision {
	if role == "" || !RoleExists(role) {
		return Decision{Allowed: false, Error: msgNotAuthenticated}
	}

	if g.any {
		if HasAny(role, g.required...) {
			return Decision{Allowed: true}
		}
		labels := make([]string, len(g.required))
		for i, p := range g.required {
			labels[i] = p.Translate()
		}
		return Decision{
			Allowed: false,
			Error: fmt.Sprintf(
				"Esta ação requer uma das seguintes permissões: %s. Seu perfil atual é %s.",
				strings.Join(labels, ", "), role.Translate(),
			),
		}
	}

	for _, perm := range g.required {
		if !HasPermission(role, perm) {
			return Decision{
				Allowed: false,
				Error: fmt.Sprintf(
					"Você não tem permissão para %s. Seu perfil atual é %s.",
					perm.Translate(), role.Translate(),
				),
			}
		}
	}
	return Decision{Allowed: true}
}
