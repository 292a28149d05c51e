package routes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendascope/vendascope/pkg/authz"
)

func TestRequiredPermissions_FirstPrefixWins(t *testing.T) {
	// The transfer sub-route is listed before the generic clients prefix.
	got := RequiredPermissions("/api/v1/clients/transfer/123")
	assert.Equal(t, []authz.Permission{authz.PermTransferClient}, got)

	got = RequiredPermissions("/api/v1/clients/123")
	assert.Contains(t, got, authz.PermViewOwnClients)
}

func TestRequiredPermissions_Unmapped(t *testing.T) {
	assert.Nil(t, RequiredPermissions("/healthz"))
	assert.Nil(t, RequiredPermissions("/api/v2/clients"))
}

func TestIsRouteAllowed(t *testing.T) {
	tests := []struct {
		name string
		path string
		role authz.Role
		want bool
	}{
		{"salesperson clients", "/api/v1/clients", authz.RoleSalesperson, true},
		{"salesperson admin", "/api/v1/admin/settings", authz.RoleSalesperson, false},
		{"branch manager users", "/api/v1/users/7", authz.RoleBranchManager, true},
		{"salesperson users", "/api/v1/users", authz.RoleSalesperson, false},
		{"master admin", "/api/v1/admin/settings", authz.RoleMasterManager, true},
		{"salesperson transfer", "/api/v1/clients/transfer", authz.RoleSalesperson, false},
		{"branch manager transfer", "/api/v1/clients/transfer", authz.RoleBranchManager, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			held := authz.PermissionsOf(tt.role)
			assert.Equal(t, tt.want, IsRouteAllowed(tt.path, held))
		})
	}
}

// Unmapped routes fail open, even for a caller with no permissions at all.
func TestIsRouteAllowed_UnmappedFailOpen(t *testing.T) {
	assert.True(t, IsRouteAllowed("/unmapped/path", authz.PermissionSet{}))
	assert.True(t, IsRouteAllowed("/unmapped/path", authz.PermissionsOf(authz.Role("NOBODY"))))
}

// Specific sub-prefixes must be listed before the general prefixes that
// contain them, or they can never match.
func TestTable_SpecificPrefixesFirst(t *testing.T) {
	entries := Table()
	for i, outer := range entries {
		for j := i + 1; j < len(entries); j++ {
			inner := entries[j]
			assert.False(t, strings.HasPrefix(inner.Prefix, outer.Prefix),
				"entry %q is shadowed by earlier entry %q", inner.Prefix, outer.Prefix)
		}
	}
}

func TestTable_EntriesComplete(t *testing.T) {
	for _, e := range Table() {
		assert.NotEmpty(t, e.Prefix)
		assert.NotEmpty(t, e.Required, "entry %q has no required permissions", e.Prefix)
		assert.NotEmpty(t, e.Description, "entry %q has no description", e.Prefix)
	}
}
