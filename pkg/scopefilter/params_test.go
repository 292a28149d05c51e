package scopefilter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendascope/vendascope/pkg/authz"
	"github.com/vendascope/vendascope/pkg/scope"
)

func TestScopedParams(t *testing.T) {
	tests := []struct {
		name  string
		scope scope.UserScope
		want  map[string]string
	}{
		{
			"salesperson prefers salesperson id over user id",
			scope.UserScope{
				Role:          authz.RoleSalesperson,
				UserID:        scope.ID(42),
				SalespersonID: scope.ID(99),
				BranchID:      scope.ID(7),
			},
			map[string]string{"salespersonId": "99", "branchId": "7"},
		},
		{
			"salesperson falls back to user id",
			scope.UserScope{Role: authz.RoleSalesperson, UserID: scope.ID(42)},
			map[string]string{"salespersonId": "42"},
		},
		{
			"branch manager emits only branch",
			scope.UserScope{Role: authz.RoleBranchManager, BranchID: scope.ID(7), RegionalID: scope.ID(3)},
			map[string]string{"branchId": "7"},
		},
		{
			"regional manager emits only regional",
			scope.UserScope{Role: authz.RoleRegionalManager, RegionalID: scope.ID(3), BranchID: scope.ID(7)},
			map[string]string{"regionalId": "3"},
		},
		{
			"directorate manager emits only directorate",
			scope.UserScope{Role: authz.RoleDirectorateManager, DirectorateID: scope.ID(2)},
			map[string]string{"directorateId": "2"},
		},
		{
			"master emits nothing",
			scope.UserScope{Role: authz.RoleMasterManager, BranchID: scope.ID(7), UserID: scope.ID(1)},
			map[string]string{},
		},
		{
			"company id always rides along",
			scope.UserScope{Role: authz.RoleMasterManager, CompanyID: scope.ID(1)},
			map[string]string{"companyId": "1"},
		},
		{
			"company id plus role narrowing",
			scope.UserScope{Role: authz.RoleBranchManager, BranchID: scope.ID(7), CompanyID: scope.ID(1)},
			map[string]string{"branchId": "7", "companyId": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScopedParams(tt.scope))
		})
	}
}

func TestApplyToURL_MergesQuery(t *testing.T) {
	s := scope.UserScope{Role: authz.RoleBranchManager, BranchID: scope.ID(7), CompanyID: scope.ID(1)}

	got := ApplyToURL("https://data.internal/clients?page=2&sort=name", s)

	u, err := url.Parse(got)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "name", q.Get("sort"))
	assert.Equal(t, "7", q.Get("branchId"))
	assert.Equal(t, "1", q.Get("companyId"))
}

func TestApplyToURL_OverwritesScopedParam(t *testing.T) {
	s := scope.UserScope{Role: authz.RoleBranchManager, BranchID: scope.ID(7)}

	got := ApplyToURL("/clients?branchId=999", s)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, u.Query()["branchId"])
}

func TestApplyToURL_UnparseableReturnedUnchanged(t *testing.T) {
	s := scope.UserScope{Role: authz.RoleBranchManager, BranchID: scope.ID(7)}
	raw := "://not-a-url"
	assert.Equal(t, raw, ApplyToURL(raw, s))
}
