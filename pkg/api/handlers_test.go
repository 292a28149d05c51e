package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendascope/vendascope/pkg/authz"
	"github.com/vendascope/vendascope/pkg/observability"
	"github.com/vendascope/vendascope/pkg/scope"
	"github.com/vendascope/vendascope/pkg/scopefilter"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	r := mux.NewRouter()
	NewAuthzHandlers(logger, observability.NewMetrics(nil)).RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *mux.Router, method, path string, headers map[string]string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCheckPermissionsDenied(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "POST", "/api/v1/authz/check",
		map[string]string{scope.HeaderRole: "SALESPERSON"},
		CheckPermissionsRequest{Permissions: []authz.Permission{authz.PermViewAllClients}},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CheckPermissionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Allowed)
	assert.Equal(t, authz.RoleSalesperson, resp.Role)
	assert.Equal(t, "Você não tem permissão para visualizar todos os clientes. Seu perfil atual é Vendedor.", resp.Error)
}

func TestCheckPermissionsBranchManagerAllClients(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "POST", "/api/v1/authz/check",
		map[string]string{scope.HeaderRole: "BRANCH_MANAGER"},
		CheckPermissionsRequest{Permissions: []authz.Permission{authz.PermViewAllClients}},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CheckPermissionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Allowed)
	assert.Contains(t, resp.Error, "visualizar todos os clientes")
	assert.Contains(t, resp.Error, "Gestor de Filial")
}

func TestCheckPermissionsAllowed(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "POST", "/api/v1/authz/check",
		map[string]string{scope.HeaderRole: "MASTER_MANAGER"},
		CheckPermissionsRequest{Permissions: []authz.Permission{
			authz.PermViewAllClients, authz.PermManageRoles,
		}},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CheckPermissionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Allowed)
	assert.Empty(t, resp.Error)
}

func TestCheckPermissionsAnySemantics(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "POST", "/api/v1/authz/check",
		map[string]string{scope.HeaderRole: "BRANCH_MANAGER"},
		CheckPermissionsRequest{
			Permissions: []authz.Permission{authz.PermViewAllClients, authz.PermViewBranchDashboard},
			Any:         true,
		},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CheckPermissionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Allowed)
}

func TestCheckPermissionsEmptyBody(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "POST", "/api/v1/authz/check",
		map[string]string{scope.HeaderRole: "SALESPERSON"},
		CheckPermissionsRequest{},
	)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateAccessDifferentBranch(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "POST", "/api/v1/authz/access",
		map[string]string{
			scope.HeaderRole:      "BRANCH_MANAGER",
			scope.HeaderCompanyID: "1",
			scope.HeaderBranchID:  "3",
		},
		ValidateAccessRequest{Target: scopefilter.RecordFields{
			Company: scope.ID(1),
			Branch:  scope.ID(9),
		}},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ValidateAccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Allowed)
	assert.Equal(t, scopefilter.ReasonDifferentBranch, resp.Reason)
}

func TestValidateAccessAllowed(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "POST", "/api/v1/authz/access",
		map[string]string{
			scope.HeaderRole:      "BRANCH_MANAGER",
			scope.HeaderCompanyID: "1",
			scope.HeaderBranchID:  "3",
		},
		ValidateAccessRequest{Target: scopefilter.RecordFields{
			Company: scope.ID(1),
			Branch:  scope.ID(3),
		}},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ValidateAccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Allowed)
	assert.Empty(t, resp.Reason)
}

func TestFilterCollectionSalesperson(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "POST", "/api/v1/authz/filter",
		map[string]string{
			scope.HeaderRole:      "SALESPERSON",
			scope.HeaderCompanyID: "1",
			scope.HeaderUserID:    "42",
		},
		FilterCollectionRequest{Items: []scopefilter.RecordFields{
			{Company: scope.ID(1), User: scope.ID(42)},
			{Company: scope.ID(1), User: scope.ID(55)},
			{Company: scope.ID(2), User: scope.ID(42)},
		}},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp FilterCollectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.Filtered)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(42), *resp.Items[0].User)
}

func TestFilterCollectionMasterKeepsEverything(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "POST", "/api/v1/authz/filter",
		map[string]string{scope.HeaderRole: "MASTER_MANAGER"},
		FilterCollectionRequest{Items: []scopefilter.RecordFields{
			{Company: scope.ID(1)},
			{Company: scope.ID(2)},
		}},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp FilterCollectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Filtered)
	assert.Len(t, resp.Items, 2)
}

func TestFilterCollectionEmpty(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "POST", "/api/v1/authz/filter",
		map[string]string{scope.HeaderRole: "SALESPERSON"},
		FilterCollectionRequest{},
	)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp FilterCollectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}

func TestListPermissions(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "GET", "/api/v1/authz/permissions",
		map[string]string{scope.HeaderRole: "SALESPERSON"}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListPermissionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, authz.RoleSalesperson, resp.Role)
	assert.Equal(t, "Vendedor", resp.RoleLabel)
	require.NotEmpty(t, resp.Permissions)

	names := make(map[authz.Permission]string, len(resp.Permissions))
	for _, e := range resp.Permissions {
		names[e.Name] = e.Label
	}
	assert.Contains(t, names, authz.PermViewOwnClients)
	assert.NotContains(t, names, authz.PermViewAllClients)
}

func TestListPermissionsDefaultsToSalesperson(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, "GET", "/api/v1/authz/permissions", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListPermissionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, authz.RoleSalesperson, resp.Role)
}
