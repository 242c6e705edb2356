package echoapi

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/unirepo/core/user"
	"github.com/trezcool/unirepo/tests"
)

func Test_userApi_query(t *testing.T) {
	srv, env := setup(t)

	path := func(search string, roles ...string) string {
		v := make(url.Values)
		if search != "" {
			v.Add("search", search)
		}
		for _, r := range roles {
			v.Add("role", r)
		}
		return "/v1/users?" + v.Encode()
	}

	student := testutil.CreateUser(t, env.UserRepo, "Hero", "hero@unijos.edu.ng", "", user.RoleStudent)
	staff := testutil.CreateUser(t, env.UserRepo, "Dr. Lecturer", "lecturer@unijos.edu.ng", "", user.RoleStaff)
	admin := testutil.CreateUser(t, env.UserRepo, "Admin", "admin@unijos.edu.ng", "", user.RoleAdmin)
	adminToken := getToken(t, srv, admin)

	tests := []httpTest{
		{name: "auth required", path: "/v1/users", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "admin required", path: "/v1/users", token: getToken(t, srv, student), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
		{
			name: "get all", path: "/v1/users", token: adminToken,
			wantData: marchallList(t, student.Redacted(), staff.Redacted(), admin.Redacted()),
		},
		{name: "search (unknown)", path: path("lol"), token: adminToken, wantData: marchallList(t)},
		{name: "search=LECT", path: path("LECT"), token: adminToken, wantData: marchallList(t, staff.Redacted())},
		{
			name: "role=student,admin", path: path("", user.RoleStudent, user.RoleAdmin), token: adminToken,
			wantData: marchallList(t, student.Redacted(), admin.Redacted()),
		},
	}
	for i := range tests {
		tests[i].method = http.MethodGet
	}
	runHttpTests(t, srv, tests)
}

func Test_userApi_queryRoles(t *testing.T) {
	srv, env := setup(t)
	student := testutil.CreateUser(t, env.UserRepo, "Hero", "hero@unijos.edu.ng", "", user.RoleStudent)

	runHttpTests(t, srv, []httpTest{
		{
			name: "roles", method: http.MethodGet, path: "/v1/users/roles", token: getToken(t, srv, student),
			wantData: marchallObj(t, user.Roles),
		},
	})
}

func Test_userApi_retrieve(t *testing.T) {
	srv, env := setup(t)
	student := testutil.CreateUser(t, env.UserRepo, "Hero", "hero@unijos.edu.ng", "", user.RoleStudent)
	other := testutil.CreateUser(t, env.UserRepo, "Other", "other@unijos.edu.ng", "", user.RoleStudent)
	admin := testutil.CreateUser(t, env.UserRepo, "Admin", "admin@unijos.edu.ng", "", user.RoleAdmin)
	studentToken := getToken(t, srv, student)

	tests := []httpTest{
		{name: "self", path: "/v1/users/" + student.ID, token: studentToken, wantData: marchallObj(t, student.Redacted())},
		{name: "someone else", path: "/v1/users/" + other.ID, token: studentToken, wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)},
		{name: "admin sees anyone", path: "/v1/users/" + other.ID, token: getToken(t, srv, admin), wantData: marchallObj(t, other.Redacted())},
		{name: "unknown", path: "/v1/users/lol", token: getToken(t, srv, admin), wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound)},
	}
	for i := range tests {
		tests[i].method = http.MethodGet
	}
	runHttpTests(t, srv, tests)
}

func Test_userApi_update(t *testing.T) {
	srv, env := setup(t)
	student := testutil.CreateUser(t, env.UserRepo, "Hero", "hero@unijos.edu.ng", "password123", user.RoleStudent)
	admin := testutil.CreateUser(t, env.UserRepo, "Admin", "admin@unijos.edu.ng", "", user.RoleAdmin)
	studentToken := getToken(t, srv, student)
	path := "/v1/users/" + student.ID

	runHttpTests(t, srv, []httpTest{
		{
			name: "student cannot change own role", method: http.MethodPut, path: path, token: studentToken,
			body: marchallObj(t, user.UpdateUser{Role: user.RoleAdmin}), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "password mismatch", method: http.MethodPut, path: path, token: studentToken,
			body:     marchallObj(t, user.UpdateUser{Password: "newpassword", PasswordConfirm: "lol"}),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"confirmPassword": "passwords do not match"}),
		},
	})

	t.Run("student updates own profile", func(t *testing.T) {
		body := marchallObj(t, user.UpdateUser{Name: "Super Hero", Department: "Computer Science"})
		req, rec := newAuthRequest(http.MethodPut, path, studentToken, body)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var got user.User
		unmarchall(t, rec.Body.Bytes(), &got)
		assert.Equal(t, "Super Hero", got.Name)
		assert.Equal(t, "Computer Science", got.Department.String)
		assert.Equal(t, user.RoleStudent, got.Role)
		assert.Empty(t, got.Password)
	})

	t.Run("admin changes role", func(t *testing.T) {
		body := marchallObj(t, user.UpdateUser{Role: user.RoleStaff})
		req, rec := newAuthRequest(http.MethodPut, path, getToken(t, srv, admin), body)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		stored, err := env.UserSvc.GetByID(context.Background(), student.ID)
		require.NoError(t, err)
		assert.Equal(t, user.RoleStaff, stored.Role)
		assert.NoError(t, stored.CheckPassword("password123"))
	})
}

func Test_userApi_destroy(t *testing.T) {
	srv, env := setup(t)
	student := testutil.CreateUser(t, env.UserRepo, "Hero", "hero@unijos.edu.ng", "", user.RoleStudent)
	other := testutil.CreateUser(t, env.UserRepo, "Other", "other@unijos.edu.ng", "", user.RoleStudent)
	admin := testutil.CreateUser(t, env.UserRepo, "Admin", "admin@unijos.edu.ng", "", user.RoleAdmin)
	adminToken := getToken(t, srv, admin)

	runHttpTests(t, srv, []httpTest{
		{
			name: "admin required", method: http.MethodDelete, path: "/v1/users/" + student.ID, token: getToken(t, srv, student),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "cannot delete self", method: http.MethodDelete, path: "/v1/users/" + admin.ID, token: adminToken,
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "you cannot delete your own account"}),
		},
		{name: "deleted", method: http.MethodDelete, path: "/v1/users/" + student.ID, token: adminToken, wantCode: http.StatusNoContent},
		{
			name: "cannot bulk delete self", method: http.MethodDelete, path: "/v1/users?id=" + other.ID + "&id=" + admin.ID, token: adminToken,
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "you cannot delete your own account"}),
		},
		{name: "bulk deleted", method: http.MethodDelete, path: "/v1/users?id=" + other.ID, token: adminToken, wantCode: http.StatusNoContent},
	})

	users, err := env.UserSvc.QueryAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, admin.ID, users[0].ID)
}
