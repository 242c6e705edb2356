package echoapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/unirepo/core/supervision"
	"github.com/trezcool/unirepo/core/user"
	"github.com/trezcool/unirepo/tests"
)

func Test_supervisionApi(t *testing.T) {
	srv, env := setup(t)
	ctx := context.Background()

	student := testutil.CreateUser(t, env.UserRepo, "Hero", "hero@unijos.edu.ng", "", user.RoleStudent)
	staff := testutil.CreateUser(t, env.UserRepo, "Dr. Lecturer", "lecturer@unijos.edu.ng", "", user.RoleStaff)
	otherStaff := testutil.CreateUser(t, env.UserRepo, "Dr. Other", "other@unijos.edu.ng", "", user.RoleStaff)
	admin := testutil.CreateUser(t, env.UserRepo, "Admin", "admin@unijos.edu.ng", "", user.RoleAdmin)
	adminToken := getToken(t, srv, admin)

	runHttpTests(t, srv, []httpTest{
		{
			name: "admin required", method: http.MethodPost, path: "/v1/supervisions", token: getToken(t, srv, staff),
			body:     marchallObj(t, supervision.NewSupervision{StudentID: student.ID, SupervisorID: staff.ID}),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "invalid status", method: http.MethodPost, path: "/v1/supervisions", token: adminToken,
			body:     marchallObj(t, supervision.NewSupervision{StudentID: student.ID, SupervisorID: staff.ID, Status: "paused"}),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"status": "invalid supervision status"}),
		},
	})

	var sup supervision.Supervision
	t.Run("created", func(t *testing.T) {
		body := marchallObj(t, supervision.NewSupervision{StudentID: student.ID, SupervisorID: staff.ID})
		req, rec := newAuthRequest(http.MethodPost, "/v1/supervisions", adminToken, body)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		unmarchall(t, rec.Body.Bytes(), &sup)
		assert.Equal(t, supervision.StatusActive, sup.Status)
	})

	runHttpTests(t, srv, []httpTest{
		{name: "student sees own", method: http.MethodGet, path: "/v1/supervisions", token: getToken(t, srv, student), wantData: marchallList(t, sup)},
		{name: "staff sees own", method: http.MethodGet, path: "/v1/supervisions", token: getToken(t, srv, staff), wantData: marchallList(t, sup)},
		{name: "other staff sees nothing", method: http.MethodGet, path: "/v1/supervisions", token: getToken(t, srv, otherStaff), wantData: marchallList(t)},
		{name: "admin sees all", method: http.MethodGet, path: "/v1/supervisions", token: adminToken, wantData: marchallList(t, sup)},
		{
			name: "detail requires admin", method: http.MethodGet, path: "/v1/supervisions/" + sup.ID, token: getToken(t, srv, staff),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "unknown", method: http.MethodGet, path: "/v1/supervisions/lol", token: adminToken,
			wantCode: http.StatusNotFound, wantData: marchallObj(t, errNotFound),
		},
	})

	t.Run("status changed", func(t *testing.T) {
		body := marchallObj(t, supervision.UpdateStatus{Status: "Completed"})
		req, rec := newAuthRequest(http.MethodPut, "/v1/supervisions/"+sup.ID+"/status", adminToken, body)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		ids, err := env.SupervisionSvc.StudentsBySupervisor(ctx, staff.ID)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("deleted", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/supervisions/"+sup.ID, adminToken)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		_, err := env.SupervisionSvc.GetByID(ctx, sup.ID)
		assert.ErrorIs(t, err, supervision.ErrNotFound)
	})
}
