package echoapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/unirepo/core/user"
	"github.com/trezcool/unirepo/tests"
)

func Test_sessionApi_login(t *testing.T) {
	srv, env := setup(t)
	student := testutil.CreateUser(t, env.UserRepo, "Hero", "hero@unijos.edu.ng", "password123", user.RoleStudent)

	reqMsg := "this field is required"
	invalid := marchallObj(t, httpErr{Error: "invalid credentials or role mismatch"})
	tests := []httpTest{
		{
			name: "required fields", wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, LoginRequest{Email: reqMsg, Password: reqMsg, Role: reqMsg}),
		},
		{
			name: "unknown email", wantCode: http.StatusBadRequest, wantData: invalid,
			body: marchallObj(t, LoginRequest{Email: "lol@unijos.edu.ng", Password: "password123", Role: user.RoleStudent}),
		},
		{
			name: "email case differs", wantCode: http.StatusBadRequest, wantData: invalid,
			body: marchallObj(t, LoginRequest{Email: "HERO@unijos.edu.ng", Password: "password123", Role: user.RoleStudent}),
		},
		{
			name: "padded email", wantCode: http.StatusBadRequest, wantData: invalid,
			body: marchallObj(t, LoginRequest{Email: " " + student.Email + " ", Password: "password123", Role: user.RoleStudent}),
		},
		{
			name: "wrong password", wantCode: http.StatusBadRequest, wantData: invalid,
			body: marchallObj(t, LoginRequest{Email: student.Email, Password: "lolcat", Role: user.RoleStudent}),
		},
		{
			name: "role mismatch", wantCode: http.StatusBadRequest, wantData: invalid,
			body: marchallObj(t, LoginRequest{Email: student.Email, Password: "password123", Role: user.RoleAdmin}),
		},
	}
	for i := range tests {
		tests[i].method = http.MethodPost
		tests[i].path = "/v1/auth/login"
	}
	runHttpTests(t, srv, tests)

	t.Run("valid credentials", func(t *testing.T) {
		body := marchallObj(t, LoginRequest{Email: student.Email, Password: "password123", Role: user.RoleStudent})
		req, rec := newRequest(http.MethodPost, "/v1/auth/login", body)
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp LoginResponse
		unmarchall(t, rec.Body.Bytes(), &resp)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, student.ID, resp.User.ID)
		assert.Empty(t, resp.User.Password)
	})
}

func Test_sessionApi_register(t *testing.T) {
	srv, env := setup(t)
	testutil.CreateUser(t, env.UserRepo, "Hero", "hero@unijos.edu.ng", "password123", user.RoleStudent)

	newUsr := func(email, pwd, confirm string) []byte {
		return marchallObj(t, user.NewUser{
			Name:            "New Student",
			Email:           email,
			Password:        pwd,
			PasswordConfirm: confirm,
			Role:            user.RoleStudent,
			StudentID:       "CS/2021/042",
		})
	}
	tests := []httpTest{
		{
			name: "duplicate email", body: newUsr("hero@unijos.edu.ng", "password123", "password123"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"email": "a user with this email already exists"}),
		},
		{
			name: "short password", body: newUsr("new@unijos.edu.ng", "abc", "abc"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"password": "password must be at least 6 characters long"}),
		},
		{
			name: "passwords mismatch", body: newUsr("new@unijos.edu.ng", "password123", "password124"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"confirmPassword": "passwords do not match"}),
		},
		{
			name: "invalid role", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, user.NewUser{Name: "X", Email: "x@unijos.edu.ng", Password: "password123", PasswordConfirm: "password123", Role: "dean"}),
			wantData: marchallObj(t, map[string]string{"role": "invalid role"}),
		},
	}
	for i := range tests {
		tests[i].method = http.MethodPost
		tests[i].path = "/v1/auth/register"
	}
	runHttpTests(t, srv, tests)

	t.Run("valid user", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/auth/register", newUsr("new@unijos.edu.ng", "password123", "password123"))
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp LoginResponse
		unmarchall(t, rec.Body.Bytes(), &resp)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "new@unijos.edu.ng", resp.User.Email)
		assert.Equal(t, "CS/2021/042", resp.User.StudentID.String)
		assert.Empty(t, resp.User.Password)

		stored, err := env.UserSvc.GetByEmail(context.Background(), "new@unijos.edu.ng")
		require.NoError(t, err)
		assert.NoError(t, stored.CheckPassword("password123"))
	})
}

func Test_sessionApi_me(t *testing.T) {
	srv, env := setup(t)
	student := testutil.CreateUser(t, env.UserRepo, "Hero", "hero@unijos.edu.ng", "password123", user.RoleStudent)
	ghost := testutil.CreateUser(t, env.UserRepo, "Ghost", "ghost@unijos.edu.ng", "password123", user.RoleStudent)
	ghostToken := getToken(t, srv, ghost)
	require.NoError(t, env.UserSvc.Delete(context.Background(), ghost.ID))

	tests := []httpTest{
		{name: "auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "invalid token", token: "lol", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, httpErr{Error: "invalid or expired jwt"})},
		{name: "deleted user", token: ghostToken, wantCode: http.StatusUnauthorized, wantData: marchallObj(t, httpErr{Error: "user not authenticated"})},
		{name: "current user", token: getToken(t, srv, student), wantData: marchallObj(t, student.Redacted())},
	}
	for i := range tests {
		tests[i].method = http.MethodGet
		tests[i].path = "/v1/auth/me"
	}
	runHttpTests(t, srv, tests)
}

func Test_sessionApi_logout(t *testing.T) {
	srv, env := setup(t)
	student := testutil.CreateUser(t, env.UserRepo, "Hero", "hero@unijos.edu.ng", "password123", user.RoleStudent)

	tests := []httpTest{
		{name: "auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "logged out", token: getToken(t, srv, student),
			wantData: marchallObj(t, SuccessResponse{Success: "You have been successfully logged out"}),
		},
	}
	for i := range tests {
		tests[i].method = http.MethodPost
		tests[i].path = "/v1/auth/logout"
	}
	runHttpTests(t, srv, tests)
}

func Test_sessionApi_refreshToken(t *testing.T) {
	srv, env := setup(t)
	student := testutil.CreateUser(t, env.UserRepo, "Hero", "hero@unijos.edu.ng", "password123", user.RoleStudent)

	// older than the refresh threshold
	origIat := time.Now().Add(-2 * env.Conf.Server.JWTRefreshExpirationDelta).Unix()
	unrefreshableToken, err := srv.tokens.GenerateToken(srv.tokens.userClaims(student, origIat))
	require.NoError(t, err)

	tests := []httpTest{
		{name: "auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "refresh period expired", token: unrefreshableToken, wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "refresh has expired"})},
	}
	for i := range tests {
		tests[i].method = http.MethodPost
		tests[i].path = "/v1/auth/token-refresh"
	}
	runHttpTests(t, srv, tests)

	t.Run("token refreshed", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/auth/token-refresh", getToken(t, srv, student))
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		// cannot guess new token.. just check that it's not empty
		var resp LoginResponse
		unmarchall(t, rec.Body.Bytes(), &resp)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, student.ID, resp.User.ID)
	})
}
