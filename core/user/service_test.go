package user_test

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/user"
	"github.com/trezcool/unirepo/tests"
)

func TestService_Create(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	svc := env.UserSvc

	valid := user.NewUser{
		Name:            "  Ada Student ",
		Email:           " ada@unijos.edu.ng ",
		Password:        "password123",
		PasswordConfirm: "password123",
		Role:            "Student",
		StudentID:       "CS/2021/007",
	}

	usr, err := svc.Create(ctx, valid)
	require.NoError(t, err)
	assert.NotEmpty(t, usr.ID)
	assert.Equal(t, "Ada Student", usr.Name)
	assert.Equal(t, "ada@unijos.edu.ng", usr.Email)
	assert.Equal(t, user.RoleStudent, usr.Role)
	assert.Equal(t, "CS/2021/007", usr.StudentID.String)
	assert.False(t, usr.Department.Valid)
	assert.NotEqual(t, "password123", usr.Password)
	assert.NoError(t, usr.CheckPassword("password123"))

	t.Run("email taken", func(t *testing.T) {
		_, err := svc.Create(ctx, valid)
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.ErrorIs(t, err, user.ErrEmailExists)
		assert.Equal(t, []core.FieldError{{Field: "email", Error: "a user with this email already exists"}}, vErr.Fields)
	})

	invalid := []struct {
		name    string
		mutate  func(nu *user.NewUser)
		wantTag string
	}{
		{name: "blank name", mutate: func(nu *user.NewUser) { nu.Name = "   " }, wantTag: "required"},
		{name: "bad email", mutate: func(nu *user.NewUser) { nu.Email = "ada" }, wantTag: "email"},
		{name: "short password", mutate: func(nu *user.NewUser) { nu.Password, nu.PasswordConfirm = "abc", "abc" }, wantTag: "pwdminlen"},
		{name: "password mismatch", mutate: func(nu *user.NewUser) { nu.PasswordConfirm = "password124" }, wantTag: "eqfield"},
		{name: "unknown role", mutate: func(nu *user.NewUser) { nu.Role = "dean" }, wantTag: "userrole"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			nu := valid
			nu.Email = "other@unijos.edu.ng"
			tt.mutate(&nu)

			_, err := svc.Create(ctx, nu)
			var vErrs validator.ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			assert.Equal(t, tt.wantTag, vErrs[0].Tag())
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	usr := testutil.CreateUser(t, env.UserRepo, "Staff", "staff@unijos.edu.ng", "password123", user.RoleStaff)

	tests := []struct {
		name    string
		email   string
		pwd     string
		role    string
		wantErr error
	}{
		{name: "valid", email: "staff@unijos.edu.ng", pwd: "password123", role: user.RoleStaff},
		{name: "padded email", email: "  staff@unijos.edu.ng ", pwd: "password123", role: user.RoleStaff, wantErr: user.ErrInvalidCredentials},
		{name: "empty email", email: "", pwd: "password123", role: user.RoleStaff, wantErr: user.ErrInvalidCredentials},
		{name: "wrong password", email: "staff@unijos.edu.ng", pwd: "password124", role: user.RoleStaff, wantErr: user.ErrInvalidCredentials},
		{name: "role mismatch", email: "staff@unijos.edu.ng", pwd: "password123", role: user.RoleAdmin, wantErr: user.ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@unijos.edu.ng", pwd: "password123", role: user.RoleStaff, wantErr: user.ErrInvalidCredentials},
		{name: "email case differs", email: "Staff@unijos.edu.ng", pwd: "password123", role: user.RoleStaff, wantErr: user.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.UserSvc.Authenticate(ctx, tt.email, tt.pwd, tt.role)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, usr.ID, got.ID)
		})
	}
}

func TestService_Update(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	usr := testutil.CreateUser(t, env.UserRepo, "Staff", "staff@unijos.edu.ng", "password123", user.RoleStaff)

	got, err := env.UserSvc.Update(ctx, usr.ID, user.UpdateUser{Department: " Computer Science "})
	require.NoError(t, err)
	assert.Equal(t, "Staff", got.Name)
	assert.Equal(t, user.RoleStaff, got.Role)
	assert.Equal(t, "Computer Science", got.Department.String)
	assert.NoError(t, got.CheckPassword("password123"))

	got, err = env.UserSvc.Update(ctx, usr.ID, user.UpdateUser{Name: "Dr. Staff", Password: "newpassword", PasswordConfirm: "newpassword"})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Staff", got.Name)
	assert.NoError(t, got.CheckPassword("newpassword"))

	_, err = env.UserSvc.Update(ctx, usr.ID, user.UpdateUser{Password: "newpassword"})
	var vErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &vErrs)

	_, err = env.UserSvc.Update(ctx, "nope", user.UpdateUser{Name: "x"})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestService_SetPassword(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	usr := testutil.CreateUser(t, env.UserRepo, "Student", "student@unijos.edu.ng", "password123", user.RoleStudent)

	_, err := env.UserSvc.SetPassword(ctx, usr.Email, "short")
	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "password", vErr.Fields[0].Field)

	_, err = env.UserSvc.SetPassword(ctx, "nobody@unijos.edu.ng", "password456")
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = env.UserSvc.SetPassword(ctx, usr.Email, "password456")
	require.NoError(t, err)
	_, err = env.UserSvc.Authenticate(ctx, usr.Email, "password456", user.RoleStudent)
	assert.NoError(t, err)
}

func TestService_Filter_and_Delete(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	student := testutil.CreateUser(t, env.UserRepo, "Ada Student", "ada@unijos.edu.ng", "password123", user.RoleStudent)
	staff := testutil.CreateUser(t, env.UserRepo, "Bola Staff", "bola@unijos.edu.ng", "password123", user.RoleStaff)
	admin := testutil.CreateUser(t, env.UserRepo, "Chi Admin", "chi@unijos.edu.ng", "password123", user.RoleAdmin)

	ids := func(users []user.User) []string {
		res := make([]string, 0, len(users))
		for _, u := range users {
			res = append(res, u.ID)
		}
		return res
	}

	found, err := env.UserSvc.Filter(ctx, user.QueryFilter{Search: " BOLA "})
	require.NoError(t, err)
	assert.Equal(t, []string{staff.ID}, ids(found))

	found, err = env.UserSvc.Filter(ctx, user.QueryFilter{Roles: []string{user.RoleStudent, user.RoleAdmin}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{student.ID, admin.ID}, ids(found))

	require.NoError(t, env.UserSvc.Delete(ctx, student.ID, staff.ID))
	found, err = env.UserSvc.QueryAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{admin.ID}, ids(found))
}

func TestService_Authenticate_plaintextRecord(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	require.NoError(t, env.Storage.SetItem(ctx, core.KeyUsers,
		`[{"id":"1","email":"student@unijos.edu.ng","password":"password123","name":"Legacy Student","role":"student","createdAt":"2024-01-15T00:00:00Z"}]`))

	usr, err := env.UserSvc.Authenticate(ctx, "student@unijos.edu.ng", "password123", user.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "1", usr.ID)

	_, err = env.UserSvc.Authenticate(ctx, "student@unijos.edu.ng", "password12", user.RoleStudent)
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	// resetting the password stores a hash
	usr, err = env.UserSvc.SetPassword(ctx, "student@unijos.edu.ng", "newpassword")
	require.NoError(t, err)
	assert.NotEqual(t, "newpassword", usr.Password)
	_, err = env.UserSvc.Authenticate(ctx, "student@unijos.edu.ng", "newpassword", user.RoleStudent)
	assert.NoError(t, err)
}

func TestUser_CheckPassword(t *testing.T) {
	hashed := user.User{}
	require.NoError(t, hashed.SetPassword("password123"))

	tests := []struct {
		name    string
		usr     user.User
		pwd     string
		wantErr bool
	}{
		{name: "hash", usr: hashed, pwd: "password123"},
		{name: "hash mismatch", usr: hashed, pwd: "password124", wantErr: true},
		{name: "plaintext", usr: user.User{Password: "password123"}, pwd: "password123"},
		{name: "plaintext mismatch", usr: user.User{Password: "password123"}, pwd: "Password123", wantErr: true},
		{name: "hash given as password", usr: hashed, pwd: hashed.Password, wantErr: true},
		{name: "no password", usr: user.User{}, pwd: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.usr.CheckPassword(tt.pwd)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
