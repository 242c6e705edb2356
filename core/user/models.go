package user

import (
	"crypto/subtle"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/unirepo/core"
)

// Roles
const (
	RoleStudent = "student"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

var (
	AllRoles = []string{RoleStudent, RoleStaff, RoleAdmin}

	Roles = []Role{
		{Name: "Student", Value: RoleStudent},
		{Name: "Staff", Value: RoleStaff},
		{Name: "Admin", Value: RoleAdmin},
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// User is a registered account. Password holds a bcrypt hash and is never sent to clients.
type User struct {
	ID         string      `json:"id"`
	Email      string      `json:"email"`
	Password   string      `json:"password,omitempty"`
	Name       string      `json:"name"`
	Role       string      `json:"role"`
	Department null.String `json:"department"`
	StudentID  null.String `json:"studentId"`
	StaffID    null.String `json:"staffId"`
	CreatedAt  time.Time   `json:"createdAt"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

var errPasswordMismatch = errors.New("password mismatch")

// CheckPassword compares pwd with the stored password. A stored value that is not a bcrypt hash
// is a plaintext record written by an older client and is compared as is.
// An empty stored password never matches.
func (u *User) CheckPassword(pwd string) error {
	if u.Password == "" {
		return errPasswordMismatch
	}
	if _, err := bcrypt.Cost([]byte(u.Password)); err != nil {
		if subtle.ConstantTimeCompare([]byte(u.Password), []byte(pwd)) != 1 {
			return errPasswordMismatch
		}
		return nil
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(pwd))
}

// Redacted returns a copy of the user without its password.
func (u User) Redacted() User {
	u.Password = ""
	return u
}

func (u User) IsStudent() bool { return u.Role == RoleStudent }
func (u User) IsStaff() bool   { return u.Role == RoleStaff }
func (u User) IsAdmin() bool   { return u.Role == RoleAdmin }

// LogPerson identifies the user in log entries.
func (u User) LogPerson() core.LogPerson {
	return core.LogPerson{ID: u.ID, Name: u.Name, Email: u.Email}
}

// NewUser contains information needed to register a new User.
type NewUser struct {
	Name            string `json:"name" validate:"required,notblank"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,pwdminlen"`
	PasswordConfirm string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,userrole"`
	Department      string `json:"department"`
	StudentID       string `json:"studentId"`
	StaffID         string `json:"staffId"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email)
	nu.Role = core.CleanString(nu.Role, true /* lower */)
	nu.Department = core.CleanString(nu.Department)
	nu.StudentID = core.CleanString(nu.StudentID)
	nu.StaffID = core.CleanString(nu.StaffID)
	return validate.Struct(nu)
}

// UpdateUser defines what information may be provided to modify an existing User.
type UpdateUser struct {
	Name            string `json:"name"`
	Role            string `json:"role" validate:"omitempty,userrole"`
	Department      string `json:"department"`
	StudentID       string `json:"studentId"`
	StaffID         string `json:"staffId"`
	Password        string `json:"password" validate:"omitempty,pwdminlen"`
	PasswordConfirm string `json:"confirmPassword" validate:"required_with=Password,eqfield=Password"`
}

// Validate cleans uu and fills the blanks from the original User.
func (uu *UpdateUser) Validate(validate *validator.Validate, origUsr User) error {
	if name := core.CleanString(uu.Name); name != "" {
		uu.Name = name
	} else {
		uu.Name = origUsr.Name
	}
	if role := core.CleanString(uu.Role, true /* lower */); role != "" {
		uu.Role = role
	} else {
		uu.Role = origUsr.Role
	}
	uu.Department = core.CleanString(uu.Department)
	uu.StudentID = core.CleanString(uu.StudentID)
	uu.StaffID = core.CleanString(uu.StaffID)
	return validate.Struct(uu)
}

// QueryFilter applies AND on its non-empty fields.
// Search does a case-insensitive match on one of User.Name, User.Email or User.Department.
type QueryFilter struct {
	Search string   `query:"search"`
	Roles  []string `query:"role"`
	IDs    []string `query:"-"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

func (qf QueryFilter) Match(usr User) bool {
	if qf.Search != "" &&
		!core.ContainsFold(usr.Name, qf.Search) &&
		!core.ContainsFold(usr.Email, qf.Search) &&
		!core.ContainsFold(usr.Department.String, qf.Search) {
		return false
	}
	if len(qf.Roles) > 0 && !contains(qf.Roles, usr.Role) {
		return false
	}
	if qf.IDs != nil && !contains(qf.IDs, usr.ID) {
		return false
	}
	return true
}

// GetFilter selects a single User by ID or exact Email.
type GetFilter struct {
	ID    string
	Email string
}

func contains(values []string, v string) bool {
	for _, val := range values {
		if val == v {
			return true
		}
	}
	return false
}

func nullString(s string) null.String {
	return null.NewString(s, s != "")
}
