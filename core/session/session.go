// Package session keeps track of the user signed in on this storage origin.
package session

import (
	"context"
	"encoding/json"
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/unirepo/core"
	"github.com/trezcool/unirepo/core/user"
)

// Notification texts
const (
	titleLoginSuccess    = "Login Successful"
	titleLoginFailed     = "Login Failed"
	titleLoginError      = "Login Error"
	titleRegisterSuccess = "Registration Successful"
	titleRegisterFailed  = "Registration Failed"
	titleRegisterError   = "Registration Error"
	titleLoggedOut       = "Logged Out"

	descInvalidCredentials = "Invalid credentials or role mismatch"
	descEmailExists        = "User with this email already exists"
	descLoggedOut          = "You have been successfully logged out"
	descUnexpected         = "Something went wrong, please try again"
)

type Manager struct {
	storage    core.Storage
	users      *user.Service
	notifier   core.Notifier
	logger     core.Logger
	translator ut.Translator

	mu      sync.RWMutex
	current *user.User
}

// NewManager returns a Manager restored from the persisted current user.
func NewManager(
	ctx context.Context,
	storage core.Storage,
	users *user.Service,
	notifier core.Notifier,
	logger core.Logger,
	translator ut.Translator,
) (*Manager, error) {
	m := &Manager{
		storage:    storage,
		users:      users,
		notifier:   notifier,
		logger:     logger,
		translator: translator,
	}
	if err := m.Hydrate(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// Hydrate reloads the current user from storage. An undecodable value is removed and the
// session becomes anonymous.
func (m *Manager) Hydrate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil
	val, ok, err := m.storage.GetItem(ctx, core.KeyCurrentUser)
	if err != nil {
		return errors.Wrap(err, "reading current user")
	}
	if !ok || val == "" {
		return nil
	}

	var usr user.User
	if err = json.Unmarshal([]byte(val), &usr); err != nil || usr.ID == "" {
		if err == nil {
			err = errors.New("current user without id")
		}
		m.logger.Warn("discarding stale current user", err)
		if err = m.storage.RemoveItem(ctx, core.KeyCurrentUser); err != nil {
			return errors.Wrap(err, "removing current user")
		}
		return nil
	}
	m.current = &usr
	return nil
}

// CurrentUser returns the signed in user, without password.
func (m *Manager) CurrentUser() (user.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return user.User{}, false
	}
	return *m.current, true
}

func (m *Manager) IsAuthenticated() bool {
	_, ok := m.CurrentUser()
	return ok
}

// Login signs in the user matching email, password and role exactly.
// On failure the session is left as it was.
func (m *Manager) Login(ctx context.Context, email, pwd, role string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	usr, err := m.users.Authenticate(ctx, email, pwd, role)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			m.notify(titleLoginFailed, descInvalidCredentials, core.VariantDestructive)
		} else {
			m.logger.Error("login failed", err)
			m.notify(titleLoginError, descUnexpected, core.VariantDestructive)
		}
		return user.User{}, err
	}

	if err = m.persist(ctx, usr); err != nil {
		m.logger.Error("persisting current user", err)
		m.notify(titleLoginError, descUnexpected, core.VariantDestructive)
		return user.User{}, err
	}
	m.notify(titleLoginSuccess, "Welcome back, "+usr.Name+"!", core.VariantDefault)
	return *m.current, nil
}

// Register creates the account described by nu and signs it in.
func (m *Manager) Register(ctx context.Context, nu user.NewUser) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	usr, err := m.users.Create(ctx, nu)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailExists):
			m.notify(titleRegisterFailed, descEmailExists, core.VariantDestructive)
		case isValidation(err):
			m.notify(titleRegisterFailed, core.DescribeError(err, m.translator), core.VariantDestructive)
		default:
			m.logger.Error("registration failed", err)
			m.notify(titleRegisterError, descUnexpected, core.VariantDestructive)
		}
		return user.User{}, err
	}

	if err = m.persist(ctx, usr); err != nil {
		m.logger.Error("persisting current user", err)
		m.notify(titleRegisterError, descUnexpected, core.VariantDestructive)
		return user.User{}, err
	}
	m.notify(titleRegisterSuccess, "Welcome to UniJos Repository, "+usr.Name+"!", core.VariantDefault)
	return *m.current, nil
}

// Logout forgets the current user.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.storage.RemoveItem(ctx, core.KeyCurrentUser); err != nil {
		return errors.Wrap(err, "removing current user")
	}
	m.current = nil
	m.notify(titleLoggedOut, descLoggedOut, core.VariantDefault)
	return nil
}

// persist must be called with mu held.
func (m *Manager) persist(ctx context.Context, usr user.User) error {
	usr = usr.Redacted()
	data, err := json.Marshal(usr)
	if err != nil {
		return errors.Wrap(err, "encoding current user")
	}
	if err = m.storage.SetItem(ctx, core.KeyCurrentUser, string(data)); err != nil {
		return errors.Wrap(err, "writing current user")
	}
	m.current = &usr
	return nil
}

func (m *Manager) notify(title, desc, variant string) {
	m.notifier.Notify(core.Notification{Title: title, Description: desc, Variant: variant})
}

func isValidation(err error) bool {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		return true
	}
	var vErrs validator.ValidationErrors
	return errors.As(err, &vErrs)
}
