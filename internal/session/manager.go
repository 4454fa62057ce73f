// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the current-user pointer and the account lifecycle.
package session

import (
	"regexp"
	"sync"

	"github.com/jeranaias/teleup-tui/internal/directory"
	"github.com/jeranaias/teleup-tui/internal/model"
	"github.com/jeranaias/teleup-tui/internal/storage"
)

// =============================================================================
// VALIDATION RULES
// =============================================================================

const (
	// MinUsernameLen is the minimum registration username length.
	MinUsernameLen = 3
	// MinPasswordLen is the minimum registration password length.
	MinPasswordLen = 6
)

// emailPattern matches the usual local@domain.tld shape. It intentionally
// accepts more than RFC 5322; good enough for a demo signup form.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager owns the single current-user pointer.
type Manager struct {
	mu    sync.Mutex
	store storage.Store
	dir   *directory.Directory

	// Snapshot of the logged-in user, loaded once from storage at startup
	// and replaced on login/register. Deliberately not re-read from the
	// directory afterwards.
	current *model.User
	loaded  bool
}

// NewManager creates a session manager over the given store and directory.
func NewManager(store storage.Store, dir *directory.Directory) *Manager {
	return &Manager{store: store, dir: dir}
}

// =============================================================================
// REGISTRATION
// =============================================================================

// Register validates the input, checks uniqueness against the directory,
// then creates the account and logs it in.
//
// Validation is short-circuit and ordered (username, email shape, password
// length, password match), then uniqueness (email before username, as the
// original checks them). Nothing is persisted unless every check passes.
// On success the directory is written BEFORE the session pointer, so a
// crash between the two writes can never leave a session referencing an
// unsaved user.
func (m *Manager) Register(username, email, password, confirmPassword string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len([]rune(username)) < MinUsernameLen {
		return model.User{}, ErrUsernameTooShort
	}
	if !emailPattern.MatchString(email) {
		return model.User{}, ErrEmailMalformed
	}
	if len([]rune(password)) < MinPasswordLen {
		return model.User{}, ErrPasswordTooShort
	}
	if password != confirmPassword {
		return model.User{}, ErrPasswordMismatch
	}

	if m.dir.Exists(func(u model.User) bool { return u.Email == email }) {
		return model.User{}, ErrEmailTaken
	}
	if m.dir.Exists(func(u model.User) bool { return u.Username == username }) {
		return model.User{}, ErrUsernameTaken
	}

	user := model.NewUser(username, email, password)

	if err := m.dir.Add(user); err != nil {
		return model.User{}, err
	}
	if err := m.setCurrent(user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// =============================================================================
// LOGIN / LOGOUT
// =============================================================================

// Login matches login (username or email) plus password against the
// directory and establishes the session on success. Any failure is the
// generic ErrInvalidCredentials.
func (m *Manager) Login(login, password string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.dir.FindByLogin(login, model.EncodePassword(password))
	if !ok {
		return model.User{}, ErrInvalidCredentials
	}

	if err := m.setCurrent(user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Logout clears the session unconditionally. Logging out while logged out
// is a no-op.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil
	m.loaded = true
	return m.store.Remove(storage.KeyCurrentUser)
}

// =============================================================================
// SESSION STATE
// =============================================================================

// Current returns the session snapshot, restoring it from storage on first
// call (a session survives process restarts by design).
func (m *Manager) Current() (model.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		var stored model.User
		if ok, _ := m.store.Get(storage.KeyCurrentUser, &stored); ok && stored.ID != "" {
			m.current = &stored
		}
		m.loaded = true
	}

	if m.current == nil {
		return model.User{}, false
	}
	return *m.current, true
}

// LoggedIn reports whether a session exists.
func (m *Manager) LoggedIn() bool {
	_, ok := m.Current()
	return ok
}

// setCurrent persists and caches the session snapshot. Callers hold m.mu.
func (m *Manager) setCurrent(user model.User) error {
	if err := m.store.Set(storage.KeyCurrentUser, user); err != nil {
		return err
	}
	snapshot := user
	m.current = &snapshot
	m.loaded = true
	return nil
}
