// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package directory holds the durable list of registered accounts.
//
// The directory is append-only in this product: accounts are created at
// registration and never edited or removed. Every read deserializes the
// full user list from storage and every add writes it back whole, so the
// store is the single source of truth between calls.
package directory

import (
	"fmt"
	"sync"

	"github.com/jeranaias/teleup-tui/internal/model"
	"github.com/jeranaias/teleup-tui/internal/storage"
)

// =============================================================================
// USER DIRECTORY
// =============================================================================

// Directory is the durable collection of all registered users.
type Directory struct {
	mu    sync.Mutex
	store storage.Store
}

// New creates a directory backed by the given store.
func New(store storage.Store) *Directory {
	return &Directory{store: store}
}

// All returns every registered user in registration order. An absent or
// unreadable record yields the empty list.
func (d *Directory) All() []model.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load()
}

// Exists reports whether any registered user satisfies pred.
func (d *Directory) Exists(pred func(model.User) bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.load() {
		if pred(u) {
			return true
		}
	}
	return false
}

// FindByLogin returns the user whose username OR email equals login and
// whose stored encoded password equals encodedPassword. The two identifiers
// are interchangeable in a single lookup.
func (d *Directory) FindByLogin(login, encodedPassword string) (model.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.load() {
		if (u.Username == login || u.Email == login) && u.Password == encodedPassword {
			return u, true
		}
	}
	return model.User{}, false
}

// Add appends a user and persists the full list.
//
// Uniqueness of username and email is the CALLER's contract (the session
// manager checks before creating the user); Add does not re-validate.
func (d *Directory) Add(user model.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	users := append(d.load(), user)
	if err := d.store.Set(storage.KeyUsers, users); err != nil {
		return fmt.Errorf("failed to persist user directory: %w", err)
	}
	return nil
}

// Count returns the number of registered users.
func (d *Directory) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.load())
}

// load reads the user list from storage. Callers must hold d.mu.
func (d *Directory) load() []model.User {
	var users []model.User
	if ok, _ := d.store.Get(storage.KeyUsers, &users); !ok {
		return nil
	}
	return users
}
