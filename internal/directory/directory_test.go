// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package directory holds the durable list of registered accounts.
package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/teleup-tui/internal/model"
	"github.com/jeranaias/teleup-tui/internal/storage"
)

func newTestDirectory(t *testing.T) (*Directory, storage.Store) {
	t.Helper()
	store, err := storage.OpenFileStore(t.TempDir())
	require.NoError(t, err)
	return New(store), store
}

// =============================================================================
// DIRECTORY TESTS
// =============================================================================

func TestDirectory_EmptyOnFirstRun(t *testing.T) {
	d, _ := newTestDirectory(t)

	assert.Empty(t, d.All())
	assert.Equal(t, 0, d.Count())
	assert.False(t, d.Exists(func(model.User) bool { return true }))
}

func TestDirectory_AddAndAll(t *testing.T) {
	d, _ := newTestDirectory(t)

	alice := model.NewUser("alice", "alice@example.com", "secret1")
	bob := model.NewUser("bob", "bob@example.com", "secret2")
	require.NoError(t, d.Add(alice))
	require.NoError(t, d.Add(bob))

	all := d.All()
	require.Len(t, all, 2)
	assert.Equal(t, "alice", all[0].Username, "registration order must be preserved")
	assert.Equal(t, "bob", all[1].Username)
}

func TestDirectory_PersistsAcrossInstances(t *testing.T) {
	d, store := newTestDirectory(t)
	require.NoError(t, d.Add(model.NewUser("alice", "alice@example.com", "secret1")))

	// A fresh directory over the same store sees the same data.
	again := New(store)
	require.Len(t, again.All(), 1)
	assert.Equal(t, "alice", again.All()[0].Username)
}

func TestDirectory_Exists(t *testing.T) {
	d, _ := newTestDirectory(t)
	require.NoError(t, d.Add(model.NewUser("alice", "alice@example.com", "secret1")))

	assert.True(t, d.Exists(func(u model.User) bool { return u.Email == "alice@example.com" }))
	assert.False(t, d.Exists(func(u model.User) bool { return u.Email == "bob@example.com" }))
}

func TestDirectory_FindByLogin(t *testing.T) {
	d, _ := newTestDirectory(t)
	alice := model.NewUser("alice", "alice@example.com", "secret1")
	require.NoError(t, d.Add(alice))

	encoded := model.EncodePassword("secret1")

	byUsername, ok := d.FindByLogin("alice", encoded)
	require.True(t, ok)
	assert.Equal(t, alice.ID, byUsername.ID)

	byEmail, ok := d.FindByLogin("alice@example.com", encoded)
	require.True(t, ok)
	assert.Equal(t, alice.ID, byEmail.ID)

	_, ok = d.FindByLogin("alice", model.EncodePassword("wrong"))
	assert.False(t, ok, "wrong password must not match")

	_, ok = d.FindByLogin("nobody", encoded)
	assert.False(t, ok, "unknown login must not match")
}
