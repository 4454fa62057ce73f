// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the durable key-value store backing TeleUp.
package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openBackends returns one fresh store per backend, each rooted in its own
// temp dir. Both must satisfy the same Store contract.
func openBackends(t *testing.T) map[string]Store {
	t.Helper()

	file, err := OpenFileStore(t.TempDir())
	require.NoError(t, err)

	sqlite, err := OpenSQLiteStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{"file": file, "sqlite": sqlite}
}

// =============================================================================
// STORE CONTRACT TESTS
// =============================================================================

func TestStore_GetAbsent(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			var v []string
			ok, err := store.Get("missing", &v)
			require.NoError(t, err)
			assert.False(t, ok, "absent key should read as not found")
		})
	}
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	type record struct {
		Name  string    `json:"name"`
		Count int       `json:"count"`
		When  time.Time `json:"when"`
	}

	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			want := record{Name: "general", Count: 3, When: time.Now().UTC()}
			require.NoError(t, store.Set("rec", want))

			var got record
			ok, err := store.Get("rec", &got)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, want.Name, got.Name)
			assert.Equal(t, want.Count, got.Count)
			assert.True(t, want.When.Equal(got.When))
		})
	}
}

func TestStore_SetReplaces(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("list", []string{"a", "b"}))
			require.NoError(t, store.Set("list", []string{"c"}))

			var got []string
			ok, err := store.Get("list", &got)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []string{"c"}, got)
		})
	}
}

func TestStore_Remove(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("gone", "value"))
			require.NoError(t, store.Remove("gone"))

			var got string
			ok, err := store.Get("gone", &got)
			require.NoError(t, err)
			assert.False(t, ok)

			// Removing an absent key is a no-op, not an error.
			require.NoError(t, store.Remove("gone"))
			require.NoError(t, store.Remove("never-existed"))
		})
	}
}

// =============================================================================
// LENIENT READ TESTS
// =============================================================================

func TestFileStore_CorruptRecordReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0600))

	var users []string
	ok, err := store.Get(KeyUsers, &users)
	require.NoError(t, err)
	assert.False(t, ok, "corrupt record should read as absent")
}

func TestFileStore_ShapeMismatchReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenFileStore(dir)
	require.NoError(t, err)

	// Valid JSON, wrong shape: an object where an array is expected.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chats.json"), []byte(`{"id":"1"}`), 0600))

	var chats []map[string]any
	ok, err := store.Get(KeyChats, &chats)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore_CorruptRecordReadsAsAbsent(t *testing.T) {
	store, err := OpenSQLiteStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.db.Exec(
		"INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
		KeyChats, []byte("{not json"), time.Now(),
	)
	require.NoError(t, err)

	var chats []map[string]any
	ok, err := store.Get(KeyChats, &chats)
	require.NoError(t, err)
	assert.False(t, ok)
}

// =============================================================================
// RECORD PATH TESTS
// =============================================================================

func TestRecordKeyFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/data/users.json", "users"},
		{"/data/current_user.json", "current_user"},
		{"/data/.tmp-12345", ""},
		{"/data/teleup.db", ""},
	}

	for _, tc := range tests {
		if got := recordKeyFromPath(tc.path); got != tc.want {
			t.Errorf("recordKeyFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

// =============================================================================
// WATCHER TESTS
// =============================================================================

func TestWatcher_ReportsExternalWrite(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenFileStore(dir)
	require.NoError(t, err)

	changes := make(chan string, 8)
	w, err := NewWatcher(store, func(key string) { changes <- key })
	require.NoError(t, err)
	defer w.Close()

	// Simulate another process rewriting the chats record.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chats.json"), []byte("[]"), 0600))

	select {
	case key := <-changes:
		assert.Equal(t, KeyChats, key)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the external write")
	}
}

func TestWatcher_IgnoresTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenFileStore(dir)
	require.NoError(t, err)

	changes := make(chan string, 8)
	w, err := NewWatcher(store, func(key string) { changes <- key })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tmp-xyz"), []byte("scratch"), 0600))

	select {
	case key := <-changes:
		t.Fatalf("unexpected change notification for %q", key)
	case <-time.After(500 * time.Millisecond):
		// Nothing arrived, as expected.
	}
}
