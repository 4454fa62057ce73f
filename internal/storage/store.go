// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the durable key-value store backing TeleUp.
package storage

// =============================================================================
// WELL-KNOWN KEYS
// =============================================================================

// The persisted state is three independent named records. Each record is
// read and written whole.
const (
	// KeyUsers holds the JSON array of all registered users.
	KeyUsers = "users"
	// KeyCurrentUser holds the single current-session user, or is absent.
	KeyCurrentUser = "current_user"
	// KeyChats holds the JSON array of all chats and their message logs.
	KeyChats = "chats"
)

// =============================================================================
// STORE INTERFACE
// =============================================================================

// Store is the contract every storage backend satisfies.
//
// Get deserializes the named record into v and reports whether a usable
// value was found. Absence and corruption both report (false, nil): the
// stored data is a demo cache, so a record that fails to parse is treated
// like a record that was never written. A non-nil error is reserved for
// real I/O failures on backends that can distinguish them.
//
// Set serializes v and durably replaces the named record as a single unit.
// Remove deletes the record; removing an absent key is a no-op.
type Store interface {
	Get(key string, v any) (bool, error)
	Set(key string, v any) error
	Remove(key string) error
	Close() error
}
