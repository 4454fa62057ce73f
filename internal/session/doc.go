// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the current-user pointer and the account lifecycle
// transitions around it: registration, login and logout.
//
// At most one session exists at a time (single local profile). The session
// holds a value copy of the user taken at login or registration time; it is
// never re-fetched from the directory, which is harmless here because the
// directory is append-only.
//
// # Usage
//
//	mgr := session.NewManager(store, dir)
//	user, err := mgr.Register("alice", "alice@example.com", "secret1", "secret1")
//	user, err = mgr.Login("alice", "secret1")
//	current, ok := mgr.Current()
//	mgr.Logout()
//
// All failures come back as typed result values (ValidationError,
// UniquenessError, ErrInvalidCredentials) for the view layer to surface;
// nothing here panics or exits.
package session
