// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the durable key-value store backing TeleUp.
//
// The store is the only component that touches the filesystem; everything
// above it works with named JSON-serializable records.
//
// # Key Types
//
//   - Store: get/set/remove of named JSON records
//   - FileStore: one JSON file per key under the data dir (default backend)
//   - SQLiteStore: a single kv table in an embedded SQLite database
//   - Watcher: fsnotify-based change notifications for the file backend
//
// # Lenient Reads
//
// A missing key, an unreadable file, or a record that no longer matches the
// expected shape all read as "absent" rather than failing. Callers fall back
// to their zero value (empty user list, no session, empty chat list).
//
// # Usage
//
//	store, err := storage.OpenFileStore(dir)
//	ok, err := store.Get(storage.KeyUsers, &users)
//	err = store.Set(storage.KeyUsers, users)
package storage
