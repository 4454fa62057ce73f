// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the durable key-value store backing TeleUp.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeranaias/teleup-tui/internal/util"
)

// =============================================================================
// FILE STORE
// =============================================================================

// FileStore persists each record as <key>.json under a base directory.
// It is the default backend.
type FileStore struct {
	// BaseDir is the directory holding the record files.
	// Default: ~/.teleup/
	BaseDir string
}

// DefaultDataDir returns the default TeleUp data directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".teleup"), nil
}

// OpenFileStore opens (and if necessary creates) a file store rooted at dir.
// An empty dir selects the default data directory.
func OpenFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		d, err := DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FileStore{BaseDir: dir}, nil
}

// Get reads and deserializes the record for key into v.
// Missing files and records that fail to parse both report (false, nil).
func (s *FileStore) Get(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.recordPath(key))
	if err != nil {
		// Absent is the normal first-run case; anything else (permissions,
		// I/O) is still treated as absent per the lenient-read contract.
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, nil
	}
	return true, nil
}

// Set serializes v and atomically replaces the record for key.
func (s *FileStore) Set(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record %q: %w", key, err)
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	if err := util.AtomicWriteFile(s.recordPath(key), data, 0600); err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}
	return nil
}

// Remove deletes the record for key. Removing an absent key is a no-op.
func (s *FileStore) Remove(key string) error {
	err := os.Remove(s.recordPath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove record %q: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error {
	return nil
}

// recordPath returns the file path for a record key.
func (s *FileStore) recordPath(key string) string {
	return filepath.Join(s.BaseDir, key+".json")
}

// recordKeyFromPath maps a record file path back to its key, or "" if the
// path is not a record file. Used by the watcher.
func recordKeyFromPath(path string) string {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".tmp-") {
		return ""
	}
	return strings.TrimSuffix(name, ".json")
}
