// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the durable key-value store backing TeleUp.
package storage

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// STORE WATCHER
// =============================================================================

// Watcher reports changes other processes make to a FileStore's records.
// It is the analog of the browser's cross-tab "storage" events: when a
// second TeleUp process rewrites users.json or chats.json, the first one
// hears about it and can re-render.
//
// Only the file backend is watchable; the SQLite backend has no per-record
// files to observe.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func(key string)
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

// DefaultDebounce coalesces the write+rename burst an atomic record
// replacement produces into a single notification.
const DefaultDebounce = 200 * time.Millisecond

// NewWatcher creates a watcher for the store's data directory. onChange is
// invoked from a background goroutine with the record key that changed.
func NewWatcher(store *FileStore, onChange func(key string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	w := &Watcher{
		watcher:  fsw,
		onChange: onChange,
		debounce: DefaultDebounce,
		pending:  make(map[string]time.Time),
		ctx:      ctx,
		cancel:   cancel,
	}

	if err := fsw.Add(store.BaseDir); err != nil {
		fsw.Close()
		cancel()
		return nil, err
	}

	go w.processEvents()
	go w.processPending()

	return w, nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// processEvents translates filesystem events into pending record changes.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Atomic replacement surfaces as Create (rename target) or
			// Write; Remove covers record deletion (logout).
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}

			key := recordKeyFromPath(event.Name)
			if key == "" {
				continue
			}

			w.mu.Lock()
			w.pending[key] = time.Now()
			w.mu.Unlock()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the store still works, we just
			// might miss an external change.
		}
	}
}

// processPending fires the callback for keys whose burst of events has
// settled for at least the debounce interval.
func (w *Watcher) processPending() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			now := time.Now()

			w.mu.Lock()
			var settled []string
			for key, changed := range w.pending {
				if now.Sub(changed) >= w.debounce {
					settled = append(settled, key)
					delete(w.pending, key)
				}
			}
			w.mu.Unlock()

			for _, key := range settled {
				w.onChange(key)
			}
		}
	}
}
