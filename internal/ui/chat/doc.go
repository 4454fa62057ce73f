// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat screen for the TUI.
//
// The screen is two panes: the conversation list on the left and the
// message log plus composer on the right. The list pane collapses below 60
// columns. The screen owns no chat state of its own; every render re-reads
// from the chat store, and RefreshMsg (sent by the store's change hook and
// the filesystem watcher) triggers a re-read when the data changes
// underneath it.
//
// # Key Bindings
//
//   - tab: switch between list and composer
//   - up/down, j/k: move the list cursor
//   - enter: open the chat under the cursor / send the composed message
//   - ctrl+p: open the profile screen
//   - ctrl+l: log out
package chat
