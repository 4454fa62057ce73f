// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the teleup TUI.
//
// # Key Types
//
//   - Toast, ToastManager: Non-blocking corner notifications with
//     auto-dismiss, used for status notices and error reporting
//
// # Usage
//
//	toasts := components.NewToastManager()
//	toasts.AddStatus("Edit profile coming soon")
//	view := components.RenderToastStack(toasts.GetToasts(), width, height)
package components
