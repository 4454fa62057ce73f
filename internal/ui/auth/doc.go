// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth provides the login and registration screens for the TUI.
//
// Both forms live in one model; ctrl+t toggles between them. Validation and
// account checks run synchronously through the session manager, and failures
// are shown inline under the form the way a web form would show them. On
// success the model emits SuccessMsg and the root model switches to the
// chat screen.
package auth
