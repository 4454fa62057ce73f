// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the teleup TUI.
//
// All colors are lipgloss.AdaptiveColor pairs so the UI reads well on both
// light and dark terminals; the Theme bundles every styled component the
// screens render with.
//
// # Key Types
//
//   - Theme: All lipgloss styles, plus terminal capability detection
//   - LayoutMode: Narrow/normal/wide breakpoints for the two-pane layout
//
// # Usage
//
//	theme := styles.NewTheme()
//	theme.SetSize(width, height)
//	header := theme.Header.Render("TeleUp")
package styles
