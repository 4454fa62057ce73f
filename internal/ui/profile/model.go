// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package profile provides the profile screen for the TUI.
package profile

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/teleup-tui/internal/session"
	"github.com/jeranaias/teleup-tui/internal/ui/components"
	"github.com/jeranaias/teleup-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// BackMsg asks the root model to return to the chat screen.
type BackMsg struct{}

// LogoutMsg asks the root model to log out and show the auth screen.
type LogoutMsg struct{}

// =============================================================================
// PROFILE MODEL
// =============================================================================

// Model is the Bubble Tea model for the profile screen. It shows the
// current account read-only; the edit and settings actions are stubs that
// raise a status toast, matching the demo scope.
type Model struct {
	theme    *styles.Theme
	sessions *session.Manager
	toasts   *components.ToastManager

	width  int
	height int
}

// New creates the profile screen model.
func New(sessions *session.Manager, theme *styles.Theme, toasts *components.ToastManager) Model {
	return Model{
		theme:    theme,
		sessions: sessions,
		toasts:   toasts,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return components.ToastTickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case components.ToastTickMsg:
		m.toasts.TickToasts()
		if m.toasts.HasToasts() {
			return m, components.ToastTickCmd()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return BackMsg{} }
		case "e":
			m.toasts.AddStatus("Edit profile coming soon")
			return m, components.ToastTickCmd()
		case "s":
			m.toasts.AddStatus("Settings coming soon")
			return m, components.ToastTickCmd()
		case "ctrl+l":
			return m, func() tea.Msg { return LogoutMsg{} }
		}
	}
	return m, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	user, ok := m.sessions.Current()
	if !ok {
		return m.theme.ErrorStyle.Render("no active session")
	}

	var b strings.Builder
	b.WriteString(m.theme.ProfileAvatar.Render(user.Initial()))
	b.WriteString("  ")
	b.WriteString(m.theme.HeaderTitle.Render(user.Username))
	b.WriteString("\n\n")

	fields := [][2]string{
		{"Email", user.Email},
		{"Member since", user.CreatedAt.Format("2 Jan 2006")},
	}
	for _, f := range fields {
		b.WriteString(m.theme.ProfileField.Render(f[0] + ": "))
		b.WriteString(m.theme.ProfileValue.Render(f[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHints())

	box := m.theme.ProfileBox.Render(b.String())

	var view string
	if m.width > 0 && m.height > 0 {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	} else {
		view = box
	}

	if m.toasts.HasToasts() {
		return view + "\n" + components.RenderToastStack(m.toasts.GetToasts(), m.width, 0)
	}
	return view
}

func (m Model) renderHints() string {
	hints := [][2]string{
		{"e", "edit"},
		{"s", "settings"},
		{"ctrl+l", "logout"},
		{"esc", "back"},
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, m.theme.ShortcutKey.Render(h[0])+" "+m.theme.ShortcutDesc.Render(h[1]))
	}
	return strings.Join(parts, "  ")
}
