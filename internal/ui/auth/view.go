// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.HeaderTitle.Render("TeleUp"))
	b.WriteString("\n")
	b.WriteString(m.theme.HeaderSubtitle.Render("fast. simple. yours."))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	labels := m.fieldLabels()
	for i, input := range m.inputs() {
		b.WriteString(m.theme.FormLabel.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.FormError.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHints())

	form := m.theme.FormBox.Render(b.String())

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
	}
	return form
}

func (m Model) renderTabs() string {
	login := "Sign In"
	register := "Sign Up"

	if m.mode == ModeLogin {
		return m.theme.FormTabActive.Render(login) + m.theme.FormTabDimmed.Render(register)
	}
	return m.theme.FormTabDimmed.Render(login) + m.theme.FormTabActive.Render(register)
}

func (m Model) fieldLabels() []string {
	if m.mode == ModeLogin {
		return []string{"Username or email", "Password"}
	}
	return []string{"Username", "Email", "Password", "Confirm password"}
}

func (m Model) renderHints() string {
	hints := [][2]string{
		{"enter", "submit"},
		{"tab", "next field"},
		{"ctrl+t", "switch form"},
		{"ctrl+c", "quit"},
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, m.theme.ShortcutKey.Render(h[0])+" "+m.theme.ShortcutDesc.Render(h[1]))
	}
	return strings.Join(parts, "  ")
}
