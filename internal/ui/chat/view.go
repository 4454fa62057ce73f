// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/teleup-tui/internal/model"
	"github.com/jeranaias/teleup-tui/internal/util"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.loadErr != nil {
		return m.theme.ErrorStyle.Render("failed to load chats: " + m.loadErr.Error())
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	body := m.renderConversation()
	if m.listWidth() > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderChatList(), body)
	}
	b.WriteString(body)
	b.WriteString("\n")

	b.WriteString(m.theme.InputContainer.Render(m.composer.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m Model) renderHeader() string {
	title := "TeleUp"
	if c, ok := m.selectedChat(); ok {
		title = c.Name
	}
	if user, ok := m.sessions.Current(); ok {
		title += "  ·  " + user.Username
	}
	return m.theme.Header.Width(m.width).Render(title)
}

// renderChatList renders the left pane: one row per chat with a preview of
// its last message.
func (m Model) renderChatList() string {
	width := m.listWidth()
	rows := make([]string, 0, len(m.chats))

	for i, c := range m.chats {
		name := util.TruncateWidth(c.Name, width-2)
		preview := c.LastMessage
		if preview == "" {
			preview = "No messages"
		}
		preview = util.TruncateWidth(preview, width-2)

		row := m.theme.ChatName.Render(name) + "\n" + m.theme.ChatPreview.Render(preview)
		if i == m.cursor {
			row = m.theme.ChatItemSelected.Width(width).Render(row)
		} else {
			row = m.theme.ChatItem.Width(width).Render(row)
		}
		rows = append(rows, row)
	}

	return m.theme.ChatList.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderConversation() string {
	return m.viewport.View()
}

// syncViewport rebuilds the viewport content from the selected chat's log.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}

	c, ok := m.selectedChat()
	if !ok {
		m.viewport.SetContent(m.theme.InfoStyle.Render("Select a chat to start messaging"))
		return
	}

	var b strings.Builder
	for _, msg := range c.Messages {
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
}

// renderMessage renders one bubble: outgoing on the right, incoming on the
// left, with sender and timestamp above the text.
func (m Model) renderMessage(msg model.Message) string {
	meta := m.theme.MessageSender.Render(msg.Sender) + " " +
		m.theme.MessageTime.Render(msg.Timestamp.Format("15:04"))

	bubbleWidth := m.viewport.Width - 8
	if bubbleWidth < 16 {
		bubbleWidth = 16
	}

	var bubble string
	if msg.Type == model.MessageOutgoing {
		bubble = m.theme.OutgoingBubble.MaxWidth(bubbleWidth).Render(msg.Text)
		return lipgloss.NewStyle().Width(m.viewport.Width).Align(lipgloss.Right).
			Render(meta + "\n" + bubble)
	}
	bubble = m.theme.IncomingBubble.MaxWidth(bubbleWidth).Render(msg.Text)
	return meta + "\n" + bubble
}

func (m Model) renderStatusBar() string {
	hints := [][2]string{
		{"tab", "switch pane"},
		{"enter", "open/send"},
		{"ctrl+p", "profile"},
		{"ctrl+l", "logout"},
		{"ctrl+c", "quit"},
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, m.theme.ShortcutKey.Render(h[0])+" "+m.theme.ShortcutDesc.Render(h[1]))
	}
	return m.theme.StatusBar.Width(m.width).Render(strings.Join(parts, "  "))
}
