// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat screen for the TUI: the conversation list,
// the message log, and the composer.
package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	chatstore "github.com/jeranaias/teleup-tui/internal/chat"
	"github.com/jeranaias/teleup-tui/internal/model"
	"github.com/jeranaias/teleup-tui/internal/session"
	"github.com/jeranaias/teleup-tui/internal/ui/styles"
)

// =============================================================================
// FOCUS ZONES
// =============================================================================

// focusZone is which pane receives key input.
type focusZone int

const (
	focusList focusZone = iota
	focusComposer
)

// =============================================================================
// MESSAGES
// =============================================================================

// RefreshMsg asks the chat screen to re-read the chat list from storage.
// It is sent by the store's change hook and by the filesystem watcher.
type RefreshMsg struct{}

// OpenProfileMsg asks the root model to show the profile screen.
type OpenProfileMsg struct{}

// LogoutMsg asks the root model to log out and return to the auth screen.
type LogoutMsg struct{}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	theme *styles.Theme

	store    *chatstore.Store
	sessions *session.Manager

	// Cached chat list; re-read on RefreshMsg.
	chats    []model.Chat
	cursor   int
	loadErr  error

	focus focusZone

	viewport viewport.Model
	composer textinput.Model

	width  int
	height int
	ready  bool
}

// New creates the chat screen model.
func New(store *chatstore.Store, sessions *session.Manager, theme *styles.Theme) Model {
	composer := textinput.New()
	composer.Placeholder = "Type a message..."
	composer.CharLimit = 1000
	composer.Prompt = "> "

	m := Model{
		theme:    theme,
		store:    store,
		sessions: sessions,
		composer: composer,
		focus:    focusList,
	}
	m.reload()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// reload re-reads the chat list and clamps the cursor.
func (m *Model) reload() {
	chats, err := m.store.Chats()
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil
	m.chats = chats
	if m.cursor >= len(m.chats) {
		m.cursor = len(m.chats) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectedChat returns the chat under the cursor, preferring the store's
// selection when one is open.
func (m *Model) selectedChat() (model.Chat, bool) {
	if c, ok := m.store.Selected(); ok {
		return c, true
	}
	return model.Chat{}, false
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		m.syncViewport()
		return m, nil

	case RefreshMsg:
		m.reload()
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusComposer {
		var cmd tea.Cmd
		m.composer, cmd = m.composer.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+p":
		return m, func() tea.Msg { return OpenProfileMsg{} }

	case "ctrl+l":
		return m, func() tea.Msg { return LogoutMsg{} }

	case "tab":
		m.toggleFocus()
		return m, textinput.Blink
	}

	if m.focus == focusList {
		return m.handleListKey(msg)
	}
	return m.handleComposerKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.chats)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.chats) {
			m.store.Select(m.chats[m.cursor].ID)
			m.focus = focusComposer
			m.composer.Focus()
			m.syncViewport()
			m.viewport.GotoBottom()
			return m, textinput.Blink
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleComposerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if _, ok := m.store.Send(m.composer.Value()); ok {
			m.composer.Reset()
			m.reload()
			m.syncViewport()
			m.viewport.GotoBottom()
		}
		return m, nil

	case "esc":
		m.toggleFocus()
		return m, nil
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focus == focusList {
		m.focus = focusComposer
		m.composer.Focus()
	} else {
		m.focus = focusList
		m.composer.Blur()
	}
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	vpWidth := width - m.listWidth() - 4
	if vpWidth < 20 {
		vpWidth = 20
	}
	vpHeight := height - 6 // header, composer, status bar
	if vpHeight < 5 {
		vpHeight = 5
	}

	if !m.ready {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}
	m.composer.Width = vpWidth - 4
}

// listWidth returns the chat list pane width for the current layout.
func (m *Model) listWidth() int {
	switch m.theme.GetLayoutMode() {
	case styles.LayoutNarrow:
		return 0
	case styles.LayoutWide:
		return 32
	default:
		return 24
	}
}
