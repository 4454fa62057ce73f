// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the root Bubble Tea model that wires the auth, chat
// and profile screens together.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	chatstore "github.com/jeranaias/teleup-tui/internal/chat"
	"github.com/jeranaias/teleup-tui/internal/session"
	"github.com/jeranaias/teleup-tui/internal/ui/auth"
	chatui "github.com/jeranaias/teleup-tui/internal/ui/chat"
	"github.com/jeranaias/teleup-tui/internal/ui/components"
	"github.com/jeranaias/teleup-tui/internal/ui/profile"
	"github.com/jeranaias/teleup-tui/internal/ui/styles"
)

// =============================================================================
// SCREENS
// =============================================================================

// Screen identifies the active top-level screen.
type Screen int

const (
	ScreenAuth Screen = iota
	ScreenChat
	ScreenProfile
)

// =============================================================================
// APP MODEL
// =============================================================================

// App is the root Bubble Tea model. It owns the screen switch; each screen
// is its own model and talks to the app only through messages.
type App struct {
	screen Screen
	theme  *styles.Theme

	sessions *session.Manager
	store    *chatstore.Store
	toasts   *components.ToastManager

	authModel    auth.Model
	chatModel    chatui.Model
	profileModel profile.Model

	width  int
	height int
}

// NewApp creates the root model. A surviving session from a previous run
// skips the auth screen.
func NewApp(sessions *session.Manager, store *chatstore.Store, theme *styles.Theme) App {
	toasts := components.NewToastManager()

	app := App{
		theme:        theme,
		sessions:     sessions,
		store:        store,
		toasts:       toasts,
		authModel:    auth.New(sessions, theme),
		chatModel:    chatui.New(store, sessions, theme),
		profileModel: profile.New(sessions, theme, toasts),
	}

	if sessions.LoggedIn() {
		app.screen = ScreenChat
	} else {
		app.screen = ScreenAuth
	}
	return app
}

// Screen returns the active screen.
func (a App) Screen() Screen {
	return a.screen
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	switch a.screen {
	case ScreenChat:
		return a.chatModel.Init()
	default:
		return a.authModel.Init()
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Every screen tracks its own dimensions.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.authModel, cmd = a.authModel.Update(msg)
		cmds = append(cmds, cmd)
		a.chatModel, cmd = a.chatModel.Update(msg)
		cmds = append(cmds, cmd)
		a.profileModel, cmd = a.profileModel.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case auth.SuccessMsg:
		a.screen = ScreenChat
		a.toasts.AddSuccess("Signed in as " + msg.User.Username)
		// Re-read chats so the greeting reflects the fresh session.
		var cmd tea.Cmd
		a.chatModel, cmd = a.chatModel.Update(chatui.RefreshMsg{})
		return a, tea.Batch(cmd, a.chatModel.Init(), components.ToastTickCmd())

	case components.ToastTickMsg:
		a.toasts.TickToasts()
		if a.toasts.HasToasts() {
			return a, components.ToastTickCmd()
		}
		return a, nil

	case chatui.RefreshMsg:
		var cmd tea.Cmd
		a.chatModel, cmd = a.chatModel.Update(msg)
		return a, cmd

	case chatui.OpenProfileMsg:
		a.screen = ScreenProfile
		return a, a.profileModel.Init()

	case profile.BackMsg:
		a.screen = ScreenChat
		return a, nil

	case chatui.LogoutMsg:
		return a.logout()

	case profile.LogoutMsg:
		return a.logout()
	}

	return a.updateActive(msg)
}

// updateActive routes a message to the active screen only.
func (a App) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.screen {
	case ScreenAuth:
		a.authModel, cmd = a.authModel.Update(msg)
	case ScreenChat:
		a.chatModel, cmd = a.chatModel.Update(msg)
	case ScreenProfile:
		a.profileModel, cmd = a.profileModel.Update(msg)
	}
	return a, cmd
}

// logout clears the session and returns to a fresh auth form.
func (a App) logout() (tea.Model, tea.Cmd) {
	if err := a.sessions.Logout(); err != nil {
		a.toasts.AddError("logout failed: " + err.Error())
		return a, components.ToastTickCmd()
	}
	a.authModel = auth.New(a.sessions, a.theme)
	cmds := []tea.Cmd{a.authModel.Init()}
	if a.width > 0 {
		var cmd tea.Cmd
		a.authModel, cmd = a.authModel.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		cmds = append(cmds, cmd)
	}
	a.screen = ScreenAuth
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a App) View() string {
	switch a.screen {
	case ScreenChat:
		view := a.chatModel.View()
		if a.toasts.HasToasts() {
			view += "\n" + components.RenderToastStack(a.toasts.GetToasts(), a.width, 0)
		}
		return view
	case ScreenProfile:
		return a.profileModel.View()
	default:
		return a.authModel.View()
	}
}
