// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatstore "github.com/jeranaias/teleup-tui/internal/chat"
	"github.com/jeranaias/teleup-tui/internal/directory"
	"github.com/jeranaias/teleup-tui/internal/model"
	"github.com/jeranaias/teleup-tui/internal/session"
	"github.com/jeranaias/teleup-tui/internal/storage"
	"github.com/jeranaias/teleup-tui/internal/ui/auth"
	chatui "github.com/jeranaias/teleup-tui/internal/ui/chat"
	"github.com/jeranaias/teleup-tui/internal/ui/components"
	"github.com/jeranaias/teleup-tui/internal/ui/profile"
	"github.com/jeranaias/teleup-tui/internal/ui/styles"
)

func newTestApp(t *testing.T, loggedIn bool) (App, *session.Manager) {
	t.Helper()
	backend, err := storage.OpenFileStore(t.TempDir())
	require.NoError(t, err)

	sessions := session.NewManager(backend, directory.New(backend))
	if loggedIn {
		_, err = sessions.Register("alice", "alice@example.com", "secret1", "secret1")
		require.NoError(t, err)
	}

	store := chatstore.New(backend, sessions, chatstore.Options{})
	app := NewApp(sessions, store, styles.NewTheme())

	resized, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return resized.(App), sessions
}

func TestNewApp_StartsOnAuthWithoutSession(t *testing.T) {
	app, _ := newTestApp(t, false)
	assert.Equal(t, ScreenAuth, app.Screen())
}

func TestNewApp_RestoresSession(t *testing.T) {
	app, _ := newTestApp(t, true)
	assert.Equal(t, ScreenChat, app.Screen(), "surviving session skips auth")
}

func TestAuthSuccess_SwitchesToChat(t *testing.T) {
	app, _ := newTestApp(t, false)

	updated, _ := app.Update(auth.SuccessMsg{User: model.User{Username: "alice"}})
	assert.Equal(t, ScreenChat, updated.(App).Screen())
}

// Signing in raises a success toast rendered over the chat screen.
func TestAuthSuccess_RaisesWelcomeToast(t *testing.T) {
	app, _ := newTestApp(t, false)

	updated, cmd := app.Update(auth.SuccessMsg{User: model.User{Username: "alice"}})
	app = updated.(App)

	require.NotNil(t, cmd)
	assert.Contains(t, app.View(), "Signed in as alice")

	// A fresh toast survives the first tick.
	updated, _ = app.Update(components.ToastTickMsg{})
	assert.Contains(t, updated.(App).View(), "Signed in as alice")
}

func TestProfileRoundTrip(t *testing.T) {
	app, _ := newTestApp(t, true)

	updated, _ := app.Update(chatui.OpenProfileMsg{})
	app = updated.(App)
	assert.Equal(t, ScreenProfile, app.Screen())

	updated, _ = app.Update(profile.BackMsg{})
	assert.Equal(t, ScreenChat, updated.(App).Screen())
}

func TestLogout_ReturnsToAuthAndClearsSession(t *testing.T) {
	app, sessions := newTestApp(t, true)

	updated, _ := app.Update(chatui.LogoutMsg{})
	app = updated.(App)

	assert.Equal(t, ScreenAuth, app.Screen())
	assert.False(t, sessions.LoggedIn())
}

// Logging out after a resize hands the known window size to the fresh auth
// form and still schedules its startup command.
func TestLogout_AfterResize_ReinitializesAuth(t *testing.T) {
	app, _ := newTestApp(t, true)

	updated, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	app = updated.(App)

	updated, cmd := app.Update(chatui.LogoutMsg{})
	app = updated.(App)

	assert.Equal(t, ScreenAuth, app.Screen())
	require.NotNil(t, cmd)
	assert.NotEmpty(t, app.View())
}

func TestCtrlC_Quits(t *testing.T) {
	app, _ := newTestApp(t, true)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
