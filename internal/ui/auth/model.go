// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth provides the login/registration screens for the TUI.
package auth

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/teleup-tui/internal/model"
	"github.com/jeranaias/teleup-tui/internal/session"
	"github.com/jeranaias/teleup-tui/internal/ui/styles"
)

// =============================================================================
// AUTH MODES
// =============================================================================

// Mode selects which form is shown.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// Field indices for the login form.
const (
	loginFieldIdentifier = iota
	loginFieldPassword
	loginFieldCount
)

// Field indices for the registration form.
const (
	registerFieldUsername = iota
	registerFieldEmail
	registerFieldPassword
	registerFieldConfirm
	registerFieldCount
)

// =============================================================================
// MESSAGES
// =============================================================================

// SuccessMsg is emitted when login or registration succeeds. The parent
// model switches to the chat screen on receipt.
type SuccessMsg struct {
	User model.User
}

// =============================================================================
// AUTH MODEL
// =============================================================================

// Model is the Bubble Tea model for the auth screens.
type Model struct {
	mode  Mode
	theme *styles.Theme

	sessions *session.Manager

	// One input per form field; only the active form's inputs are shown.
	loginInputs    []textinput.Model
	registerInputs []textinput.Model
	focus          int

	// Inline validation error shown under the form.
	errMsg string

	width  int
	height int
}

// New creates the auth model starting on the login form.
func New(sessions *session.Manager, theme *styles.Theme) Model {
	login := make([]textinput.Model, loginFieldCount)
	for i := range login {
		login[i] = newInput()
	}
	login[loginFieldIdentifier].Placeholder = "username or email"
	login[loginFieldIdentifier].Focus()
	login[loginFieldPassword].Placeholder = "password"
	login[loginFieldPassword].EchoMode = textinput.EchoPassword

	register := make([]textinput.Model, registerFieldCount)
	for i := range register {
		register[i] = newInput()
	}
	register[registerFieldUsername].Placeholder = "username (3+ characters)"
	register[registerFieldEmail].Placeholder = "email"
	register[registerFieldPassword].Placeholder = "password (6+ characters)"
	register[registerFieldPassword].EchoMode = textinput.EchoPassword
	register[registerFieldConfirm].Placeholder = "confirm password"
	register[registerFieldConfirm].EchoMode = textinput.EchoPassword

	return Model{
		mode:           ModeLogin,
		theme:          theme,
		sessions:       sessions,
		loginInputs:    login,
		registerInputs: register,
	}
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 36
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize records the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Mode returns the active form.
func (m Model) Mode() Mode {
	return m.mode
}

// Err returns the inline error currently shown, if any.
func (m Model) Err() string {
	return m.errMsg
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.moveFocus(1)
			return m, textinput.Blink
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, textinput.Blink
		case "ctrl+t":
			m.toggleMode()
			return m, textinput.Blink
		case "enter":
			return m.submit()
		}
	}

	return m.updateInputs(msg)
}

func (m *Model) inputs() []textinput.Model {
	if m.mode == ModeLogin {
		return m.loginInputs
	}
	return m.registerInputs
}

func (m Model) updateInputs(msg tea.Msg) (Model, tea.Cmd) {
	inputs := m.inputs()
	cmds := make([]tea.Cmd, len(inputs))
	for i := range inputs {
		inputs[i], cmds[i] = inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) moveFocus(delta int) {
	inputs := m.inputs()
	inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(inputs)) % len(inputs)
	inputs[m.focus].Focus()
}

func (m *Model) toggleMode() {
	m.inputs()[m.focus].Blur()
	if m.mode == ModeLogin {
		m.mode = ModeRegister
	} else {
		m.mode = ModeLogin
	}
	m.focus = 0
	m.errMsg = ""
	m.inputs()[m.focus].Focus()
}

// submit runs the active form against the session manager. Validation
// errors are shown inline; success hands the user to the parent model.
func (m Model) submit() (Model, tea.Cmd) {
	if m.mode == ModeLogin {
		user, err := m.sessions.Login(
			m.loginInputs[loginFieldIdentifier].Value(),
			m.loginInputs[loginFieldPassword].Value(),
		)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		return m, successCmd(user)
	}

	user, err := m.sessions.Register(
		m.registerInputs[registerFieldUsername].Value(),
		m.registerInputs[registerFieldEmail].Value(),
		m.registerInputs[registerFieldPassword].Value(),
		m.registerInputs[registerFieldConfirm].Value(),
	)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.errMsg = ""
	return m, successCmd(user)
}

func successCmd(user model.User) tea.Cmd {
	return func() tea.Msg {
		return SuccessMsg{User: user}
	}
}
