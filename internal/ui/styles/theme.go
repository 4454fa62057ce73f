// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the teleup TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// AUTH FORM STYLES
	// ==========================================================================

	FormBox        lipgloss.Style
	FormTitle      lipgloss.Style
	FormLabel      lipgloss.Style
	FormHint       lipgloss.Style
	FormError      lipgloss.Style
	FormTabActive  lipgloss.Style
	FormTabDimmed  lipgloss.Style
	SubmitButton   lipgloss.Style
	SubmitFocused  lipgloss.Style

	// ==========================================================================
	// CHAT LIST STYLES
	// ==========================================================================

	ChatList         lipgloss.Style
	ChatItem         lipgloss.Style
	ChatItemSelected lipgloss.Style
	ChatName         lipgloss.Style
	ChatPreview      lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	OutgoingBubble lipgloss.Style
	IncomingBubble lipgloss.Style
	MessageSender  lipgloss.Style
	MessageTime    lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// PROFILE STYLES
	// ==========================================================================

	ProfileBox    lipgloss.Style
	ProfileAvatar lipgloss.Style
	ProfileField  lipgloss.Style
	ProfileValue  lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// NewThemeForBackground creates a theme with the background forced to dark
// or light, overriding terminal detection. Used when the config pins a
// theme.
func NewThemeForBackground(dark bool) *Theme {
	lipgloss.SetHasDarkBackground(dark)

	t := &Theme{
		IsDark:       dark,
		HasTrueColor: termenv.ColorProfile() == termenv.TrueColor,
		ColorProfile: termenv.ColorProfile(),
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Blue).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Blue)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Auth forms
	t.FormBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Blue).
		Padding(1, 3)

	t.FormTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Blue).
		MarginBottom(1)

	t.FormLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.FormHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.FormError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.FormTabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Blue).
		Padding(0, 2)

	t.FormTabDimmed = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 2)

	t.SubmitButton = lipgloss.NewStyle().
		Foreground(TextSecondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 3)

	t.SubmitFocused = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Blue).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Blue).
		Padding(0, 3)

	// Chat list
	t.ChatList = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ChatItem = lipgloss.NewStyle().
		Padding(0, 1)

	t.ChatItemSelected = lipgloss.NewStyle().
		Background(SelectionBg).
		Bold(true).
		Padding(0, 1)

	t.ChatName = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.ChatPreview = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Message bubbles
	t.OutgoingBubble = lipgloss.NewStyle().
		Foreground(OutgoingBubbleFg).
		Background(OutgoingBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(OutgoingBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.IncomingBubble = lipgloss.NewStyle().
		Foreground(IncomingBubbleFg).
		Background(IncomingBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(IncomingBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.MessageSender = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.MessageTime = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Blue)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Profile
	t.ProfileBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Blue).
		Padding(1, 3)

	t.ProfileAvatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Blue).
		Padding(0, 1)

	t.ProfileField = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.ProfileValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	// Status styles
	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)

	t.InfoStyle = lipgloss.NewStyle().
		Foreground(Cyan)
}

// SetSize records the current terminal dimensions for layout decisions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// LayoutMode describes how much horizontal space the UI has to work with.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 cols: chat list hidden
	LayoutNormal                   // 60-100 cols: standard two-pane layout
	LayoutWide                     // > 100 cols: roomy two-pane layout
)

// GetLayoutMode returns the layout mode for the current width.
func (t *Theme) GetLayoutMode() LayoutMode {
	switch {
	case t.Width < 60:
		return LayoutNarrow
	case t.Width <= 100:
		return LayoutNormal
	default:
		return LayoutWide
	}
}
