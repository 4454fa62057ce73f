// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	chatstore "github.com/jeranaias/teleup-tui/internal/chat"
	"github.com/jeranaias/teleup-tui/internal/config"
	"github.com/jeranaias/teleup-tui/internal/directory"
	"github.com/jeranaias/teleup-tui/internal/session"
	"github.com/jeranaias/teleup-tui/internal/storage"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	// Colors
	brandPrimary   = lipgloss.Color("#3B82F6") // Blue
	brandSecondary = lipgloss.Color("#06B6D4") // Cyan
	brandAccent    = lipgloss.Color("#10B981") // Emerald
	brandWarning   = lipgloss.Color("#F59E0B") // Amber
	brandError     = lipgloss.Color("#F43F5E") // Rose
	textMuted      = lipgloss.Color("#6B7280") // Gray

	// Styles
	titleStyle = lipgloss.NewStyle().
			Foreground(brandPrimary).
			Bold(true).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(textMuted).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(brandAccent).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(brandError).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(brandWarning)

	highlightStyle = lipgloss.NewStyle().
			Foreground(brandSecondary).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(textMuted)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(brandPrimary).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(brandPrimary).
			Bold(true)

	unselectedStyle = lipgloss.NewStyle().
			Foreground(textMuted)
)

// =============================================================================
// ASCII ART
// =============================================================================

const logo = `
    ████████╗███████╗██╗     ███████╗██╗   ██╗██████╗
    ╚══██╔══╝██╔════╝██║     ██╔════╝██║   ██║██╔══██╗
       ██║   █████╗  ██║     █████╗  ██║   ██║██████╔╝
       ██║   ██╔══╝  ██║     ██╔══╝  ██║   ██║██╔═══╝
       ██║   ███████╗███████╗███████╗╚██████╔╝██║
       ╚═╝   ╚══════╝╚══════╝╚══════╝ ╚═════╝ ╚═╝
`

const tagline = "fast. simple. yours."

// =============================================================================
// SETUP MODEL
// =============================================================================

// Phase represents the current setup phase
type Phase int

const (
	PhaseWelcome Phase = iota
	PhaseSystemCheck
	PhaseThemeSelect
	PhaseBackendSelect
	PhaseApply
	PhaseComplete
)

// CheckResult represents an environment check result
type CheckResult struct {
	Name    string
	Status  string // "pass", "fail", "warn", "checking"
	Message string
	Fix     string
}

// option is a selectable list entry with the value actually written to config.
type option struct {
	Value string
	Label string
}

// Setup is the main setup model
type Setup struct {
	phase        Phase
	width        int
	height       int
	spinner      spinner.Model
	progress     progress.Model
	checks       []CheckResult
	currentCheck int

	themes          []option
	themeSelected   int
	backends        []option
	backendSelected int

	configDir string
	applyStep string
	error     string

	// Animation state
	typingText   string
	typingTarget string
	typingIndex  int

	// Completion screen
	launchSelected bool // true = "Launch teleup now", false = "Close"
}

// NewSetup creates a new setup instance
func NewSetup() *Setup {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(brandPrimary)

	p := progress.New(progress.WithDefaultGradient())

	configDir, _ := config.ConfigDir()

	return &Setup{
		phase:    PhaseWelcome,
		spinner:  s,
		progress: p,
		checks: []CheckResult{
			{Name: "Operating System", Status: "checking"},
			{Name: "Terminal Colors", Status: "checking"},
			{Name: "Home Directory", Status: "checking"},
			{Name: "Disk Space", Status: "checking"},
			{Name: "Existing Data", Status: "checking"},
		},
		themes: []option{
			{Value: "auto", Label: "auto   (detect terminal background)"},
			{Value: "dark", Label: "dark   (force the dark palette)"},
			{Value: "light", Label: "light  (force the light palette)"},
		},
		backends: []option{
			{Value: "file", Label: "file    (one JSON file per record, human readable)"},
			{Value: "sqlite", Label: "sqlite  (single teleup.db database file)"},
		},
		configDir:      configDir,
		launchSelected: true, // Default to "Launch teleup now"
	}
}

// Init initializes the setup
func (s *Setup) Init() tea.Cmd {
	return tea.Batch(
		s.spinner.Tick,
		s.typeWriter(logo, 5*time.Millisecond),
	)
}

// =============================================================================
// UPDATE
// =============================================================================

// typeWriterMsg updates the typing animation
type typeWriterMsg struct {
	target string
	index  int
}

// checkCompleteMsg signals a check is complete
type checkCompleteMsg struct {
	index  int
	result CheckResult
}

// applyStepMsg reports completion of one apply step
type applyStepMsg struct {
	step    string // the step that just finished
	percent float64
	err     error
}

// applyCompleteMsg signals setup is complete
type applyCompleteMsg struct {
	success bool
	error   string
}

// Update handles messages
func (s *Setup) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		progressWidth := msg.Width - 20
		if progressWidth < 20 {
			progressWidth = 20
		}
		if progressWidth > 100 {
			progressWidth = 100
		}
		s.progress.Width = progressWidth

		boxWidth := msg.Width - 16
		if boxWidth < 40 {
			boxWidth = 40
		}
		if boxWidth > 70 {
			boxWidth = 70
		}
		boxStyle = boxStyle.Width(boxWidth)

		return s, s.spinner.Tick

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case progress.FrameMsg:
		progressModel, cmd := s.progress.Update(msg)
		s.progress = progressModel.(progress.Model)
		return s, cmd

	case typeWriterMsg:
		if msg.target == s.typingTarget && msg.index <= len(msg.target) {
			s.typingText = msg.target[:msg.index]
			s.typingIndex = msg.index
			if msg.index < len(msg.target) {
				return s, s.typeWriterTick(msg.target, msg.index+1, 5*time.Millisecond)
			}
		}
		return s, nil

	case checkCompleteMsg:
		s.checks[msg.index] = msg.result
		s.currentCheck++
		if s.currentCheck < len(s.checks) {
			return s, s.runCheck(s.currentCheck)
		}
		return s, nil

	case applyStepMsg:
		if msg.err != nil {
			s.error = msg.err.Error()
			return s, nil
		}
		s.applyStep = msg.step
		cmds := []tea.Cmd{s.progress.SetPercent(msg.percent)}
		if msg.step == "config" {
			cmds = append(cmds, s.runSeed())
		}
		return s, tea.Batch(cmds...)

	case applyCompleteMsg:
		if msg.success {
			s.phase = PhaseComplete
		} else {
			s.error = msg.error
		}
		return s, nil
	}

	return s, nil
}

// handleKey processes key presses
func (s *Setup) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return s, tea.Quit

	case "enter", " ":
		return s.handleSelect()

	case "up", "k":
		switch s.phase {
		case PhaseThemeSelect:
			if s.themeSelected > 0 {
				s.themeSelected--
			}
		case PhaseBackendSelect:
			if s.backendSelected > 0 {
				s.backendSelected--
			}
		case PhaseComplete:
			s.launchSelected = true
		}
		return s, nil

	case "down", "j":
		switch s.phase {
		case PhaseThemeSelect:
			if s.themeSelected < len(s.themes)-1 {
				s.themeSelected++
			}
		case PhaseBackendSelect:
			if s.backendSelected < len(s.backends)-1 {
				s.backendSelected++
			}
		case PhaseComplete:
			s.launchSelected = false
		}
		return s, nil

	case "tab":
		if s.phase == PhaseComplete {
			s.launchSelected = !s.launchSelected
		}
		return s, nil
	}

	return s, nil
}

// handleSelect processes selection/enter
func (s *Setup) handleSelect() (tea.Model, tea.Cmd) {
	switch s.phase {
	case PhaseWelcome:
		s.phase = PhaseSystemCheck
		return s, s.runCheck(0)

	case PhaseSystemCheck:
		if s.currentCheck >= len(s.checks) {
			s.phase = PhaseThemeSelect
		}
		return s, nil

	case PhaseThemeSelect:
		s.phase = PhaseBackendSelect
		return s, nil

	case PhaseBackendSelect:
		s.phase = PhaseApply
		return s, s.runApply()

	case PhaseApply:
		// Wait for apply to complete
		return s, nil

	case PhaseComplete:
		if s.launchSelected {
			return s, s.launchTeleup()
		}
		return s, tea.Quit
	}

	return s, nil
}

// =============================================================================
// COMMANDS
// =============================================================================

// typeWriter starts a typing animation
func (s *Setup) typeWriter(text string, delay time.Duration) tea.Cmd {
	s.typingTarget = text
	s.typingIndex = 0
	s.typingText = ""
	return s.typeWriterTick(text, 1, delay)
}

// typeWriterTick sends the next typewriter tick
func (s *Setup) typeWriterTick(target string, index int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return typeWriterMsg{target: target, index: index}
	})
}

// runCheck runs an environment check
func (s *Setup) runCheck(index int) tea.Cmd {
	return func() tea.Msg {
		var result CheckResult

		switch index {
		case 0:
			result = checkOS()
		case 1:
			result = checkTerminal()
		case 2:
			result = checkHome()
		case 3:
			result = checkDisk()
		case 4:
			result = checkExistingData()
		}

		time.Sleep(300 * time.Millisecond) // Pace the checks for visual effect
		return checkCompleteMsg{index: index, result: result}
	}
}

// Environment checks

func checkOS() CheckResult {
	return CheckResult{
		Name:    "Operating System",
		Status:  "pass",
		Message: fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func checkTerminal() CheckResult {
	profile := termenv.ColorProfile()
	name := "16 colors"
	switch profile {
	case termenv.TrueColor:
		name = "true color"
	case termenv.ANSI256:
		name = "256 colors"
	case termenv.Ascii:
		return CheckResult{
			Name:    "Terminal Colors",
			Status:  "warn",
			Message: "No color support detected",
			Fix:     "teleup works best in a modern terminal emulator",
		}
	}
	return CheckResult{
		Name:    "Terminal Colors",
		Status:  "pass",
		Message: name,
	}
}

func checkHome() CheckResult {
	home, err := os.UserHomeDir()
	if err != nil {
		return CheckResult{
			Name:    "Home Directory",
			Status:  "fail",
			Message: "Cannot resolve home directory",
			Fix:     "Set the HOME environment variable",
		}
	}
	return CheckResult{
		Name:    "Home Directory",
		Status:  "pass",
		Message: home,
	}
}

func checkDisk() CheckResult {
	home, err := os.UserHomeDir()
	if err != nil {
		return CheckResult{Name: "Disk Space", Status: "warn", Message: "Could not check"}
	}
	free, err := getFreeDiskSpace(home)
	if err != nil {
		return CheckResult{Name: "Disk Space", Status: "warn", Message: "Could not check"}
	}
	const minBytes = 10 << 20 // teleup's data is tiny; 10 MB is plenty
	if free < minBytes {
		return CheckResult{
			Name:    "Disk Space",
			Status:  "warn",
			Message: fmt.Sprintf("Only %d MB free", free>>20),
		}
	}
	return CheckResult{
		Name:    "Disk Space",
		Status:  "pass",
		Message: fmt.Sprintf("%d MB free", free>>20),
	}
}

func checkExistingData() CheckResult {
	path, err := config.ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return CheckResult{
				Name:    "Existing Data",
				Status:  "warn",
				Message: "Configuration found (will be kept as is)",
			}
		}
	}
	return CheckResult{
		Name:    "Existing Data",
		Status:  "pass",
		Message: "Fresh setup",
	}
}

// runApply starts the apply phase with the config step
func (s *Setup) runApply() tea.Cmd {
	theme := s.themes[s.themeSelected].Value
	backend := s.backends[s.backendSelected].Value

	return func() tea.Msg {
		err := applyConfig(theme, backend)
		time.Sleep(300 * time.Millisecond) // Pace the steps for visual effect
		return applyStepMsg{step: "config", percent: 0.5, err: err}
	}
}

// runSeed runs the second apply step
func (s *Setup) runSeed() tea.Cmd {
	return func() tea.Msg {
		if err := seedDemoData(); err != nil {
			return applyStepMsg{step: "seed", err: err}
		}
		time.Sleep(500 * time.Millisecond) // Visual feedback
		return applyCompleteMsg{success: true}
	}
}

// applyConfig writes the configuration, shared with text mode.
func applyConfig(theme, backend string) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// An existing config is never overwritten; the user's choices only
	// apply to a fresh install.
	if configExists() {
		return nil
	}

	cfg := config.Default()
	cfg.UI.Theme = theme
	cfg.Storage.Backend = backend
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// seedDemoData opens the configured backend and seeds the demo chats so the
// app opens with content on first launch.
func seedDemoData() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	var store storage.Store
	switch cfg.Storage.Backend {
	case "sqlite":
		store, err = storage.OpenSQLiteStore(dataDir)
	default:
		store, err = storage.OpenFileStore(dataDir)
	}
	if err != nil {
		return fmt.Errorf("opening %s storage: %w", cfg.Storage.Backend, err)
	}
	defer store.Close()

	dir := directory.New(store)
	sessions := session.NewManager(store, dir)
	chats := chatstore.New(store, sessions, chatstore.Options{})
	if _, err := chats.Chats(); err != nil {
		return fmt.Errorf("seeding demo chats: %w", err)
	}

	return nil
}

// configExists reports whether a TOML or JSON config file is already present.
func configExists() bool {
	if path, err := config.ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return true
		}
	}
	if path, err := config.ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return true
		}
	}
	return false
}

// launchTeleup opens a terminal and runs teleup
func (s *Setup) launchTeleup() tea.Cmd {
	return func() tea.Msg {
		if cmd := teleupLaunchCommand(); cmd != nil {
			_ = cmd.Start()
		}
		return tea.Quit()
	}
}

// teleupLaunchCommand builds the platform command that opens teleup in a
// new terminal window. Returns nil when no suitable terminal is found.
func teleupLaunchCommand() *exec.Cmd {
	teleupPath, err := exec.LookPath("teleup")
	if err != nil {
		home, _ := os.UserHomeDir()
		teleupPath = filepath.Join(home, ".local", "bin", "teleup")
		if runtime.GOOS == "windows" {
			teleupPath += ".exe"
		}
	}

	switch runtime.GOOS {
	case "windows":
		if _, err := exec.LookPath("wt"); err == nil {
			return exec.Command("wt", "new-tab", "--title", "teleup", teleupPath)
		}
		return exec.Command("cmd", "/C", "start", "teleup", "cmd", "/K", teleupPath)

	case "darwin":
		script := fmt.Sprintf(`tell application "Terminal"
			activate
			do script "%s"
		end tell`, teleupPath)
		return exec.Command("osascript", "-e", script)

	default:
		terminals := []struct {
			name string
			args []string
		}{
			{"gnome-terminal", []string{"--", teleupPath}},
			{"konsole", []string{"-e", teleupPath}},
			{"xfce4-terminal", []string{"-e", teleupPath}},
			{"alacritty", []string{"-e", teleupPath}},
			{"kitty", []string{teleupPath}},
			{"xterm", []string{"-e", teleupPath}},
		}
		for _, term := range terminals {
			if _, err := exec.LookPath(term.name); err == nil {
				return exec.Command(term.name, term.args...)
			}
		}
		return nil
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the setup
func (s *Setup) View() string {
	switch s.phase {
	case PhaseWelcome:
		return s.viewWelcome()
	case PhaseSystemCheck:
		return s.viewSystemCheck()
	case PhaseThemeSelect:
		return s.viewSelect("Choose Your Theme", s.themes, s.themeSelected)
	case PhaseBackendSelect:
		return s.viewSelect("Choose Your Storage Backend", s.backends, s.backendSelected)
	case PhaseApply:
		return s.viewApply()
	case PhaseComplete:
		return s.viewComplete()
	}
	return ""
}

func (s *Setup) viewWelcome() string {
	var b strings.Builder

	logoStyle := lipgloss.NewStyle().Foreground(brandPrimary).Bold(true)
	if s.typingTarget == logo {
		b.WriteString(logoStyle.Render(s.typingText))
	} else {
		b.WriteString(logoStyle.Render(logo))
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("    " + tagline))
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render(fmt.Sprintf("    Setup v%s", version)))
	b.WriteString("\n\n")

	welcomeText := `
Welcome to teleup setup!

This setup will:

  * Check your environment
  * Let you pick a theme and storage backend
  * Create your configuration
  * Seed the demo chats

`
	b.WriteString(boxStyle.Render(welcomeText))
	b.WriteString("\n\n")

	b.WriteString(highlightStyle.Render("  Press ENTER to begin"))
	b.WriteString(dimStyle.Render("  |  Press Q to quit"))

	return s.center(b.String())
}

func (s *Setup) viewSystemCheck() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("  Environment Check"))
	b.WriteString("\n\n")

	for idx, check := range s.checks {
		var icon, status string
		var style lipgloss.Style

		switch check.Status {
		case "checking":
			if idx == s.currentCheck {
				icon = s.spinner.View()
			} else {
				icon = "[ ]"
			}
			status = "Checking..."
			style = dimStyle
		case "pass":
			icon = "[OK]"
			status = check.Message
			style = successStyle
		case "fail":
			icon = "[FAIL]"
			status = check.Message
			style = errorStyle
		case "warn":
			icon = "[!!]"
			status = check.Message
			style = warningStyle
		}

		b.WriteString(fmt.Sprintf("  %s %s", style.Render(icon), check.Name))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" - %s", status)))
		b.WriteString("\n")

		if check.Fix != "" {
			b.WriteString(dimStyle.Render(fmt.Sprintf("      -> %s", check.Fix)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")

	if s.currentCheck >= len(s.checks) {
		allPass := true
		for _, check := range s.checks {
			if check.Status == "fail" {
				allPass = false
				break
			}
		}

		if allPass {
			b.WriteString(successStyle.Render("  All checks passed!"))
			b.WriteString("\n\n")
			b.WriteString(highlightStyle.Render("  Press ENTER to continue"))
		} else {
			b.WriteString(warningStyle.Render("  Some checks need attention"))
			b.WriteString("\n\n")
			b.WriteString(highlightStyle.Render("  Press ENTER to continue anyway"))
		}
	}

	return s.center(b.String())
}

func (s *Setup) viewSelect(title string, options []option, selected int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for idx, opt := range options {
		cursor := "  "
		style := unselectedStyle
		if idx == selected {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s%s", cursor, opt.Label)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Use ↑/↓ to select, ENTER to confirm"))

	return s.center(b.String())
}

func (s *Setup) viewApply() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("  Setting Up teleup"))
	b.WriteString("\n\n")

	if s.error != "" {
		b.WriteString(errorStyle.Render("  Setup failed"))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("  " + s.error))
		b.WriteString("\n\n")
		b.WriteString(highlightStyle.Render("  Press Q to quit"))
		return s.center(b.String())
	}

	if s.applyStep == "" {
		b.WriteString(fmt.Sprintf("  %s Creating configuration...\n", s.spinner.View()))
		b.WriteString(dimStyle.Render(fmt.Sprintf("     %s\n", filepath.Join(s.configDir, "config.toml"))))
	} else {
		b.WriteString(successStyle.Render("  [OK] Configuration written\n"))
		b.WriteString(fmt.Sprintf("  %s Seeding demo chats...\n", s.spinner.View()))
	}

	b.WriteString("\n  ")
	b.WriteString(s.progress.View())
	b.WriteString("\n")

	return s.center(b.String())
}

func (s *Setup) viewComplete() string {
	var b strings.Builder

	successArt := `
    +------------------------------------------+
    |                                          |
    |         *** Setup Complete! ***          |
    |                                          |
    +------------------------------------------+
`
	b.WriteString(successStyle.Render(successArt))
	b.WriteString("\n")

	tips := `
  +-----------------------------------------------------+
  |  Quick tips:                                        |
  |                                                     |
  |  * Sign Up            Create your demo account      |
  |  * Tab                Move between fields and panes |
  |  * Enter              Open a chat / send a message  |
  |  * Ctrl+P             View your profile             |
  |  * Ctrl+L             Log out                       |
  +-----------------------------------------------------+
`
	b.WriteString(dimStyle.Render(tips))
	b.WriteString("\n")

	b.WriteString("  Choose your next step:\n\n")

	launch := "  Launch teleup now"
	if s.launchSelected {
		b.WriteString(selectedStyle.Render("  > " + launch))
		b.WriteString(highlightStyle.Render("  <- Opens a new terminal with teleup"))
	} else {
		b.WriteString(unselectedStyle.Render("    " + launch))
	}
	b.WriteString("\n\n")

	closeText := "  Close setup"
	if !s.launchSelected {
		b.WriteString(selectedStyle.Render("  > " + closeText))
		b.WriteString(dimStyle.Render("  <- You can run 'teleup' anytime"))
	} else {
		b.WriteString(unselectedStyle.Render("    " + closeText))
	}
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render("  Up/Down or Tab to select  |  Enter to confirm"))
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render(fmt.Sprintf("  Config: %s", filepath.Join(s.configDir, "config.toml"))))

	return s.center(b.String())
}

// center centers content vertically on screen
func (s *Setup) center(content string) string {
	if s.width == 0 || s.height == 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	height := len(lines)

	topPadding := (s.height - height) / 3
	if topPadding < 0 {
		topPadding = 0
	}

	var b strings.Builder
	for j := 0; j < topPadding; j++ {
		b.WriteString("\n")
	}
	b.WriteString(content)

	return b.String()
}
