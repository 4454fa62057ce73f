// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jeranaias/teleup-tui/internal/config"
)

const version = "0.1.0"

func main() {
	// Check for --text flag for copy/paste friendly output
	for _, arg := range os.Args[1:] {
		if arg == "--text" || arg == "-t" || arg == "--simple" {
			runTextSetup()
			return
		}
		if arg == "--help" || arg == "-h" {
			printHelp()
			return
		}
		if arg == "--version" || arg == "-v" {
			fmt.Printf("teleup setup v%s\n", version)
			return
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("teleup setup requires an interactive terminal.")
		fmt.Println("Run with --text for a simple text-based setup.")
		os.Exit(1)
	}

	// Mouse capture disabled to allow terminal text selection/copy
	p := tea.NewProgram(
		NewSetup(),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running setup: %v\n", err)
		os.Exit(1)
	}
}

// printHelp shows usage information
func printHelp() {
	fmt.Println(`teleup setup v` + version + `

Usage: teleup-setup [OPTIONS]

Options:
  --text, -t     Run in text mode (copy/paste friendly)
  --help, -h     Show this help
  --version, -v  Show version

The default mode is an interactive TUI setup.
Use --text for a simple text-based setup that's easy to copy/paste.`)
}

// =============================================================================
// TEXT MODE SETUP (Copy/Paste Friendly)
// =============================================================================

func runTextSetup() {
	reader := bufio.NewReader(os.Stdin)

	// Header
	fmt.Println()
	fmt.Println("================================================================================")
	fmt.Println("                               TELEUP SETUP")
	fmt.Println("                           fast. simple. yours.")
	fmt.Println("================================================================================")
	fmt.Println()

	// Welcome
	fmt.Println("This setup will:")
	fmt.Println("  [1] Check your environment")
	fmt.Println("  [2] Let you pick a theme and storage backend")
	fmt.Println("  [3] Create your configuration")
	fmt.Println("  [4] Seed the demo chats")
	fmt.Println()
	fmt.Print("Press Enter to continue (or 'q' to quit): ")
	input, _ := reader.ReadString('\n')
	if strings.TrimSpace(input) == "q" {
		fmt.Println("Setup cancelled.")
		return
	}

	fmt.Println()
	fmt.Println("--------------------------------------------------------------------------------")
	fmt.Println("                            ENVIRONMENT CHECK")
	fmt.Println("--------------------------------------------------------------------------------")
	fmt.Println()

	// OS Check
	fmt.Printf("  [OK] Operating System: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	// Terminal Check
	if termenv.ColorProfile() == termenv.Ascii {
		fmt.Println("  [!!] Terminal: No color support detected")
	} else {
		fmt.Println("  [OK] Terminal: Color support available")
	}

	// Home Check
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Println("  [FAIL] Home Directory: Cannot resolve")
		fmt.Println("         -> Set the HOME environment variable")
		return
	}
	fmt.Printf("  [OK] Home Directory: %s\n", home)

	// Disk Check
	if free, derr := getFreeDiskSpace(home); derr == nil {
		fmt.Printf("  [OK] Disk Space: %d MB free\n", free>>20)
	} else {
		fmt.Println("  [!!] Disk Space: Could not check")
	}

	// Existing data
	hadConfig := configExists()
	if hadConfig {
		fmt.Println("  [!!] Existing Data: Configuration found (will be kept as is)")
	} else {
		fmt.Println("  [OK] Existing Data: Fresh setup")
	}

	fmt.Println()

	// Theme selection
	theme := "auto"
	backend := "file"
	if !hadConfig {
		fmt.Println("--------------------------------------------------------------------------------")
		fmt.Println("                            CHOOSE YOUR THEME")
		fmt.Println("--------------------------------------------------------------------------------")
		fmt.Println()
		fmt.Println("  [1] auto   (detect terminal background)")
		fmt.Println("  [2] dark   (force the dark palette)")
		fmt.Println("  [3] light  (force the light palette)")
		fmt.Println()
		fmt.Print("Enter choice [1-3]: ")
		input, _ = reader.ReadString('\n')
		switch strings.TrimSpace(input) {
		case "2":
			theme = "dark"
		case "3":
			theme = "light"
		}

		fmt.Println()
		fmt.Println("--------------------------------------------------------------------------------")
		fmt.Println("                       CHOOSE YOUR STORAGE BACKEND")
		fmt.Println("--------------------------------------------------------------------------------")
		fmt.Println()
		fmt.Println("  [1] file    (one JSON file per record, human readable)")
		fmt.Println("  [2] sqlite  (single teleup.db database file)")
		fmt.Println()
		fmt.Print("Enter choice [1-2]: ")
		input, _ = reader.ReadString('\n')
		if strings.TrimSpace(input) == "2" {
			backend = "sqlite"
		}
		fmt.Println()
	}

	fmt.Println("--------------------------------------------------------------------------------")
	fmt.Println("                          CREATING CONFIGURATION")
	fmt.Println("--------------------------------------------------------------------------------")
	fmt.Println()

	if err := applyConfig(theme, backend); err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		os.Exit(1)
	}
	configDir, _ := config.ConfigDir()
	if hadConfig {
		fmt.Printf("  [!!] Config already exists: %s\n", filepath.Join(configDir, "config.toml"))
	} else {
		fmt.Printf("  [OK] Created config: %s\n", filepath.Join(configDir, "config.toml"))
	}

	if err := seedDemoData(); err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		os.Exit(1)
	}
	fmt.Println("  [OK] Seeded demo chats")

	// Done!
	fmt.Println()
	fmt.Println("================================================================================")
	fmt.Println("                             SETUP COMPLETE!")
	fmt.Println("================================================================================")
	fmt.Println()
	fmt.Println("Quick tips:")
	fmt.Println("    Sign Up    - Create your demo account")
	fmt.Println("    Tab        - Move between fields and panes")
	fmt.Println("    Enter      - Open a chat / send a message")
	fmt.Println("    Ctrl+P     - View your profile")
	fmt.Println("    Ctrl+L     - Log out")
	fmt.Println()
	fmt.Print("Press Enter to exit (or 'l' to launch teleup now): ")
	input, _ = reader.ReadString('\n')
	if strings.TrimSpace(input) == "l" {
		fmt.Println("\nLaunching teleup...")
		if cmd := teleupLaunchCommand(); cmd != nil {
			_ = cmd.Start()
		}
	}
	fmt.Println()
	fmt.Println("Happy chatting!")
}
