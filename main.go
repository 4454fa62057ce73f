// teleup TUI - A local-first demo chat client for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	chatstore "github.com/jeranaias/teleup-tui/internal/chat"
	"github.com/jeranaias/teleup-tui/internal/config"
	"github.com/jeranaias/teleup-tui/internal/directory"
	"github.com/jeranaias/teleup-tui/internal/session"
	"github.com/jeranaias/teleup-tui/internal/storage"
	"github.com/jeranaias/teleup-tui/internal/ui"
	chatui "github.com/jeranaias/teleup-tui/internal/ui/chat"
	"github.com/jeranaias/teleup-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Printf("teleup %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
			return
		case "--help", "-h":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "teleup: unknown argument %q\n\n", arg)
			printUsage()
			os.Exit(2)
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: teleup [flags]")
	fmt.Println()
	fmt.Println("A local-first demo chat client. All state lives under ~/.teleup")
	fmt.Println("(override with TELEUP_DIR).")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -v, --version   Print version and exit")
	fmt.Println("  -h, --help      Print this help and exit")
}

// run wires storage, session state, and the chat store into the TUI and
// blocks until the program exits.
func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("teleup is an interactive application and requires a terminal")
	}

	// Load() falls back to defaults on a missing or unreadable config file;
	// the returned error is informational only.
	cfg, loadErr := config.Load()
	if loadErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default configuration: %v\n", loadErr)
	}
	config.SetGlobal(cfg)

	dataDir, err := cfg.DataDir()
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	store, fileStore, err := openStore(cfg, dataDir)
	if err != nil {
		return fmt.Errorf("opening %s storage: %w", cfg.Storage.Backend, err)
	}
	defer store.Close()

	dir := directory.New(store)
	sessions := session.NewManager(store, dir)
	chats := chatstore.New(store, sessions, chatstore.Options{
		SupportChatID: cfg.Chat.SupportChatID,
		ReplyDelay:    cfg.ReplyDelay(),
	})

	theme := themeFromConfig(cfg)
	app := ui.NewApp(sessions, chats, theme)

	p := tea.NewProgram(app, tea.WithAltScreen())

	// The scripted support reply lands on a timer goroutine; push a refresh
	// into the event loop so the open viewport picks it up.
	chats.OnChange(func() {
		p.Send(chatui.RefreshMsg{})
	})

	// With the file backend we can also pick up edits made by other
	// processes (or a second teleup instance) to the chats record.
	if fileStore != nil && cfg.Storage.Watch {
		watcher, werr := storage.NewWatcher(fileStore, func(key string) {
			if key == storage.KeyChats {
				p.Send(chatui.RefreshMsg{})
			}
		})
		if werr != nil {
			fmt.Fprintf(os.Stderr, "Warning: storage watching disabled: %v\n", werr)
		} else {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running teleup: %w", err)
	}
	return nil
}

// openStore opens the configured storage backend. The second return value is
// non-nil only for the file backend, which supports change watching.
func openStore(cfg *config.Config, dataDir string) (storage.Store, *storage.FileStore, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		s, err := storage.OpenSQLiteStore(dataDir)
		return s, nil, err
	default:
		s, err := storage.OpenFileStore(dataDir)
		return s, s, err
	}
}

// themeFromConfig builds the theme, honoring a pinned background from config
// and falling back to terminal detection.
func themeFromConfig(cfg *config.Config) *styles.Theme {
	switch cfg.UI.Theme {
	case "dark":
		return styles.NewThemeForBackground(true)
	case "light":
		return styles.NewThemeForBackground(false)
	default:
		return styles.NewTheme()
	}
}
