// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package main provides teleup-setup, a guided first-run setup for teleup.

# Overview

teleup-setup is a small terminal application built with Bubble Tea that
prepares a machine for teleup: it checks the environment, lets the user
pick a theme and storage backend, writes ~/.teleup/config.toml, and seeds
the demo chat data. It offers both an interactive TUI mode and a plain
text mode for copy/paste friendly environments.

# Command Line Options

	--text, -t     Run in text mode (copy/paste friendly, no TUI)
	--help, -h     Show help information
	--version, -v  Show version number

# Files Created

	~/.teleup/
	    config.toml      # Main configuration file
	    users.json       # Registered demo accounts (file backend)
	    chats.json       # Chat list with seeded demo chats (file backend)
	    teleup.db        # All records (sqlite backend)

# Architecture

The TUI uses a phase-based state machine:

  - PhaseWelcome: Introduction
  - PhaseSystemCheck: Verifies the environment
  - PhaseThemeSelect: Color theme selection
  - PhaseBackendSelect: Storage backend selection
  - PhaseApply: Writes config and seeds demo data
  - PhaseComplete: Success screen with quick tips and launch option
*/
package main
