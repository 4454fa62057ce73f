// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}

	// Spot-check that styles are initialized, not zero values.
	if !theme.HeaderTitle.GetBold() {
		t.Error("HeaderTitle should be bold")
	}
	if !theme.ChatItemSelected.GetBold() {
		t.Error("ChatItemSelected should be bold")
	}
}

func TestNewThemeForBackground(t *testing.T) {
	dark := NewThemeForBackground(true)
	if !dark.IsDark {
		t.Error("forced dark theme should report IsDark")
	}

	light := NewThemeForBackground(false)
	if light.IsDark {
		t.Error("forced light theme should not report IsDark")
	}
}

func TestGetLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutNormal},
		{100, LayoutNormal},
		{101, LayoutWide},
		{200, LayoutWide},
	}

	theme := NewTheme()
	for _, tc := range tests {
		theme.SetSize(tc.width, 40)
		if got := theme.GetLayoutMode(); got != tc.want {
			t.Errorf("width %d: GetLayoutMode() = %d, want %d", tc.width, got, tc.want)
		}
	}
}

func TestRenderHelpers(t *testing.T) {
	if got := RenderSuccess("saved"); !strings.Contains(got, "[OK]") {
		t.Errorf("RenderSuccess missing indicator: %q", got)
	}
	if got := RenderError("failed"); !strings.Contains(got, "[X]") {
		t.Errorf("RenderError missing indicator: %q", got)
	}
	if got := RenderInfo("note"); !strings.Contains(got, "[i]") {
		t.Errorf("RenderInfo missing indicator: %q", got)
	}
}
