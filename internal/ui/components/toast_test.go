// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"
)

func TestToastManager_AddAndRemove(t *testing.T) {
	m := NewToastManager()

	id1 := m.AddError("something broke")
	id2 := m.AddStatus("heads up")

	if !m.HasToasts() {
		t.Fatal("expected toasts after Add")
	}
	if len(m.GetToasts()) != 2 {
		t.Fatalf("expected 2 toasts, got %d", len(m.GetToasts()))
	}
	if id1 == id2 {
		t.Error("toast IDs should be unique")
	}

	m.RemoveToast(id1)
	toasts := m.GetToasts()
	if len(toasts) != 1 || toasts[0].ID != id2 {
		t.Errorf("expected only toast %d to remain", id2)
	}
}

func TestToastManager_NewestFirst(t *testing.T) {
	m := NewToastManager()
	m.AddStatus("first")
	m.AddStatus("second")

	toasts := m.GetToasts()
	if toasts[0].Message != "second" {
		t.Errorf("newest toast should be first, got %q", toasts[0].Message)
	}
}

func TestToastManager_MaxToasts(t *testing.T) {
	m := NewToastManager()
	for i := 0; i < 10; i++ {
		m.AddStatus("toast")
	}
	if got := len(m.GetToasts()); got > 5 {
		t.Errorf("expected at most 5 toasts, got %d", got)
	}
}

func TestToastManager_TickRemovesExpired(t *testing.T) {
	m := NewToastManager()

	expired := NewStatusToast("old")
	expired.CreatedAt = time.Now().Add(-time.Minute)
	m.AddToast(expired)
	m.AddStatus("fresh")

	remaining := m.TickToasts()
	if len(remaining) != 1 || remaining[0].Message != "fresh" {
		t.Errorf("expected only the fresh toast to survive, got %v", remaining)
	}
}

func TestToast_Expiry(t *testing.T) {
	toast := NewStatusToast("hello")
	if toast.IsExpired() {
		t.Error("fresh toast should not be expired")
	}
	if toast.TimeRemaining() <= 0 {
		t.Error("fresh toast should have time remaining")
	}

	toast.CreatedAt = time.Now().Add(-time.Minute)
	if !toast.IsExpired() {
		t.Error("old toast should be expired")
	}
	if toast.TimeRemaining() != 0 {
		t.Error("expired toast should have zero time remaining")
	}
}

func TestRenderToast(t *testing.T) {
	out := RenderToast(NewErrorToast("invalid credentials"), 80)
	if !strings.Contains(out, "invalid credentials") {
		t.Error("rendered toast should contain the message")
	}
	if !strings.Contains(out, "[X]") {
		t.Error("error toast should carry the error indicator")
	}
}

func TestRenderToastStack_Empty(t *testing.T) {
	if out := RenderToastStack(nil, 80, 24); out != "" {
		t.Errorf("empty stack should render nothing, got %q", out)
	}
}
