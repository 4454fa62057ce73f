// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for users, chats and messages.
package model

import (
	"encoding/json"
	"testing"
)

// =============================================================================
// USER TESTS
// =============================================================================

func TestNewUser(t *testing.T) {
	u := NewUser("alice", "alice@example.com", "secret1")

	if u.ID == "" {
		t.Error("NewUser should generate an ID")
	}
	if u.CreatedAt.IsZero() {
		t.Error("NewUser should set CreatedAt")
	}
	if u.Password == "secret1" {
		t.Error("Password should be stored encoded, not as plaintext")
	}
	if !u.PasswordEquals("secret1") {
		t.Error("PasswordEquals should match the original plaintext")
	}
	if u.PasswordEquals("secret2") {
		t.Error("PasswordEquals should reject a wrong password")
	}
}

func TestNewUser_UniqueIDs(t *testing.T) {
	a := NewUser("a", "a@example.com", "password")
	b := NewUser("b", "b@example.com", "password")
	if a.ID == b.ID {
		t.Errorf("Two users share ID %q", a.ID)
	}
}

func TestUser_Initial(t *testing.T) {
	tests := []struct {
		username string
		want     string
	}{
		{"alice", "A"},
		{"Bob", "B"},
		{"ñandu", "Ñ"},
		{"", "?"},
	}

	for _, tc := range tests {
		u := User{Username: tc.username}
		if got := u.Initial(); got != tc.want {
			t.Errorf("Initial(%q) = %q, want %q", tc.username, got, tc.want)
		}
	}
}

// =============================================================================
// PASSWORD ENCODING TESTS
// =============================================================================

func TestPasswordEncoding_RoundTrip(t *testing.T) {
	for _, plain := range []string{"secret1", "", "päss wörd", "123456"} {
		encoded := EncodePassword(plain)
		decoded, ok := DecodePassword(encoded)
		if !ok {
			t.Fatalf("DecodePassword(%q) failed", encoded)
		}
		if decoded != plain {
			t.Errorf("round trip of %q yielded %q", plain, decoded)
		}
	}
}

func TestDecodePassword_Invalid(t *testing.T) {
	if _, ok := DecodePassword("not!!valid!!base64"); ok {
		t.Error("DecodePassword should fail on garbage input")
	}
}

func TestEncodePassword_Deterministic(t *testing.T) {
	// Credential checks compare encoded forms, which only works if the
	// encoding is deterministic.
	if EncodePassword("secret1") != EncodePassword("secret1") {
		t.Error("EncodePassword must be deterministic")
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessages(t *testing.T) {
	out := NewOutgoingMessage("hello", "alice")
	if out.Type != MessageOutgoing {
		t.Errorf("Type = %v, want outgoing", out.Type)
	}
	if out.Text != "hello" || out.Sender != "alice" {
		t.Errorf("unexpected message fields: %+v", out)
	}
	if out.ID == "" {
		t.Error("message should have a time-derived ID")
	}
	if out.Timestamp.IsZero() {
		t.Error("message should have a timestamp")
	}

	in := NewIncomingMessage("hi", "support")
	if in.Type != MessageIncoming {
		t.Errorf("Type = %v, want incoming", in.Type)
	}
}

// =============================================================================
// CHAT TESTS
// =============================================================================

func TestChat_AppendMessage(t *testing.T) {
	chat := Chat{ID: "1", Name: "General 🎉", Type: ChatGroup}

	if !chat.LastMessageValid() {
		t.Error("empty chat should have a valid (empty) LastMessage")
	}

	chat.AppendMessage(NewIncomingMessage("welcome", "system"))
	chat.AppendMessage(NewOutgoingMessage("hello", "alice"))

	if chat.MessageCount() != 2 {
		t.Fatalf("MessageCount = %d, want 2", chat.MessageCount())
	}
	if chat.LastMessage != "hello" {
		t.Errorf("LastMessage = %q, want %q", chat.LastMessage, "hello")
	}
	if !chat.LastMessageValid() {
		t.Error("LastMessage cache out of sync after append")
	}
}

func TestChat_ReplySender(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Support 🔧", "Support"},
		{"General 🎉", "General"},
		{"Solo", "Solo"},
		{"", ""},
	}

	for _, tc := range tests {
		chat := Chat{Name: tc.name}
		if got := chat.ReplySender(); got != tc.want {
			t.Errorf("ReplySender(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestChat_Clone(t *testing.T) {
	chat := Chat{ID: "1", Name: "General 🎉", Participants: []string{"all"}}
	chat.AppendMessage(NewIncomingMessage("welcome", "system"))

	clone := chat.Clone()
	clone.AppendMessage(NewOutgoingMessage("mutated", "alice"))
	clone.Participants[0] = "nobody"

	if chat.MessageCount() != 1 {
		t.Error("mutating the clone's log affected the original")
	}
	if chat.Participants[0] != "all" {
		t.Error("mutating the clone's participants affected the original")
	}
}

// =============================================================================
// SERIALIZATION TESTS
// =============================================================================

func TestChat_JSONRoundTrip(t *testing.T) {
	chat := Chat{
		ID:           "2",
		Name:         "Support 🔧",
		Type:         ChatPrivate,
		Participants: []string{"support"},
	}
	chat.AppendMessage(NewIncomingMessage("welcome to support", "support"))

	data, err := json.Marshal(chat)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Chat
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.ID != chat.ID || decoded.Name != chat.Name || decoded.Type != chat.Type {
		t.Errorf("decoded chat differs: %+v", decoded)
	}
	if decoded.LastMessage != chat.LastMessage {
		t.Errorf("LastMessage lost in round trip: %q", decoded.LastMessage)
	}
	if len(decoded.Messages) != 1 || decoded.Messages[0].Text != "welcome to support" {
		t.Errorf("message log lost in round trip: %+v", decoded.Messages)
	}
	if !decoded.Messages[0].Timestamp.Equal(chat.Messages[0].Timestamp) {
		t.Error("timestamp lost precision in round trip")
	}
}

func TestUser_JSONRoundTrip(t *testing.T) {
	u := NewUser("bob", "bob@example.com", "secret1")

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded User
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.ID != u.ID || decoded.Username != u.Username ||
		decoded.Email != u.Email || decoded.Password != u.Password {
		t.Errorf("decoded user differs: %+v", decoded)
	}
	if !decoded.PasswordEquals("secret1") {
		t.Error("decoded user should still match the original password")
	}
}
