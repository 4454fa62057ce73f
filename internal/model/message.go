// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for users, chats and messages.
package model

import (
	"strconv"
	"time"
)

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// MessageType is the direction of a message from the viewing user's
// perspective.
type MessageType string

const (
	// MessageIncoming marks messages sent by anyone other than the current
	// user, including scripted system/support replies.
	MessageIncoming MessageType = "incoming"
	// MessageOutgoing marks messages sent by the current session's user.
	MessageOutgoing MessageType = "outgoing"
)

// String returns the string representation of the message type.
func (t MessageType) String() string {
	return string(t)
}

// Message represents a single message in a chat's log.
//
// Message logs are append-only and insertion-ordered; messages are never
// reordered or deleted.
type Message struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Sender    string      `json:"sender"`
	Timestamp time.Time   `json:"timestamp"`
	Type      MessageType `json:"type"`
}

// NewOutgoingMessage creates a message authored by the current user.
func NewOutgoingMessage(text, sender string) Message {
	return newMessage(text, sender, MessageOutgoing)
}

// NewIncomingMessage creates a message authored by anyone else.
func NewIncomingMessage(text, sender string) Message {
	return newMessage(text, sender, MessageIncoming)
}

func newMessage(text, sender string, typ MessageType) Message {
	now := time.Now()
	return Message{
		ID:        generateMessageID(now),
		Text:      text,
		Sender:    sender,
		Timestamp: now,
		Type:      typ,
	}
}

// generateMessageID derives a message ID from the creation time. Millisecond
// precision keeps IDs unique enough for a single-user demo log.
func generateMessageID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
