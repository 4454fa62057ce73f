// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for users, chats and messages.
package model

import "strings"

// =============================================================================
// CHAT TYPE
// =============================================================================

// ChatType distinguishes group chats from one-on-one chats.
type ChatType string

const (
	ChatGroup   ChatType = "group"
	ChatPrivate ChatType = "private"
)

// Chat is a named conversation with an ordered, append-only message log.
//
// LastMessage is a denormalized cache of the most recent message's text.
// Invariant: after any successful append it equals the text of the last
// element of Messages, and it is empty iff Messages is empty. All appends
// must go through AppendMessage to preserve this.
type Chat struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         ChatType  `json:"type"`
	Participants []string  `json:"participants"`
	LastMessage  string    `json:"last_message,omitempty"`
	Messages     []Message `json:"messages"`
}

// AppendMessage appends a message to the log and refreshes the LastMessage
// cache.
func (c *Chat) AppendMessage(msg Message) {
	c.Messages = append(c.Messages, msg)
	c.LastMessage = msg.Text
}

// LastMessageValid reports whether the LastMessage cache agrees with the
// message log.
func (c *Chat) LastMessageValid() bool {
	if len(c.Messages) == 0 {
		return c.LastMessage == ""
	}
	return c.LastMessage == c.Messages[len(c.Messages)-1].Text
}

// MessageCount returns the number of messages in the log.
func (c *Chat) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Chat) IsEmpty() bool {
	return len(c.Messages) == 0
}

// ReplySender returns the label scripted replies use as their sender: the
// first whitespace-separated token of the display name ("Support 🔧" yields
// "Support").
func (c *Chat) ReplySender() string {
	fields := strings.Fields(c.Name)
	if len(fields) == 0 {
		return c.Name
	}
	return fields[0]
}

// Clone creates a deep copy of the chat. The message log is copied so the
// clone can be mutated without affecting the original.
func (c *Chat) Clone() Chat {
	clone := *c
	clone.Participants = append([]string(nil), c.Participants...)
	clone.Messages = append([]Message(nil), c.Messages...)
	return clone
}
