// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/jeranaias/teleup-tui/internal/model"
)

// =============================================================================
// DEMO SEED DATA
// =============================================================================

const (
	// DefaultSupportChatID is the id of the seeded support conversation.
	// Sends to this chat trigger the scripted auto-reply.
	DefaultSupportChatID = "2"

	// DefaultReplyDelay is how long the scripted support reply waits before
	// it is appended.
	DefaultReplyDelay = time.Second
)

// cannedReplies is the fixed candidate set the support auto-reply draws
// from, uniformly at random.
var cannedReplies = []string{
	"Thanks for your message!",
	"We're already looking into it",
	"Could you share more details?",
	"Try restarting the app",
	"We'll get back to you shortly!",
}

// seedChats builds the two demo conversations written on first run. Seed
// message ids are fixed so the demo state is reproducible; timestamps are
// taken at seed time.
func seedChats(now time.Time) []model.Chat {
	general := model.Message{
		ID:        "1",
		Text:      "Welcome to TeleUp Chat! 🚀",
		Sender:    "system",
		Timestamp: now,
		Type:      model.MessageIncoming,
	}
	support := model.Message{
		ID:        "1",
		Text:      "Welcome to support! How can we help?",
		Sender:    "support",
		Timestamp: now,
		Type:      model.MessageIncoming,
	}

	return []model.Chat{
		{
			ID:           "1",
			Name:         "General 🎉",
			Type:         model.ChatGroup,
			Participants: []string{"all"},
			LastMessage:  general.Text,
			Messages:     []model.Message{general},
		},
		{
			ID:           DefaultSupportChatID,
			Name:         "Support 🔧",
			Type:         model.ChatPrivate,
			Participants: []string{"support"},
			LastMessage:  support.Text,
			Messages:     []model.Message{support},
		},
	}
}
