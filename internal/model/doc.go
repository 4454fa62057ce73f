// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for users, chats and messages.
//
// This package defines the core domain types shared by the user directory,
// the session manager and the chat store, together with the (deliberately
// insecure) password encoding used by the demo.
//
// # Key Types
//
//   - User: A registered account with an encoded password
//   - Chat: A named conversation with an ordered message log
//   - Message: Single message with text, sender, timestamp and direction
//   - MessageType: Direction enumeration (incoming, outgoing)
//
// # Usage
//
// Create a user and append a message to a chat:
//
//	user := model.NewUser("alice", "alice@example.com", "secret1")
//	chat.AppendMessage(model.NewOutgoingMessage("hello", user.Username))
package model
