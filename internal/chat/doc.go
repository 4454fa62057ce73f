// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat manages the durable chat list and its message logs.
//
// The Store is the single writer for the "chats" record: every mutation
// reads the whole list, applies the change, and writes the whole list back
// under one mutex. Selection is transient per-process state and is never
// persisted.
//
// # Key Types
//
//   - Store: chat list access, selection, the message append protocol and
//     the scripted support auto-reply.
//   - Options: tunables for the support chat id and reply delay.
//
// # Usage
//
//	store := chat.New(backend, sessions, chat.Options{})
//	store.Select(chat.DefaultSupportChatID)
//	msg, ok := store.Send("hello")
package chat
