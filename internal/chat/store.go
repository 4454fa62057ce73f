// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/jeranaias/teleup-tui/internal/model"
	"github.com/jeranaias/teleup-tui/internal/session"
	"github.com/jeranaias/teleup-tui/internal/storage"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options tunes the scripted support reply. Zero values select the defaults.
type Options struct {
	// SupportChatID identifies the chat whose sends trigger an auto-reply.
	SupportChatID string

	// ReplyDelay is how long the auto-reply waits before appending.
	ReplyDelay time.Duration
}

func (o *Options) setDefaults() {
	if o.SupportChatID == "" {
		o.SupportChatID = DefaultSupportChatID
	}
	if o.ReplyDelay <= 0 {
		o.ReplyDelay = DefaultReplyDelay
	}
}

// =============================================================================
// CHAT STORE
// =============================================================================

// Store owns the persisted chat list.
//
// All mutations are full read-modify-write cycles over the whole list,
// serialized by mu; the backing record is never partially updated. The
// selected chat id is process-local state and is not persisted.
type Store struct {
	mu       sync.Mutex
	store    storage.Store
	sessions *session.Manager
	opts     Options

	selected string
	onChange func()
}

// New creates a chat store over the given backend. The session manager
// supplies the sender name for outgoing messages.
func New(store storage.Store, sessions *session.Manager, opts Options) *Store {
	opts.setDefaults()
	return &Store{
		store:    store,
		sessions: sessions,
		opts:     opts,
	}
}

// OnChange registers a hook fired after every successful mutation, including
// scripted auto-replies. The hook runs outside the store mutex; it is meant
// for view re-render triggers, not for further mutation.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Chats returns the chat list, seeding the two demo conversations on first
// run (or after the backing record was lost). The returned chats are deep
// copies; callers may mutate them freely.
func (s *Store) Chats() ([]model.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chats, err := s.loadOrSeedLocked()
	if err != nil {
		return nil, err
	}
	return cloneAll(chats), nil
}

// Select marks a chat as the current conversation. Unknown ids are silently
// ignored and the prior selection stays in place.
func (s *Store) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chats, err := s.loadOrSeedLocked()
	if err != nil {
		return
	}
	for _, c := range chats {
		if c.ID == id {
			s.selected = id
			return
		}
	}
}

// Selected returns a copy of the currently selected chat, if any.
func (s *Store) Selected() (model.Chat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == "" {
		return model.Chat{}, false
	}
	chats, err := s.loadOrSeedLocked()
	if err != nil {
		return model.Chat{}, false
	}
	for i := range chats {
		if chats[i].ID == s.selected {
			return chats[i].Clone(), true
		}
	}
	return model.Chat{}, false
}

// Send appends an outgoing message with the given text to the selected chat
// and persists the updated list. It is a no-op (false) when the trimmed text
// is empty or no chat is selected. A send to the support chat schedules the
// scripted reply.
func (s *Store) Send(text string) (model.Message, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Message{}, false
	}

	sender := "anonymous"
	if user, ok := s.sessions.Current(); ok {
		sender = user.Username
	}

	s.mu.Lock()
	if s.selected == "" {
		s.mu.Unlock()
		return model.Message{}, false
	}
	target := s.selected

	msg := model.NewOutgoingMessage(text, sender)
	appended, err := s.appendLocked(target, msg)
	s.mu.Unlock()
	if err != nil || !appended {
		return model.Message{}, false
	}

	s.notify()

	if target == s.opts.SupportChatID {
		s.scheduleReply(target)
	}
	return msg, true
}

// scheduleReply arms the one-shot support reply. The timer is deliberately
// not cancellable: if the process exits before it fires, the reply is lost,
// which is acceptable for a scripted simulation.
func (s *Store) scheduleReply(chatID string) {
	time.AfterFunc(s.opts.ReplyDelay, func() {
		s.mu.Lock()
		chats, err := s.loadOrSeedLocked()
		if err != nil {
			s.mu.Unlock()
			return
		}
		var sender string
		found := false
		for i := range chats {
			if chats[i].ID == chatID {
				sender = chats[i].ReplySender()
				found = true
				break
			}
		}
		if !found {
			s.mu.Unlock()
			return
		}

		reply := model.NewIncomingMessage(
			cannedReplies[rand.IntN(len(cannedReplies))],
			sender,
		)
		appended, err := s.appendLocked(chatID, reply)
		s.mu.Unlock()
		if err != nil || !appended {
			return
		}
		s.notify()
	})
}

// appendLocked runs one read-modify-write cycle: load the list, append to
// the chat with the given id, persist the whole list. Returns false when the
// chat no longer exists. Caller must hold mu.
func (s *Store) appendLocked(chatID string, msg model.Message) (bool, error) {
	chats, err := s.loadOrSeedLocked()
	if err != nil {
		return false, err
	}
	for i := range chats {
		if chats[i].ID == chatID {
			chats[i].AppendMessage(msg)
			return true, s.store.Set(storage.KeyChats, chats)
		}
	}
	return false, nil
}

// loadOrSeedLocked reads the chat list, writing the demo seed first when the
// record is absent or unreadable. Caller must hold mu.
func (s *Store) loadOrSeedLocked() ([]model.Chat, error) {
	var chats []model.Chat
	ok, err := s.store.Get(storage.KeyChats, &chats)
	if err != nil {
		return nil, err
	}
	if !ok {
		chats = seedChats(time.Now())
		if err := s.store.Set(storage.KeyChats, chats); err != nil {
			return nil, err
		}
	}
	return chats, nil
}

func (s *Store) notify() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func cloneAll(chats []model.Chat) []model.Chat {
	out := make([]model.Chat, len(chats))
	for i := range chats {
		out[i] = chats[i].Clone()
	}
	return out
}
