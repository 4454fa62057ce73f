// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/teleup-tui/internal/directory"
	"github.com/jeranaias/teleup-tui/internal/model"
	"github.com/jeranaias/teleup-tui/internal/session"
	"github.com/jeranaias/teleup-tui/internal/storage"
)

func newTestStore(t *testing.T, opts Options) (*Store, storage.Store) {
	t.Helper()
	backend, err := storage.OpenFileStore(t.TempDir())
	require.NoError(t, err)

	sessions := session.NewManager(backend, directory.New(backend))
	_, err = sessions.Register("alice", "alice@example.com", "secret1", "secret1")
	require.NoError(t, err)

	return New(backend, sessions, opts), backend
}

// =============================================================================
// SEEDING TESTS
// =============================================================================

func TestChats_SeedsOnFirstRun(t *testing.T) {
	store, backend := newTestStore(t, Options{})

	chats, err := store.Chats()
	require.NoError(t, err)
	require.Len(t, chats, 2)

	assert.Equal(t, "1", chats[0].ID)
	assert.Equal(t, model.ChatGroup, chats[0].Type)
	assert.Equal(t, []string{"all"}, chats[0].Participants)

	assert.Equal(t, DefaultSupportChatID, chats[1].ID)
	assert.Equal(t, model.ChatPrivate, chats[1].Type)

	for _, c := range chats {
		assert.Equal(t, 1, c.MessageCount())
		assert.Equal(t, model.MessageIncoming, c.Messages[0].Type)
		assert.True(t, c.LastMessageValid(), "seed chat %s", c.ID)
	}

	// The seed is persisted immediately, not just returned.
	var persisted []model.Chat
	ok, err := backend.Get(storage.KeyChats, &persisted)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, persisted, 2)
}

func TestChats_SeedsOnlyOnce(t *testing.T) {
	store, _ := newTestStore(t, Options{})

	store.Select("1")
	_, ok := store.Send("hello everyone")
	require.True(t, ok)

	// Re-reading must not replace the persisted list with a fresh seed.
	chats, err := store.Chats()
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, 2, chats[0].MessageCount())
}

// =============================================================================
// SELECTION TESTS
// =============================================================================

func TestSelect(t *testing.T) {
	store, _ := newTestStore(t, Options{})

	_, ok := store.Selected()
	assert.False(t, ok, "no selection before Select")

	store.Select("1")
	selected, ok := store.Selected()
	require.True(t, ok)
	assert.Equal(t, "1", selected.ID)

	// Unknown id is a silent no-op; the prior selection survives.
	store.Select("does-not-exist")
	selected, ok = store.Selected()
	require.True(t, ok)
	assert.Equal(t, "1", selected.ID)
}

func TestSelected_ReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t, Options{})
	store.Select("1")

	selected, ok := store.Selected()
	require.True(t, ok)
	selected.AppendMessage(model.NewOutgoingMessage("local only", "alice"))

	again, ok := store.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, again.MessageCount(), "mutating a returned chat must not leak into the store")
}

// =============================================================================
// SEND TESTS
// =============================================================================

func TestSend(t *testing.T) {
	store, backend := newTestStore(t, Options{})
	store.Select("1")

	msg, ok := store.Send("  hello everyone  ")
	require.True(t, ok)
	assert.Equal(t, "hello everyone", msg.Text, "text is trimmed before append")
	assert.Equal(t, "alice", msg.Sender)
	assert.Equal(t, model.MessageOutgoing, msg.Type)
	assert.NotEmpty(t, msg.ID)

	// Persisted list reflects the append and keeps the cache invariant.
	var persisted []model.Chat
	ok2, err := backend.Get(storage.KeyChats, &persisted)
	require.NoError(t, err)
	require.True(t, ok2)
	assert.Equal(t, 2, persisted[0].MessageCount())
	assert.Equal(t, "hello everyone", persisted[0].LastMessage)
	assert.True(t, persisted[0].LastMessageValid())

	// The other chat is untouched.
	assert.Equal(t, 1, persisted[1].MessageCount())
}

func TestSend_NoOps(t *testing.T) {
	store, _ := newTestStore(t, Options{})

	// No selection yet.
	_, ok := store.Send("hello")
	assert.False(t, ok)

	// Blank after trimming.
	store.Select("1")
	_, ok = store.Send("   \t  ")
	assert.False(t, ok)

	chats, err := store.Chats()
	require.NoError(t, err)
	assert.Equal(t, 1, chats[0].MessageCount(), "no-op sends must not append")
}

// =============================================================================
// AUTO-REPLY TESTS
// =============================================================================

func TestSend_SupportChatGetsScriptedReply(t *testing.T) {
	store, _ := newTestStore(t, Options{ReplyDelay: 10 * time.Millisecond})
	store.Select(DefaultSupportChatID)

	_, ok := store.Send("my app is broken")
	require.True(t, ok)

	require.Eventually(t, func() bool {
		chats, err := store.Chats()
		if err != nil {
			return false
		}
		return chats[1].MessageCount() == 3
	}, 5*time.Second, 10*time.Millisecond, "send + scripted reply")

	chats, err := store.Chats()
	require.NoError(t, err)
	reply := chats[1].Messages[2]
	assert.Equal(t, model.MessageIncoming, reply.Type)
	assert.Equal(t, "Support", reply.Sender)
	assert.Contains(t, cannedReplies, reply.Text)
	assert.True(t, chats[1].LastMessageValid())
}

func TestSend_GeneralChatGetsNoReply(t *testing.T) {
	store, _ := newTestStore(t, Options{ReplyDelay: 10 * time.Millisecond})
	store.Select("1")

	_, ok := store.Send("anyone here?")
	require.True(t, ok)

	time.Sleep(100 * time.Millisecond)
	chats, err := store.Chats()
	require.NoError(t, err)
	assert.Equal(t, 2, chats[0].MessageCount(), "only the support chat is scripted")
}

func TestSend_ReplyLandsInSupportChatAfterReselect(t *testing.T) {
	store, _ := newTestStore(t, Options{ReplyDelay: 10 * time.Millisecond})
	store.Select(DefaultSupportChatID)

	_, ok := store.Send("help")
	require.True(t, ok)

	// Switching away before the timer fires must not redirect the reply.
	store.Select("1")

	require.Eventually(t, func() bool {
		chats, err := store.Chats()
		if err != nil {
			return false
		}
		return chats[1].MessageCount() == 3
	}, 5*time.Second, 10*time.Millisecond)

	chats, err := store.Chats()
	require.NoError(t, err)
	assert.Equal(t, 1, chats[0].MessageCount(), "general chat untouched")
}

// =============================================================================
// OBSERVER TESTS
// =============================================================================

func TestOnChange(t *testing.T) {
	store, _ := newTestStore(t, Options{ReplyDelay: 10 * time.Millisecond})

	var fired atomic.Int32
	store.OnChange(func() { fired.Add(1) })

	store.Select(DefaultSupportChatID)
	_, ok := store.Send("ping")
	require.True(t, ok)
	assert.GreaterOrEqual(t, fired.Load(), int32(1), "send fires the hook")

	require.Eventually(t, func() bool {
		return fired.Load() >= 2
	}, 5*time.Second, 10*time.Millisecond, "scripted reply fires the hook too")
}
