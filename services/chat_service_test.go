package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResponder struct {
	reply string
	err   error
	seen  []string
}

func (r *stubResponder) Chat(ctx context.Context, message string, details *models.UserDetail) (string, error) {
	r.seen = append(r.seen, message)
	if r.err != nil {
		return "", r.err
	}
	return r.reply, nil
}

func TestSendMessageStoresBothTurns(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chat@example.com")
	svc := NewChatService(&stubResponder{reply: "Gentle exercise can help with cramps."})

	chat, err := svc.CreateChat(user.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(chat.Title, "Chat "))

	userMsg, aiMsg, err := svc.SendMessage(context.Background(), chat.ID, user.ID, "What helps with cramps?", nil)
	require.NoError(t, err)
	assert.Equal(t, models.SenderUser, userMsg.SentBy)
	assert.Equal(t, models.SenderAI, aiMsg.SentBy)
	assert.Equal(t, "Gentle exercise can help with cramps.", aiMsg.Content)

	messages, err := svc.Messages(chat.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, models.SenderUser, messages[0].SentBy)
	assert.Equal(t, models.SenderAI, messages[1].SentBy)
}

func TestSendMessageResponderFailureLeavesNoPartialTurn(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chat-fail@example.com")
	svc := NewChatService(&stubResponder{err: errors.New("upstream unavailable")})

	chat, err := svc.CreateChat(user.ID)
	require.NoError(t, err)

	_, _, err = svc.SendMessage(context.Background(), chat.ID, user.ID, "hello", nil)
	require.Error(t, err)

	// The failed turn rolls back entirely: no orphaned user message.
	var count int64
	require.NoError(t, countMessages(chat.ID, &count))
	assert.Zero(t, count)

	refetched, err := svc.GetChat(chat.ID, user.ID)
	require.NoError(t, err)
	assert.Empty(t, refetched.Messages)
}

func TestChatOwnershipIsNotFound(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "chat-owner@example.com")
	other := createTestUser(t, "chat-other@example.com")
	svc := NewChatService(&stubResponder{reply: "ok"})

	chat, err := svc.CreateChat(owner.ID)
	require.NoError(t, err)

	_, err = svc.GetChat(chat.ID, other.ID)
	assert.ErrorIs(t, err, ErrChatNotFound)

	_, _, err = svc.SendMessage(context.Background(), chat.ID, other.ID, "hi", nil)
	assert.ErrorIs(t, err, ErrChatNotFound)

	assert.ErrorIs(t, svc.DeleteChat(chat.ID, other.ID), ErrChatNotFound)
}

func TestDeleteChatRemovesMessages(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chat-del@example.com")
	svc := NewChatService(&stubResponder{reply: "ok"})

	chat, err := svc.CreateChat(user.ID)
	require.NoError(t, err)
	_, _, err = svc.SendMessage(context.Background(), chat.ID, user.ID, "hi", nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteChat(chat.ID, user.ID))

	_, err = svc.GetChat(chat.ID, user.ID)
	assert.ErrorIs(t, err, ErrChatNotFound)

	var count int64
	require.NoError(t, countMessages(chat.ID, &count))
	assert.Zero(t, count)
}
