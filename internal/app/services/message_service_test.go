package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/tutorhub/backend/internal/app/auth"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
)

type fakeUserLookup struct {
	users map[int64]*models.User
}

func (f *fakeUserLookup) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserLookup) GetUsersByIDs(_ context.Context, ids []int64) (map[int64]*models.User, error) {
	out := make(map[int64]*models.User)
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

type fakeMessageStore struct {
	messages   []*models.DirectMessage
	nextID     int64
	readMarked [][2]int64
	unread     int64
}

func (f *fakeMessageStore) Create(_ context.Context, message *models.DirectMessage) (int64, error) {
	f.nextID++
	message.ID = f.nextID
	message.CreatedAt = time.Now()
	f.messages = append(f.messages, message)
	return f.nextID, nil
}

func (f *fakeMessageStore) ListBetween(_ context.Context, userID, counterpartID int64) ([]*models.DirectMessage, error) {
	var out []*models.DirectMessage
	for _, m := range f.messages {
		if (m.SenderID == userID && m.ReceiverID == counterpartID) ||
			(m.SenderID == counterpartID && m.ReceiverID == userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

// ListForUser returns newest first, matching the repository ordering.
func (f *fakeMessageStore) ListForUser(_ context.Context, userID int64) ([]*models.DirectMessage, error) {
	var out []*models.DirectMessage
	for i := len(f.messages) - 1; i >= 0; i-- {
		m := f.messages[i]
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageStore) MarkThreadRead(_ context.Context, userID, counterpartID int64) error {
	f.readMarked = append(f.readMarked, [2]int64{userID, counterpartID})
	return nil
}

func (f *fakeMessageStore) CountUnread(_ context.Context, _ int64) (int64, error) {
	return f.unread, nil
}

func messagingFixture() (*MessageService, *fakeMessageStore, *fakeUserLookup) {
	users := &fakeUserLookup{users: map[int64]*models.User{
		1: {ID: 1, Email: "a@tutorhub.io", FullName: "Alice"},
		2: {ID: 2, Email: "b@tutorhub.io", FullName: "Bob"},
		3: {ID: 3, Email: "c@tutorhub.io", FullName: "Cara"},
	}}
	store := &fakeMessageStore{}
	return NewMessageService(store, users), store, users
}

func identityFor(userID int64) appauth.Identity {
	return appauth.Identity{UserID: userID, Role: models.RoleStudent}
}

func TestSendMessage(t *testing.T) {
	svc, store, _ := messagingFixture()

	resp, err := svc.SendMessage(context.Background(), identityFor(1), &dto.SendMessageRequest{
		ReceiverID: 2,
		Content:    "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.SenderID)
	assert.Equal(t, int64(2), resp.ReceiverID)
	assert.Equal(t, "hello", resp.Content)
	assert.Len(t, store.messages, 1)
}

func TestSendMessageToSelf(t *testing.T) {
	svc, _, _ := messagingFixture()

	_, err := svc.SendMessage(context.Background(), identityFor(1), &dto.SendMessageRequest{
		ReceiverID: 1,
		Content:    "hi me",
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	svc, _, _ := messagingFixture()

	_, err := svc.SendMessage(context.Background(), identityFor(1), &dto.SendMessageRequest{
		ReceiverID: 99,
		Content:    "hello?",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetThreadMarksRead(t *testing.T) {
	svc, store, _ := messagingFixture()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, identityFor(1), &dto.SendMessageRequest{ReceiverID: 2, Content: "one"})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, identityFor(2), &dto.SendMessageRequest{ReceiverID: 1, Content: "two"})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, identityFor(1), &dto.SendMessageRequest{ReceiverID: 3, Content: "other thread"})
	require.NoError(t, err)

	thread, err := svc.GetThread(ctx, identityFor(1), 2)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, "one", thread[0].Content)
	assert.Equal(t, "two", thread[1].Content)

	require.Len(t, store.readMarked, 1)
	assert.Equal(t, [2]int64{1, 2}, store.readMarked[0])
}

func TestGetThreadUnknownCounterpart(t *testing.T) {
	svc, _, _ := messagingFixture()

	_, err := svc.GetThread(context.Background(), identityFor(1), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestListConversations(t *testing.T) {
	svc, _, _ := messagingFixture()
	ctx := context.Background()

	// Alice talks to Bob, then to Cara, then Bob replies. The reply makes
	// Bob's conversation the most recent one.
	_, err := svc.SendMessage(ctx, identityFor(1), &dto.SendMessageRequest{ReceiverID: 2, Content: "hi bob"})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, identityFor(1), &dto.SendMessageRequest{ReceiverID: 3, Content: "hi cara"})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, identityFor(2), &dto.SendMessageRequest{ReceiverID: 1, Content: "hi alice"})
	require.NoError(t, err)

	conversations, err := svc.ListConversations(ctx, identityFor(1))
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	assert.Equal(t, "Bob", conversations[0].Counterpart.FullName)
	assert.Equal(t, "hi alice", conversations[0].LastMessage.Content)
	assert.Equal(t, "Cara", conversations[1].Counterpart.FullName)
	assert.Equal(t, "hi cara", conversations[1].LastMessage.Content)
}

func TestListConversationsDropsDeletedCounterparts(t *testing.T) {
	svc, _, users := messagingFixture()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, identityFor(1), &dto.SendMessageRequest{ReceiverID: 2, Content: "hi bob"})
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, identityFor(1), &dto.SendMessageRequest{ReceiverID: 3, Content: "hi cara"})
	require.NoError(t, err)

	// Bob's account goes away; his conversation disappears with it.
	delete(users.users, 2)

	conversations, err := svc.ListConversations(ctx, identityFor(1))
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, "Cara", conversations[0].Counterpart.FullName)
}

func TestCountUnread(t *testing.T) {
	svc, store, _ := messagingFixture()
	store.unread = 4

	count, err := svc.CountUnread(context.Background(), identityFor(1))
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
