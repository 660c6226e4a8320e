package services

import (
	"context"
	"fmt"

	appauth "github.com/tutorhub/backend/internal/app/auth"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/repositories"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
)

// userLookup is the slice of the user repository messaging needs.
type userLookup interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error)
}

// messageStore is the message persistence surface used by the service.
type messageStore interface {
	Create(ctx context.Context, message *models.DirectMessage) (int64, error)
	ListBetween(ctx context.Context, userID, counterpartID int64) ([]*models.DirectMessage, error)
	ListForUser(ctx context.Context, userID int64) ([]*models.DirectMessage, error)
	MarkThreadRead(ctx context.Context, userID, counterpartID int64) error
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

// MessageService handles direct messages. Conversations are not stored;
// they are derived from message rows by the unordered participant pair.
type MessageService struct {
	messageRepo messageStore
	userRepo    userLookup
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo messageStore, userRepo userLookup) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// SendMessage sends a direct message to another user
func (s *MessageService) SendMessage(ctx context.Context, identity appauth.Identity, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if req.ReceiverID == identity.UserID {
		return nil, apperrors.NewBadRequestError("cannot message yourself")
	}
	if _, err := s.userRepo.GetUserByID(ctx, req.ReceiverID); err != nil {
		return nil, err
	}

	message := &models.DirectMessage{
		SenderID:   identity.UserID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if _, err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	resp := dto.FromMessage(message)
	return &resp, nil
}

// GetThread returns the full thread with a counterpart, oldest first, and
// marks the counterpart's messages as read.
func (s *MessageService) GetThread(ctx context.Context, identity appauth.Identity, counterpartID int64) ([]dto.MessageResponse, error) {
	if _, err := s.userRepo.GetUserByID(ctx, counterpartID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListBetween(ctx, identity.UserID, counterpartID)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.MarkThreadRead(ctx, identity.UserID, counterpartID); err != nil {
		return nil, fmt.Errorf("error marking thread read: %w", err)
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, dto.FromMessage(m))
	}
	return resp, nil
}

// ListConversations derives the caller's conversation list from their
// messages: one entry per counterpart carrying the latest message, newest
// conversation first. Counterparts whose account no longer exists are
// dropped.
func (s *MessageService) ListConversations(ctx context.Context, identity appauth.Identity) ([]dto.ConversationResponse, error) {
	messages, err := s.messageRepo.ListForUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	// Messages arrive newest first, so the first sighting of a
	// counterpart is that conversation's latest message.
	var order []int64
	latest := make(map[int64]*models.DirectMessage)
	for _, m := range messages {
		counterpartID := m.CounterpartID(identity.UserID)
		if _, seen := latest[counterpartID]; !seen {
			latest[counterpartID] = m
			order = append(order, counterpartID)
		}
	}

	users, err := s.userRepo.GetUsersByIDs(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("error resolving counterparts: %w", err)
	}

	conversations := make([]dto.ConversationResponse, 0, len(order))
	for _, counterpartID := range order {
		user, ok := users[counterpartID]
		if !ok {
			continue
		}
		conversations = append(conversations, dto.ConversationResponse{
			Counterpart: dto.FromUser(user),
			LastMessage: dto.FromMessage(latest[counterpartID]),
		})
	}
	return conversations, nil
}

// CountUnread returns how many unread messages the caller has
func (s *MessageService) CountUnread(ctx context.Context, identity appauth.Identity) (int64, error) {
	return s.messageRepo.CountUnread(ctx, identity.UserID)
}

var _ messageStore = (*repositories.MessageRepository)(nil)
var _ userLookup = (*repositories.UserRepository)(nil)
