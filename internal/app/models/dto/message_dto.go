package dto

import (
	"time"

	"github.com/tutorhub/backend/internal/app/models"
)

// SendMessageRequest represents a direct message creation request
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiverId" binding:"required,min=1"`
	Content    string `json:"content" binding:"required,min=1,max=5000"`
}

// MessageResponse is the public message representation
type MessageResponse struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"senderId"`
	ReceiverID int64     `json:"receiverId"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FromMessage converts a models.DirectMessage to a MessageResponse
func FromMessage(m *models.DirectMessage) MessageResponse {
	if m == nil {
		return MessageResponse{}
	}
	return MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
	}
}

// ConversationResponse is one entry of the conversation list: the
// counterpart's public profile and the latest message exchanged with them.
type ConversationResponse struct {
	Counterpart UserResponse    `json:"counterpart"`
	LastMessage MessageResponse `json:"lastMessage"`
}
