package models

import "time"

// DirectMessage defines the message model based on the 'direct_messages'
// table. There is no persisted conversation entity; conversations are
// derived from message rows by the unordered {sender, receiver} pair.
type DirectMessage struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	ReceiverID int64     `json:"receiverId" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	IsRead     bool      `json:"isRead" db:"is_read"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// CounterpartID returns the other participant of the message relative to
// the given user.
func (m *DirectMessage) CounterpartID(userID int64) int64 {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}
