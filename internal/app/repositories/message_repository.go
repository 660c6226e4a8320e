package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tutorhub/backend/internal/app/models"
)

// MessageRepository handles database operations for direct messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a new direct message
func (r *MessageRepository) Create(ctx context.Context, message *models.DirectMessage) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO direct_messages (sender_id, receiver_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		message.SenderID, message.ReceiverID, message.Content).Scan(&id, &message.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating message: %w", err)
	}
	message.ID = id
	return id, nil
}

// ListBetween returns the full thread between two users regardless of
// direction, oldest first.
func (r *MessageRepository) ListBetween(ctx context.Context, userID, counterpartID int64) ([]*models.DirectMessage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, sender_id, receiver_id, content, is_read, created_at
		FROM direct_messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC`,
		userID, counterpartID)
	if err != nil {
		return nil, fmt.Errorf("error listing thread: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// ListForUser returns every message the user sent or received, newest
// first. Conversation grouping happens in the service layer.
func (r *MessageRepository) ListForUser(ctx context.Context, userID int64) ([]*models.DirectMessage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, sender_id, receiver_id, content, is_read, created_at
		FROM direct_messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// MarkThreadRead marks all messages the counterpart sent to the user as
// read. Already-read rows are untouched.
func (r *MessageRepository) MarkThreadRead(ctx context.Context, userID, counterpartID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE direct_messages
		SET is_read = TRUE
		WHERE receiver_id = $1 AND sender_id = $2 AND is_read = FALSE`,
		userID, counterpartID)
	if err != nil {
		return fmt.Errorf("error marking thread read: %w", err)
	}
	return nil
}

// CountUnread returns the number of unread messages addressed to the user
func (r *MessageRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM direct_messages
		WHERE receiver_id = $1 AND is_read = FALSE`,
		userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread messages: %w", err)
	}
	return count, nil
}

func scanMessages(rows pgx.Rows) ([]*models.DirectMessage, error) {
	var messages []*models.DirectMessage
	for rows.Next() {
		message := &models.DirectMessage{}
		err := rows.Scan(
			&message.ID, &message.SenderID, &message.ReceiverID,
			&message.Content, &message.IsRead, &message.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}
	return messages, nil
}
