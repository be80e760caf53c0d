package repository

import (
	"database/sql"
	"fmt"

	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/models"
)

// MessageWriteRepository handles all state-mutating operations for messages
// against the PostgreSQL write store. Delete and update are single
// RETURNING statements, so "report the prior/new state" and "mutate the row"
// cannot interleave with a concurrent writer.
type MessageWriteRepository struct {
	db *sql.DB
}

func NewMessageWriteRepository(db *sql.DB) *MessageWriteRepository {
	return &MessageWriteRepository{db: db}
}

// Create inserts the message and returns it with the store-assigned id.
func (r *MessageWriteRepository) Create(message *models.Message) (*models.Message, error) {
	query := `
		INSERT INTO message (posted_by, message_text, time_posted_epoch)
		VALUES ($1, $2, $3)
		RETURNING message_id
	`
	err := r.db.QueryRow(query, message.PostedBy, message.Text, message.PostedAtEpoch).Scan(&message.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return message, nil
}

// UpdateText changes only the message_text column and returns the post-update
// row, or (nil, nil) when the id does not exist.
func (r *MessageWriteRepository) UpdateText(id int64, newText string) (*models.Message, error) {
	query := `
		UPDATE message
		SET message_text = $2
		WHERE message_id = $1
		RETURNING message_id, posted_by, message_text, time_posted_epoch
	`
	var message models.Message
	err := r.db.QueryRow(query, id, newText).Scan(
		&message.ID, &message.PostedBy, &message.Text, &message.PostedAtEpoch,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}
	return &message, nil
}

// DeleteByID removes the row and returns its pre-deletion snapshot, or
// (nil, nil) when nothing existed at that id.
func (r *MessageWriteRepository) DeleteByID(id int64) (*models.Message, error) {
	query := `
		DELETE FROM message
		WHERE message_id = $1
		RETURNING message_id, posted_by, message_text, time_posted_epoch
	`
	var message models.Message
	err := r.db.QueryRow(query, id).Scan(
		&message.ID, &message.PostedBy, &message.Text, &message.PostedAtEpoch,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete message: %w", err)
	}
	return &message, nil
}
