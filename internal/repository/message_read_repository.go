package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/models"
	internalredis "github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/redis"
)

const messageViewKeyPrefix = "message:view:"

// MessageReadRepository handles all read operations for messages. Single-row
// lookups go through a Redis view cache first and fall back to PostgreSQL,
// warming the cache on every cold read. List queries always hit PostgreSQL.
// A nil redis client disables caching entirely.
type MessageReadRepository struct {
	db    *sql.DB
	cache *internalredis.ViewCache[models.Message]
}

func NewMessageReadRepository(db *sql.DB, redisClient *goredis.Client) *MessageReadRepository {
	repo := &MessageReadRepository{db: db}
	if redisClient != nil {
		repo.cache = internalredis.NewViewCache[models.Message](redisClient, 0)
	}
	return repo
}

func messageViewKey(id int64) string {
	return messageViewKeyPrefix + strconv.FormatInt(id, 10)
}

// GetByID returns the message, or (nil, nil) when no row matches.
func (r *MessageReadRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	if r.cache != nil {
		if message, ok := r.cache.Get(ctx, messageViewKey(id)); ok {
			return message, nil
		}
	}

	query := `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		WHERE message_id = $1
	`
	var message models.Message
	err := r.db.QueryRow(query, id).Scan(
		&message.ID, &message.PostedBy, &message.Text, &message.PostedAtEpoch,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	r.CacheMessageView(ctx, &message)
	return &message, nil
}

// GetAll returns every message in natural store order.
func (r *MessageReadRepository) GetAll(ctx context.Context) ([]models.Message, error) {
	query := `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
	`
	return r.queryMessages(ctx, query)
}

// ListByAccountID returns all messages posted by the given account, empty
// when there are none (including when the account itself does not exist).
func (r *MessageReadRepository) ListByAccountID(ctx context.Context, accountID int64) ([]models.Message, error) {
	query := `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM message
		WHERE posted_by = $1
	`
	return r.queryMessages(ctx, query, accountID)
}

func (r *MessageReadRepository) queryMessages(ctx context.Context, query string, args ...any) ([]models.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var message models.Message
		if err := rows.Scan(&message.ID, &message.PostedBy, &message.Text, &message.PostedAtEpoch); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}
	return messages, nil
}

// CacheMessageView stores or refreshes the cached view of a message. The
// service calls this after every successful write to keep reads warm.
func (r *MessageReadRepository) CacheMessageView(ctx context.Context, message *models.Message) {
	if r.cache == nil {
		return
	}
	r.cache.Set(ctx, messageViewKey(message.ID), message)
}

// InvalidateMessageView removes the cached view of a deleted message.
func (r *MessageReadRepository) InvalidateMessageView(ctx context.Context, id int64) {
	if r.cache == nil {
		return
	}
	r.cache.Delete(ctx, messageViewKey(id))
}
