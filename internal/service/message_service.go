package service

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/events"
	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/models"
)

const maxMessageTextLen = 254

// MessageWriteStore defines the mutating operations MessageService uses.
// UpdateText and DeleteByID return (nil, nil) when the id does not exist.
type MessageWriteStore interface {
	Create(message *models.Message) (*models.Message, error)
	UpdateText(id int64, newText string) (*models.Message, error)
	DeleteByID(id int64) (*models.Message, error)
}

// MessageReadStore defines the read-side operations, including the cache
// maintenance hooks the write path uses to keep the read model in sync.
type MessageReadStore interface {
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	GetAll(ctx context.Context) ([]models.Message, error)
	ListByAccountID(ctx context.Context, accountID int64) ([]models.Message, error)
	CacheMessageView(ctx context.Context, message *models.Message)
	InvalidateMessageView(ctx context.Context, id int64)
}

// AccountChecker is the account-existence capability MessageService needs to
// guard message creation. Satisfied by AccountService.
type AccountChecker interface {
	AccountExists(id int64) (bool, error)
}

// MessageService validates and orchestrates message CRUD across the write
// store, the read store and the author-existence check.
type MessageService struct {
	writeStore MessageWriteStore
	readStore  MessageReadStore
	accounts   AccountChecker
	publisher  EventPublisher
}

func NewMessageService(
	writeStore MessageWriteStore,
	readStore MessageReadStore,
	accounts AccountChecker,
	publisher EventPublisher,
) *MessageService {
	return &MessageService{
		writeStore: writeStore,
		readStore:  readStore,
		accounts:   accounts,
		publisher:  publisher,
	}
}

// CreateMessage validates the candidate and persists it. The text must be
// non-blank and at most 254 characters, and the author must exist.
func (s *MessageService) CreateMessage(candidate models.Message) (*models.Message, error) {
	if !validMessageText(candidate.Text) {
		return nil, ErrInvalidMessage
	}

	exists, err := s.accounts.AccountExists(candidate.PostedBy)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrInvalidMessage
	}

	created, err := s.writeStore.Create(&candidate)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	s.readStore.CacheMessageView(ctx, created)
	s.publish(events.MessageCreated, events.MessageCreatedEvent{
		MessageID: created.ID,
		PostedBy:  created.PostedBy,
	})
	return created, nil
}

func (s *MessageService) GetAllMessages() ([]models.Message, error) {
	return s.readStore.GetAll(context.Background())
}

// GetMessageByID returns (nil, nil) when no message has the given id.
func (s *MessageService) GetMessageByID(id int64) (*models.Message, error) {
	return s.readStore.GetByID(context.Background(), id)
}

// GetMessagesByAccount lists all messages posted by accountID. No existence
// check is made on the account; an unknown id yields an empty slice.
func (s *MessageService) GetMessagesByAccount(accountID int64) ([]models.Message, error) {
	return s.readStore.ListByAccountID(context.Background(), accountID)
}

// DeleteMessage removes the message and returns its pre-deletion snapshot.
// Deleting a non-existent id is a no-op returning (nil, nil).
func (s *MessageService) DeleteMessage(id int64) (*models.Message, error) {
	deleted, err := s.writeStore.DeleteByID(id)
	if err != nil || deleted == nil {
		return deleted, err
	}

	s.readStore.InvalidateMessageView(context.Background(), id)
	s.publish(events.MessageDeleted, events.MessageDeletedEvent{
		MessageID: deleted.ID,
		PostedBy:  deleted.PostedBy,
	})
	return deleted, nil
}

// UpdateMessage replaces the message text, applying the same text rules as
// creation. Returns (nil, nil) when the id does not exist.
func (s *MessageService) UpdateMessage(id int64, newText string) (*models.Message, error) {
	if !validMessageText(newText) {
		return nil, ErrInvalidMessage
	}

	updated, err := s.writeStore.UpdateText(id, newText)
	if err != nil || updated == nil {
		return updated, err
	}

	s.readStore.CacheMessageView(context.Background(), updated)
	s.publish(events.MessageUpdated, events.MessageUpdatedEvent{
		MessageID: updated.ID,
		PostedBy:  updated.PostedBy,
	})
	return updated, nil
}

// Text length is measured in characters, not bytes, matching the max=254
// validator tag on the request structs.
func validMessageText(text string) bool {
	return strings.TrimSpace(text) != "" && utf8.RuneCountInString(text) <= maxMessageTextLen
}

func (s *MessageService) publish(eventType string, data any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(context.Background(), events.MessageEventsStream, eventType, data); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}
