package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/events"
	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/models"
	"github.com/MaxamedCabdulahi/MaxamedCabdulahi-pep-project/internal/repository"
)

const minPasswordLen = 4

// AccountStore defines the persistence operations AccountService depends on.
type AccountStore interface {
	FindByUsername(username string) (*models.Account, error)
	FindByID(id int64) (*models.Account, error)
	Create(account *models.Account) (*models.Account, error)
	Exists(id int64) (bool, error)
}

// EventPublisher appends a domain event to a stream. May be nil, in which
// case publishing is skipped.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// AccountService validates and creates accounts and verifies login
// credentials. All collaborators are injected at construction.
type AccountService struct {
	store     AccountStore
	publisher EventPublisher
}

func NewAccountService(store AccountStore, publisher EventPublisher) *AccountService {
	return &AccountService{store: store, publisher: publisher}
}

// Register validates the candidate, checks username availability and persists
// the account. The returned account carries its store-assigned id.
func (s *AccountService) Register(candidate models.Account) (*models.Account, error) {
	if strings.TrimSpace(candidate.Username) == "" || utf8.RuneCountInString(candidate.Password) < minPasswordLen {
		return nil, ErrInvalidAccount
	}

	existing, err := s.store.FindByUsername(candidate.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	created, err := s.store.Create(&candidate)
	if err != nil {
		// The unique constraint can still fire when two registrations race
		// past the pre-check; surface it as the same conflict.
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.publish(events.AccountEventsStream, events.AccountCreated, events.AccountCreatedEvent{
		AccountID: created.ID,
		Username:  created.Username,
	})
	return created, nil
}

// VerifyLogin returns the stored account when username and password match
// exactly. Unknown usernames and wrong passwords produce the same error.
func (s *AccountService) VerifyLogin(username, password string) (*models.Account, error) {
	account, err := s.store.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Password != password {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// AccountExists reports whether an account with the given id is persisted.
// MessageService uses this as the author-existence precondition.
func (s *AccountService) AccountExists(id int64) (bool, error) {
	return s.store.Exists(id)
}

func (s *AccountService) publish(stream, eventType string, data any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(context.Background(), stream, eventType, data); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}
