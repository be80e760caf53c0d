package events

import "time"

// Event types
const (
	AccountCreated = "account.created"

	MessageCreated = "message.created"
	MessageUpdated = "message.updated"
	MessageDeleted = "message.deleted"
)

// Stream names
const (
	AccountEventsStream = "account.events"
	MessageEventsStream = "message.events"
)

// Event is the envelope written to the stream.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type AccountCreatedEvent struct {
	AccountID int64  `json:"accountId"`
	Username  string `json:"username"`
}

type MessageCreatedEvent struct {
	MessageID int64 `json:"messageId"`
	PostedBy  int64 `json:"postedBy"`
}

type MessageUpdatedEvent struct {
	MessageID int64 `json:"messageId"`
	PostedBy  int64 `json:"postedBy"`
}

type MessageDeletedEvent struct {
	MessageID int64 `json:"messageId"`
	PostedBy  int64 `json:"postedBy"`
}
