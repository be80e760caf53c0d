package service

import "errors"

// Recoverable outcomes surfaced to the transport shell. Absence of an entity
// is not in this taxonomy: lookups, deletes and updates against an unknown id
// return (nil, nil) instead of an error.
var (
	// ErrInvalidAccount rejects a registration candidate with a blank
	// username or a password shorter than 4 characters.
	ErrInvalidAccount = errors.New("invalid username or password")

	// ErrUsernameTaken rejects a registration whose username is already
	// persisted, whether caught by the pre-check or by the store constraint.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike; callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidMessage rejects message text that is blank or longer than
	// 254 characters, or a create whose author does not exist.
	ErrInvalidMessage = errors.New("invalid message")
)
