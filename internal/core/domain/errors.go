package domain

import "errors"

// Sentinel errors for user operations.
var (
	// ErrUsernameTaken indicates the users.username UNIQUE constraint rejected
	// an insert or update. Surfaced as a Conflict outcome by the logic layer.
	ErrUsernameTaken = errors.New("username already taken")
)
