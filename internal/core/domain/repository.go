package domain

import "context"

// UserRepository defines the data-access contract for user operations.
// Implementations live in internal/core/repository (Core layer).
// The Logic layer depends on this interface only — never on SQL or pgx directly.
type UserRepository interface {
	// Create inserts a new user and assigns the store-generated ID to user.ID.
	// Returns ErrUsernameTaken when the username violates the unique constraint.
	Create(ctx context.Context, user *User) error

	// ListAll returns every persisted user in store order.
	ListAll(ctx context.Context) ([]User, error)

	// GetForUpdate returns an owned mutable copy of the user with the given ID,
	// suitable for a follow-up Save. Returns (nil, nil) when no such user exists.
	GetForUpdate(ctx context.Context, id int) (*User, error)

	// Save commits changes made to a previously fetched user back to the store.
	// Returns ErrUsernameTaken when the new username violates the unique constraint.
	Save(ctx context.Context, user *User) error

	// Delete removes a previously fetched user from the store.
	Delete(ctx context.Context, user *User) error

	// UsernameExists returns true when any persisted user currently has the
	// given username.
	UsernameExists(ctx context.Context, username string) (bool, error)
}
