package repository

import (
	"errors"

	"github.com/techhive/user-management-api/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when the referenced user id does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailInUse is returned when the email already belongs to another user.
	ErrEmailInUse = errors.New("email already in use")
)

// UserRepository defines the storage contract for users. Implementations
// must be safe for concurrent use by multiple request goroutines.
type UserRepository interface {
	// ListAll returns a point-in-time snapshot of all stored users.
	ListAll() []entity.User
	// GetByID returns the user with the given id, if present.
	GetByID(id string) (*entity.User, bool)
	// GetByEmail performs a case-insensitive lookup; blank input never matches.
	GetByEmail(email string) (*entity.User, bool)
	// Create inserts a new user. Returns ErrEmailInUse on a duplicate email.
	Create(u entity.User) error
	// Update replaces the stored record. Returns ErrUserNotFound if the id is
	// absent, ErrEmailInUse if the email belongs to a different user.
	Update(u entity.User) error
	// Delete removes the user and reports whether a record existed.
	Delete(id string) bool
}
