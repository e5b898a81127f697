// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"usersvc/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEntry is returned when an insert violates a uniqueness constraint.
// The pre-insert checks in the registration flow make this a race-condition
// signal rather than a normal outcome.
var ErrDuplicateEntry = errors.New("duplicate entry")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Search retrieves users whose username or public name matches the query,
	// case-insensitively, with offset/limit pagination.
	Search(ctx context.Context, query string, offset, limit int) ([]*entity.User, error)

	// Create persists a new user entity and fills in its generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID. Returns ErrUserNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
