// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"usersvc/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// PublicName defaults to Username when empty; Birthdate is optional.
type RegisterInput struct {
	Email      string
	Password   string
	Username   string
	PublicName string
	Birthdate  *time.Time
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
// Registration deliberately issues no token; the caller must log in
// separately.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	AccessToken string
	UserID      int64
}

// UserUsecase defines the interface for the credential flows.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
