package usecase

import (
	"context"

	"usersvc/internal/domain/entity"
)

// ProfileUsecase defines the operations available to an authenticated user
// on their own account.
type ProfileUsecase interface {
	// GetProfile retrieves the account owned by userID.
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)

	// DeleteProfile permanently removes the account owned by userID.
	// Tokens already issued for the account stay valid until they expire.
	DeleteProfile(ctx context.Context, userID int64) error
}
