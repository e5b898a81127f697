package usecase

import (
	"context"

	"usersvc/internal/domain/entity"
)

// SearchInput defines the parameters for a user search.
type SearchInput struct {
	Query string
	Skip  int
	Limit int
}

// DirectoryUsecase defines the public (unauthenticated) user lookup operations.
type DirectoryUsecase interface {
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Search(ctx context.Context, input *SearchInput) ([]*entity.User, error)
}
