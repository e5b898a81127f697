package impl

import (
	"context"
	"log/slog"

	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/errors"
	"usersvc/internal/usecase"
)

const defaultSearchLimit = 20

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(userRepo repository.UserRepository, logger *slog.Logger) usecase.DirectoryUsecase {
	return &directoryService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetByUsername looks up a user by their public handle.
func (srv *directoryService) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "unknown username")
		}

		return nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, err.Error())
	}

	return user, nil
}

// GetByID looks up a user by their numeric ID.
func (srv *directoryService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "unknown user id")
		}

		return nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, err.Error())
	}

	return user, nil
}

// Search returns users whose username or public name matches the query.
func (srv *directoryService) Search(ctx context.Context, input *usecase.SearchInput) ([]*entity.User, error) {
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	users, err := srv.userRepo.Search(ctx, input.Query, skip, limit)
	if err != nil {
		srv.logger.Warn("User search failed", slog.String("query", input.Query), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, err.Error())
	}

	return users, nil
}
