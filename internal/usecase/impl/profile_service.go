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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(userRepo repository.UserRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile retrieves the authenticated user's own record.
func (srv *profileService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// A valid token for a since-deleted account still authenticates;
			// the record is simply gone.
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, err.Error())
	}

	return user, nil
}

// DeleteProfile permanently removes the authenticated user's record.
// Outstanding session tokens are not revoked; they keep validating until
// their expiry.
func (srv *profileService) DeleteProfile(ctx context.Context, userID int64) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "profile not found")
		}

		return errors.Wrap(domainerrors.ErrUpstreamUnavailable, err.Error())
	}

	srv.logger.Info("User account deleted", slog.Int64("userID", userID))

	return nil
}
