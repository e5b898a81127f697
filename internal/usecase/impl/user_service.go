// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/service"
	"usersvc/internal/errors"
	"usersvc/internal/usecase"
)

// userService implements the UserUsecase interface. It orchestrates the
// hasher, the token service and the user store for the credential flows.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register orchestrates the complete user registration process. The
// uniqueness pre-checks and the insert run in one transaction; a concurrent
// duplicate that slips past the pre-checks is stopped by the store's unique
// constraints and surfaces as an upstream failure, never a raw 500.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Debug("Starting registration", slog.String("email", input.Email), slog.String("username", input.Username))

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := srv.checkEmailFree(ctx, userRepo, input.Email); err != nil {
			return err
		}
		if err := srv.checkUsernameFree(ctx, userRepo, input.Username); err != nil {
			return err
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		publicName := input.PublicName
		if publicName == "" {
			publicName = input.Username
		}

		newUser := &entity.User{
			Email:        input.Email,
			Username:     input.Username,
			PublicName:   publicName,
			PasswordHash: hashedPassword,
			Birthdate:    input.Birthdate,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			// Includes the constraint-race case the pre-checks missed.
			return errors.Wrap(domainerrors.ErrUpstreamUnavailable, err.Error())
		}

		registered = newUser

		return nil
	})

	if err != nil {
		srv.logger.Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Registration completed", slog.Int64("userID", registered.ID))

	// No token at registration: identity creation and session creation are
	// deliberately decoupled.
	return &usecase.RegisterOutput{User: registered}, nil
}

func (srv *userService) checkEmailFree(ctx context.Context, userRepo repository.UserRepository, email string) error {
	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUpstreamUnavailable, err.Error())
	}

	return nil
}

func (srv *userService) checkUsernameFree(ctx context.Context, userRepo repository.UserRepository, username string) error {
	_, err := userRepo.FindByUsername(ctx, username)
	if err == nil {
		return errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUpstreamUnavailable, err.Error())
	}

	return nil
}

// Login orchestrates the user login process. An unknown email and a wrong
// password both produce ErrInvalidCredentials so callers cannot enumerate
// registered addresses.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		srv.logger.Warn("Login lookup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, err.Error())
	}

	ok, err := srv.hasher.Check(input.Password, user.PasswordHash)
	if err != nil {
		// A stored hash bcrypt cannot parse. Not the caller's fault, and not
		// a credential mismatch either.
		srv.logger.Error("Stored credential unusable", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamUnavailable, "stored credential unusable")
	}
	if !ok {
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.logger.Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		UserID:      user.ID,
	}, nil
}
