package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/errors"
	mockRepo "usersvc/internal/mocks/repository"
	"usersvc/internal/usecase"
)

func TestDirectoryService_GetByUsername(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewDirectoryService(userRepo, newDiscardLogger())
	ctx := context.Background()

	stored := &entity.User{ID: 7, Username: "ana", PublicName: "Ana"}
	userRepo.On("FindByUsername", ctx, "ana").Return(stored, nil)

	user, err := svc.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestDirectoryService_GetByUsername_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewDirectoryService(userRepo, newDiscardLogger())
	ctx := context.Background()

	userRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetByUsername(ctx, "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestDirectoryService_GetByID_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewDirectoryService(userRepo, newDiscardLogger())
	ctx := context.Background()

	userRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetByID(ctx, 404)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestDirectoryService_Search_AppliesDefaults(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewDirectoryService(userRepo, newDiscardLogger())
	ctx := context.Background()

	matches := []*entity.User{{ID: 1, Username: "ana"}, {ID: 2, Username: "anabel"}}
	userRepo.On("Search", ctx, "ana", 0, defaultSearchLimit).Return(matches, nil)

	users, err := svc.Search(ctx, &usecase.SearchInput{Query: "ana", Skip: -5, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, matches, users)
}

func TestDirectoryService_Search_PassesPagination(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewDirectoryService(userRepo, newDiscardLogger())
	ctx := context.Background()

	userRepo.On("Search", ctx, "ana", 40, 10).Return([]*entity.User{}, nil)

	users, err := svc.Search(ctx, &usecase.SearchInput{Query: "ana", Skip: 40, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestDirectoryService_Search_StoreErrorIsUpstream(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewDirectoryService(userRepo, newDiscardLogger())
	ctx := context.Background()

	userRepo.On("Search", ctx, "ana", 0, defaultSearchLimit).
		Return(nil, errors.New("connection refused"))

	_, err := svc.Search(ctx, &usecase.SearchInput{Query: "ana"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamUnavailable))
}
