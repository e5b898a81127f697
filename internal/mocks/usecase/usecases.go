// Package usecase contains hand-written testify mocks for the application
// usecase interfaces.
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"usersvc/internal/domain/entity"
	"usersvc/internal/usecase"
)

// MockUserUsecase is a mock implementation of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func NewMockUserUsecase(t *testing.T) *MockUserUsecase {
	m := &MockUserUsecase{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockProfileUsecase is a mock implementation of usecase.ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

func NewMockProfileUsecase(t *testing.T) *MockProfileUsecase {
	m := &MockProfileUsecase{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProfileUsecase) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileUsecase) DeleteProfile(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

// MockDirectoryUsecase is a mock implementation of usecase.DirectoryUsecase.
type MockDirectoryUsecase struct {
	mock.Mock
}

func NewMockDirectoryUsecase(t *testing.T) *MockDirectoryUsecase {
	m := &MockDirectoryUsecase{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDirectoryUsecase) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDirectoryUsecase) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDirectoryUsecase) Search(ctx context.Context, input *usecase.SearchInput) ([]*entity.User, error) {
	args := m.Called(ctx, input)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

var (
	_ usecase.UserUsecase      = (*MockUserUsecase)(nil)
	_ usecase.ProfileUsecase   = (*MockProfileUsecase)(nil)
	_ usecase.DirectoryUsecase = (*MockDirectoryUsecase)(nil)
)
