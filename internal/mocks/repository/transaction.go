package repository

import (
	"context"

	"usersvc/internal/domain/repository"
)

// StubTransactionManager runs the callback directly against the configured
// factory, without any real transaction. Errors propagate unchanged, which is
// exactly what the GORM implementation does on rollback.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (s *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.Factory)
}

// StubRepositoryFactory hands out the configured repositories.
type StubRepositoryFactory struct {
	UserRepository repository.UserRepository
}

func (s *StubRepositoryFactory) UserRepo() repository.UserRepository {
	return s.UserRepository
}

var (
	_ repository.TransactionManager = (*StubTransactionManager)(nil)
	_ repository.RepositoryFactory  = (*StubRepositoryFactory)(nil)
)
