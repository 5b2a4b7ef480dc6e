package domain

import "context"

// UnitOfWork groups repository operations into one atomic transaction.
type UnitOfWork interface {
	// Execute runs fn within a transaction; the passed UnitOfWork hands out
	// transaction-scoped repositories.
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error

	// Todos returns the TodoRepository for this UnitOfWork.
	Todos() TodoRepository

	// Documents returns the DocumentRepository for this UnitOfWork.
	Documents() DocumentRepository
}
