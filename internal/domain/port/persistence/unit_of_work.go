package persistence

import (
	"context"
)

// UnitOfWork coordinates operations across repositories inside one database
// transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Do runs fn inside a transaction, committing when fn returns nil and
	// rolling back otherwise. Transient conflicts are retried.
	Do(ctx context.Context, fn func(ctx context.Context) error) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetBudgetRepository returns a budget repository bound to the current transaction
	GetBudgetRepository(ctx context.Context) BudgetRepository
}
