package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// TransactionRepository defines methods to interact with transaction data
type TransactionRepository interface {
	// Create saves a new transaction
	//
	// Possible errors:
	// - ErrConstraintViolation: If referenced account or user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDsForUser returns the transactions in ids owned by the user.
	// Unknown and foreign ids are silently absent from the result.
	FindByIDsForUser(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Transaction, error)

	// DeleteByIDs removes the given transactions and reports how many rows went away
	DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)

	// ListByAccount returns an account's transactions, newest date first
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error)

	// SumExpenses totals EXPENSE amounts for an account dated within [from, to)
	SumExpenses(ctx context.Context, accountID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
}
