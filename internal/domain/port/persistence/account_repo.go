package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// AccountRepository defines methods to interact with account data
type AccountRepository interface {
	// Create stores a new account
	Create(ctx context.Context, account *entity.Account) error

	// GetByIDForUser retrieves an account owned by the user
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist or belongs to someone else
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUser(ctx context.Context, userID, accountID uuid.UUID) (*entity.Account, error)

	// GetDefault returns the user's default account or nil when none is set
	GetDefault(ctx context.Context, userID uuid.UUID) (*entity.Account, error)

	// ListByUser returns the user's accounts, newest first, with transaction counts
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)

	// CountByUser returns how many accounts the user owns
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ClearDefault unsets the default flag on every account of the user
	ClearDefault(ctx context.Context, userID uuid.UUID) error

	// SetDefault marks one account as default
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist or belongs to someone else
	SetDefault(ctx context.Context, userID, accountID uuid.UUID) error

	// IncrementBalance adds delta to the stored balance with a relative update
	// so concurrent postings are never lost
	//
	// Possible errors:
	// - ErrAccountNotFound: If no row was updated
	IncrementBalance(ctx context.Context, accountID uuid.UUID, delta decimal.Decimal) error
}
