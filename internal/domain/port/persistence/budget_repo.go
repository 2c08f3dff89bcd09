package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// BudgetRepository defines methods to interact with budget data
type BudgetRepository interface {
	// GetByIDForUser retrieves a budget owned by the user
	//
	// Possible errors:
	// - ErrBudgetNotFound: If the budget doesn't exist or belongs to someone else
	GetByIDForUser(ctx context.Context, userID, budgetID uuid.UUID) (*entity.Budget, error)

	// GetByID retrieves a budget regardless of owner, used by the alert evaluator
	GetByID(ctx context.Context, budgetID uuid.UUID) (*entity.Budget, error)

	// FindGlobal returns the user's global budget or nil
	FindGlobal(ctx context.Context, userID uuid.UUID) (*entity.Budget, error)

	// FindForAccount returns the per-account budget keyed by (user, account) or nil
	FindForAccount(ctx context.Context, userID, accountID uuid.UUID) (*entity.Budget, error)

	// ListAll returns every budget in the store
	ListAll(ctx context.Context) ([]*entity.Budget, error)

	// UpsertForAccount inserts or updates the amount of the (user, account)
	// budget; the global flag of an existing row is left untouched
	UpsertForAccount(ctx context.Context, budget *entity.Budget) (*entity.Budget, error)

	// UpdateAmount changes the amount of an existing budget
	UpdateAmount(ctx context.Context, budgetID uuid.UUID, amount decimal.Decimal) error

	// ClearGlobal unsets the global flag on every budget of the user except keep
	ClearGlobal(ctx context.Context, userID uuid.UUID, keep uuid.UUID) error

	// SetGlobal sets the global flag of one budget owned by the user
	//
	// Possible errors:
	// - ErrBudgetNotFound: If no owned budget matched
	SetGlobal(ctx context.Context, userID, budgetID uuid.UUID, isGlobal bool) error

	// UpdateLastAlertSent records when the last alert for a budget went out
	UpdateLastAlertSent(ctx context.Context, budgetID uuid.UUID, sentAt time.Time) error
}
