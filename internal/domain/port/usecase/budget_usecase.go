package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// ResolvedBudget is the single budget that applies to an account, if any
type ResolvedBudget struct {
	Budget           *entity.Budget // nil when no budget applies
	ExpenseAccountID uuid.UUID      // Account whose expenses count against Budget
}

// BudgetProgress is the current-month view of a resolved budget
type BudgetProgress struct {
	ResolvedBudget
	CurrentExpenses decimal.Decimal
	PercentageUsed  decimal.Decimal
}

// BudgetUseCase resolves and mutates budgets
type BudgetUseCase interface {
	// ResolveBudget returns the global budget when one exists, otherwise the
	// per-account budget for accountID
	ResolveBudget(ctx context.Context, userID, accountID uuid.UUID) (*ResolvedBudget, error)

	// GetBudgetProgress resolves the budget and totals current-month expenses
	GetBudgetProgress(ctx context.Context, userID, accountID uuid.UUID) (*BudgetProgress, error)

	// SetBudgetAmount updates the resolved budget's amount, creating the
	// per-account budget when none applies. The global flag is never changed.
	SetBudgetAmount(ctx context.Context, userID, accountID uuid.UUID, amount string) (*entity.Budget, error)

	// SetGlobalFlag makes budgetID the user's only global budget, or, when
	// makeGlobal is false, demotes the current global budget
	SetGlobalFlag(ctx context.Context, userID, budgetID uuid.UUID, makeGlobal bool) (*entity.Budget, entity.GlobalTag, error)
}
