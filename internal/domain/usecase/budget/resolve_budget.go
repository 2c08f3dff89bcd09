package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
)

// ResolveBudget returns the single budget that applies to accountID
func (b *BudgetUseCase) ResolveBudget(ctx context.Context, userID, accountID uuid.UUID) (*usecase.ResolvedBudget, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	if err := b.checkOwnership(ctx, userID, accountID); err != nil {
		return nil, err
	}

	resolved, err := Resolve(ctx, b.uow.GetBudgetRepository(ctx), userID, accountID)
	if err != nil {
		b.logger.Error("Failed to resolve budget", map[string]any{
			"userId":    userID.String(),
			"accountId": accountID.String(),
			"error":     err.Error(),
		})
		return nil, err
	}

	return resolved, nil
}

// GetBudgetProgress resolves the budget and totals the expenses of the
// current calendar month against it
func (b *BudgetUseCase) GetBudgetProgress(ctx context.Context, userID, accountID uuid.UUID) (*usecase.BudgetProgress, error) {
	resolved, err := b.ResolveBudget(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	progress := &usecase.BudgetProgress{
		ResolvedBudget:  *resolved,
		CurrentExpenses: decimal.Zero,
		PercentageUsed:  decimal.Zero,
	}

	period := entity.MonthOf(b.timeProvider.Now(), b.location)
	spent, err := b.uow.GetTransactionRepository(ctx).SumExpenses(ctx, resolved.ExpenseAccountID, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	progress.CurrentExpenses = spent

	if resolved.Budget != nil {
		progress.PercentageUsed = resolved.Budget.PercentageUsed(spent)
	}

	return progress, nil
}
