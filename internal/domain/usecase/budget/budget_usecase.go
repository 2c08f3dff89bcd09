package budget

import (
	"context"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/usecase/user"
)

// BudgetUseCase resolves which budget applies to an account and mutates budgets
type BudgetUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	location     *time.Location // Calendar used for month boundaries
}

// NewBudgetUseCase creates a new BudgetUseCase
func NewBudgetUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	location *time.Location,
) *BudgetUseCase {
	if location == nil {
		location = time.UTC
	}
	return &BudgetUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		location:     location,
	}
}

// checkOwnership validates the caller and that the account belongs to them
func (b *BudgetUseCase) checkOwnership(ctx context.Context, userID, accountID uuid.UUID) error {
	if _, err := user.EnsureUser(ctx, b.uow.GetUserRepository(ctx), userID); err != nil {
		return err
	}
	if accountID == uuid.Nil {
		return errs.ErrAccountNotFound
	}
	_, err := b.uow.GetAccountRepository(ctx).GetByIDForUser(ctx, userID, accountID)
	return err
}

// Resolve applies the precedence rule: the user's global budget wins,
// otherwise the per-account budget keyed by (userID, accountID), otherwise none
func Resolve(
	ctx context.Context,
	repo persistence.BudgetRepository,
	userID, accountID uuid.UUID,
) (*usecase.ResolvedBudget, error) {
	global, err := repo.FindGlobal(ctx, userID)
	if err != nil {
		return nil, err
	}
	if global != nil {
		return &usecase.ResolvedBudget{
			Budget:           global,
			ExpenseAccountID: global.ExpenseAccountID(accountID),
		}, nil
	}

	perAccount, err := repo.FindForAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	return &usecase.ResolvedBudget{Budget: perAccount, ExpenseAccountID: accountID}, nil
}
