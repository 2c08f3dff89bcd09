package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/usecase/user"
)

// SetBudgetAmount changes the amount of the budget that currently applies to
// accountID. The per-account budget is created when nothing applies yet.
// The global flag is never touched here.
func (b *BudgetUseCase) SetBudgetAmount(ctx context.Context, userID, accountID uuid.UUID, amount string) (*entity.Budget, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}

	value, err := entity.ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	var saved *entity.Budget
	err = b.uow.Do(ctx, func(txCtx context.Context) error {
		if err := b.checkOwnership(txCtx, userID, accountID); err != nil {
			return err
		}

		now := b.timeProvider.Now()
		repo := b.uow.GetBudgetRepository(txCtx)

		global, err := repo.FindGlobal(txCtx, userID)
		if err != nil {
			return err
		}
		if global != nil {
			if err := repo.UpdateAmount(txCtx, global.ID, value); err != nil {
				return err
			}
			global.Amount = value
			global.UpdatedAt = now
			saved = global
			return nil
		}

		candidate, err := entity.NewAccountBudget(userID, accountID, value, now)
		if err != nil {
			return err
		}
		saved, err = repo.UpsertForAccount(txCtx, candidate)
		return err
	})
	if err != nil {
		return nil, err
	}

	b.logger.Info("Budget amount set", map[string]any{
		"userId":    userID.String(),
		"budgetId":  saved.ID.String(),
		"accountId": accountID.String(),
		"amount":    entity.FormatAmount(value),
		"isGlobal":  saved.IsGlobal,
	})

	return saved, nil
}

// SetGlobalFlag promotes budgetID to the user's only global budget, or, with
// makeGlobal false, demotes whichever budget is currently global
func (b *BudgetUseCase) SetGlobalFlag(
	ctx context.Context,
	userID, budgetID uuid.UUID,
	makeGlobal bool,
) (*entity.Budget, entity.GlobalTag, error) {
	if userID == uuid.Nil {
		return nil, "", errs.ErrUnauthorized
	}

	var (
		target *entity.Budget
		tag    entity.GlobalTag
	)
	err := b.uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := user.EnsureUser(txCtx, b.uow.GetUserRepository(txCtx), userID); err != nil {
			return err
		}

		repo := b.uow.GetBudgetRepository(txCtx)
		now := b.timeProvider.Now()

		if makeGlobal {
			owned, err := repo.GetByIDForUser(txCtx, userID, budgetID)
			if err != nil {
				return err
			}
			// Clear first so the partial unique index never sees two globals
			if err := repo.ClearGlobal(txCtx, userID, owned.ID); err != nil {
				return err
			}
			if err := repo.SetGlobal(txCtx, userID, owned.ID, true); err != nil {
				return err
			}
			owned.IsGlobal = true
			owned.UpdatedAt = now
			target, tag = owned, entity.TagGlobal
			return nil
		}

		global, err := repo.FindGlobal(txCtx, userID)
		if err != nil {
			return err
		}
		if global == nil {
			return errs.NewStateError(userID.String(), "No global budget is set")
		}
		if err := repo.SetGlobal(txCtx, userID, global.ID, false); err != nil {
			return err
		}
		global.IsGlobal = false
		global.UpdatedAt = now
		target, tag = global, entity.TagNotGlobal
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	b.logger.Info("Budget global flag changed", map[string]any{
		"userId":   userID.String(),
		"budgetId": target.ID.String(),
		"tag":      string(tag),
	})

	return target, tag, nil
}
