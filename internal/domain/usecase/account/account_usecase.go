package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/usecase/user"
)

// AccountUseCase handles account lifecycle and the default-account flag
type AccountUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AccountUseCase {
	return &AccountUseCase{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateAccount opens an account. The first account of a user is always
// the default one; asking for a default account unsets the previous default.
func (a *AccountUseCase) CreateAccount(
	ctx context.Context,
	userID uuid.UUID,
	req usecase.CreateAccountRequest,
) (*entity.Account, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}

	account, err := entity.NewAccount(userID, req.Name, req.Type, req.Balance, req.IsDefault, a.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	err = a.uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := user.EnsureUser(txCtx, a.uow.GetUserRepository(txCtx), userID); err != nil {
			return err
		}

		repo := a.uow.GetAccountRepository(txCtx)
		count, err := repo.CountByUser(txCtx, userID)
		if err != nil {
			return err
		}
		account.IsDefault = req.IsDefault || count == 0

		if account.IsDefault {
			if err := repo.ClearDefault(txCtx, userID); err != nil {
				return err
			}
		}
		return repo.Create(txCtx, account)
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("Account created", map[string]any{
		"userId":    userID.String(),
		"accountId": account.ID.String(),
		"type":      string(account.Type),
		"isDefault": account.IsDefault,
	})

	return account, nil
}

// SetDefaultAccount makes accountID the user's only default account
func (a *AccountUseCase) SetDefaultAccount(ctx context.Context, userID, accountID uuid.UUID) (*entity.Account, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}

	var account *entity.Account
	err := a.uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := user.EnsureUser(txCtx, a.uow.GetUserRepository(txCtx), userID); err != nil {
			return err
		}

		repo := a.uow.GetAccountRepository(txCtx)
		found, err := repo.GetByIDForUser(txCtx, userID, accountID)
		if err != nil {
			return err
		}
		if err := repo.ClearDefault(txCtx, userID); err != nil {
			return err
		}
		if err := repo.SetDefault(txCtx, userID, accountID); err != nil {
			return err
		}

		found.IsDefault = true
		found.UpdatedAt = a.timeProvider.Now()
		account = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("Default account changed", map[string]any{
		"userId":    userID.String(),
		"accountId": accountID.String(),
	})

	return account, nil
}

// ListAccounts returns the user's accounts, newest first
func (a *AccountUseCase) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	if _, err := user.EnsureUser(ctx, a.uow.GetUserRepository(ctx), userID); err != nil {
		return nil, err
	}
	return a.uow.GetAccountRepository(ctx).ListByUser(ctx, userID)
}

// GetAccountWithTransactions returns an owned account with its transactions
func (a *AccountUseCase) GetAccountWithTransactions(
	ctx context.Context,
	userID, accountID uuid.UUID,
) (*usecase.AccountWithTransactions, error) {
	if _, err := user.EnsureUser(ctx, a.uow.GetUserRepository(ctx), userID); err != nil {
		return nil, err
	}

	account, err := a.uow.GetAccountRepository(ctx).GetByIDForUser(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	transactions, err := a.uow.GetTransactionRepository(ctx).ListByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	account.TransactionCount = int64(len(transactions))

	return &usecase.AccountWithTransactions{Account: account, Transactions: transactions}, nil
}
