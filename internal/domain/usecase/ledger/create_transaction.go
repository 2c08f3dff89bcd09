package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/usecase/user"
)

// CreateTransaction posts a transaction and applies its signed contribution
// to the account balance in the same unit of work
func (l *LedgerUseCase) CreateTransaction(
	ctx context.Context,
	userID uuid.UUID,
	req usecase.CreateTransactionRequest,
) (*entity.Transaction, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	if err := l.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(entity.NewTransactionParams{
		UserID:            userID,
		AccountID:         req.AccountID,
		Type:              req.Type,
		Amount:            req.Amount,
		Description:       req.Description,
		Category:          req.Category,
		Date:              req.Date,
		IsRecurring:       req.IsRecurring,
		RecurringInterval: req.RecurringInterval,
	}, l.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	err = l.uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := user.EnsureUser(txCtx, l.uow.GetUserRepository(txCtx), userID); err != nil {
			return err
		}

		accountRepo := l.uow.GetAccountRepository(txCtx)
		if _, err := accountRepo.GetByIDForUser(txCtx, userID, txn.AccountID); err != nil {
			return err
		}

		if err := l.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
			return err
		}

		return accountRepo.IncrementBalance(txCtx, txn.AccountID, txn.SignedAmount())
	})
	if err != nil {
		l.logger.Warn("Transaction was not posted", map[string]any{
			"userId":    userID.String(),
			"accountId": req.AccountID.String(),
			"error":     err.Error(),
		})
		return nil, err
	}

	l.logger.Info("Transaction posted", map[string]any{
		"userId":        userID.String(),
		"accountId":     txn.AccountID.String(),
		"transactionId": txn.ID.String(),
		"type":          string(txn.Type),
		"amount":        entity.FormatAmount(txn.Amount),
	})

	return txn, nil
}
