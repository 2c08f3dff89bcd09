package ledger

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/usecase/user"
)

// BulkDelete removes the caller's transactions among ids and reverses their
// contribution to every touched account in one atomic unit. Ids that do not
// resolve to a transaction of the caller are ignored.
func (l *LedgerUseCase) BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (*usecase.BulkDeleteResult, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}

	requested, err := l.validator.NormalizeIDs(ids)
	if err != nil {
		return nil, err
	}

	var result *usecase.BulkDeleteResult
	err = l.uow.Do(ctx, func(txCtx context.Context) error {
		// Reset on every attempt, the unit may be retried
		result = &usecase.BulkDeleteResult{BalanceChanges: map[uuid.UUID]decimal.Decimal{}}

		if _, err := user.EnsureUser(txCtx, l.uow.GetUserRepository(txCtx), userID); err != nil {
			return err
		}
		if len(requested) == 0 {
			return nil
		}

		txnRepo := l.uow.GetTransactionRepository(txCtx)
		found, err := txnRepo.FindByIDsForUser(txCtx, userID, requested)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		if len(found) == 0 {
			return nil
		}

		owned := make([]uuid.UUID, 0, len(found))
		for _, txn := range found {
			owned = append(owned, txn.ID)
		}

		deleted, err := txnRepo.DeleteByIDs(txCtx, userID, owned)
		if err != nil {
			return fmt.Errorf("failed to delete transactions: %w", err)
		}
		if deleted != int64(len(owned)) {
			return fmt.Errorf("%w: deleted %d of %d transactions", errs.ErrInternalServer, deleted, len(owned))
		}

		deltas := ReversalDeltas(found)
		accountRepo := l.uow.GetAccountRepository(txCtx)
		for _, accountID := range sortedAccountIDs(deltas) {
			delta := deltas[accountID]
			if !delta.IsZero() {
				if err := accountRepo.IncrementBalance(txCtx, accountID, delta); err != nil {
					return fmt.Errorf("failed to adjust balance of account %s: %w", accountID, err)
				}
			}
			result.BalanceChanges[accountID] = delta
		}

		result.DeletedCount = len(owned)
		return nil
	})
	if err != nil {
		l.logger.Error("Bulk delete failed", map[string]any{
			"userId":    userID.String(),
			"requested": len(requested),
			"error":     err.Error(),
		})
		return nil, err
	}

	l.logger.Info("Transactions bulk deleted", map[string]any{
		"userId":          userID.String(),
		"requested":       len(requested),
		"deleted":         result.DeletedCount,
		"accountsTouched": len(result.BalanceChanges),
	})

	return result, nil
}

// ReversalDeltas groups the balance change needed to undo each transaction by account
func ReversalDeltas(transactions []*entity.Transaction) map[uuid.UUID]decimal.Decimal {
	deltas := make(map[uuid.UUID]decimal.Decimal)
	for _, txn := range transactions {
		deltas[txn.AccountID] = deltas[txn.AccountID].Add(txn.ReversalDelta())
	}
	return deltas
}

// sortedAccountIDs gives a stable row-lock order across concurrent units
func sortedAccountIDs(deltas map[uuid.UUID]decimal.Decimal) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return ids
}
