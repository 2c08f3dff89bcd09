package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// BulkDeleteResult reports what a bulk delete actually removed
type BulkDeleteResult struct {
	DeletedCount   int
	BalanceChanges map[uuid.UUID]decimal.Decimal // Net delta applied per touched account
}

// CreateTransactionRequest represents an incoming transaction posting
type CreateTransactionRequest struct {
	AccountID         uuid.UUID
	Type              string
	Amount            string
	Description       string
	Category          string
	Date              time.Time
	IsRecurring       bool
	RecurringInterval string
}

// LedgerUseCase posts and removes transactions while keeping balances exact
type LedgerUseCase interface {
	// BulkDelete removes the caller's transactions in ids and reverses their
	// balance contributions in one atomic unit. Unknown or foreign ids are ignored.
	BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (*BulkDeleteResult, error)

	// CreateTransaction posts a transaction and applies its contribution to the account
	CreateTransaction(ctx context.Context, userID uuid.UUID, req CreateTransactionRequest) (*entity.Transaction, error)
}
