package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// CreateAccountRequest represents an incoming account creation
type CreateAccountRequest struct {
	Name      string
	Type      string
	Balance   string
	IsDefault bool
}

// AccountWithTransactions is an account together with its postings
type AccountWithTransactions struct {
	Account      *entity.Account
	Transactions []*entity.Transaction
}

// AccountUseCase manages accounts and the default-account flag
type AccountUseCase interface {
	CreateAccount(ctx context.Context, userID uuid.UUID, req CreateAccountRequest) (*entity.Account, error)
	SetDefaultAccount(ctx context.Context, userID, accountID uuid.UUID) (*entity.Account, error)
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)
	GetAccountWithTransactions(ctx context.Context, userID, accountID uuid.UUID) (*AccountWithTransactions, error)
}
