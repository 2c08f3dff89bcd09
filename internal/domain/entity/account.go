package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
)

// AccountType classifies an account
type AccountType string

// Account types
const (
	AccountTypeCurrent AccountType = "CURRENT"
	AccountTypeSavings AccountType = "SAVINGS"
)

// Account holds a derived cash balance for one user
type Account struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Name             string
	Type             AccountType
	Balance          decimal.Decimal // Two-place balance, kept in step with transactions
	IsDefault        bool
	TransactionCount int64 // Populated by listing queries only
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewAccount validates input and creates an account with an opening balance
func NewAccount(userID uuid.UUID, name, accountType, balance string, isDefault bool, now time.Time) (*Account, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", errs.ErrInvalidRequest)
	}

	kind, err := ParseAccountType(accountType)
	if err != nil {
		return nil, err
	}

	opening, err := ParseSignedAmount(balance)
	if err != nil {
		return nil, err
	}

	return &Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      kind,
		Balance:   opening,
		IsDefault: isDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ParseAccountType validates an account type string
func ParseAccountType(value string) (AccountType, error) {
	switch AccountType(strings.ToUpper(strings.TrimSpace(value))) {
	case AccountTypeCurrent:
		return AccountTypeCurrent, nil
	case AccountTypeSavings:
		return AccountTypeSavings, nil
	default:
		return "", fmt.Errorf("%w: unknown account type %q", errs.ErrInvalidRequest, value)
	}
}
