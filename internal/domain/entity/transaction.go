package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
)

// TransactionType is either money in or money out
type TransactionType string

// Transaction types
const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Transaction is a single posting against an account
type Transaction struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	AccountID         uuid.UUID
	Type              TransactionType
	Amount            decimal.Decimal // Always positive; direction comes from Type
	Description       string
	Category          string
	Date              time.Time
	IsRecurring       bool
	RecurringInterval RecurringInterval
	NextRecurringDate *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewTransactionParams carries the caller-supplied fields of a posting
type NewTransactionParams struct {
	UserID            uuid.UUID
	AccountID         uuid.UUID
	Type              string
	Amount            string
	Description       string
	Category          string
	Date              time.Time
	IsRecurring       bool
	RecurringInterval string
}

// NewTransaction validates params and builds a transaction ready to post
func NewTransaction(params NewTransactionParams, now time.Time) (*Transaction, error) {
	if params.UserID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	if params.AccountID == uuid.Nil {
		return nil, errs.ErrAccountNotFound
	}

	kind, err := ParseTransactionType(params.Type)
	if err != nil {
		return nil, err
	}

	amount, err := ParseAmount(params.Amount)
	if err != nil {
		return nil, err
	}

	date := params.Date
	if date.IsZero() {
		date = now
	}

	txn := &Transaction{
		ID:          uuid.New(),
		UserID:      params.UserID,
		AccountID:   params.AccountID,
		Type:        kind,
		Amount:      amount,
		Description: strings.TrimSpace(params.Description),
		Category:    strings.TrimSpace(params.Category),
		Date:        date.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if params.IsRecurring {
		interval, err := ParseRecurringInterval(params.RecurringInterval)
		if err != nil {
			return nil, err
		}
		next := interval.Next(txn.Date)
		txn.IsRecurring = true
		txn.RecurringInterval = interval
		txn.NextRecurringDate = &next
	}

	return txn, nil
}

// ParseTransactionType validates a transaction type string
func ParseTransactionType(value string) (TransactionType, error) {
	switch TransactionType(strings.ToUpper(strings.TrimSpace(value))) {
	case TransactionTypeIncome:
		return TransactionTypeIncome, nil
	case TransactionTypeExpense:
		return TransactionTypeExpense, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction type %q", errs.ErrInvalidRequest, value)
	}
}

// IsExpense reports whether the transaction took money out of the account
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// SignedAmount is the contribution of the transaction to its account balance:
// +amount for income, -amount for expense
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// ReversalDelta is the balance change that undoes the transaction
func (t *Transaction) ReversalDelta() decimal.Decimal {
	return t.SignedAmount().Neg()
}
