package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// CreateTransactionRequest represents the API request for posting a transaction
type CreateTransactionRequest struct {
	AccountID         string     `json:"accountId" binding:"required,uuid"`
	Type              string     `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount            string     `json:"amount" binding:"required"`
	Description       string     `json:"description" binding:"max=255"`
	Category          string     `json:"category" binding:"max=64"`
	Date              *time.Time `json:"date"`
	IsRecurring       bool       `json:"isRecurring"`
	RecurringInterval string     `json:"recurringInterval"`
}

// BulkDeleteRequest lists the transactions to remove
type BulkDeleteRequest struct {
	TransactionIDs []string `json:"transactionIds" binding:"dive,uuid"`
}

// BulkDeleteResponse reports what a bulk delete removed
type BulkDeleteResponse struct {
	DeletedCount   int               `json:"deletedCount"`
	BalanceChanges map[string]string `json:"balanceChanges"`
}

// TransactionResponse represents a posted transaction
type TransactionResponse struct {
	ID                string     `json:"id"`
	AccountID         string     `json:"accountId"`
	Type              string     `json:"type"`
	Amount            string     `json:"amount"`
	Description       string     `json:"description,omitempty"`
	Category          string     `json:"category,omitempty"`
	Date              time.Time  `json:"date"`
	IsRecurring       bool       `json:"isRecurring"`
	RecurringInterval string     `json:"recurringInterval,omitempty"`
	NextRecurringDate *time.Time `json:"nextRecurringDate,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// NewTransactionResponse maps a transaction entity
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID.String(),
		AccountID:         t.AccountID.String(),
		Type:              string(t.Type),
		Amount:            entity.FormatAmount(t.Amount),
		Description:       t.Description,
		Category:          t.Category,
		Date:              t.Date,
		IsRecurring:       t.IsRecurring,
		RecurringInterval: string(t.RecurringInterval),
		NextRecurringDate: t.NextRecurringDate,
		CreatedAt:         t.CreatedAt,
	}
}

// NewTransactionResponses maps a list of transactions
func NewTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}

// NewBulkDeleteResponse renders balance deltas keyed by account id
func NewBulkDeleteResponse(deleted int, changes map[uuid.UUID]decimal.Decimal) BulkDeleteResponse {
	out := BulkDeleteResponse{
		DeletedCount:   deleted,
		BalanceChanges: make(map[string]string, len(changes)),
	}
	for accountID, delta := range changes {
		out.BalanceChanges[accountID.String()] = entity.FormatAmount(delta)
	}
	return out
}
