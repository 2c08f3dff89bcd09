package dto

import (
	"time"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// CreateAccountRequest represents the API request for opening an account
type CreateAccountRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Type      string `json:"type" binding:"required"`
	Balance   string `json:"balance"`
	IsDefault bool   `json:"isDefault"`
}

// AccountResponse represents an account with its derived balance
type AccountResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Balance          string    `json:"balance"`
	IsDefault        bool      `json:"isDefault"`
	TransactionCount int64     `json:"transactionCount"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// AccountDetailResponse is an account together with its transactions
type AccountDetailResponse struct {
	AccountResponse
	Transactions []TransactionResponse `json:"transactions"`
}

// NewAccountResponse maps an account entity
func NewAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:               a.ID.String(),
		Name:             a.Name,
		Type:             string(a.Type),
		Balance:          entity.FormatAmount(a.Balance),
		IsDefault:        a.IsDefault,
		TransactionCount: a.TransactionCount,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// NewAccountResponses maps a list of accounts
func NewAccountResponses(accounts []*entity.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, NewAccountResponse(a))
	}
	return out
}
