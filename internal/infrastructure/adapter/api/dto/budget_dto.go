package dto

import (
	"time"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
)

// SetBudgetRequest sets the amount of the budget applying to an account
type SetBudgetRequest struct {
	AccountID string `json:"accountId" binding:"required,uuid"`
	Amount    string `json:"amount" binding:"required"`
}

// SetGlobalRequest promotes or demotes a budget
type SetGlobalRequest struct {
	IsGlobal *bool `json:"isGlobal" binding:"required"`
}

// BudgetResponse represents a stored budget
type BudgetResponse struct {
	ID            string     `json:"id"`
	Amount        string     `json:"amount"`
	IsGlobal      bool       `json:"isGlobal"`
	AccountID     *string    `json:"accountId,omitempty"`
	LastAlertSent *time.Time `json:"lastAlertSent,omitempty"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// BudgetProgressResponse is the budget applying to an account plus
// current-month spending
type BudgetProgressResponse struct {
	Budget           *BudgetResponse `json:"budget"`
	ExpenseAccountID string          `json:"expenseAccountId"`
	CurrentExpenses  string          `json:"currentExpenses"`
	PercentageUsed   string          `json:"percentageUsed"`
}

// GlobalToggleResponse reports the outcome of a global toggle
type GlobalToggleResponse struct {
	Budget BudgetResponse `json:"budget"`
	Tag    string         `json:"tag"`
}

// NewBudgetResponse maps a budget entity
func NewBudgetResponse(b *entity.Budget) BudgetResponse {
	resp := BudgetResponse{
		ID:            b.ID.String(),
		Amount:        entity.FormatAmount(b.Amount),
		IsGlobal:      b.IsGlobal,
		LastAlertSent: b.LastAlertSent,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.AccountID != nil {
		id := b.AccountID.String()
		resp.AccountID = &id
	}
	return resp
}

// NewBudgetProgressResponse maps a progress view; Budget is nil when nothing applies
func NewBudgetProgressResponse(p *usecase.BudgetProgress) BudgetProgressResponse {
	resp := BudgetProgressResponse{
		ExpenseAccountID: p.ExpenseAccountID.String(),
		CurrentExpenses:  entity.FormatAmount(p.CurrentExpenses),
		PercentageUsed:   p.PercentageUsed.StringFixed(1),
	}
	if p.Budget != nil {
		budget := NewBudgetResponse(p.Budget)
		resp.Budget = &budget
	}
	return resp
}
