package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetAlertTemplate is the mail template rendered by the delivery service
const BudgetAlertTemplate = "budget-alert"

// Notification is a request for the delivery collaborator
type Notification struct {
	RecipientEmail string         `json:"recipientEmail"`
	Subject        string         `json:"subject"`
	TemplateName   string         `json:"templateName"`
	TemplateData   map[string]any `json:"templateData"`
}

// BudgetAlert describes a budget that crossed its threshold
type BudgetAlert struct {
	BudgetID       uuid.UUID
	UserName       string
	RecipientEmail string
	AccountName    string
	PercentageUsed decimal.Decimal
	BudgetAmount   decimal.Decimal
	TotalExpenses  decimal.Decimal
}

// Notification renders the alert as a delivery request
func (a BudgetAlert) Notification() Notification {
	return Notification{
		RecipientEmail: a.RecipientEmail,
		Subject:        fmt.Sprintf("Budget Alert for %s", a.AccountName),
		TemplateName:   BudgetAlertTemplate,
		TemplateData: map[string]any{
			"userName":       a.UserName,
			"percentageUsed": a.PercentageUsed.StringFixed(1),
			"budgetAmount":   FormatAmount(a.BudgetAmount),
			"totalExpenses":  FormatAmount(a.TotalExpenses),
			"accountName":    a.AccountName,
		},
	}
}
