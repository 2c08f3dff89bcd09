package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
)

// AlertThresholdPercent is the spend level at which a budget alert fires
var AlertThresholdPercent = decimal.NewFromInt(80)

// GlobalTag reports the outcome of a global toggle
type GlobalTag string

// Global toggle outcomes
const (
	TagGlobal    GlobalTag = "Global"
	TagNotGlobal GlobalTag = "NotGlobal"
)

// Budget is a monthly spending limit. A global budget overrides the
// per-account budgets of its owner.
type Budget struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Amount        decimal.Decimal
	IsGlobal      bool
	AccountID     *uuid.UUID // Required unless the budget is global
	LastAlertSent *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewAccountBudget creates a per-account budget
func NewAccountBudget(userID, accountID uuid.UUID, amount decimal.Decimal, now time.Time) (*Budget, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	if accountID == uuid.Nil {
		return nil, errs.ErrAccountNotFound
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	account := accountID
	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		AccountID: &account,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ExpenseAccountID picks the account whose expenses count against the budget:
// the bound account when there is one, otherwise fallback
func (b *Budget) ExpenseAccountID(fallback uuid.UUID) uuid.UUID {
	if b.AccountID != nil && *b.AccountID != uuid.Nil {
		return *b.AccountID
	}
	return fallback
}

// PercentageUsed returns spent / amount * 100 without rounding
func (b *Budget) PercentageUsed(spent decimal.Decimal) decimal.Decimal {
	if !b.Amount.IsPositive() {
		return decimal.Zero
	}
	return spent.Mul(decimal.NewFromInt(100)).Div(b.Amount)
}

// AlertedInMonthOf reports whether an alert was already sent in the calendar
// month (and year) containing now, evaluated in loc
func (b *Budget) AlertedInMonthOf(now time.Time, loc *time.Location) bool {
	if b.LastAlertSent == nil {
		return false
	}
	sent := b.LastAlertSent.In(loc)
	current := now.In(loc)
	return sent.Year() == current.Year() && sent.Month() == current.Month()
}

// ShouldAlert is true when usage reached the threshold and no alert went out
// this month
func (b *Budget) ShouldAlert(percentageUsed, threshold decimal.Decimal, now time.Time, loc *time.Location) bool {
	return percentageUsed.GreaterThanOrEqual(threshold) && !b.AlertedInMonthOf(now, loc)
}

// MarkAlerted records the alert timestamp
func (b *Budget) MarkAlerted(now time.Time) {
	sent := now
	b.LastAlertSent = &sent
	b.UpdatedAt = now
}
