package model

import (
	"time"

	"github.com/google/uuid"
)

// BudgetLock is a lease held while a budget is being evaluated for alerts
type BudgetLock struct {
	BudgetID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for BudgetLock
func (BudgetLock) TableName() string {
	return "budget_locks"
}
