package model

import (
	"time"

	"github.com/google/uuid"
)

// Budget represents the database model for budgets. The (user_id, account_id)
// pair is unique; the single-global rule is a partial index created by the
// migration manager.
type Budget struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_account,priority:1"`
	AccountID     *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_budgets_user_account,priority:2"`
	AmountCents   int64      `gorm:"not null"`
	IsGlobal      bool       `gorm:"not null;default:false"`
	LastAlertSent *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Budget
func (Budget) TableName() string {
	return "budgets"
}
