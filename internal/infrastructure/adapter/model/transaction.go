package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	AccountID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_transactions_account_date,priority:1"`
	Type              string     `gorm:"type:varchar(10);not null"`
	AmountCents       int64      `gorm:"not null"` // Always positive
	Description       string     `gorm:"type:varchar(255)"`
	Category          string     `gorm:"type:varchar(64)"`
	Date              time.Time  `gorm:"not null;index:idx_transactions_account_date,priority:2"`
	IsRecurring       bool       `gorm:"not null;default:false"`
	RecurringInterval string     `gorm:"type:varchar(10)"`
	NextRecurringDate *time.Time
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
