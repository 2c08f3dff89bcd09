package model

import (
	"time"

	"github.com/google/uuid"
)

// Account represents the database model for accounts
type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Type         string    `gorm:"type:varchar(20);not null"`
	BalanceCents int64     `gorm:"not null;default:0"` // Balance in cents
	IsDefault    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// AccountWithCount is an account row joined with its transaction count
type AccountWithCount struct {
	Account          `gorm:"embedded"`
	TransactionCount int64
}
