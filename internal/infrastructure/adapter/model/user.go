package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents the database model for users
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_external_id"`
	Email      string    `gorm:"type:varchar(255);not null"`
	Name       string    `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
