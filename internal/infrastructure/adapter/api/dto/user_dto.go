package dto

import (
	"time"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// RegisterUserRequest registers the caller's identity
type RegisterUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"max=255"`
}

// UserResponse represents a registered user
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse maps a user entity
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
