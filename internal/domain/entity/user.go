package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
)

// User is the identity anchor owning accounts and budgets
type User struct {
	ID         uuid.UUID // Internal identifier
	ExternalID string    // Opaque subject issued by the authentication provider
	Email      string    // Recipient address for budget alerts
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUser creates a user for an authenticated identity
func NewUser(externalID, email, name string, now time.Time) (*User, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, errs.ErrUnauthorized
	}

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidRequest
	}

	return &User{
		ID:         uuid.New(),
		ExternalID: externalID,
		Email:      email,
		Name:       strings.TrimSpace(name),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// DisplayName returns the name used in notifications
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
