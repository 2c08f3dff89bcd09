package usecase

import (
	"context"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// UserUseCase maps authenticated identities to users
type UserUseCase interface {
	// ResolveIdentity returns the user for an opaque authenticated subject
	ResolveIdentity(ctx context.Context, externalID string) (*entity.User, error)

	// RegisterUser creates the user for an identity, returning the existing
	// user when it is already registered
	RegisterUser(ctx context.Context, externalID, email, name string) (*entity.User, error)
}
