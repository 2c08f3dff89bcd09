package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
)

// UserRepository defines methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by internal ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetByExternalID resolves an authenticated identity to its user
	//
	// Possible errors:
	// - ErrUserNotFound: If no user is registered for the identity
	// - ErrDatabaseConnection: If database connection fails
	GetByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// Create stores a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If the identity is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error
}
