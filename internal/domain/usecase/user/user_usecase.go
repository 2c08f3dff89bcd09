package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/persistence"
)

// UserUseCase handles identity-related business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// EnsureUser checks the caller handle and loads the user it points at.
// Every synchronous operation goes through it before touching owned data.
func EnsureUser(ctx context.Context, userRepo persistence.UserRepository, userID uuid.UUID) (*entity.User, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}
	return userRepo.GetByID(ctx, userID)
}
