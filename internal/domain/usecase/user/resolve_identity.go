package user

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
)

// ResolveIdentity returns the user registered for an authenticated subject
func (u *UserUseCase) ResolveIdentity(ctx context.Context, externalID string) (*entity.User, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, errs.ErrUnauthorized
	}

	user, err := u.userRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			u.logger.Error("Failed to resolve identity", map[string]any{
				"externalId": externalID,
				"error":      err.Error(),
			})
		}
		return nil, err
	}

	return user, nil
}

// RegisterUser creates the user for an identity. Registering an identity
// twice returns the user created the first time.
func (u *UserUseCase) RegisterUser(ctx context.Context, externalID, email, name string) (*entity.User, error) {
	existing, err := u.ResolveIdentity(ctx, externalID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	user, err := entity.NewUser(externalID, email, name, u.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same identity
		if errors.Is(err, errs.ErrDuplicateUser) {
			return u.userRepo.GetByExternalID(ctx, user.ExternalID)
		}
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"userId":     user.ID.String(),
		"externalId": user.ExternalID,
	})

	return user, nil
}
