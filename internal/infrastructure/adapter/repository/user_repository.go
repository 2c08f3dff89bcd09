package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:         m.ID,
		ExternalID: m.ExternalID,
		Email:      m.Email,
		Name:       m.Name,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate user registration", fields)
		return errs.ErrDuplicateUser
	}

	translated := r.errorClassifier.Translate(err, errs.ErrUserNotFound)
	if translated != errs.ErrUserNotFound {
		fields["error"] = err.Error()
		r.logger.Error("Database error when "+operation, fields)
	}
	return translated
}

// GetByID retrieves a user by internal ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id.String(),
	})

	var userModel model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, map[string]any{"user_id": id.String()})
	}

	return userToEntity(&userModel), nil
}

// GetByExternalID resolves an authenticated subject to its user
func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("resolving identity", err, map[string]any{"external_id": externalID})
	}

	return userToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id":     user.ID.String(),
		"external_id": user.ExternalID,
	})

	userModel := model.User{
		ID:         user.ID,
		ExternalID: user.ExternalID,
		Email:      user.Email,
		Name:       user.Name,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, map[string]any{"external_id": user.ExternalID})
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID.String(),
	})
	return nil
}
