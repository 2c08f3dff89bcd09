package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/model"
)

// AccountRepository implements AccountRepository interface using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func accountToEntity(m *model.Account) *entity.Account {
	return &entity.Account{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Type:      entity.AccountType(m.Type),
		Balance:   entity.FromCents(m.BalanceCents),
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Create stores a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.Account{
		ID:           account.ID,
		UserID:       account.UserID,
		Name:         account.Name,
		Type:         string(account.Type),
		BalanceCents: entity.ToCents(account.Balance),
		IsDefault:    account.IsDefault,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&accountModel).Error; err != nil {
		r.logger.Error("Failed to create account", map[string]any{
			"account_id": account.ID.String(),
			"user_id":    account.UserID.String(),
			"error":      err.Error(),
		})
		return r.errorClassifier.Translate(err, errs.ErrAccountNotFound)
	}

	r.logger.Info("Account created successfully", map[string]any{
		"account_id": account.ID.String(),
		"balance":    entity.FormatAmount(account.Balance),
	})
	return nil
}

// GetByIDForUser retrieves an account owned by the user
func (r *AccountRepository) GetByIDForUser(ctx context.Context, userID, accountID uuid.UUID) (*entity.Account, error) {
	var accountModel model.Account
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", accountID, userID).
		First(&accountModel).Error
	if err != nil {
		return nil, r.errorClassifier.Translate(err, errs.ErrAccountNotFound)
	}

	return accountToEntity(&accountModel), nil
}

// GetDefault returns the user's default account or nil
func (r *AccountRepository) GetDefault(ctx context.Context, userID uuid.UUID) (*entity.Account, error) {
	var accountModel model.Account
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", userID, true).
		First(&accountModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.errorClassifier.Translate(err, errs.ErrAccountNotFound)
	}

	return accountToEntity(&accountModel), nil
}

// ListByUser returns the user's accounts, newest first, with transaction counts
func (r *AccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var rows []model.AccountWithCount
	err := r.db.WithContext(ctx).
		Table("accounts").
		Select("accounts.*, (SELECT COUNT(*) FROM transactions WHERE transactions.account_id = accounts.id) AS transaction_count").
		Where("accounts.user_id = ?", userID).
		Order("accounts.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.Translate(err, errs.ErrAccountNotFound)
	}

	accounts := make([]*entity.Account, 0, len(rows))
	for i := range rows {
		account := accountToEntity(&rows[i].Account)
		account.TransactionCount = rows[i].TransactionCount
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// CountByUser returns how many accounts the user owns
func (r *AccountRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Account{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, r.errorClassifier.Translate(err, errs.ErrAccountNotFound)
	}
	return count, nil
}

// ClearDefault unsets the default flag on every account of the user
func (r *AccountRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Updates(map[string]any{
			"is_default": false,
			"updated_at": r.timeProvider.Now(),
		}).Error
	return r.errorClassifier.Translate(err, errs.ErrAccountNotFound)
}

// SetDefault marks one account as default
func (r *AccountRepository) SetDefault(ctx context.Context, userID, accountID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ? AND user_id = ?", accountID, userID).
		Updates(map[string]any{
			"is_default": true,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.errorClassifier.Translate(result.Error, errs.ErrAccountNotFound)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}

// IncrementBalance adds delta to the stored balance in a single relative
// UPDATE, never as read-modify-write
func (r *AccountRepository) IncrementBalance(ctx context.Context, accountID uuid.UUID, delta decimal.Decimal) error {
	cents := entity.ToCents(delta)

	r.logger.Debug("Incrementing account balance", map[string]any{
		"account_id": accountID.String(),
		"delta":      entity.FormatAmount(delta),
	})

	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]any{
			"balance_cents": gorm.Expr("balance_cents + ?", cents),
			"updated_at":    r.timeProvider.Now(),
		})
	if result.Error != nil {
		r.logger.Error("Failed to increment account balance", map[string]any{
			"account_id": accountID.String(),
			"error":      result.Error.Error(),
		})
		return r.errorClassifier.Translate(result.Error, errs.ErrAccountNotFound)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}
