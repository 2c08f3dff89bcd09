package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/model"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(txn *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:                txn.ID,
		UserID:            txn.UserID,
		AccountID:         txn.AccountID,
		Type:              string(txn.Type),
		AmountCents:       entity.ToCents(txn.Amount),
		Description:       txn.Description,
		Category:          txn.Category,
		Date:              txn.Date.UTC(),
		IsRecurring:       txn.IsRecurring,
		RecurringInterval: string(txn.RecurringInterval),
		NextRecurringDate: txn.NextRecurringDate,
		CreatedAt:         txn.CreatedAt,
		UpdatedAt:         txn.UpdatedAt,
	}
}

func transactionToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                m.ID,
		UserID:            m.UserID,
		AccountID:         m.AccountID,
		Type:              entity.TransactionType(m.Type),
		Amount:            entity.FromCents(m.AmountCents),
		Description:       m.Description,
		Category:          m.Category,
		Date:              m.Date.UTC(),
		IsRecurring:       m.IsRecurring,
		RecurringInterval: entity.RecurringInterval(m.RecurringInterval),
		NextRecurringDate: m.NextRecurringDate,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"transaction_id": txn.ID.String(),
		"account_id":     txn.AccountID.String(),
	})

	transactionModel := r.entityToModel(txn)
	if err := r.db.WithContext(ctx).Create(&transactionModel).Error; err != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"transaction_id": txn.ID.String(),
			"error":          err.Error(),
		})
		return r.errorClassifier.Translate(err, errs.ErrTransactionNotFound)
	}

	r.logger.Info("Transaction created successfully", map[string]any{
		"transaction_id": txn.ID.String(),
		"account_id":     txn.AccountID.String(),
	})
	return nil
}

// FindByIDsForUser returns the transactions in ids owned by the user
func (r *TransactionRepository) FindByIDsForUser(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*entity.Transaction, error) {
	if len(ids) == 0 {
		return []*entity.Transaction{}, nil
	}

	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, uuidStrings(ids)).
		Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.Translate(err, errs.ErrTransactionNotFound)
	}

	return toTransactionEntities(models), nil
}

// DeleteByIDs removes the user's transactions among ids
func (r *TransactionRepository) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, uuidStrings(ids)).
		Delete(&model.Transaction{})
	if result.Error != nil {
		r.logger.Error("Failed to delete transactions", map[string]any{
			"user_id": userID.String(),
			"count":   len(ids),
			"error":   result.Error.Error(),
		})
		return 0, r.errorClassifier.Translate(result.Error, errs.ErrTransactionNotFound)
	}

	return result.RowsAffected, nil
}

// ListByAccount returns an account's transactions, newest date first
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("date DESC").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, r.errorClassifier.Translate(err, errs.ErrTransactionNotFound)
	}

	return toTransactionEntities(models), nil
}

// SumExpenses totals EXPENSE amounts dated within [from, to)
func (r *TransactionRepository) SumExpenses(ctx context.Context, accountID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var totalCents int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount_cents), 0)").
		Where("account_id = ? AND type = ? AND date >= ? AND date < ?",
			accountID, string(entity.TransactionTypeExpense), from.UTC(), to.UTC()).
		Scan(&totalCents).Error
	if err != nil {
		return decimal.Zero, r.errorClassifier.Translate(err, errs.ErrTransactionNotFound)
	}

	return entity.FromCents(totalCents), nil
}

func toTransactionEntities(models []model.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		out = append(out, transactionToEntity(&models[i]))
	}
	return out
}
