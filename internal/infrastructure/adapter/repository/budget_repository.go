package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/model"
)

// BudgetRepository implements BudgetRepository interface using GORM
type BudgetRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBudgetRepository creates a new BudgetRepository instance
func NewBudgetRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func budgetToEntity(m *model.Budget) *entity.Budget {
	return &entity.Budget{
		ID:            m.ID,
		UserID:        m.UserID,
		Amount:        entity.FromCents(m.AmountCents),
		IsGlobal:      m.IsGlobal,
		AccountID:     m.AccountID,
		LastAlertSent: m.LastAlertSent,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// first loads a single budget, returning nil when none matched
func (r *BudgetRepository) first(ctx context.Context, query string, args ...any) (*entity.Budget, error) {
	var budgetModel model.Budget
	err := r.db.WithContext(ctx).Where(query, args...).First(&budgetModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.errorClassifier.Translate(err, errs.ErrBudgetNotFound)
	}
	return budgetToEntity(&budgetModel), nil
}

// GetByIDForUser retrieves a budget owned by the user
func (r *BudgetRepository) GetByIDForUser(ctx context.Context, userID, budgetID uuid.UUID) (*entity.Budget, error) {
	budget, err := r.first(ctx, "id = ? AND user_id = ?", budgetID, userID)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, errs.ErrBudgetNotFound
	}
	return budget, nil
}

// GetByID retrieves a budget regardless of owner
func (r *BudgetRepository) GetByID(ctx context.Context, budgetID uuid.UUID) (*entity.Budget, error) {
	budget, err := r.first(ctx, "id = ?", budgetID)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, errs.ErrBudgetNotFound
	}
	return budget, nil
}

// FindGlobal returns the user's global budget or nil
func (r *BudgetRepository) FindGlobal(ctx context.Context, userID uuid.UUID) (*entity.Budget, error) {
	return r.first(ctx, "user_id = ? AND is_global = ?", userID, true)
}

// FindForAccount returns the (user, account) budget or nil
func (r *BudgetRepository) FindForAccount(ctx context.Context, userID, accountID uuid.UUID) (*entity.Budget, error) {
	return r.first(ctx, "user_id = ? AND account_id = ?", userID, accountID)
}

// ListAll returns every budget in the store
func (r *BudgetRepository) ListAll(ctx context.Context) ([]*entity.Budget, error) {
	var models []model.Budget
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		r.logger.Error("Failed to list budgets", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorClassifier.Translate(err, errs.ErrBudgetNotFound)
	}

	budgets := make([]*entity.Budget, 0, len(models))
	for i := range models {
		budgets = append(budgets, budgetToEntity(&models[i]))
	}
	return budgets, nil
}

// UpsertForAccount inserts the (user, account) budget or updates its amount.
// The global flag of an existing row is not touched.
func (r *BudgetRepository) UpsertForAccount(ctx context.Context, budget *entity.Budget) (*entity.Budget, error) {
	if budget.AccountID == nil {
		return nil, errs.ErrAccountNotFound
	}

	r.logger.Debug("Upserting account budget", map[string]any{
		"user_id":    budget.UserID.String(),
		"account_id": budget.AccountID.String(),
		"amount":     entity.FormatAmount(budget.Amount),
	})

	budgetModel := model.Budget{
		ID:          budget.ID,
		UserID:      budget.UserID,
		AccountID:   budget.AccountID,
		AmountCents: entity.ToCents(budget.Amount),
		IsGlobal:    budget.IsGlobal,
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount_cents", "updated_at"}),
	}).Create(&budgetModel).Error
	if err != nil {
		r.logger.Error("Failed to upsert budget", map[string]any{
			"user_id":    budget.UserID.String(),
			"account_id": budget.AccountID.String(),
			"error":      err.Error(),
		})
		return nil, r.errorClassifier.Translate(err, errs.ErrBudgetNotFound)
	}

	stored, err := r.FindForAccount(ctx, budget.UserID, *budget.AccountID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errs.ErrBudgetNotFound
	}

	r.logger.Info("Budget saved successfully", map[string]any{
		"budget_id": stored.ID.String(),
		"amount":    entity.FormatAmount(stored.Amount),
	})
	return stored, nil
}

// UpdateAmount changes the amount of an existing budget
func (r *BudgetRepository) UpdateAmount(ctx context.Context, budgetID uuid.UUID, amount decimal.Decimal) error {
	return r.update(ctx, budgetID, map[string]any{
		"amount_cents": entity.ToCents(amount),
	})
}

// ClearGlobal unsets the global flag on every budget of the user except keep
func (r *BudgetRepository) ClearGlobal(ctx context.Context, userID uuid.UUID, keep uuid.UUID) error {
	err := r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("user_id = ? AND is_global = ? AND id <> ?", userID, true, keep).
		Updates(map[string]any{
			"is_global":  false,
			"updated_at": r.timeProvider.Now(),
		}).Error
	return r.errorClassifier.Translate(err, errs.ErrBudgetNotFound)
}

// SetGlobal sets the global flag of one budget owned by the user
func (r *BudgetRepository) SetGlobal(ctx context.Context, userID, budgetID uuid.UUID, isGlobal bool) error {
	result := r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("id = ? AND user_id = ?", budgetID, userID).
		Updates(map[string]any{
			"is_global":  isGlobal,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.errorClassifier.Translate(result.Error, errs.ErrBudgetNotFound)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBudgetNotFound
	}

	r.logger.Info("Budget global flag updated", map[string]any{
		"budget_id": budgetID.String(),
		"is_global": isGlobal,
	})
	return nil
}

// UpdateLastAlertSent records when the last alert for a budget went out
func (r *BudgetRepository) UpdateLastAlertSent(ctx context.Context, budgetID uuid.UUID, sentAt time.Time) error {
	return r.update(ctx, budgetID, map[string]any{
		"last_alert_sent": sentAt.UTC(),
	})
}

func (r *BudgetRepository) update(ctx context.Context, budgetID uuid.UUID, values map[string]any) error {
	values["updated_at"] = r.timeProvider.Now()

	result := r.db.WithContext(ctx).Model(&model.Budget{}).Where("id = ?", budgetID).Updates(values)
	if result.Error != nil {
		r.logger.Error("Failed to update budget", map[string]any{
			"budget_id": budgetID.String(),
			"error":     result.Error.Error(),
		})
		return r.errorClassifier.Translate(result.Error, errs.ErrBudgetNotFound)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBudgetNotFound
	}
	return nil
}
