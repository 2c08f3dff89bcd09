package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/model"
)

// BudgetLockRepository implements budget leases using GORM
type BudgetLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBudgetLockRepository creates a new BudgetLockRepository instance
func NewBudgetLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BudgetLockRepository {
	return &BudgetLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// AcquireLock takes a lease on the budget. An expired lease is taken over in
// the same statement; a live one leaves the row untouched.
func (r *BudgetLockRepository) AcquireLock(ctx context.Context, budgetID uuid.UUID, duration time.Duration) error {
	r.logger.Debug("Attempting to acquire budget lock", map[string]any{
		"budget_id": budgetID.String(),
		"duration":  duration.String(),
	})

	now := r.timeProvider.Now().UTC()
	expiresAt := now.Add(duration)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO budget_locks (budget_id, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (budget_id) DO UPDATE
		SET locked_at = excluded.locked_at,
		    expires_at = excluded.expires_at,
		    updated_at = excluded.updated_at
		WHERE budget_locks.expires_at <= ?`,
		budgetID, now, expiresAt, now, now,
		now,
	)

	if err := result.Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Budget is already locked", map[string]any{
				"budget_id": budgetID.String(),
			})
			return errs.ErrBudgetLocked
		}

		if isContextError(err) {
			r.logger.Warn("Context timeout acquiring budget lock", map[string]any{
				"budget_id": budgetID.String(),
				"error":     err.Error(),
			})
			return fmt.Errorf("lock acquisition timeout: %w", err)
		}

		r.logger.Error("Database error acquiring budget lock", map[string]any{
			"budget_id": budgetID.String(),
			"error":     err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Budget lock held elsewhere", map[string]any{
			"budget_id": budgetID.String(),
		})
		return errs.ErrBudgetLocked
	}

	r.logger.Debug("Budget lock acquired", map[string]any{
		"budget_id":  budgetID.String(),
		"expires_at": expiresAt,
	})
	return nil
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "context canceled") ||
		strings.Contains(errStr, "timeout")
}

// ReleaseLock drops the lease. A lease that is already gone is not an error.
func (r *BudgetLockRepository) ReleaseLock(ctx context.Context, budgetID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("budget_id = ?", budgetID).Delete(&model.BudgetLock{})

	if result.Error != nil && isContextError(result.Error) {
		r.logger.Warn("Context timeout when releasing budget lock, lock will expire automatically", map[string]any{
			"budget_id": budgetID.String(),
			"error":     result.Error.Error(),
		})
		return nil
	}

	if result.Error != nil {
		r.logger.Error("Failed to release budget lock", map[string]any{
			"budget_id": budgetID.String(),
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No budget lock found to release", map[string]any{
			"budget_id": budgetID.String(),
		})
	}
	return nil
}

// CleanupExpiredLocks removes all expired leases
func (r *BudgetLockRepository) CleanupExpiredLocks(ctx context.Context) (int64, error) {
	now := r.timeProvider.Now().UTC()

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.BudgetLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired budget locks", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired budget locks removed", map[string]any{
			"locks_removed": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
