package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BudgetLockRepository serializes alert evaluation of a budget across processes
type BudgetLockRepository interface {
	// AcquireLock takes a lease on the budget that expires after duration
	//
	// Possible errors:
	// - ErrBudgetLocked: If an unexpired lease is held elsewhere
	// - ErrDatabaseConnection: If database connection fails
	AcquireLock(ctx context.Context, budgetID uuid.UUID, duration time.Duration) error

	// ReleaseLock drops the lease; releasing a missing lease is not an error
	ReleaseLock(ctx context.Context, budgetID uuid.UUID) error
}
