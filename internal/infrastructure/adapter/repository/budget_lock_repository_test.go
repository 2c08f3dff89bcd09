package repository_test

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/repository"
)

func (s *RepositorySuite) TestBudgetLockRepository() {
	repo := repository.NewBudgetLockRepository(s.db.DB, s.db.Clock, s.db.Logger)
	budgetID := uuid.New()

	s.Run("should acquire a free lease", func() {
		s.Require().NoError(repo.AcquireLock(s.ctx, budgetID, 2*time.Minute))
	})

	s.Run("should refuse a live lease", func() {
		s.db.Clock.Advance(time.Minute)

		err := repo.AcquireLock(s.ctx, budgetID, 2*time.Minute)
		s.ErrorIs(err, errs.ErrBudgetLocked)
	})

	s.Run("should take over an expired lease", func() {
		s.db.Clock.Advance(2 * time.Minute)

		s.Require().NoError(repo.AcquireLock(s.ctx, budgetID, 2*time.Minute))

		err := repo.AcquireLock(s.ctx, budgetID, 2*time.Minute)
		s.ErrorIs(err, errs.ErrBudgetLocked)
	})

	s.Run("should free the budget on release", func() {
		s.Require().NoError(repo.ReleaseLock(s.ctx, budgetID))
		s.Require().NoError(repo.ReleaseLock(s.ctx, budgetID))

		s.Require().NoError(repo.AcquireLock(s.ctx, budgetID, 2*time.Minute))
	})

	s.Run("should clean up only expired leases", func() {
		// Arrange
		other := uuid.New()
		s.db.Clock.Advance(5 * time.Minute)
		s.Require().NoError(repo.AcquireLock(s.ctx, other, 2*time.Minute))

		// Act
		removed, err := repo.CleanupExpiredLocks(s.ctx)

		// Assert
		s.Require().NoError(err)
		s.Equal(int64(1), removed)
		s.ErrorIs(repo.AcquireLock(s.ctx, other, 2*time.Minute), errs.ErrBudgetLocked)
	})
}
