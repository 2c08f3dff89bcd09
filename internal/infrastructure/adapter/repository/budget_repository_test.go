package repository_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/model"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/repository"
)

func (s *RepositorySuite) TestBudgetRepository_Lookup() {
	repo := repository.NewBudgetRepository(s.db.DB, s.db.Clock, s.db.Logger)
	alice := s.db.CreateTestUser(s.T(), "alice")
	bob := s.db.CreateTestUser(s.T(), "bob")
	accountID := s.db.CreateTestAccount(s.T(), alice, "0", true)
	otherAccount := s.db.CreateTestAccount(s.T(), alice, "0", false)

	accountBudget := s.db.CreateTestBudget(s.T(), alice, &accountID, "500", false)

	s.Run("should return nil when the user has no global budget", func() {
		budget, err := repo.FindGlobal(s.ctx, alice)
		s.Require().NoError(err)
		s.Nil(budget)
	})

	s.Run("should find the per-account budget by user and account", func() {
		budget, err := repo.FindForAccount(s.ctx, alice, accountID)
		s.Require().NoError(err)
		s.Require().NotNil(budget)
		s.Equal(accountBudget, budget.ID)
		s.True(budget.Amount.Equal(decimal.NewFromInt(500)))

		none, err := repo.FindForAccount(s.ctx, alice, otherAccount)
		s.Require().NoError(err)
		s.Nil(none)
	})

	s.Run("should hide a budget from other users", func() {
		_, err := repo.GetByIDForUser(s.ctx, bob, accountBudget)
		s.ErrorIs(err, errs.ErrBudgetNotFound)

		_, err = repo.GetByID(s.ctx, uuid.New())
		s.ErrorIs(err, errs.ErrBudgetNotFound)
	})

	s.Run("should list every budget", func() {
		s.db.CreateTestBudget(s.T(), bob, nil, "100", true)

		budgets, err := repo.ListAll(s.ctx)
		s.Require().NoError(err)
		s.Len(budgets, 2)
	})
}

func (s *RepositorySuite) TestBudgetRepository_UpsertForAccount() {
	repo := repository.NewBudgetRepository(s.db.DB, s.db.Clock, s.db.Logger)
	userID := s.db.CreateTestUser(s.T(), "alice")
	accountID := s.db.CreateTestAccount(s.T(), userID, "0", true)

	s.Run("should insert a budget when none exists", func() {
		// Arrange
		budget, err := entity.NewAccountBudget(userID, accountID, decimal.NewFromInt(300), s.db.Clock.Now())
		s.Require().NoError(err)

		// Act
		stored, err := repo.UpsertForAccount(s.ctx, budget)

		// Assert
		s.Require().NoError(err)
		s.Equal(budget.ID, stored.ID)
		s.False(stored.IsGlobal)
	})

	s.Run("should update the amount and keep the existing row and flag", func() {
		// Arrange
		existing, err := repo.FindForAccount(s.ctx, userID, accountID)
		s.Require().NoError(err)
		s.Require().NoError(repo.SetGlobal(s.ctx, userID, existing.ID, true))

		replacement, err := entity.NewAccountBudget(userID, accountID, decimal.RequireFromString("450.75"), s.db.Clock.Now())
		s.Require().NoError(err)

		// Act
		stored, err := repo.UpsertForAccount(s.ctx, replacement)

		// Assert
		s.Require().NoError(err)
		s.Equal(existing.ID, stored.ID)
		s.True(stored.IsGlobal)
		s.True(stored.Amount.Equal(decimal.RequireFromString("450.75")))

		var count int64
		s.Require().NoError(s.db.DB.Model(&model.Budget{}).Where("user_id = ?", userID).Count(&count).Error)
		s.Equal(int64(1), count)
	})

	s.Run("should require an account", func() {
		_, err := repo.UpsertForAccount(s.ctx, &entity.Budget{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(1)})
		s.ErrorIs(err, errs.ErrAccountNotFound)
	})
}

func (s *RepositorySuite) TestBudgetRepository_GlobalFlag() {
	repo := repository.NewBudgetRepository(s.db.DB, s.db.Clock, s.db.Logger)
	userID := s.db.CreateTestUser(s.T(), "alice")
	first := s.db.CreateTestAccount(s.T(), userID, "0", true)
	second := s.db.CreateTestAccount(s.T(), userID, "0", false)

	b1 := s.db.CreateTestBudget(s.T(), userID, &first, "100", true)
	b2 := s.db.CreateTestBudget(s.T(), userID, &second, "200", false)

	s.Run("should refuse a second global budget for the same user", func() {
		err := repo.SetGlobal(s.ctx, userID, b2, true)
		s.ErrorIs(err, errs.ErrConstraintViolation)
	})

	s.Run("should move the global flag after clearing the others", func() {
		// Act
		s.Require().NoError(repo.ClearGlobal(s.ctx, userID, b2))
		s.Require().NoError(repo.SetGlobal(s.ctx, userID, b2, true))

		// Assert
		global, err := repo.FindGlobal(s.ctx, userID)
		s.Require().NoError(err)
		s.Require().NotNil(global)
		s.Equal(b2, global.ID)

		previous, err := repo.GetByIDForUser(s.ctx, userID, b1)
		s.Require().NoError(err)
		s.False(previous.IsGlobal)
	})

	s.Run("should report an unknown budget", func() {
		err := repo.SetGlobal(s.ctx, userID, uuid.New(), false)
		s.ErrorIs(err, errs.ErrBudgetNotFound)
	})

	s.Run("should allow one global budget per user", func() {
		bob := s.db.CreateTestUser(s.T(), "bob")
		s.db.CreateTestBudget(s.T(), bob, nil, "75", true)

		global, err := repo.FindGlobal(s.ctx, userID)
		s.Require().NoError(err)
		s.Equal(b2, global.ID)
	})
}

func (s *RepositorySuite) TestBudgetRepository_Updates() {
	repo := repository.NewBudgetRepository(s.db.DB, s.db.Clock, s.db.Logger)
	userID := s.db.CreateTestUser(s.T(), "alice")
	accountID := s.db.CreateTestAccount(s.T(), userID, "0", true)
	budgetID := s.db.CreateTestBudget(s.T(), userID, &accountID, "100", false)

	s.Run("should change the amount", func() {
		s.Require().NoError(repo.UpdateAmount(s.ctx, budgetID, decimal.RequireFromString("120.10")))

		budget, err := repo.GetByID(s.ctx, budgetID)
		s.Require().NoError(err)
		s.True(budget.Amount.Equal(decimal.RequireFromString("120.10")))
	})

	s.Run("should record the alert timestamp in UTC", func() {
		// Arrange
		sentAt := time.Date(2024, time.July, 10, 11, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

		// Act
		s.Require().NoError(repo.UpdateLastAlertSent(s.ctx, budgetID, sentAt))

		// Assert
		budget, err := repo.GetByID(s.ctx, budgetID)
		s.Require().NoError(err)
		s.Require().NotNil(budget.LastAlertSent)
		s.True(budget.LastAlertSent.Equal(sentAt))
	})

	s.Run("should report a missing budget", func() {
		err := repo.UpdateAmount(s.ctx, uuid.New(), decimal.NewFromInt(1))
		s.ErrorIs(err, errs.ErrBudgetNotFound)
	})
}
