package repository_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/repository"
)

func (s *RepositorySuite) TestTransactionRepository_FindAndDelete() {
	repo := repository.NewTransactionRepository(s.db.DB, s.db.Logger)
	alice := s.db.CreateTestUser(s.T(), "alice")
	bob := s.db.CreateTestUser(s.T(), "bob")
	aliceAccount := s.db.CreateTestAccount(s.T(), alice, "0", true)
	bobAccount := s.db.CreateTestAccount(s.T(), bob, "0", true)

	date := s.db.Clock.Now()
	t1 := s.db.CreateTestTransaction(s.T(), alice, aliceAccount, entity.TransactionTypeExpense, "50.00", date)
	t2 := s.db.CreateTestTransaction(s.T(), alice, aliceAccount, entity.TransactionTypeIncome, "200.00", date)
	foreign := s.db.CreateTestTransaction(s.T(), bob, bobAccount, entity.TransactionTypeExpense, "9.99", date)

	s.Run("should only find the caller's transactions", func() {
		// Act
		found, err := repo.FindByIDsForUser(s.ctx, alice, []uuid.UUID{t1, foreign, uuid.New()})

		// Assert
		s.Require().NoError(err)
		s.Require().Len(found, 1)
		s.Equal(t1, found[0].ID)
		s.True(found[0].Amount.Equal(decimal.RequireFromString("50")))
	})

	s.Run("should short-circuit an empty id set", func() {
		found, err := repo.FindByIDsForUser(s.ctx, alice, nil)
		s.Require().NoError(err)
		s.Empty(found)

		deleted, err := repo.DeleteByIDs(s.ctx, alice, nil)
		s.Require().NoError(err)
		s.Zero(deleted)
	})

	s.Run("should leave foreign transactions in place", func() {
		// Act
		deleted, err := repo.DeleteByIDs(s.ctx, alice, []uuid.UUID{t1, foreign})

		// Assert
		s.Require().NoError(err)
		s.Equal(int64(1), deleted)
		s.Equal(int64(1), s.db.CountTransactions(s.T(), aliceAccount))
		s.Equal(int64(1), s.db.CountTransactions(s.T(), bobAccount))

		remaining, err := repo.ListByAccount(s.ctx, aliceAccount)
		s.Require().NoError(err)
		s.Require().Len(remaining, 1)
		s.Equal(t2, remaining[0].ID)
	})
}

func (s *RepositorySuite) TestTransactionRepository_Create() {
	repo := repository.NewTransactionRepository(s.db.DB, s.db.Logger)
	userID := s.db.CreateTestUser(s.T(), "alice")
	accountID := s.db.CreateTestAccount(s.T(), userID, "0", true)

	s.Run("should store a recurring transaction", func() {
		// Arrange
		txn, err := entity.NewTransaction(entity.NewTransactionParams{
			UserID:            userID,
			AccountID:         accountID,
			Type:              "EXPENSE",
			Amount:            "12.34",
			Description:       "Gym",
			Category:          "health",
			Date:              s.db.Clock.Now(),
			IsRecurring:       true,
			RecurringInterval: "MONTHLY",
		}, s.db.Clock.Now())
		s.Require().NoError(err)

		// Act
		err = repo.Create(s.ctx, txn)

		// Assert
		s.Require().NoError(err)
		stored, err := repo.ListByAccount(s.ctx, accountID)
		s.Require().NoError(err)
		s.Require().Len(stored, 1)
		s.Equal("Gym", stored[0].Description)
		s.True(stored[0].IsRecurring)
		s.Require().NotNil(stored[0].NextRecurringDate)
	})

	s.Run("should reject a transaction for a missing account", func() {
		txn, err := entity.NewTransaction(entity.NewTransactionParams{
			UserID:    userID,
			AccountID: uuid.New(),
			Type:      "INCOME",
			Amount:    "1",
			Date:      s.db.Clock.Now(),
		}, s.db.Clock.Now())
		s.Require().NoError(err)

		s.Error(repo.Create(s.ctx, txn))
	})
}

func (s *RepositorySuite) TestTransactionRepository_ListOrder() {
	repo := repository.NewTransactionRepository(s.db.DB, s.db.Logger)
	userID := s.db.CreateTestUser(s.T(), "alice")
	accountID := s.db.CreateTestAccount(s.T(), userID, "0", true)

	now := s.db.Clock.Now()
	old := s.db.CreateTestTransaction(s.T(), userID, accountID, entity.TransactionTypeExpense, "1.00", now.AddDate(0, 0, -3))
	recent := s.db.CreateTestTransaction(s.T(), userID, accountID, entity.TransactionTypeExpense, "2.00", now)

	// Act
	list, err := repo.ListByAccount(s.ctx, accountID)

	// Assert
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(recent, list[0].ID)
	s.Equal(old, list[1].ID)
}

func (s *RepositorySuite) TestTransactionRepository_SumExpenses() {
	repo := repository.NewTransactionRepository(s.db.DB, s.db.Logger)
	userID := s.db.CreateTestUser(s.T(), "alice")
	accountID := s.db.CreateTestAccount(s.T(), userID, "0", true)
	otherAccount := s.db.CreateTestAccount(s.T(), userID, "0", false)

	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	s.db.CreateTestTransaction(s.T(), userID, accountID, entity.TransactionTypeExpense, "100.00", from)
	s.db.CreateTestTransaction(s.T(), userID, accountID, entity.TransactionTypeExpense, "25.50", to.Add(-time.Second))
	s.db.CreateTestTransaction(s.T(), userID, accountID, entity.TransactionTypeExpense, "999.00", to)
	s.db.CreateTestTransaction(s.T(), userID, accountID, entity.TransactionTypeExpense, "999.00", from.Add(-time.Second))
	s.db.CreateTestTransaction(s.T(), userID, accountID, entity.TransactionTypeIncome, "500.00", from.Add(time.Hour))
	s.db.CreateTestTransaction(s.T(), userID, otherAccount, entity.TransactionTypeExpense, "70.00", from.Add(time.Hour))

	s.Run("should total expenses in the half-open window", func() {
		total, err := repo.SumExpenses(s.ctx, accountID, from, to)
		s.Require().NoError(err)
		s.True(total.Equal(decimal.RequireFromString("125.50")), "got %s", total)
	})

	s.Run("should return zero for an empty window", func() {
		total, err := repo.SumExpenses(s.ctx, accountID, to.AddDate(0, 1, 0), to.AddDate(0, 2, 0))
		s.Require().NoError(err)
		s.True(total.IsZero())
	})

	s.Run("should accept window bounds in another location", func() {
		berlin := time.FixedZone("CEST", 2*60*60)

		total, err := repo.SumExpenses(s.ctx, accountID, from.In(berlin), to.In(berlin))
		s.Require().NoError(err)
		s.True(total.Equal(decimal.RequireFromString("125.50")), "got %s", total)
	})
}
