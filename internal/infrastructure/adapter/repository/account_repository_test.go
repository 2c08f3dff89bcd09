package repository_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/repository"
)

func (s *RepositorySuite) TestAccountRepository_IncrementBalance() {
	repo := repository.NewAccountRepository(s.db.DB, s.db.Clock, s.db.Logger)
	userID := s.db.CreateTestUser(s.T(), "alice")
	accountID := s.db.CreateTestAccount(s.T(), userID, "1000.00", true)

	s.Run("should apply signed deltas relative to the stored balance", func() {
		// Act
		s.Require().NoError(repo.IncrementBalance(s.ctx, accountID, decimal.RequireFromString("50.00")))
		s.Require().NoError(repo.IncrementBalance(s.ctx, accountID, decimal.RequireFromString("-200.25")))

		// Assert
		s.Equal(int64(84975), s.db.BalanceCents(s.T(), accountID))
	})

	s.Run("should report a missing account", func() {
		err := repo.IncrementBalance(s.ctx, uuid.New(), decimal.NewFromInt(1))
		s.ErrorIs(err, errs.ErrAccountNotFound)
	})
}

func (s *RepositorySuite) TestAccountRepository_Ownership() {
	repo := repository.NewAccountRepository(s.db.DB, s.db.Clock, s.db.Logger)
	alice := s.db.CreateTestUser(s.T(), "alice")
	bob := s.db.CreateTestUser(s.T(), "bob")
	accountID := s.db.CreateTestAccount(s.T(), alice, "10.00", false)

	s.Run("should load an account for its owner", func() {
		account, err := repo.GetByIDForUser(s.ctx, alice, accountID)
		s.Require().NoError(err)
		s.True(account.Balance.Equal(decimal.RequireFromString("10.00")))
	})

	s.Run("should hide an account from other users", func() {
		_, err := repo.GetByIDForUser(s.ctx, bob, accountID)
		s.ErrorIs(err, errs.ErrAccountNotFound)

		err = repo.SetDefault(s.ctx, bob, accountID)
		s.ErrorIs(err, errs.ErrAccountNotFound)
	})
}

func (s *RepositorySuite) TestAccountRepository_Default() {
	repo := repository.NewAccountRepository(s.db.DB, s.db.Clock, s.db.Logger)
	userID := s.db.CreateTestUser(s.T(), "alice")

	s.Run("should return nil when no default is set", func() {
		account, err := repo.GetDefault(s.ctx, userID)
		s.Require().NoError(err)
		s.Nil(account)
	})

	first := s.db.CreateTestAccount(s.T(), userID, "0", true)
	second := s.db.CreateTestAccount(s.T(), userID, "0", false)

	s.Run("should move the default flag", func() {
		// Act
		s.Require().NoError(repo.ClearDefault(s.ctx, userID))
		s.Require().NoError(repo.SetDefault(s.ctx, userID, second))

		// Assert
		account, err := repo.GetDefault(s.ctx, userID)
		s.Require().NoError(err)
		s.Equal(second, account.ID)

		previous, err := repo.GetByIDForUser(s.ctx, userID, first)
		s.Require().NoError(err)
		s.False(previous.IsDefault)
	})

	s.Run("should refuse a second default account", func() {
		err := repo.SetDefault(s.ctx, userID, first)
		s.ErrorIs(err, errs.ErrConstraintViolation)
	})
}

func (s *RepositorySuite) TestAccountRepository_ListByUser() {
	repo := repository.NewAccountRepository(s.db.DB, s.db.Clock, s.db.Logger)
	userID := s.db.CreateTestUser(s.T(), "alice")
	other := s.db.CreateTestUser(s.T(), "bob")

	older := s.db.CreateTestAccount(s.T(), userID, "0", true)
	s.db.Clock.Advance(time.Minute)
	newer := s.db.CreateTestAccount(s.T(), userID, "0", false)
	s.db.CreateTestAccount(s.T(), other, "0", true)

	date := s.db.Clock.Now()
	s.db.CreateTestTransaction(s.T(), userID, older, entity.TransactionTypeExpense, "5.00", date)
	s.db.CreateTestTransaction(s.T(), userID, older, entity.TransactionTypeIncome, "7.00", date)

	// Act
	accounts, err := repo.ListByUser(s.ctx, userID)

	// Assert
	s.Require().NoError(err)
	s.Require().Len(accounts, 2)
	s.Equal(newer, accounts[0].ID)
	s.Equal(int64(0), accounts[0].TransactionCount)
	s.Equal(older, accounts[1].ID)
	s.Equal(int64(2), accounts[1].TransactionCount)

	count, err := repo.CountByUser(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *RepositorySuite) TestAccountRepository_Create() {
	repo := repository.NewAccountRepository(s.db.DB, s.db.Clock, s.db.Logger)
	userID := s.db.CreateTestUser(s.T(), "alice")

	// Arrange
	account, err := entity.NewAccount(userID, "Savings", "SAVINGS", "-12.50", false, s.db.Clock.Now())
	s.Require().NoError(err)

	// Act
	err = repo.Create(s.ctx, account)

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(-1250), s.db.BalanceCents(s.T(), account.ID))
}
