package repository_test

import (
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/repository"
)

func (s *RepositorySuite) TestUserRepository() {
	repo := repository.NewUserRepository(s.db.DB, s.db.Logger)

	s.Run("should create and resolve a user by external id", func() {
		// Arrange
		user, err := entity.NewUser("auth0|alice", "alice@example.com", "Alice", s.db.Clock.Now())
		s.Require().NoError(err)

		// Act
		s.Require().NoError(repo.Create(s.ctx, user))
		found, err := repo.GetByExternalID(s.ctx, "auth0|alice")

		// Assert
		s.Require().NoError(err)
		s.Equal(user.ID, found.ID)
		s.Equal("alice@example.com", found.Email)

		byID, err := repo.GetByID(s.ctx, user.ID)
		s.Require().NoError(err)
		s.Equal("auth0|alice", byID.ExternalID)
	})

	s.Run("should reject a second user for the same identity", func() {
		// Arrange
		user, err := entity.NewUser("auth0|dup", "dup@example.com", "Dup", s.db.Clock.Now())
		s.Require().NoError(err)
		s.Require().NoError(repo.Create(s.ctx, user))
		again, err := entity.NewUser("auth0|dup", "dup@example.com", "Dup", s.db.Clock.Now())
		s.Require().NoError(err)

		// Act
		err = repo.Create(s.ctx, again)

		// Assert
		s.ErrorIs(err, errs.ErrDuplicateUser)
	})

	s.Run("should report unknown users as not found", func() {
		_, err := repo.GetByID(s.ctx, uuid.New())
		s.ErrorIs(err, errs.ErrUserNotFound)

		_, err = repo.GetByExternalID(s.ctx, "nobody")
		s.ErrorIs(err, errs.ErrUserNotFound)
	})
}
