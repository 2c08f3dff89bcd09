package budget

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
)

func TestBudgetUseCase_SetBudgetAmount(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()
	accountA := uuid.New()
	caller := &entity.User{ID: userID}
	account := &entity.Account{ID: accountA, UserID: userID}

	t.Run("should update the global budget when one exists", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()
		global := &entity.Budget{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(500), IsGlobal: true}

		m.clock.On("Now").Return(now)
		m.users.On("GetByID", ctx, userID).Return(caller, nil)
		m.accounts.On("GetByIDForUser", ctx, userID, accountA).Return(account, nil)
		m.budgets.On("FindGlobal", ctx, userID).Return(global, nil)
		m.budgets.On("UpdateAmount", ctx, global.ID, amountOf("750.50")).Return(nil)

		// Act
		saved, err := m.useCase().SetBudgetAmount(ctx, userID, accountA, "750.50")

		// Assert
		require.NoError(t, err)
		assert.True(t, saved.IsGlobal)
		assert.Equal(t, "750.50", entity.FormatAmount(saved.Amount))
		m.budgets.AssertNotCalled(t, "UpsertForAccount", mock.Anything, mock.Anything)
	})

	t.Run("should upsert the per-account budget otherwise", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()
		stored := &entity.Budget{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(200), AccountID: &accountA}

		m.clock.On("Now").Return(now)
		m.users.On("GetByID", ctx, userID).Return(caller, nil)
		m.accounts.On("GetByIDForUser", ctx, userID, accountA).Return(account, nil)
		m.budgets.On("FindGlobal", ctx, userID).Return(nil, nil)
		m.budgets.On("UpsertForAccount", ctx, mock.MatchedBy(func(b *entity.Budget) bool {
			return !b.IsGlobal && *b.AccountID == accountA && b.Amount.Equal(decimal.NewFromInt(200))
		})).Return(stored, nil)

		// Act
		saved, err := m.useCase().SetBudgetAmount(ctx, userID, accountA, "200")

		// Assert
		require.NoError(t, err)
		assert.Same(t, stored, saved)
		m.budgets.AssertExpectations(t)
	})

	t.Run("should reject a non-positive amount", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()

		// Act
		saved, err := m.useCase().SetBudgetAmount(ctx, userID, accountA, "0")

		// Assert
		assert.Nil(t, saved)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		m.uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
	})

	t.Run("should reject a non-numeric amount", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()

		// Act
		_, err := m.useCase().SetBudgetAmount(ctx, userID, accountA, "lots")

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestBudgetUseCase_SetGlobalFlag(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()
	caller := &entity.User{ID: userID}

	t.Run("should clear other globals before promoting the target", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()
		accountB := uuid.New()
		b2 := &entity.Budget{ID: uuid.New(), UserID: userID, AccountID: &accountB}
		var calls []string

		m.clock.On("Now").Return(now)
		m.users.On("GetByID", ctx, userID).Return(caller, nil)
		m.budgets.On("GetByIDForUser", ctx, userID, b2.ID).Return(b2, nil)
		m.budgets.On("ClearGlobal", ctx, userID, b2.ID).Return(nil).Run(func(mock.Arguments) {
			calls = append(calls, "clear")
		})
		m.budgets.On("SetGlobal", ctx, userID, b2.ID, true).Return(nil).Run(func(mock.Arguments) {
			calls = append(calls, "set")
		})

		// Act
		saved, tag, err := m.useCase().SetGlobalFlag(ctx, userID, b2.ID, true)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.TagGlobal, tag)
		assert.True(t, saved.IsGlobal)
		assert.Equal(t, []string{"clear", "set"}, calls)
	})

	t.Run("should return not found for a budget of another user", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()
		budgetID := uuid.New()

		m.clock.On("Now").Return(now)
		m.users.On("GetByID", ctx, userID).Return(caller, nil)
		m.budgets.On("GetByIDForUser", ctx, userID, budgetID).Return(nil, errs.ErrBudgetNotFound)

		// Act
		_, _, err := m.useCase().SetGlobalFlag(ctx, userID, budgetID, true)

		// Assert
		assert.ErrorIs(t, err, errs.ErrBudgetNotFound)
		m.budgets.AssertNotCalled(t, "ClearGlobal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should demote the current global budget regardless of the id given", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()
		accountA := uuid.New()
		global := &entity.Budget{ID: uuid.New(), UserID: userID, IsGlobal: true, AccountID: &accountA}

		m.clock.On("Now").Return(now)
		m.users.On("GetByID", ctx, userID).Return(caller, nil)
		m.budgets.On("FindGlobal", ctx, userID).Return(global, nil)
		m.budgets.On("SetGlobal", ctx, userID, global.ID, false).Return(nil)

		// Act
		saved, tag, err := m.useCase().SetGlobalFlag(ctx, userID, uuid.New(), false)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.TagNotGlobal, tag)
		assert.Equal(t, global.ID, saved.ID)
		assert.False(t, saved.IsGlobal)
	})

	t.Run("should return invalid state when unsetting without a global budget", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()

		m.clock.On("Now").Return(now)
		m.users.On("GetByID", ctx, userID).Return(caller, nil)
		m.budgets.On("FindGlobal", ctx, userID).Return(nil, nil)

		// Act
		saved, tag, err := m.useCase().SetGlobalFlag(ctx, userID, uuid.New(), false)

		// Assert
		assert.Nil(t, saved)
		assert.Empty(t, tag)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "No global budget is set", errs.Message(err))
		m.budgets.AssertNotCalled(t, "SetGlobal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
