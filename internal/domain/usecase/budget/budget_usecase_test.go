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

func TestBudgetUseCase_ResolveBudget(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountA := uuid.New()
	caller := &entity.User{ID: userID}
	account := &entity.Account{ID: accountA, UserID: userID}

	t.Run("should prefer the global budget over the per-account one", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()
		global := &entity.Budget{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(500), IsGlobal: true}

		m.users.On("GetByID", ctx, userID).Return(caller, nil)
		m.accounts.On("GetByIDForUser", ctx, userID, accountA).Return(account, nil)
		m.budgets.On("FindGlobal", ctx, userID).Return(global, nil)

		// Act
		resolved, err := m.useCase().ResolveBudget(ctx, userID, accountA)

		// Assert
		require.NoError(t, err)
		assert.Same(t, global, resolved.Budget)
		assert.Equal(t, accountA, resolved.ExpenseAccountID)
		m.budgets.AssertNotCalled(t, "FindForAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should use the bound account of a global budget for expenses", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()
		bound := uuid.New()
		global := &entity.Budget{ID: uuid.New(), UserID: userID, IsGlobal: true, AccountID: &bound}

		m.users.On("GetByID", ctx, userID).Return(caller, nil)
		m.accounts.On("GetByIDForUser", ctx, userID, accountA).Return(account, nil)
		m.budgets.On("FindGlobal", ctx, userID).Return(global, nil)

		// Act
		resolved, err := m.useCase().ResolveBudget(ctx, userID, accountA)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, bound, resolved.ExpenseAccountID)
	})

	t.Run("should fall back to the per-account budget", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()
		perAccount := &entity.Budget{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(200), AccountID: &accountA}

		m.users.On("GetByID", ctx, userID).Return(caller, nil)
		m.accounts.On("GetByIDForUser", ctx, userID, accountA).Return(account, nil)
		m.budgets.On("FindGlobal", ctx, userID).Return(nil, nil)
		m.budgets.On("FindForAccount", ctx, userID, accountA).Return(perAccount, nil)

		// Act
		resolved, err := m.useCase().ResolveBudget(ctx, userID, accountA)

		// Assert
		require.NoError(t, err)
		assert.Same(t, perAccount, resolved.Budget)
	})

	t.Run("should resolve to none when no budget applies", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()
		m.users.On("GetByID", ctx, userID).Return(caller, nil)
		m.accounts.On("GetByIDForUser", ctx, userID, accountA).Return(account, nil)
		m.budgets.On("FindGlobal", ctx, userID).Return(nil, nil)
		m.budgets.On("FindForAccount", ctx, userID, accountA).Return(nil, nil)

		// Act
		resolved, err := m.useCase().ResolveBudget(ctx, userID, accountA)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, resolved.Budget)
	})

	t.Run("should return not found for an account of another user", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()
		m.users.On("GetByID", ctx, userID).Return(caller, nil)
		m.accounts.On("GetByIDForUser", ctx, userID, accountA).Return(nil, errs.ErrAccountNotFound)

		// Act
		resolved, err := m.useCase().ResolveBudget(ctx, userID, accountA)

		// Assert
		assert.Nil(t, resolved)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
		m.budgets.AssertNotCalled(t, "FindGlobal", mock.Anything, mock.Anything)
	})

	t.Run("should return unauthorized without a caller", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()

		// Act
		_, err := m.useCase().ResolveBudget(ctx, uuid.Nil, accountA)

		// Assert
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestBudgetUseCase_GetBudgetProgress(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountA := uuid.New()
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("should total the current calendar month", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()
		budget := &entity.Budget{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(400), AccountID: &accountA}
		monthStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		monthEnd := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

		m.clock.On("Now").Return(now)
		m.users.On("GetByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
		m.accounts.On("GetByIDForUser", ctx, userID, accountA).Return(&entity.Account{ID: accountA}, nil)
		m.budgets.On("FindGlobal", ctx, userID).Return(nil, nil)
		m.budgets.On("FindForAccount", ctx, userID, accountA).Return(budget, nil)
		m.txns.On("SumExpenses", ctx, accountA, monthStart, monthEnd).Return(decimal.NewFromInt(100), nil)

		// Act
		progress, err := m.useCase().GetBudgetProgress(ctx, userID, accountA)

		// Assert
		require.NoError(t, err)
		assert.True(t, progress.CurrentExpenses.Equal(decimal.NewFromInt(100)))
		assert.True(t, progress.PercentageUsed.Equal(decimal.NewFromInt(25)))
		m.txns.AssertExpectations(t)
	})

	t.Run("should report zero usage when no budget applies", func(t *testing.T) {
		// Arrange
		m := newBudgetMocks()
		m.clock.On("Now").Return(now)
		m.users.On("GetByID", ctx, userID).Return(&entity.User{ID: userID}, nil)
		m.accounts.On("GetByIDForUser", ctx, userID, accountA).Return(&entity.Account{ID: accountA}, nil)
		m.budgets.On("FindGlobal", ctx, userID).Return(nil, nil)
		m.budgets.On("FindForAccount", ctx, userID, accountA).Return(nil, nil)
		m.txns.On("SumExpenses", ctx, accountA, mock.Anything, mock.Anything).Return(decimal.NewFromInt(75), nil)

		// Act
		progress, err := m.useCase().GetBudgetProgress(ctx, userID, accountA)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, progress.Budget)
		assert.True(t, progress.PercentageUsed.IsZero())
	})
}
