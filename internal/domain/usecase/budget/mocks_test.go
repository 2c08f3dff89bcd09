package budget

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	mcore "github.com/amirhossein-jamali/finance-ledger/mocks/port/core"
	mpersistence "github.com/amirhossein-jamali/finance-ledger/mocks/port/persistence"
)

type budgetMocks struct {
	uow      *mpersistence.MockUnitOfWork
	users    *mpersistence.MockUserRepository
	accounts *mpersistence.MockAccountRepository
	txns     *mpersistence.MockTransactionRepository
	budgets  *mpersistence.MockBudgetRepository
	clock    *mcore.MockTimeProvider
	logger   *mcore.MockLogger
}

func newBudgetMocks() *budgetMocks {
	m := &budgetMocks{
		uow:      new(mpersistence.MockUnitOfWork),
		users:    new(mpersistence.MockUserRepository),
		accounts: new(mpersistence.MockAccountRepository),
		txns:     new(mpersistence.MockTransactionRepository),
		budgets:  new(mpersistence.MockBudgetRepository),
		clock:    new(mcore.MockTimeProvider),
		logger:   new(mcore.MockLogger),
	}

	m.uow.On("Do", mock.Anything, mock.Anything).Return(func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}).Maybe()
	m.uow.On("GetUserRepository", mock.Anything).Return(m.users).Maybe()
	m.uow.On("GetAccountRepository", mock.Anything).Return(m.accounts).Maybe()
	m.uow.On("GetTransactionRepository", mock.Anything).Return(m.txns).Maybe()
	m.uow.On("GetBudgetRepository", mock.Anything).Return(m.budgets).Maybe()

	m.logger.On("Info", mock.Anything, mock.Anything).Maybe()
	m.logger.On("Error", mock.Anything, mock.Anything).Maybe()

	return m
}

func (m *budgetMocks) useCase() *BudgetUseCase {
	return NewBudgetUseCase(m.uow, m.clock, m.logger, time.UTC)
}

func amountOf(value string) any {
	expected := decimal.RequireFromString(value)
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(expected)
	})
}
