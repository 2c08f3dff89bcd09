package ledger

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	mcore "github.com/amirhossein-jamali/finance-ledger/mocks/port/core"
	mpersistence "github.com/amirhossein-jamali/finance-ledger/mocks/port/persistence"
)

type ledgerMocks struct {
	uow      *mpersistence.MockUnitOfWork
	users    *mpersistence.MockUserRepository
	accounts *mpersistence.MockAccountRepository
	txns     *mpersistence.MockTransactionRepository
	clock    *mcore.MockTimeProvider
	logger   *mcore.MockLogger
}

// newLedgerMocks wires a unit of work that runs its callback inline
func newLedgerMocks() *ledgerMocks {
	m := &ledgerMocks{
		uow:      new(mpersistence.MockUnitOfWork),
		users:    new(mpersistence.MockUserRepository),
		accounts: new(mpersistence.MockAccountRepository),
		txns:     new(mpersistence.MockTransactionRepository),
		clock:    new(mcore.MockTimeProvider),
		logger:   new(mcore.MockLogger),
	}

	m.uow.On("Do", mock.Anything, mock.Anything).Return(func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}).Maybe()
	m.uow.On("GetUserRepository", mock.Anything).Return(m.users).Maybe()
	m.uow.On("GetAccountRepository", mock.Anything).Return(m.accounts).Maybe()
	m.uow.On("GetTransactionRepository", mock.Anything).Return(m.txns).Maybe()

	m.logger.On("Info", mock.Anything, mock.Anything).Maybe()
	m.logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	m.logger.On("Error", mock.Anything, mock.Anything).Maybe()

	return m
}

func (m *ledgerMocks) useCase() *LedgerUseCase {
	return NewLedgerUseCase(m.uow, m.clock, m.logger)
}

// amountOf matches a decimal by value rather than by representation
func amountOf(value string) any {
	expected := decimal.RequireFromString(value)
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(expected)
	})
}
