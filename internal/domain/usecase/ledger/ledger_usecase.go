package ledger

import (
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/persistence"
)

// LedgerUseCase keeps account balances in step with the transactions posted
// against them. All writes run inside one unit of work per call.
type LedgerUseCase struct {
	uow          persistence.UnitOfWork
	validator    *TransactionValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase
func NewLedgerUseCase(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		uow:          uow,
		validator:    NewTransactionValidator(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}
