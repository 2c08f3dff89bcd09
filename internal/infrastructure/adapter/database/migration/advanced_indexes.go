package migration

import (
	"context"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
)

// AdvancedIndexManager manages indexes that gorm tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

// CreateInvariantIndexes creates the partial unique indexes that hold the
// one-global-budget and one-default-account rules. Both dialects accept them.
func (m *AdvancedIndexManager) CreateInvariantIndexes(ctx context.Context) error {
	return m.exec(ctx, []indexStatement{
		{
			name: "idx_budgets_single_global",
			sql:  "CREATE UNIQUE INDEX IF NOT EXISTS idx_budgets_single_global ON budgets (user_id) WHERE is_global",
		},
		{
			name: "idx_accounts_single_default",
			sql:  "CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_single_default ON accounts (user_id) WHERE is_default",
		},
	})
}

// CreateAdvancedIndexes creates PostgreSQL-only indexes for the hot queries
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	err := m.exec(ctx, []indexStatement{
		{
			// Monthly expense totals for the alert pass
			name: "idx_transactions_expenses",
			sql: `CREATE INDEX IF NOT EXISTS idx_transactions_expenses
				ON transactions (account_id, date)
				WHERE type = 'EXPENSE'`,
		},
		{
			name: "idx_transactions_date_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_transactions_date_brin
				ON transactions USING BRIN (date)
				WITH (pages_per_range = 32)`,
		},
	})
	if err != nil {
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage tweaks. Failures are
// logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	if err := m.db.WithContext(ctx).Exec("ALTER TABLE accounts SET (fillfactor = 90)").Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for accounts table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec("ALTER TABLE transactions ALTER COLUMN account_id SET STATISTICS 1000").Error; err != nil {
		m.logger.Warn("Failed to set statistics target for account_id", map[string]any{
			"error": err.Error(),
		})
	}
}

func (m *AdvancedIndexManager) exec(ctx context.Context, statements []indexStatement) error {
	for _, stmt := range statements {
		if err := m.db.WithContext(ctx).Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}
	return nil
}
