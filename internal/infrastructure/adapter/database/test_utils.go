package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/time"
)

// TestDB is a migrated in-memory SQLite database for tests
type TestDB struct {
	Manager *Manager
	DB      *gorm.DB
	Clock   *timeprovider.FixedTimeProvider
	Logger  coreport.Logger
}

// NewTestDB opens a fresh in-memory database, migrates it and closes it
// when the test ends
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	clock := timeprovider.NewFixedTimeProvider(time.Date(2024, time.July, 10, 9, 0, 0, 0, time.UTC))
	log := logger.NewNoopLogger()

	config := &Config{
		Driver:        DriverSQLite,
		SQLitePath:    ":memory:",
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}

	manager := NewManager(config, log, clock)
	db, err := manager.Connect()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDB{
		Manager: manager,
		DB:      db,
		Clock:   clock,
		Logger:  log,
	}
}

// UnitOfWork returns a unit of work over the test database
func (d *TestDB) UnitOfWork() *UnitOfWork {
	return NewUnitOfWork(d.DB, d.Logger, d.Clock)
}

// CreateTestUser inserts a user for externalID
func (d *TestDB) CreateTestUser(t *testing.T, externalID string) uuid.UUID {
	t.Helper()

	now := d.Clock.Now()
	user := model.User{
		ID:         uuid.New(),
		ExternalID: externalID,
		Email:      externalID + "@example.com",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := d.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user.ID
}

// CreateTestAccount inserts an account with the given balance
func (d *TestDB) CreateTestAccount(t *testing.T, userID uuid.UUID, balance string, isDefault bool) uuid.UUID {
	t.Helper()

	amount, err := entity.ParseSignedAmount(balance)
	if err != nil {
		t.Fatalf("Invalid test balance %q: %v", balance, err)
	}

	now := d.Clock.Now()
	account := model.Account{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "Test account",
		Type:         string(entity.AccountTypeCurrent),
		BalanceCents: entity.ToCents(amount),
		IsDefault:    isDefault,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := d.DB.Create(&account).Error; err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}
	return account.ID
}

// CreateTestTransaction inserts a transaction row without touching the
// account balance
func (d *TestDB) CreateTestTransaction(t *testing.T, userID, accountID uuid.UUID, txType entity.TransactionType, amount string, date time.Time) uuid.UUID {
	t.Helper()

	value, err := entity.ParseAmount(amount)
	if err != nil {
		t.Fatalf("Invalid test amount %q: %v", amount, err)
	}

	now := d.Clock.Now()
	txn := model.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   accountID,
		Type:        string(txType),
		AmountCents: entity.ToCents(value),
		Date:        date.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := d.DB.Create(&txn).Error; err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}
	return txn.ID
}

// CreateTestBudget inserts a budget row
func (d *TestDB) CreateTestBudget(t *testing.T, userID uuid.UUID, accountID *uuid.UUID, amount string, isGlobal bool) uuid.UUID {
	t.Helper()

	value, err := entity.ParseAmount(amount)
	if err != nil {
		t.Fatalf("Invalid test amount %q: %v", amount, err)
	}

	now := d.Clock.Now()
	budget := model.Budget{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   accountID,
		AmountCents: entity.ToCents(value),
		IsGlobal:    isGlobal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := d.DB.Create(&budget).Error; err != nil {
		t.Fatalf("Failed to create test budget: %v", err)
	}
	return budget.ID
}

// BalanceCents reads an account balance directly
func (d *TestDB) BalanceCents(t *testing.T, accountID uuid.UUID) int64 {
	t.Helper()

	var account model.Account
	if err := d.DB.Where("id = ?", accountID).First(&account).Error; err != nil {
		t.Fatalf("Failed to load account: %v", err)
	}
	return account.BalanceCents
}

// CountTransactions counts stored transactions of an account
func (d *TestDB) CountTransactions(t *testing.T, accountID uuid.UUID) int64 {
	t.Helper()

	var count int64
	if err := d.DB.Model(&model.Transaction{}).Where("account_id = ?", accountID).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count transactions: %v", err)
	}
	return count
}

// SignedSumCents totals the stored transactions of an account, incomes
// positive and expenses negative
func (d *TestDB) SignedSumCents(t *testing.T, accountID uuid.UUID) int64 {
	t.Helper()

	var sum int64
	err := d.DB.Model(&model.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN amount_cents ELSE -amount_cents END), 0)", string(entity.TransactionTypeIncome)).
		Where("account_id = ?", accountID).
		Scan(&sum).Error
	if err != nil {
		t.Fatalf("Failed to sum transactions: %v", err)
	}
	return sum
}
