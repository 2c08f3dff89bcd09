package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
)

func TestNewTransaction(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	base := NewTransactionParams{
		UserID:    uuid.New(),
		AccountID: uuid.New(),
		Type:      "expense",
		Amount:    "50.00",
		Category:  " groceries ",
		Date:      time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC),
	}

	t.Run("should build a one-off expense", func(t *testing.T) {
		txn, err := NewTransaction(base, now)

		require.NoError(t, err)
		assert.Equal(t, TransactionTypeExpense, txn.Type)
		assert.Equal(t, "groceries", txn.Category)
		assert.False(t, txn.IsRecurring)
		assert.Nil(t, txn.NextRecurringDate)
		assert.Equal(t, "-50.00", FormatAmount(txn.SignedAmount()))
		assert.Equal(t, "50.00", FormatAmount(txn.ReversalDelta()))
	})

	t.Run("should default the date to now", func(t *testing.T) {
		params := base
		params.Date = time.Time{}

		txn, err := NewTransaction(params, now)

		require.NoError(t, err)
		assert.Equal(t, now, txn.Date)
	})

	t.Run("income contributes positively and reverses negatively", func(t *testing.T) {
		params := base
		params.Type = "INCOME"
		params.Amount = "200"

		txn, err := NewTransaction(params, now)

		require.NoError(t, err)
		assert.Equal(t, "200.00", FormatAmount(txn.SignedAmount()))
		assert.Equal(t, "-200.00", FormatAmount(txn.ReversalDelta()))
	})

	t.Run("should compute next recurring date", func(t *testing.T) {
		params := base
		params.IsRecurring = true
		params.RecurringInterval = "monthly"

		txn, err := NewTransaction(params, now)

		require.NoError(t, err)
		require.NotNil(t, txn.NextRecurringDate)
		assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), *txn.NextRecurringDate)
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(p *NewTransactionParams)
			err    error
		}{
			{"missing user", func(p *NewTransactionParams) { p.UserID = uuid.Nil }, errs.ErrUnauthorized},
			{"missing account", func(p *NewTransactionParams) { p.AccountID = uuid.Nil }, errs.ErrAccountNotFound},
			{"bad type", func(p *NewTransactionParams) { p.Type = "TRANSFER" }, errs.ErrInvalidRequest},
			{"zero amount", func(p *NewTransactionParams) { p.Amount = "0" }, errs.ErrInvalidAmount},
			{"negative amount", func(p *NewTransactionParams) { p.Amount = "-3" }, errs.ErrInvalidAmount},
			{"bad interval", func(p *NewTransactionParams) {
				p.IsRecurring = true
				p.RecurringInterval = "HOURLY"
			}, errs.ErrInvalidRequest},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				params := base
				tc.mutate(&params)

				txn, err := NewTransaction(params, now)

				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, txn)
			})
		}
	})
}

func TestRecurringIntervalNext(t *testing.T) {
	from := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC), IntervalDaily.Next(from))
	assert.Equal(t, time.Date(2024, 1, 22, 8, 0, 0, 0, time.UTC), IntervalWeekly.Next(from))
	assert.Equal(t, time.Date(2024, 2, 15, 8, 0, 0, 0, time.UTC), IntervalMonthly.Next(from))
	assert.Equal(t, time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC), IntervalYearly.Next(from))
}
