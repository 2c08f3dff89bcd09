package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
)

func TestNewAccount(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("creates account with opening balance", func(t *testing.T) {
		account, err := NewAccount(userID, "Checking", "current", "1000", false, now)

		require.NoError(t, err)
		assert.Equal(t, AccountTypeCurrent, account.Type)
		assert.Equal(t, "1000.00", FormatAmount(account.Balance))
		assert.False(t, account.IsDefault)
	})

	t.Run("allows negative opening balance", func(t *testing.T) {
		account, err := NewAccount(userID, "Card", "SAVINGS", "-12.30", true, now)

		require.NoError(t, err)
		assert.Equal(t, "-12.30", FormatAmount(account.Balance))
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := NewAccount(uuid.Nil, "Checking", "CURRENT", "0", false, now)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)

		_, err = NewAccount(userID, " ", "CURRENT", "0", false, now)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = NewAccount(userID, "Checking", "BROKERAGE", "0", false, now)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = NewAccount(userID, "Checking", "CURRENT", "1.234", false, now)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}
