package entity

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

var (
	hundred = decimal.NewFromInt(100)

	// maxCents is the largest magnitude a stored cents column can hold
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

// ParseAmount validates a strictly positive money string such as "10", "10.5" or "10.50"
func ParseAmount(amount string) (decimal.Decimal, error) {
	value, err := ParseSignedAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}
	if !value.IsPositive() {
		return decimal.Zero, errs.NewAmountError(amount, "must be greater than zero")
	}
	return value, nil
}

// ParseSignedAmount validates a money string that may be negative or zero,
// used for opening balances
func ParseSignedAmount(amount string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(amount)
	if trimmed == "" {
		return decimal.Zero, errs.NewAmountError(amount, "empty value")
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, errs.NewAmountError(amount, "not a number")
	}

	if strings.ContainsAny(trimmed, "eE") {
		return decimal.Zero, errs.NewAmountError(amount, "exponent notation is not allowed")
	}
	if -value.Exponent() > MaxDecimalPlaces && !value.Equal(value.Truncate(MaxDecimalPlaces)) {
		return decimal.Zero, errs.NewAmountError(amount, "maximum 2 decimal places allowed")
	}

	value = value.Truncate(MaxDecimalPlaces)
	if !fitsInCents(value) {
		return decimal.Zero, errs.NewAmountError(amount, "amount too large")
	}
	return value, nil
}

// ValidateAmount checks a decimal that did not come from a string
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewAmountError(amount.String(), "must be greater than zero")
	}
	if !amount.Equal(amount.Truncate(MaxDecimalPlaces)) {
		return errs.NewAmountError(amount.String(), "maximum 2 decimal places allowed")
	}
	if !fitsInCents(amount) {
		return errs.NewAmountError(amount.String(), "amount too large")
	}
	return nil
}

func fitsInCents(amount decimal.Decimal) bool {
	return amount.Mul(hundred).Abs().LessThanOrEqual(maxCents)
}

// ToCents converts a two-place decimal to integer cents for storage
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromCents converts stored integer cents back to a decimal
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -MaxDecimalPlaces)
}

// FormatAmount renders an amount with exactly two decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}
