package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
)

// RecurringInterval is how often a recurring transaction repeats
type RecurringInterval string

// Recurrence intervals
const (
	IntervalDaily   RecurringInterval = "DAILY"
	IntervalWeekly  RecurringInterval = "WEEKLY"
	IntervalMonthly RecurringInterval = "MONTHLY"
	IntervalYearly  RecurringInterval = "YEARLY"
)

// ParseRecurringInterval validates an interval string
func ParseRecurringInterval(value string) (RecurringInterval, error) {
	interval := RecurringInterval(strings.ToUpper(strings.TrimSpace(value)))
	switch interval {
	case IntervalDaily, IntervalWeekly, IntervalMonthly, IntervalYearly:
		return interval, nil
	default:
		return "", fmt.Errorf("%w: unknown recurring interval %q", errs.ErrInvalidRequest, value)
	}
}

// Next returns the occurrence following from.
// Month arithmetic follows time.AddDate, so Jan 31 + 1 month lands on Mar 3 (or Mar 2).
func (i RecurringInterval) Next(from time.Time) time.Time {
	switch i {
	case IntervalDaily:
		return from.AddDate(0, 0, 1)
	case IntervalWeekly:
		return from.AddDate(0, 0, 7)
	case IntervalMonthly:
		return from.AddDate(0, 1, 0)
	case IntervalYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from
	}
}
