package finance

import (
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StartOfDay normalizes a time to midnight (00:00:00.000) in its own location.
// All due-date bucketing compares dates this way so time-of-day never skews a
// record into the wrong bucket.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Summarize buckets a record set by status and due date, converting every
// amount into targetCurrency first. Precedence is ordered: settled, then
// overdue, then due today, then due in the future; a record lands in exactly
// one bucket and always in Total. An empty record set yields all-zero buckets.
//
// Conversion falls back to the raw amount when a rate is missing (see
// ConvertOrSame); the result is order-independent so callers may re-invoke it
// on any change to records, currency, or rates without caching concerns.
func Summarize(records []domain.FinancialRecord, targetCurrency string, rates RateTable, today time.Time) domain.FinancialSummary {
	summary := domain.FinancialSummary{
		Overdue:      decimal.Zero,
		DueToday:     decimal.Zero,
		Due:          decimal.Zero,
		Paid:         decimal.Zero,
		Total:        decimal.Zero,
		CurrencyCode: targetCurrency,
	}

	todayMidnight := StartOfDay(today)

	for _, r := range records {
		amount := ConvertOrSame(r.Amount, r.CurrencyCode, targetCurrency, rates)
		summary.Total = summary.Total.Add(amount)

		dueMidnight := StartOfDay(r.DueDate)
		switch {
		case r.IsSettled():
			summary.Paid = summary.Paid.Add(amount)
		case r.Status == domain.StatusOverdue || dueMidnight.Before(todayMidnight):
			summary.Overdue = summary.Overdue.Add(amount)
		case dueMidnight.Equal(todayMidnight):
			summary.DueToday = summary.DueToday.Add(amount)
		default:
			summary.Due = summary.Due.Add(amount)
		}
	}

	return summary
}
