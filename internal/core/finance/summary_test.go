package finance_test

import (
	"testing"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestSummarize_EmptyRecordSet(t *testing.T) {
	got := finance.Summarize(nil, "USD", finance.RateTable{}, time.Now())
	assert.True(t, got.Overdue.IsZero())
	assert.True(t, got.DueToday.IsZero())
	assert.True(t, got.Due.IsZero())
	assert.True(t, got.Paid.IsZero())
	assert.True(t, got.Total.IsZero())
	assert.Equal(t, "USD", got.CurrencyCode)
}

func TestSummarize_BucketPrecedence(t *testing.T) {
	today := date(2024, time.June, 15)
	records := []domain.FinancialRecord{
		{RecordID: "past-pending", Amount: decimal.NewFromInt(100), CurrencyCode: "USD", DueDate: date(2024, time.June, 10), Status: domain.StatusPending},
		{RecordID: "today-pending", Amount: decimal.NewFromInt(200), CurrencyCode: "USD", DueDate: date(2024, time.June, 15), Status: domain.StatusPending},
		{RecordID: "future-pending", Amount: decimal.NewFromInt(300), CurrencyCode: "USD", DueDate: date(2024, time.June, 20), Status: domain.StatusPending},
		{RecordID: "paid-regardless-of-date", Amount: decimal.NewFromInt(400), CurrencyCode: "USD", DueDate: date(2024, time.June, 1), Status: domain.StatusPaid},
	}

	got := finance.Summarize(records, "USD", finance.RateTable{}, today)

	assert.True(t, got.Overdue.Equal(decimal.NewFromInt(100)), "overdue = %s", got.Overdue)
	assert.True(t, got.DueToday.Equal(decimal.NewFromInt(200)), "dueToday = %s", got.DueToday)
	assert.True(t, got.Due.Equal(decimal.NewFromInt(300)), "due = %s", got.Due)
	assert.True(t, got.Paid.Equal(decimal.NewFromInt(400)), "paid = %s", got.Paid)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(1000)), "total = %s", got.Total)
}

func TestSummarize_TimeOfDayDoesNotSkewBuckets(t *testing.T) {
	// A due date late tonight still counts as due today, not future.
	today := time.Date(2024, time.June, 15, 9, 30, 0, 0, time.Local)
	records := []domain.FinancialRecord{
		{Amount: decimal.NewFromInt(50), CurrencyCode: "USD", DueDate: time.Date(2024, time.June, 15, 23, 59, 0, 0, time.Local), Status: domain.StatusPending},
	}

	got := finance.Summarize(records, "USD", finance.RateTable{}, today)
	assert.True(t, got.DueToday.Equal(decimal.NewFromInt(50)))
	assert.True(t, got.Due.IsZero())
}

func TestSummarize_OverdueStatusWinsOverFutureDate(t *testing.T) {
	today := date(2024, time.June, 15)
	records := []domain.FinancialRecord{
		{Amount: decimal.NewFromInt(75), CurrencyCode: "USD", DueDate: date(2024, time.June, 30), Status: domain.StatusOverdue},
	}

	got := finance.Summarize(records, "USD", finance.RateTable{}, today)
	assert.True(t, got.Overdue.Equal(decimal.NewFromInt(75)))
	assert.True(t, got.Due.IsZero())
}

func TestSummarize_ConvertsBeforeAccumulating(t *testing.T) {
	today := date(2024, time.June, 15)
	records := []domain.FinancialRecord{
		{Amount: decimal.NewFromInt(100), CurrencyCode: "USD", DueDate: date(2024, time.June, 20), Status: domain.StatusPending},
		{Amount: decimal.NewFromInt(80000), CurrencyCode: "CLP", DueDate: date(2024, time.June, 20), Status: domain.StatusPending},
	}

	got := finance.Summarize(records, "USD", testRates(), today)
	assert.True(t, got.Due.Equal(decimal.NewFromInt(200)), "due = %s", got.Due)
}

func TestSummarize_BucketsSumToTotal(t *testing.T) {
	today := date(2024, time.June, 15)
	records := []domain.FinancialRecord{
		{Amount: decimal.NewFromFloat(10.10), CurrencyCode: "USD", DueDate: date(2024, time.June, 1), Status: domain.StatusPending},
		{Amount: decimal.NewFromFloat(20.20), CurrencyCode: "USD", DueDate: date(2024, time.June, 15), Status: domain.StatusPartial},
		{Amount: decimal.NewFromFloat(30.30), CurrencyCode: "CLP", DueDate: date(2024, time.June, 25), Status: domain.StatusPending},
		{Amount: decimal.NewFromFloat(40.40), CurrencyCode: "USD", DueDate: date(2024, time.June, 5), Status: domain.StatusReceived},
		{Amount: decimal.NewFromFloat(50.50), CurrencyCode: "BRL", DueDate: date(2024, time.June, 5), Status: domain.StatusCompleted},
	}

	got := finance.Summarize(records, "USD", testRates(), today)
	sum := got.Overdue.Add(got.DueToday).Add(got.Due).Add(got.Paid)
	assert.True(t, sum.Equal(got.Total), "buckets %s != total %s", sum, got.Total)
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, time.June, 15, 18, 45, 12, 999, time.Local)
	got := finance.StartOfDay(in)
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local), got)
}
