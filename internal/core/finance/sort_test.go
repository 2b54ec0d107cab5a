package finance_test

import (
	"testing"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_TriStateCycle(t *testing.T) {
	state := finance.SortState{}

	state = finance.Next(state, finance.FieldAmount)
	assert.Equal(t, finance.SortState{Field: finance.FieldAmount, Direction: finance.SortAsc}, state)

	state = finance.Next(state, finance.FieldAmount)
	assert.Equal(t, finance.SortState{Field: finance.FieldAmount, Direction: finance.SortDesc}, state)

	state = finance.Next(state, finance.FieldAmount)
	assert.Equal(t, finance.SortState{}, state, "third click clears field and direction")
}

func TestNext_DifferentFieldResetsToAsc(t *testing.T) {
	state := finance.SortState{Field: finance.FieldAmount, Direction: finance.SortDesc}
	state = finance.Next(state, finance.FieldDueDate)
	assert.Equal(t, finance.SortState{Field: finance.FieldDueDate, Direction: finance.SortAsc}, state)
}

func TestSortRecords_UnsortedIsPassThrough(t *testing.T) {
	records := []domain.FinancialRecord{
		{RecordID: "b", Amount: decimal.NewFromInt(2), CurrencyCode: "USD"},
		{RecordID: "a", Amount: decimal.NewFromInt(1), CurrencyCode: "USD"},
	}

	got := finance.SortRecords(records, finance.SortState{}, "USD", finance.RateTable{})
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].RecordID)
	assert.Equal(t, "a", got[1].RecordID)
}

func TestSortRecords_DoesNotMutateInput(t *testing.T) {
	records := []domain.FinancialRecord{
		{RecordID: "b", Amount: decimal.NewFromInt(2), CurrencyCode: "USD"},
		{RecordID: "a", Amount: decimal.NewFromInt(1), CurrencyCode: "USD"},
	}

	_ = finance.SortRecords(records, finance.SortState{Field: finance.FieldAmount, Direction: finance.SortAsc}, "USD", finance.RateTable{})
	assert.Equal(t, "b", records[0].RecordID, "input order must be preserved")
}

func TestSortRecords_MixedCurrencyNormalizesBeforeComparing(t *testing.T) {
	// 50000 CLP is 62.50 USD at 800 CLP per USD, so it orders before 100 USD.
	records := []domain.FinancialRecord{
		{RecordID: "usd", Amount: decimal.NewFromInt(100), CurrencyCode: "USD"},
		{RecordID: "clp", Amount: decimal.NewFromInt(50000), CurrencyCode: "CLP"},
	}

	got := finance.SortRecords(records, finance.SortState{Field: finance.FieldAmount, Direction: finance.SortAsc}, "USD", testRates())
	require.Len(t, got, 2)
	assert.Equal(t, "clp", got[0].RecordID)
	assert.Equal(t, "usd", got[1].RecordID)
}

func TestSortRecords_ByDueDate(t *testing.T) {
	records := []domain.FinancialRecord{
		{RecordID: "late", DueDate: date(2024, time.July, 1)},
		{RecordID: "early", DueDate: date(2024, time.June, 1)},
	}

	asc := finance.SortRecords(records, finance.SortState{Field: finance.FieldDueDate, Direction: finance.SortAsc}, "USD", finance.RateTable{})
	assert.Equal(t, "early", asc[0].RecordID)

	desc := finance.SortRecords(records, finance.SortState{Field: finance.FieldDueDate, Direction: finance.SortDesc}, "USD", finance.RateTable{})
	assert.Equal(t, "late", desc[0].RecordID)
}

func TestSortRecords_EmptyStringsSortFirstAscending(t *testing.T) {
	records := []domain.FinancialRecord{
		{RecordID: "named", Category: "transport"},
		{RecordID: "blank", Category: ""},
	}

	got := finance.SortRecords(records, finance.SortState{Field: finance.FieldCategory, Direction: finance.SortAsc}, "USD", finance.RateTable{})
	assert.Equal(t, "blank", got[0].RecordID)
}

func TestFilter_AllPredicatesMustPass(t *testing.T) {
	records := []domain.FinancialRecord{
		{RecordID: "1", Kind: domain.KindExpense, Status: domain.StatusPending},
		{RecordID: "2", Kind: domain.KindExpense, Status: domain.StatusPaid},
		{RecordID: "3", Kind: domain.KindReceivable, Status: domain.StatusPending},
	}

	got := finance.Filter(records, finance.ByKind(domain.KindExpense), finance.ByStatus(domain.StatusPending))
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].RecordID)
}

func TestFilter_AllIsNoOp(t *testing.T) {
	records := []domain.FinancialRecord{{RecordID: "1"}, {RecordID: "2"}}
	got := finance.Filter(records, finance.All[domain.FinancialRecord])
	assert.Len(t, got, 2)
}

func TestFilter_NotCancelled(t *testing.T) {
	records := []domain.FinancialRecord{
		{RecordID: "live", Status: domain.StatusPending},
		{RecordID: "void", Status: domain.StatusCancelled},
	}

	got := finance.Filter(records, finance.NotCancelled)
	require.Len(t, got, 1)
	assert.Equal(t, "live", got[0].RecordID)
}
