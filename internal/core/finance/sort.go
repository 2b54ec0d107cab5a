package finance

import (
	"sort"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortDirection is the per-column sort indicator.
type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortField names a sortable column of the record tables.
type SortField string

const (
	FieldAmount      SortField = "amount"
	FieldDueDate     SortField = "dueDate"
	FieldStatus      SortField = "status"
	FieldCategory    SortField = "category"
	FieldDescription SortField = "description"
	FieldCurrency    SortField = "currency"
)

// SortState is the explicit finite-state machine behind a table's sort
// indicator: {Unsorted, Asc(field), Desc(field)}.
type SortState struct {
	Field     SortField     `json:"field,omitempty"`
	Direction SortDirection `json:"direction,omitempty"`
}

// Next is the single transition function of the tri-state cycle. Clicking the
// currently unsorted field sorts ascending; clicking the ascending field flips
// to descending; clicking the descending field clears both field and
// direction. Clicking a different field always restarts at ascending.
func Next(state SortState, clicked SortField) SortState {
	if state.Field != clicked {
		return SortState{Field: clicked, Direction: SortAsc}
	}
	switch state.Direction {
	case SortAsc:
		return SortState{Field: clicked, Direction: SortDesc}
	case SortDesc:
		return SortState{}
	default:
		return SortState{Field: clicked, Direction: SortAsc}
	}
}

// collator compares strings with locale semantics, matching how the tables
// order names and categories.
var collator = collate.New(language.Und)

// SortRecords orders records by the state's field and direction, returning a
// new slice and never mutating the input. An unsorted state is a pass-through:
// the input slice is returned as-is, order and references preserved.
//
// Amount comparisons are currency-correct: each amount is first converted into
// targetCurrency (falling back to the raw value when a rate is missing), so
// mixed-currency sets order by real value rather than by stored magnitude.
// Dates compare by timestamp; strings compare by collation with empty values
// first in ascending order.
func SortRecords(records []domain.FinancialRecord, state SortState, targetCurrency string, rates RateTable) []domain.FinancialRecord {
	if state.Direction == SortNone || state.Field == "" {
		return records
	}

	sorted := make([]domain.FinancialRecord, len(records))
	copy(sorted, records)

	less := lessFunc(state.Field, targetCurrency, rates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if state.Direction == SortDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func lessFunc(field SortField, targetCurrency string, rates RateTable) func(a, b domain.FinancialRecord) bool {
	switch field {
	case FieldAmount:
		return func(a, b domain.FinancialRecord) bool {
			av := ConvertOrSame(a.Amount, a.CurrencyCode, targetCurrency, rates)
			bv := ConvertOrSame(b.Amount, b.CurrencyCode, targetCurrency, rates)
			return av.LessThan(bv)
		}
	case FieldDueDate:
		return func(a, b domain.FinancialRecord) bool {
			return a.DueDate.Before(b.DueDate)
		}
	case FieldStatus:
		return stringLess(func(r domain.FinancialRecord) string { return string(r.Status) })
	case FieldCategory:
		return stringLess(func(r domain.FinancialRecord) string { return r.Category })
	case FieldCurrency:
		return stringLess(func(r domain.FinancialRecord) string { return r.CurrencyCode })
	default:
		return stringLess(func(r domain.FinancialRecord) string { return r.Description })
	}
}

// stringLess builds a comparator over a string projection. Missing values
// compare as the empty string, which sorts first ascending.
func stringLess(get func(domain.FinancialRecord) string) func(a, b domain.FinancialRecord) bool {
	return func(a, b domain.FinancialRecord) bool {
		return collator.CompareString(get(a), get(b)) < 0
	}
}
