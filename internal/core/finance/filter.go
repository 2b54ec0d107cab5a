package finance

import "github.com/rutasur/tour_backoffice_app/internal/core/domain"

// Predicate reports whether an item passes one filter control.
type Predicate[T any] func(T) bool

// Filter returns the items satisfying every predicate. The engine has no
// special cases: an "all"-valued filter control is simply the All predicate.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, p := range preds {
			if !p(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// All is the no-op predicate backing "all" filter controls.
func All[T any](T) bool { return true }

// ByStatus keeps records with the given status.
func ByStatus(status domain.RecordStatus) Predicate[domain.FinancialRecord] {
	return func(r domain.FinancialRecord) bool { return r.Status == status }
}

// ByKind keeps records of the given kind.
func ByKind(kind domain.RecordKind) Predicate[domain.FinancialRecord] {
	return func(r domain.FinancialRecord) bool { return r.Kind == kind }
}

// ByCategory keeps records with the given category.
func ByCategory(category string) Predicate[domain.FinancialRecord] {
	return func(r domain.FinancialRecord) bool { return r.Category == category }
}

// ByDirection keeps records flowing the given way.
func ByDirection(direction domain.Direction) Predicate[domain.FinancialRecord] {
	return func(r domain.FinancialRecord) bool { return r.Direction == direction }
}

// NotCancelled drops voided records.
func NotCancelled(r domain.FinancialRecord) bool {
	return !r.IsCancelled()
}
