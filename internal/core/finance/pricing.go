package finance

import (
	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Subtotal computes the price of one tour line from its passenger counts and
// unit prices. The stored Subtotal field is always derived through this
// function, never edited on its own.
func Subtotal(t domain.TourLineItem) decimal.Decimal {
	adults := t.AdultPrice.Mul(decimal.NewFromInt(int64(t.AdultPax)))
	children := t.ChildPrice.Mul(decimal.NewFromInt(int64(t.ChildPax)))
	infants := t.InfantPrice.Mul(decimal.NewFromInt(int64(t.InfantPax)))
	return adults.Add(children).Add(infants)
}

// GrandTotal sums the subtotals of all tour lines. Amounts are summed raw,
// with no cross-tour currency conversion: the result is only meaningful when
// every tour shares one currency, which booking creation enforces separately
// (see SameCurrency).
func GrandTotal(tours []domain.TourLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, t := range tours {
		total = total.Add(Subtotal(t))
	}
	return total
}

// SameCurrency reports whether every tour line uses one currency. Empty lists
// are trivially single-currency.
func SameCurrency(tours []domain.TourLineItem) bool {
	for i := 1; i < len(tours); i++ {
		if tours[i].CurrencyCode != tours[0].CurrencyCode {
			return false
		}
	}
	return true
}

// Split is the two-way percentage/amount binding of a partial payment.
// Whichever field the user edited last is authoritative; the other is
// recomputed immediately with round-half-up semantics.
type Split struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Percentage  decimal.Decimal `json:"percentage"`
	AmountPaid  decimal.Decimal `json:"amountPaid"`
}

// WithPercentage applies a percentage edit: amountPaid becomes
// round(total * pct / 100). Values outside [0,100] pass through; bounding is
// the input control's concern, not the calculator's.
func (s Split) WithPercentage(pct decimal.Decimal) Split {
	s.Percentage = pct
	s.AmountPaid = s.TotalAmount.Mul(pct).Div(decimal.NewFromInt(100)).Round(0)
	return s
}

// WithAmount applies an amount edit: percentage becomes
// round(amount / total * 100). When the total is zero the reverse computation
// is skipped and the percentage keeps its previous value, so a zero total can
// never divide or produce NaN-like state.
func (s Split) WithAmount(amount decimal.Decimal) Split {
	s.AmountPaid = amount
	if s.TotalAmount.IsPositive() {
		s.Percentage = amount.Div(s.TotalAmount).Mul(decimal.NewFromInt(100)).Round(0)
	}
	return s
}
