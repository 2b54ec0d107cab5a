// Package finance holds the derived-financial-computation layer: pure,
// deterministic functions that turn raw records plus a target currency into
// the summary metrics, sorted/filtered views and pricing breakdowns shown
// across the back office. Nothing here performs I/O; exchange rates are
// injected as an already-loaded table.
package finance

import (
	"fmt"
	"strings"

	"github.com/rutasur/tour_backoffice_app/internal/apperrors"
	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencySymbols maps supported currency codes to their display symbol.
var CurrencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"BRL": "R$",
	"ARS": "$",
	"CLP": "$",
}

// RateTable maps (from, to) currency pairs to a positive conversion rate.
// Identity pairs are implicit and never looked up.
type RateTable map[string]map[string]decimal.Decimal

// NewRateTable builds a lookup table from persisted exchange rates. Later
// entries for the same pair overwrite earlier ones, so callers should pass
// rates ordered oldest first when multiple effective dates are present.
func NewRateTable(rates []domain.ExchangeRate) RateTable {
	table := make(RateTable)
	for _, r := range rates {
		inner, ok := table[r.FromCurrencyCode]
		if !ok {
			inner = make(map[string]decimal.Decimal)
			table[r.FromCurrencyCode] = inner
		}
		inner[r.ToCurrencyCode] = r.Rate
	}
	return table
}

// Lookup returns the rate for a currency pair, or false when absent.
func (t RateTable) Lookup(from, to string) (decimal.Decimal, bool) {
	inner, ok := t[from]
	if !ok {
		return decimal.Decimal{}, false
	}
	rate, ok := inner[to]
	return rate, ok
}

// Convert converts amount between two currency codes. Identity conversions
// return the amount without a table lookup. A missing pair is a typed error
// (apperrors.ErrRateNotFound); callers choose whether to propagate or fall
// back via ConvertOrSame.
func Convert(amount decimal.Decimal, from, to string, rates RateTable) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	rate, ok := rates.Lookup(from, to)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s->%s", apperrors.ErrRateNotFound, from, to)
	}
	return amount.Mul(rate), nil
}

// ConvertOrSame converts amount between two currencies, falling back to the
// raw unconverted amount when no rate is available. This mirrors the display
// behavior of the reference product and understates or overstates totals for
// the missing pair; aggregation paths use it knowingly.
func ConvertOrSame(amount decimal.Decimal, from, to string, rates RateTable) decimal.Decimal {
	converted, err := Convert(amount, from, to, rates)
	if err != nil {
		return amount
	}
	return converted
}

// Format renders an amount as symbol plus thousands-grouped value with exactly
// two decimal places, e.g. Format(1234.5, "BRL") == "R$1,234.50". Unknown
// currency codes render with the bare code as prefix.
func Format(amount decimal.Decimal, currencyCode string) string {
	return symbolFor(currencyCode) + group(amount.StringFixed(2))
}

// FormatWhole renders an amount as symbol plus thousands-grouped integer with
// no decimals, used by grand-total views.
func FormatWhole(amount decimal.Decimal, currencyCode string) string {
	return symbolFor(currencyCode) + group(amount.Round(0).StringFixed(0))
}

// ParseAmount coerces a user- or wire-supplied amount string to a decimal.
// Non-numeric or empty input collapses to zero so that a malformed field never
// propagates through sums.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func symbolFor(code string) string {
	if sym, ok := CurrencySymbols[code]; ok {
		return sym
	}
	return code + " "
}

// group inserts thousands separators into the integer part of a fixed-point
// decimal string, preserving any sign and fractional part.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := sign + b.String()
	if hasFrac {
		out += "." + fracPart
	}
	return out
}
