package finance_test

import (
	"testing"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name string
		tour domain.TourLineItem
		want int64
	}{
		{
			name: "adults and children",
			tour: domain.TourLineItem{
				AdultPax: 2, AdultPrice: decimal.NewFromInt(100),
				ChildPax: 1, ChildPrice: decimal.NewFromInt(50),
				InfantPax: 0, InfantPrice: decimal.NewFromInt(10),
			},
			want: 250,
		},
		{
			name: "no passengers",
			tour: domain.TourLineItem{AdultPrice: decimal.NewFromInt(100)},
			want: 0,
		},
		{
			name: "infants priced",
			tour: domain.TourLineItem{
				AdultPax: 1, AdultPrice: decimal.NewFromInt(80),
				InfantPax: 2, InfantPrice: decimal.NewFromInt(5),
			},
			want: 90,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finance.Subtotal(tt.tour)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "subtotal = %s", got)
		})
	}
}

func TestGrandTotal_SumsRawSubtotals(t *testing.T) {
	tours := []domain.TourLineItem{
		{AdultPax: 2, AdultPrice: decimal.NewFromInt(100), CurrencyCode: "USD"},
		{AdultPax: 1, AdultPrice: decimal.NewFromInt(50), CurrencyCode: "USD"},
	}
	got := finance.GrandTotal(tours)
	assert.True(t, got.Equal(decimal.NewFromInt(250)))
}

func TestGrandTotal_Empty(t *testing.T) {
	assert.True(t, finance.GrandTotal(nil).IsZero())
}

func TestSameCurrency(t *testing.T) {
	usd := domain.TourLineItem{CurrencyCode: "USD"}
	brl := domain.TourLineItem{CurrencyCode: "BRL"}

	assert.True(t, finance.SameCurrency(nil))
	assert.True(t, finance.SameCurrency([]domain.TourLineItem{usd, usd}))
	assert.False(t, finance.SameCurrency([]domain.TourLineItem{usd, brl}))
}

func TestSplit_PercentageAmountRoundTrip(t *testing.T) {
	split := finance.Split{TotalAmount: decimal.NewFromInt(1000)}

	split = split.WithPercentage(decimal.NewFromInt(25))
	assert.True(t, split.AmountPaid.Equal(decimal.NewFromInt(250)), "amountPaid = %s", split.AmountPaid)

	// Re-applying the derived amount is a stable fixed point.
	split = split.WithAmount(decimal.NewFromInt(250))
	assert.True(t, split.Percentage.Equal(decimal.NewFromInt(25)), "percentage = %s", split.Percentage)
}

func TestSplit_RoundsHalfUp(t *testing.T) {
	split := finance.Split{TotalAmount: decimal.NewFromInt(333)}
	split = split.WithPercentage(decimal.NewFromInt(50))
	// 166.5 rounds up to 167.
	assert.True(t, split.AmountPaid.Equal(decimal.NewFromInt(167)), "amountPaid = %s", split.AmountPaid)
}

func TestSplit_ZeroTotalSkipsReverseComputation(t *testing.T) {
	split := finance.Split{TotalAmount: decimal.Zero, Percentage: decimal.NewFromInt(40)}
	split = split.WithAmount(decimal.NewFromInt(100))

	assert.True(t, split.AmountPaid.Equal(decimal.NewFromInt(100)))
	assert.True(t, split.Percentage.Equal(decimal.NewFromInt(40)), "percentage must keep its previous value")
}

func TestSplit_PercentagePassesThroughUnclamped(t *testing.T) {
	split := finance.Split{TotalAmount: decimal.NewFromInt(200)}
	split = split.WithPercentage(decimal.NewFromInt(150))
	assert.True(t, split.AmountPaid.Equal(decimal.NewFromInt(300)))
}
