package finance_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTour() domain.TourLineItem {
	return domain.TourLineItem{
		TourID:       "tour-1",
		Date:         date(2024, time.July, 10),
		AdultPax:     2,
		AdultPrice:   decimal.NewFromInt(100),
		ChildPax:     1,
		ChildPrice:   decimal.NewFromInt(50),
		CurrencyCode: "USD",
	}
}

func TestAssemble_SingletonSectionsAndPaymentGate(t *testing.T) {
	cfg := domain.BookingConfiguration{OperatorID: "op-1", CurrencyCode: "USD"}
	customer := domain.Customer{FullName: "Ana Souza"}
	payment := domain.PaymentInfo{TotalAmount: decimal.NewFromInt(250)}

	withPayment := finance.Assemble(cfg, customer, []domain.TourLineItem{sampleTour()}, payment, true)
	require.Len(t, withPayment.Configuration, 1)
	require.Len(t, withPayment.Customer, 1)
	require.Len(t, withPayment.TourList, 1)
	require.Len(t, withPayment.Payment, 1)

	withoutPayment := finance.Assemble(cfg, customer, []domain.TourLineItem{sampleTour()}, payment, false)
	assert.Empty(t, withoutPayment.Payment)
}

func TestAssemble_RecomputesSubtotals(t *testing.T) {
	tour := sampleTour()
	tour.Subtotal = decimal.NewFromInt(9999) // stale value from the form

	data := finance.Assemble(domain.BookingConfiguration{}, domain.Customer{}, []domain.TourLineItem{tour}, domain.PaymentInfo{}, false)
	assert.True(t, data.TourList[0].Subtotal.Equal(decimal.NewFromInt(250)), "subtotal = %s", data.TourList[0].Subtotal)
}

func TestNewShareToken(t *testing.T) {
	token := finance.NewShareToken()
	parts := strings.SplitN(token, "-", 2)
	require.Len(t, parts, 2)

	millis, err := strconv.ParseInt(parts[0], 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().UnixMilli(), millis, 5000)
	assert.NotEmpty(t, parts[1])

	assert.NotEqual(t, token, finance.NewShareToken())
}

func TestValidate_EmptyTourListReportsSingleTourError(t *testing.T) {
	data := domain.BookingData{
		Configuration: []domain.BookingConfiguration{{OperatorID: "op-1"}},
		Customer:      []domain.Customer{{FullName: "Ana Souza"}},
		TourList:      nil,
	}

	result := finance.Validate(data)
	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1, "no per-tour errors may appear for an empty list")
	assert.Contains(t, result.Errors[0], "at least one tour")
}

func TestValidate_AccumulatesAllViolations(t *testing.T) {
	badTour := domain.TourLineItem{} // no tour ID, no date, no passengers
	data := domain.BookingData{
		TourList: []domain.TourLineItem{badTour},
	}

	result := finance.Validate(data)
	assert.False(t, result.IsValid)
	// Missing configuration, missing customer, plus three per-tour violations.
	assert.Len(t, result.Errors, 5)
}

func TestValidate_BlankFieldsInsidePresentSections(t *testing.T) {
	// Assemble always emits singleton configuration/customer sections, so a
	// blank operator or customer name must be caught inside them.
	data := finance.Assemble(
		domain.BookingConfiguration{},
		domain.Customer{},
		[]domain.TourLineItem{sampleTour()},
		domain.PaymentInfo{},
		false,
	)

	result := finance.Validate(data)
	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "operator is required")
	assert.Contains(t, result.Errors[1], "customer name is required")
}

func TestValidate_ValidBooking(t *testing.T) {
	data := finance.Assemble(
		domain.BookingConfiguration{OperatorID: "op-1"},
		domain.Customer{FullName: "Ana Souza"},
		[]domain.TourLineItem{sampleTour()},
		domain.PaymentInfo{},
		false,
	)

	result := finance.Validate(data)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestToBookingSubmission(t *testing.T) {
	data := finance.Assemble(
		domain.BookingConfiguration{OperatorID: "op-1", SellerID: "seller-1", CurrencyCode: "USD", TravelDate: date(2024, time.July, 9)},
		domain.Customer{FullName: "Ana Souza", Email: "ana@example.com"},
		[]domain.TourLineItem{sampleTour()},
		domain.PaymentInfo{},
		false,
	)

	sub := finance.ToBookingSubmission(data, "1720000000000-abc123")
	assert.Equal(t, "op-1", sub.OperatorID)
	assert.Equal(t, "Ana Souza", sub.CustomerName)
	assert.Equal(t, "1720000000000-abc123", sub.ShareToken)
	assert.True(t, sub.GrandTotal.Equal(decimal.NewFromInt(250)))
}

func TestToBookingSubmission_BestEffortOnIncompleteData(t *testing.T) {
	// Reshaping assumes Validate already ran; empty sections yield zero values,
	// never a panic or error.
	sub := finance.ToBookingSubmission(domain.BookingData{}, "tok")
	assert.Empty(t, sub.OperatorID)
	assert.Empty(t, sub.CustomerName)
	assert.True(t, sub.GrandTotal.IsZero())
}

func TestToPaymentSubmission(t *testing.T) {
	data := domain.BookingData{
		Payment: []domain.PaymentInfo{{
			Method:       "card",
			TotalAmount:  decimal.NewFromInt(1000),
			Percentage:   decimal.NewFromInt(25),
			AmountPaid:   decimal.NewFromInt(250),
			CurrencyCode: "USD",
		}},
	}

	sub := finance.ToPaymentSubmission(data, "booking-1")
	assert.Equal(t, "booking-1", sub.BookingID)
	assert.Equal(t, "card", sub.Method)
	assert.True(t, sub.AmountPaid.Equal(decimal.NewFromInt(250)))

	empty := finance.ToPaymentSubmission(domain.BookingData{}, "booking-2")
	assert.Equal(t, "booking-2", empty.BookingID)
	assert.True(t, empty.TotalAmount.IsZero())
}
