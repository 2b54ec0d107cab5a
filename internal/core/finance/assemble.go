package finance

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Assemble normalizes disparate form state into one BookingData record.
// Configuration and customer are emitted as singleton arrays (backend wire
// convention); payment is included only when includePayment is set. Tour
// subtotals are recomputed on the way in so the derived-field invariant holds
// regardless of what the form submitted.
func Assemble(cfg domain.BookingConfiguration, customer domain.Customer, tours []domain.TourLineItem, payment domain.PaymentInfo, includePayment bool) domain.BookingData {
	tourList := make([]domain.TourLineItem, len(tours))
	for i, t := range tours {
		t.Subtotal = Subtotal(t)
		tourList[i] = t
	}

	data := domain.BookingData{
		Configuration: []domain.BookingConfiguration{cfg},
		Customer:      []domain.Customer{customer},
		TourList:      tourList,
		Payment:       []domain.PaymentInfo{},
	}
	if includePayment {
		data.Payment = append(data.Payment, payment)
	}
	return data
}

// NewShareToken generates the opaque token embedded in a shareable quotation
// link: epoch milliseconds plus a random base36 suffix. Uniqueness per call is
// statistical, not cryptographic.
func NewShareToken() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), strconv.FormatInt(rand.Int63(), 36))
}

// ShareTokenIssuedAt recovers the issue time embedded in a share token.
// Returns false for tokens that do not carry a parseable epoch prefix.
func ShareTokenIssuedAt(token string) (time.Time, bool) {
	prefix, _, found := strings.Cut(token, "-")
	if !found {
		return time.Time{}, false
	}
	millis, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil || millis < 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(millis), true
}

// ValidationResult carries every violation found in one pass. Errors are
// human-readable strings for direct display; nothing is thrown.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Validate checks an assembled BookingData, accumulating all violations
// rather than failing fast. Present sections are also checked for their
// required inner fields. Per-tour checks only run when the tour list is
// non-empty, so an empty list reports exactly one error.
func Validate(data domain.BookingData) ValidationResult {
	var errs []string

	if len(data.Configuration) == 0 {
		errs = append(errs, "booking configuration is required")
	} else if data.Configuration[0].OperatorID == "" {
		errs = append(errs, "operator is required")
	}
	if len(data.Customer) == 0 {
		errs = append(errs, "customer information is required")
	} else if data.Customer[0].FullName == "" {
		errs = append(errs, "customer name is required")
	}
	if len(data.TourList) == 0 {
		errs = append(errs, "at least one tour is required")
	}

	for i, tour := range data.TourList {
		if tour.TourID == "" {
			errs = append(errs, fmt.Sprintf("tour %d: tour is not selected", i+1))
		}
		if tour.Date.IsZero() {
			errs = append(errs, fmt.Sprintf("tour %d: date is required", i+1))
		}
		if tour.TotalPax() == 0 {
			errs = append(errs, fmt.Sprintf("tour %d: at least one passenger is required", i+1))
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// BookingSubmission is the flattened wire shape sent to the reservations
// endpoint.
type BookingSubmission struct {
	OperatorID      string                 `json:"operator_id"`
	SellerID        string                 `json:"seller_id"`
	DestinationID   string                 `json:"destination_id"`
	TravelDate      time.Time              `json:"travel_date"`
	CurrencyCode    string                 `json:"currency"`
	QuotationNumber string                 `json:"quotation_number,omitempty"`
	CustomerName    string                 `json:"customer_name"`
	CustomerEmail   string                 `json:"customer_email,omitempty"`
	CustomerPhone   string                 `json:"customer_phone,omitempty"`
	Tours           []domain.TourLineItem  `json:"tours"`
	GrandTotal      decimal.Decimal        `json:"grand_total"`
	ShareToken      string                 `json:"share_token"`
}

// PaymentSubmission is the wire shape sent to the payments endpoint.
type PaymentSubmission struct {
	BookingID    string          `json:"booking_id"`
	Method       string          `json:"method,omitempty"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Percentage   decimal.Decimal `json:"percentage"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	CurrencyCode string          `json:"currency"`
}

// ToBookingSubmission reshapes assembled data for the reservations endpoint.
// It assumes Validate already passed: on incomplete data it produces a
// best-effort record with zero values rather than an error.
func ToBookingSubmission(data domain.BookingData, shareToken string) BookingSubmission {
	sub := BookingSubmission{
		Tours:      data.TourList,
		GrandTotal: GrandTotal(data.TourList),
		ShareToken: shareToken,
	}
	if len(data.Configuration) > 0 {
		cfg := data.Configuration[0]
		sub.OperatorID = cfg.OperatorID
		sub.SellerID = cfg.SellerID
		sub.DestinationID = cfg.DestinationID
		sub.TravelDate = cfg.TravelDate
		sub.CurrencyCode = cfg.CurrencyCode
		sub.QuotationNumber = cfg.QuotationNumber
	}
	if len(data.Customer) > 0 {
		cust := data.Customer[0]
		sub.CustomerName = cust.FullName
		sub.CustomerEmail = cust.Email
		sub.CustomerPhone = cust.Phone
	}
	return sub
}

// ToPaymentSubmission reshapes the payment section for the payments endpoint.
// Like ToBookingSubmission it performs no validation; a missing payment
// section yields a zero-valued record tied to the booking.
func ToPaymentSubmission(data domain.BookingData, bookingID string) PaymentSubmission {
	sub := PaymentSubmission{BookingID: bookingID}
	if len(data.Payment) > 0 {
		p := data.Payment[0]
		sub.Method = p.Method
		sub.TotalAmount = p.TotalAmount
		sub.Percentage = p.Percentage
		sub.AmountPaid = p.AmountPaid
		sub.CurrencyCode = p.CurrencyCode
	}
	return sub
}
