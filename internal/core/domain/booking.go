package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingConfiguration holds the operator-side settings of a quotation.
type BookingConfiguration struct {
	OperatorID      string    `json:"operatorID"`
	SellerID        string    `json:"sellerID"`
	DestinationID   string    `json:"destinationID"`
	TravelDate      time.Time `json:"travelDate"`
	CurrencyCode    string    `json:"currencyCode"`
	QuotationNumber string    `json:"quotationNumber,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// Customer is the traveller the quotation is issued to.
type Customer struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DocumentID  string `json:"documentID,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	HotelName   string `json:"hotelName,omitempty"`
}

// TourLineItem is one tour inside a booking. Subtotal is derived from the
// passenger counts and unit prices and is never edited independently.
type TourLineItem struct {
	TourID       string          `json:"tourID"`
	Date         time.Time       `json:"date"`
	AdultPax     int             `json:"adultPax"`
	ChildPax     int             `json:"childPax"`
	InfantPax    int             `json:"infantPax"`
	AdultPrice   decimal.Decimal `json:"adultPrice"`
	ChildPrice   decimal.Decimal `json:"childPrice"`
	InfantPrice  decimal.Decimal `json:"infantPrice"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	CurrencyCode string          `json:"currencyCode"`
}

// TotalPax is the passenger count across all three fare classes.
func (t TourLineItem) TotalPax() int {
	return t.AdultPax + t.ChildPax + t.InfantPax
}

// PaymentInfo captures the partial-payment state of a booking.
type PaymentInfo struct {
	Method       string          `json:"method,omitempty"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Percentage   decimal.Decimal `json:"percentage"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	CurrencyCode string          `json:"currencyCode"`
	PaidAt       *time.Time      `json:"paidAt,omitempty"`
}

// BookingData is the normalized submission shape assembled from form state.
// Configuration, customer and payment are singleton arrays by backend
// convention; only tour_list holds more than one entry.
type BookingData struct {
	Configuration []BookingConfiguration `json:"configuration"`
	Customer      []Customer             `json:"customer"`
	TourList      []TourLineItem         `json:"tour_list"`
	Payment       []PaymentInfo          `json:"payment"`
}

// Booking is a persisted quotation/reservation.
type Booking struct {
	BookingID  string      `json:"bookingID"` // Primary Key (UUID)
	ShareToken string      `json:"shareToken"`
	Status     string      `json:"status"`
	Data       BookingData `json:"data"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	AuditFields
}
