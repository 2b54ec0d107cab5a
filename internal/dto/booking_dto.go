package dto

import (
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/core/finance"
	"github.com/shopspring/decimal"
)

// TourLineItemInput is one tour row of the quotation form. The subtotal is
// never accepted from the client; it is derived during assembly.
type TourLineItemInput struct {
	TourID       string          `json:"tourID" binding:"required"`
	Date         time.Time       `json:"date" binding:"required"`
	AdultPax     int             `json:"adultPax" binding:"gte=0"`
	ChildPax     int             `json:"childPax" binding:"gte=0"`
	InfantPax    int             `json:"infantPax" binding:"gte=0"`
	AdultPrice   decimal.Decimal `json:"adultPrice"`
	ChildPrice   decimal.Decimal `json:"childPrice"`
	InfantPrice  decimal.Decimal `json:"infantPrice"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
}

// ToTourLineItem converts a form row to the domain shape (subtotal unset;
// the assembler derives it).
func (in TourLineItemInput) ToTourLineItem() domain.TourLineItem {
	return domain.TourLineItem{
		TourID:       in.TourID,
		Date:         in.Date,
		AdultPax:     in.AdultPax,
		ChildPax:     in.ChildPax,
		InfantPax:    in.InfantPax,
		AdultPrice:   in.AdultPrice,
		ChildPrice:   in.ChildPrice,
		InfantPrice:  in.InfantPrice,
		CurrencyCode: in.CurrencyCode,
	}
}

// BookingConfigurationInput is the operator-side section of the form.
type BookingConfigurationInput struct {
	OperatorID      string    `json:"operatorID" binding:"required"`
	SellerID        string    `json:"sellerID"`
	DestinationID   string    `json:"destinationID"`
	TravelDate      time.Time `json:"travelDate"`
	CurrencyCode    string    `json:"currencyCode" binding:"required,currencycode"`
	QuotationNumber string    `json:"quotationNumber"`
	Notes           string    `json:"notes"`
}

// CustomerInput is the traveller section of the form.
type CustomerInput struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	DocumentID  string `json:"documentID"`
	Nationality string `json:"nationality"`
	HotelName   string `json:"hotelName"`
}

// PaymentInput is the optional payment section of the form. Percentage is
// bounded here at the API boundary; the calculator itself does not clamp.
type PaymentInput struct {
	Method       string          `json:"method"`
	Percentage   decimal.Decimal `json:"percentage" binding:"omitempty"`
	AmountPaid   decimal.Decimal `json:"amountPaid"`
	CurrencyCode string          `json:"currencyCode" binding:"omitempty,currencycode"`
}

// CreateBookingRequest is the full quotation submission.
type CreateBookingRequest struct {
	Configuration  BookingConfigurationInput `json:"configuration" binding:"required"`
	Customer       CustomerInput             `json:"customer" binding:"required"`
	Tours          []TourLineItemInput       `json:"tours" binding:"required,dive"`
	Payment        PaymentInput              `json:"payment"`
	IncludePayment bool                      `json:"includePayment"`
}

// TourLineItemResponse is one priced tour row in a booking response.
type TourLineItemResponse struct {
	TourID            string          `json:"tourID"`
	Date              time.Time       `json:"date"`
	AdultPax          int             `json:"adultPax"`
	ChildPax          int             `json:"childPax"`
	InfantPax         int             `json:"infantPax"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	FormattedSubtotal string          `json:"formattedSubtotal"`
	CurrencyCode      string          `json:"currencyCode"`
}

// BookingResponse is the API shape of a persisted quotation.
type BookingResponse struct {
	BookingID           string                 `json:"bookingID"`
	ShareToken          string                 `json:"shareToken"`
	Status              string                 `json:"status"`
	Configuration       []domain.BookingConfiguration `json:"configuration"`
	Customer            []domain.Customer      `json:"customer"`
	Tours               []TourLineItemResponse `json:"tours"`
	Payment             []domain.PaymentInfo   `json:"payment"`
	GrandTotal          decimal.Decimal        `json:"grandTotal"`
	FormattedGrandTotal string                 `json:"formattedGrandTotal"`
	CreatedAt           time.Time              `json:"createdAt"`
}

// ToBookingResponse converts a domain.Booking to BookingResponse DTO. The
// grand total renders without decimals, matching the summary views.
func ToBookingResponse(booking *domain.Booking) BookingResponse {
	currency := ""
	if len(booking.Data.TourList) > 0 {
		currency = booking.Data.TourList[0].CurrencyCode
	} else if len(booking.Data.Configuration) > 0 {
		currency = booking.Data.Configuration[0].CurrencyCode
	}

	tours := make([]TourLineItemResponse, len(booking.Data.TourList))
	for i, t := range booking.Data.TourList {
		tours[i] = TourLineItemResponse{
			TourID:            t.TourID,
			Date:              t.Date,
			AdultPax:          t.AdultPax,
			ChildPax:          t.ChildPax,
			InfantPax:         t.InfantPax,
			Subtotal:          t.Subtotal,
			FormattedSubtotal: finance.Format(t.Subtotal, t.CurrencyCode),
			CurrencyCode:      t.CurrencyCode,
		}
	}

	return BookingResponse{
		BookingID:           booking.BookingID,
		ShareToken:          booking.ShareToken,
		Status:              booking.Status,
		Configuration:       booking.Data.Configuration,
		Customer:            booking.Data.Customer,
		Tours:               tours,
		Payment:             booking.Data.Payment,
		GrandTotal:          booking.GrandTotal,
		FormattedGrandTotal: finance.FormatWhole(booking.GrandTotal, currency),
		CreatedAt:           booking.CreatedAt,
	}
}

// ToListBookingResponse converts a slice of bookings to response DTOs.
func ToListBookingResponse(bookings []domain.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = ToBookingResponse(&bookings[i])
	}
	return responses
}

// PriceQuoteRequest prices in-progress form state: the tour rows plus the
// payment field the user edited last.
type PriceQuoteRequest struct {
	Tours       []TourLineItemInput `json:"tours" binding:"required,dive"`
	EditedField string              `json:"editedField" binding:"omitempty,oneof=percentage amount"`
	EditedValue decimal.Decimal     `json:"editedValue"`
}

// PriceQuoteResponse carries the derived pricing state back to the form.
type PriceQuoteResponse struct {
	Subtotals           []decimal.Decimal `json:"subtotals"`
	GrandTotal          decimal.Decimal   `json:"grandTotal"`
	FormattedGrandTotal string            `json:"formattedGrandTotal"`
	Percentage          decimal.Decimal   `json:"percentage"`
	AmountPaid          decimal.Decimal   `json:"amountPaid"`
}
