package services

import (
	"context"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
)

// BookingReaderSvc defines read operations over bookings
type BookingReaderSvc interface {
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)

	// GetBookingByShareToken resolves the unauthenticated shareable-link view.
	GetBookingByShareToken(ctx context.Context, shareToken string) (*domain.Booking, error)

	ListBookings(ctx context.Context, limit int) ([]domain.Booking, error)
}

// BookingWriterSvc defines write operations over bookings
type BookingWriterSvc interface {
	// CreateBooking assembles, validates, prices and persists a quotation.
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, error)

	UpdateBookingStatus(ctx context.Context, bookingID, status, updaterUserID string) error
}

// BookingPricingSvc exposes the pricing calculator to the form endpoints.
type BookingPricingSvc interface {
	// PriceQuote computes per-tour subtotals, the grand total and the
	// percentage/amount payment split for in-progress form state.
	PriceQuote(ctx context.Context, req dto.PriceQuoteRequest) (*dto.PriceQuoteResponse, error)
}

// BookingSvcFacade combines all booking-related service interfaces
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
	BookingPricingSvc
}
