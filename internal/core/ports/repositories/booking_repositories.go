package repositories

import (
	"context"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
)

// BookingReader defines read operations for bookings
type BookingReader interface {
	// FindBookingByID retrieves a booking by its primary key.
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// FindBookingByShareToken retrieves a booking by its shareable link token.
	FindBookingByShareToken(ctx context.Context, shareToken string) (*domain.Booking, error)

	// ListBookings retrieves bookings newest first.
	ListBookings(ctx context.Context, limit int) ([]domain.Booking, error)
}

// BookingWriter defines write operations for bookings
type BookingWriter interface {
	// SaveBooking persists a new booking.
	SaveBooking(ctx context.Context, booking domain.Booking) error

	// UpdateBookingStatus changes the lifecycle status of a booking.
	UpdateBookingStatus(ctx context.Context, bookingID, status, updaterUserID string) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}
