package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/apperrors"
	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	portsrepo "github.com/rutasur/tour_backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `booking_id, share_token, status, data, grand_total,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxBookingRepository implements booking persistence using pgxpool. The
// assembled booking data is stored as one JSONB document; only the fields
// the back office queries on are broken out into columns.
type PgxBookingRepository struct {
	db *pgxpool.Pool
}

func newPgxBookingRepository(db *pgxpool.Pool) portsrepo.BookingRepositoryFacade {
	return &PgxBookingRepository{db: db}
}

var _ portsrepo.BookingRepositoryFacade = (*PgxBookingRepository)(nil)

func scanBooking(row pgx.CollectableRow) (domain.Booking, error) {
	var booking domain.Booking
	err := row.Scan(
		&booking.BookingID, &booking.ShareToken, &booking.Status, &booking.Data, &booking.GrandTotal,
		&booking.CreatedAt, &booking.CreatedBy, &booking.LastUpdatedAt, &booking.LastUpdatedBy,
	)
	return booking, err
}

// SaveBooking inserts a new booking.
func (r *PgxBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		booking.BookingID, booking.ShareToken, booking.Status, booking.Data, booking.GrandTotal,
		booking.CreatedAt, booking.CreatedBy, booking.LastUpdatedAt, booking.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting booking: %w", err)
	}
	return nil
}

// FindBookingByID retrieves a booking by its primary key.
func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`
	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("error querying booking %s: %w", bookingID, err)
	}
	booking, err := pgx.CollectExactlyOneRow(rows, scanBooking)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// FindBookingByShareToken retrieves a booking by its shareable link token.
func (r *PgxBookingRepository) FindBookingByShareToken(ctx context.Context, shareToken string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE share_token = $1`
	rows, err := r.db.Query(ctx, query, shareToken)
	if err != nil {
		return nil, fmt.Errorf("error querying booking by share token: %w", err)
	}
	booking, err := pgx.CollectExactlyOneRow(rows, scanBooking)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning booking by share token: %w", err)
	}
	return &booking, nil
}

// ListBookings retrieves bookings newest first.
func (r *PgxBookingRepository) ListBookings(ctx context.Context, limit int) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	bookings, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, fmt.Errorf("error scanning bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBookingStatus changes the lifecycle status of a booking.
func (r *PgxBookingRepository) UpdateBookingStatus(ctx context.Context, bookingID, status, updaterUserID string) error {
	query := `
		UPDATE bookings SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE booking_id = $1
	`
	tag, err := r.db.Exec(ctx, query, bookingID, status, time.Now().UTC(), updaterUserID)
	if err != nil {
		return fmt.Errorf("error updating booking status %s: %w", bookingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
