package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/apperrors"
	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/core/finance"
	portsrepo "github.com/rutasur/tour_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/rutasur/tour_backoffice_app/internal/core/ports/services"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// bookingService implements the BookingSvcFacade interface
type bookingService struct {
	BaseService
	bookingRepo  portsrepo.BookingRepositoryFacade
	recordRepo   portsrepo.RecordRepositoryFacade
	shareLinkTTL time.Duration
}

// BookingServiceOption is a functional option for configuring the booking service
type BookingServiceOption func(*bookingService)

// WithReceivableRecording makes booking creation also register the open
// receivable for the quoted amount.
func WithReceivableRecording(recordRepo portsrepo.RecordRepositoryFacade) BookingServiceOption {
	return func(s *bookingService) {
		s.recordRepo = recordRepo
	}
}

// WithShareLinkTTL bounds how long a shareable-link token stays resolvable.
// A zero TTL means links never expire.
func WithShareLinkTTL(ttl time.Duration) BookingServiceOption {
	return func(s *bookingService) {
		s.shareLinkTTL = ttl
	}
}

// NewBookingService creates a new booking service with the provided options
func NewBookingService(repo portsrepo.BookingRepositoryFacade, options ...BookingServiceOption) portssvc.BookingSvcFacade {
	svc := &bookingService{bookingRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BookingSvcFacade = (*bookingService)(nil)

// CreateBooking assembles the form sections into the normalized submission
// shape, validates it, prices it and persists the quotation. Validation
// failures come back as one ErrValidation wrapping every violation.
func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, error) {
	tours := make([]domain.TourLineItem, len(req.Tours))
	for i, t := range req.Tours {
		tours[i] = t.ToTourLineItem()
	}

	payment := s.buildPayment(req, tours)
	data := finance.Assemble(toConfiguration(req.Configuration), toCustomer(req.Customer), tours, payment, req.IncludePayment)

	if result := finance.Validate(data); !result.IsValid {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(result.Errors, "; "))
	}
	// Grand totals are summed without cross-tour conversion, so a booking may
	// not mix currencies across its tours.
	if !finance.SameCurrency(data.TourList) {
		return nil, fmt.Errorf("%w: all tours in a booking must use the same currency", apperrors.ErrValidation)
	}

	now := time.Now()
	booking := domain.Booking{
		BookingID:  uuid.NewString(),
		ShareToken: finance.NewShareToken(),
		Status:     "QUOTED",
		Data:       data,
		GrandTotal: finance.GrandTotal(data.TourList),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.bookingRepo.SaveBooking(ctx, booking); err != nil {
		s.LogError(ctx, err, "Failed to save booking")
		return nil, fmt.Errorf("failed to create booking in service: %w", err)
	}

	if s.recordRepo != nil {
		if err := s.saveReceivable(ctx, booking, creatorUserID); err != nil {
			// The booking exists; the missing receivable is re-creatable from it.
			s.LogError(ctx, err, "Failed to record receivable for booking",
				slog.String("booking_id", booking.BookingID))
		}
	}

	s.LogInfo(ctx, "Booking created",
		slog.String("booking_id", booking.BookingID),
		slog.String("share_token", booking.ShareToken))
	return &booking, nil
}

// buildPayment derives the payment section from whichever split field the
// form submitted, recomputing the counterpart from the grand total.
func (s *bookingService) buildPayment(req dto.CreateBookingRequest, tours []domain.TourLineItem) domain.PaymentInfo {
	total := finance.GrandTotal(tours)
	split := finance.Split{TotalAmount: total}
	if !req.Payment.Percentage.IsZero() {
		split = split.WithPercentage(req.Payment.Percentage)
	} else {
		split = split.WithAmount(req.Payment.AmountPaid)
	}

	currency := req.Payment.CurrencyCode
	if currency == "" && len(tours) > 0 {
		currency = tours[0].CurrencyCode
	}
	return domain.PaymentInfo{
		Method:       req.Payment.Method,
		TotalAmount:  split.TotalAmount,
		Percentage:   split.Percentage,
		AmountPaid:   split.AmountPaid,
		CurrencyCode: currency,
	}
}

// saveReceivable registers the open receivable for a freshly quoted booking.
func (s *bookingService) saveReceivable(ctx context.Context, booking domain.Booking, creatorUserID string) error {
	currency := ""
	if len(booking.Data.TourList) > 0 {
		currency = booking.Data.TourList[0].CurrencyCode
	}
	travelDate := time.Now()
	if len(booking.Data.Configuration) > 0 && !booking.Data.Configuration[0].TravelDate.IsZero() {
		travelDate = booking.Data.Configuration[0].TravelDate
	}

	now := time.Now()
	record := domain.FinancialRecord{
		RecordID:     uuid.NewString(),
		Kind:         domain.KindReceivable,
		Amount:       booking.GrandTotal,
		CurrencyCode: currency,
		DueDate:      travelDate,
		Status:       domain.StatusPending,
		Direction:    domain.DirectionIncoming,
		Category:     "booking",
		BookingID:    &booking.BookingID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	return s.recordRepo.SaveRecord(ctx, record)
}

// GetBooking retrieves a booking by ID.
func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking in service: %w", err)
	}
	return booking, nil
}

// GetBookingByShareToken resolves the unauthenticated shareable-link view.
func (s *bookingService) GetBookingByShareToken(ctx context.Context, shareToken string) (*domain.Booking, error) {
	if shareToken == "" {
		return nil, fmt.Errorf("%w: share token is required", apperrors.ErrValidation)
	}
	if s.shareLinkTTL > 0 {
		issuedAt, ok := finance.ShareTokenIssuedAt(shareToken)
		if !ok || time.Since(issuedAt) > s.shareLinkTTL {
			// Expired links read as gone, not forbidden.
			return nil, fmt.Errorf("%w: share link expired", apperrors.ErrNotFound)
		}
	}
	booking, err := s.bookingRepo.FindBookingByShareToken(ctx, shareToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking by share token in service: %w", err)
	}
	return booking, nil
}

// ListBookings retrieves bookings newest first.
func (s *bookingService) ListBookings(ctx context.Context, limit int) ([]domain.Booking, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	bookings, err := s.bookingRepo.ListBookings(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings in service: %w", err)
	}
	if bookings == nil {
		return []domain.Booking{}, nil
	}
	return bookings, nil
}

// UpdateBookingStatus changes the lifecycle status of a booking.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID, status, updaterUserID string) error {
	if err := s.bookingRepo.UpdateBookingStatus(ctx, bookingID, status, updaterUserID); err != nil {
		return fmt.Errorf("failed to update booking status in service: %w", err)
	}
	s.LogInfo(ctx, "Booking status updated",
		slog.String("booking_id", bookingID),
		slog.String("status", status))
	return nil
}

// PriceQuote computes per-tour subtotals, the grand total and the payment
// split for in-progress form state, without persisting anything.
func (s *bookingService) PriceQuote(ctx context.Context, req dto.PriceQuoteRequest) (*dto.PriceQuoteResponse, error) {
	tours := make([]domain.TourLineItem, len(req.Tours))
	subtotals := make([]decimal.Decimal, len(req.Tours))
	for i, t := range req.Tours {
		tours[i] = t.ToTourLineItem()
		subtotals[i] = finance.Subtotal(tours[i])
	}
	total := finance.GrandTotal(tours)

	split := finance.Split{TotalAmount: total}
	switch req.EditedField {
	case "percentage":
		split = split.WithPercentage(req.EditedValue)
	case "amount":
		split = split.WithAmount(req.EditedValue)
	}

	currency := ""
	if len(tours) > 0 {
		currency = tours[0].CurrencyCode
	}
	return &dto.PriceQuoteResponse{
		Subtotals:           subtotals,
		GrandTotal:          total,
		FormattedGrandTotal: finance.FormatWhole(total, currency),
		Percentage:          split.Percentage,
		AmountPaid:          split.AmountPaid,
	}, nil
}

func toConfiguration(in dto.BookingConfigurationInput) domain.BookingConfiguration {
	return domain.BookingConfiguration{
		OperatorID:      in.OperatorID,
		SellerID:        in.SellerID,
		DestinationID:   in.DestinationID,
		TravelDate:      in.TravelDate,
		CurrencyCode:    in.CurrencyCode,
		QuotationNumber: in.QuotationNumber,
		Notes:           in.Notes,
	}
}

func toCustomer(in dto.CustomerInput) domain.Customer {
	return domain.Customer{
		FullName:    in.FullName,
		Email:       in.Email,
		Phone:       in.Phone,
		DocumentID:  in.DocumentID,
		Nationality: in.Nationality,
		HotelName:   in.HotelName,
	}
}
