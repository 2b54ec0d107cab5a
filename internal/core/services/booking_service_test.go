package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/apperrors"
	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	portssvc "github.com/rutasur/tour_backoffice_app/internal/core/ports/services"
	"github.com/rutasur/tour_backoffice_app/internal/core/services"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindBookingByShareToken(ctx context.Context, shareToken string) (*domain.Booking, error) {
	args := m.Called(ctx, shareToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListBookings(ctx context.Context, limit int) ([]domain.Booking, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateBookingStatus(ctx context.Context, bookingID, status, updaterUserID string) error {
	args := m.Called(ctx, bookingID, status, updaterUserID)
	return args.Error(0)
}

// --- Test Suite ---
type BookingServiceTestSuite struct {
	suite.Suite
	mockBookingRepo *MockBookingRepository
	mockRecordRepo  *MockRecordRepository
	service         portssvc.BookingSvcFacade
}

func (suite *BookingServiceTestSuite) SetupTest() {
	suite.mockBookingRepo = new(MockBookingRepository)
	suite.mockRecordRepo = new(MockRecordRepository)
	suite.service = services.NewBookingService(
		suite.mockBookingRepo,
		services.WithReceivableRecording(suite.mockRecordRepo),
	)
}

func validBookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Configuration: dto.BookingConfigurationInput{
			OperatorID:   "op-1",
			CurrencyCode: "USD",
			TravelDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		},
		Customer: dto.CustomerInput{
			FullName: "Ana Torres",
			Email:    "ana@example.com",
		},
		Tours: []dto.TourLineItemInput{
			{
				TourID:       "tour-valley",
				Date:         time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
				AdultPax:     2,
				ChildPax:     1,
				AdultPrice:   decimal.NewFromInt(100),
				ChildPrice:   decimal.NewFromInt(50),
				CurrencyCode: "USD",
			},
		},
		Payment: dto.PaymentInput{
			Method:     "card",
			Percentage: decimal.NewFromInt(50),
		},
		IncludePayment: true,
	}
}

// --- Test Cases ---

func (suite *BookingServiceTestSuite) TestCreateBooking_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := validBookingRequest()

	suite.mockBookingRepo.On("SaveBooking", ctx, mock.AnythingOfType("domain.Booking")).Return(nil).Once()
	suite.mockRecordRepo.On("SaveRecord", ctx, mock.MatchedBy(func(r domain.FinancialRecord) bool {
		return r.Kind == domain.KindReceivable && r.Amount.Equal(decimal.NewFromInt(250)) && r.BookingID != nil
	})).Return(nil).Once()

	booking, err := suite.service.CreateBooking(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(booking)
	suite.NotEmpty(booking.BookingID)
	suite.NotEmpty(booking.ShareToken)
	suite.Equal("QUOTED", booking.Status)
	// 2 adults x 100 + 1 child x 50
	suite.True(booking.GrandTotal.Equal(decimal.NewFromInt(250)))
	suite.Require().Len(booking.Data.TourList, 1)
	suite.True(booking.Data.TourList[0].Subtotal.Equal(decimal.NewFromInt(250)))
	suite.Require().Len(booking.Data.Payment, 1)
	suite.True(booking.Data.Payment[0].AmountPaid.Equal(decimal.NewFromInt(125)))
	suite.mockBookingRepo.AssertExpectations(suite.T())
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCreateBooking_EmptyTourListFailsValidation() {
	ctx := context.Background()
	req := validBookingRequest()
	req.Tours = nil

	booking, err := suite.service.CreateBooking(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(booking)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "SaveBooking", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_AccumulatesAllViolations() {
	ctx := context.Background()
	req := validBookingRequest()
	req.Configuration.OperatorID = ""
	req.Customer.FullName = ""
	req.Tours[0].TourID = ""

	booking, err := suite.service.CreateBooking(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(booking)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// Every violation is reported in one pass, not just the first.
	suite.Contains(err.Error(), "; ")
	suite.Contains(err.Error(), "operator is required")
	suite.Contains(err.Error(), "customer name is required")
	suite.Contains(err.Error(), "tour is not selected")
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "SaveBooking", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_MixedCurrenciesRejected() {
	ctx := context.Background()
	req := validBookingRequest()
	req.Tours = append(req.Tours, dto.TourLineItemInput{
		TourID:       "tour-city",
		Date:         time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		AdultPax:     1,
		AdultPrice:   decimal.NewFromInt(45000),
		CurrencyCode: "CLP",
	})

	booking, err := suite.service.CreateBooking(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(booking)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "same currency")
}

func (suite *BookingServiceTestSuite) TestCreateBooking_ReceivableFailureIsNonFatal() {
	ctx := context.Background()
	req := validBookingRequest()

	suite.mockBookingRepo.On("SaveBooking", ctx, mock.AnythingOfType("domain.Booking")).Return(nil).Once()
	suite.mockRecordRepo.On("SaveRecord", ctx, mock.AnythingOfType("domain.FinancialRecord")).
		Return(fmt.Errorf("records table unavailable")).Once()

	booking, err := suite.service.CreateBooking(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(booking)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCreateBooking_PaymentOmittedWhenNotIncluded() {
	ctx := context.Background()
	req := validBookingRequest()
	req.IncludePayment = false

	suite.mockBookingRepo.On("SaveBooking", ctx, mock.AnythingOfType("domain.Booking")).Return(nil).Once()
	suite.mockRecordRepo.On("SaveRecord", ctx, mock.AnythingOfType("domain.FinancialRecord")).Return(nil).Once()

	booking, err := suite.service.CreateBooking(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Empty(booking.Data.Payment)
}

func (suite *BookingServiceTestSuite) TestGetBookingByShareToken_EmptyToken() {
	ctx := context.Background()

	booking, err := suite.service.GetBookingByShareToken(ctx, "")

	suite.Require().Error(err)
	suite.Nil(booking)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BookingServiceTestSuite) TestGetBookingByShareToken_Success() {
	ctx := context.Background()
	token := "1750000000000-abc123"
	expected := &domain.Booking{BookingID: uuid.NewString(), ShareToken: token}

	suite.mockBookingRepo.On("FindBookingByShareToken", ctx, token).Return(expected, nil).Once()

	booking, err := suite.service.GetBookingByShareToken(ctx, token)

	suite.Require().NoError(err)
	suite.Equal(expected.BookingID, booking.BookingID)
}

func (suite *BookingServiceTestSuite) TestGetBookingByShareToken_ExpiredReadsAsNotFound() {
	ctx := context.Background()
	bounded := services.NewBookingService(
		suite.mockBookingRepo,
		services.WithShareLinkTTL(time.Hour),
	)
	staleToken := fmt.Sprintf("%d-abc123", time.Now().Add(-2*time.Hour).UnixMilli())

	booking, err := bounded.GetBookingByShareToken(ctx, staleToken)

	suite.Require().Error(err)
	suite.Nil(booking)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "FindBookingByShareToken", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestUpdateBookingStatus_Success() {
	ctx := context.Background()
	bookingID := uuid.NewString()
	updaterUserID := uuid.NewString()

	suite.mockBookingRepo.On("UpdateBookingStatus", ctx, bookingID, "CONFIRMED", updaterUserID).Return(nil).Once()

	err := suite.service.UpdateBookingStatus(ctx, bookingID, "CONFIRMED", updaterUserID)

	suite.Require().NoError(err)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestPriceQuote_PercentageEdited() {
	ctx := context.Background()
	req := dto.PriceQuoteRequest{
		Tours:       validBookingRequest().Tours,
		EditedField: "percentage",
		EditedValue: decimal.NewFromInt(25),
	}

	quote, err := suite.service.PriceQuote(ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(quote.Subtotals, 1)
	suite.True(quote.Subtotals[0].Equal(decimal.NewFromInt(250)))
	suite.True(quote.GrandTotal.Equal(decimal.NewFromInt(250)))
	suite.True(quote.Percentage.Equal(decimal.NewFromInt(25)))
	// 25% of 250, rounded to the nearest whole unit.
	suite.True(quote.AmountPaid.Equal(decimal.NewFromInt(63)))
	suite.Equal("$250", quote.FormattedGrandTotal)
}

func (suite *BookingServiceTestSuite) TestPriceQuote_AmountEditedRecomputesPercentage() {
	ctx := context.Background()
	req := dto.PriceQuoteRequest{
		Tours:       validBookingRequest().Tours,
		EditedField: "amount",
		EditedValue: decimal.NewFromInt(125),
	}

	quote, err := suite.service.PriceQuote(ctx, req)

	suite.Require().NoError(err)
	suite.True(quote.AmountPaid.Equal(decimal.NewFromInt(125)))
	suite.True(quote.Percentage.Equal(decimal.NewFromInt(50)))
}

func TestBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}
