package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/apperrors"
	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/core/finance"
	portsrepo "github.com/rutasur/tour_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/rutasur/tour_backoffice_app/internal/core/ports/services"
	"github.com/rutasur/tour_backoffice_app/internal/core/services"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RecordRepository ---
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}

func (m *MockRecordRepository) ListRecords(ctx context.Context, filter portsrepo.RecordListFilter) (*portsrepo.RecordListResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.RecordListResult), args.Error(1)
}

func (m *MockRecordRepository) SaveRecord(ctx context.Context, record domain.FinancialRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) UpdateRecord(ctx context.Context, record domain.FinancialRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository) DeleteRecord(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) RateTable(ctx context.Context) (finance.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(finance.RateTable), args.Error(1)
}

// --- Test Suite ---
type RecordServiceTestSuite struct {
	suite.Suite
	mockRecordRepo *MockRecordRepository
	mockRateSvc    *MockExchangeRateService
	service        portssvc.RecordSvcFacade
}

func (suite *RecordServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockRecordRepository)
	suite.mockRateSvc = new(MockExchangeRateService)
	suite.service = services.NewRecordService(
		suite.mockRecordRepo,
		suite.mockRateSvc,
		services.WithDefaultDisplayCurrency("USD"),
	)
}

// --- Test Cases ---

func (suite *RecordServiceTestSuite) TestCreateRecord_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateRecordRequest{
		Kind:         domain.KindExpense,
		Amount:       "1500.50",
		CurrencyCode: "USD",
		DueDate:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Status:       domain.StatusPending,
		Direction:    domain.DirectionOutgoing,
		Category:     "fuel",
	}

	suite.mockRecordRepo.On("SaveRecord", ctx, mock.AnythingOfType("domain.FinancialRecord")).Return(nil).Once()

	record, err := suite.service.CreateRecord(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.NotEmpty(record.RecordID)
	suite.True(record.Amount.Equal(decimal.RequireFromString("1500.50")))
	suite.Equal(creatorUserID, record.CreatedBy)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestCreateRecord_MalformedAmountCoercesToZero() {
	ctx := context.Background()
	req := dto.CreateRecordRequest{
		Kind:         domain.KindExpense,
		Amount:       "not-a-number",
		CurrencyCode: "USD",
		DueDate:      time.Now(),
		Status:       domain.StatusPending,
	}

	suite.mockRecordRepo.On("SaveRecord", ctx, mock.MatchedBy(func(r domain.FinancialRecord) bool {
		return r.Amount.IsZero()
	})).Return(nil).Once()

	record, err := suite.service.CreateRecord(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(record.Amount.IsZero())
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestCreateRecord_RepoError() {
	ctx := context.Background()
	req := dto.CreateRecordRequest{
		Kind:         domain.KindExpense,
		Amount:       "10",
		CurrencyCode: "USD",
		DueDate:      time.Now(),
		Status:       domain.StatusPending,
	}
	dbErr := fmt.Errorf("db connection failed")

	suite.mockRecordRepo.On("SaveRecord", ctx, mock.AnythingOfType("domain.FinancialRecord")).Return(dbErr).Once()

	record, err := suite.service.CreateRecord(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, dbErr)
}

func (suite *RecordServiceTestSuite) TestGetRecord_NotFound() {
	ctx := context.Background()
	recordID := uuid.NewString()

	suite.mockRecordRepo.On("FindRecordByID", ctx, recordID).Return(nil, apperrors.ErrNotFound).Once()

	record, err := suite.service.GetRecord(ctx, recordID)

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	recordID := uuid.NewString()
	existing := &domain.FinancialRecord{
		RecordID:     recordID,
		Kind:         domain.KindExpense,
		Amount:       decimal.NewFromInt(100),
		CurrencyCode: "USD",
		Status:       domain.StatusPending,
		Category:     "fuel",
	}
	newStatus := domain.StatusPaid

	suite.mockRecordRepo.On("FindRecordByID", ctx, recordID).Return(existing, nil).Once()
	suite.mockRecordRepo.On("UpdateRecord", ctx, mock.MatchedBy(func(r domain.FinancialRecord) bool {
		return r.Status == domain.StatusPaid && r.Category == "fuel" && r.Amount.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateRecord(ctx, recordID, dto.UpdateRecordRequest{Status: &newStatus}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPaid, updated.Status)
	suite.Equal("fuel", updated.Category)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestListRecords_NoSortSkipsRateLookup() {
	ctx := context.Background()
	page := &portsrepo.RecordListResult{
		Records: []domain.FinancialRecord{
			{RecordID: "r1", Kind: domain.KindExpense, CurrencyCode: "USD"},
			{RecordID: "r2", Kind: domain.KindExpense, CurrencyCode: "CLP"},
		},
		NextToken: "next-page",
	}

	suite.mockRecordRepo.On("ListRecords", ctx, mock.AnythingOfType("repositories.RecordListFilter")).Return(page, nil).Once()

	records, nextToken, err := suite.service.ListRecords(ctx, dto.ListRecordsQuery{})

	suite.Require().NoError(err)
	suite.Len(records, 2)
	suite.Equal("next-page", nextToken)
	suite.mockRateSvc.AssertNotCalled(suite.T(), "RateTable", mock.Anything)
}

func (suite *RecordServiceTestSuite) TestListRecords_FiltersAndSortsByConvertedAmount() {
	ctx := context.Background()
	page := &portsrepo.RecordListResult{
		Records: []domain.FinancialRecord{
			{RecordID: "big", Amount: decimal.NewFromInt(20), CurrencyCode: "USD", Category: "tours"},
			{RecordID: "small", Amount: decimal.NewFromInt(9000), CurrencyCode: "CLP", Category: "tours"},
			{RecordID: "voided", Amount: decimal.NewFromInt(5), CurrencyCode: "USD", Category: "tours", Status: domain.StatusCancelled},
			{RecordID: "other", Amount: decimal.NewFromInt(1), CurrencyCode: "USD", Category: "office"},
		},
	}
	// 1 USD = 900 CLP, so 9000 CLP is 10 USD and sorts before 20 USD.
	rates := finance.RateTable{"CLP": {"USD": decimal.RequireFromString("0.00111")}}

	suite.mockRecordRepo.On("ListRecords", ctx, mock.AnythingOfType("repositories.RecordListFilter")).Return(page, nil).Once()
	suite.mockRateSvc.On("RateTable", ctx).Return(rates, nil).Once()

	records, _, err := suite.service.ListRecords(ctx, dto.ListRecordsQuery{
		Category:        "tours",
		ExcludeVoided:   true,
		SortField:       "amount",
		SortDirection:   "asc",
		DisplayCurrency: "USD",
	})

	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal("small", records[0].RecordID)
	suite.Equal("big", records[1].RecordID)
}

func (suite *RecordServiceTestSuite) TestListRecords_SortSurvivesRateTableError() {
	ctx := context.Background()
	page := &portsrepo.RecordListResult{
		Records: []domain.FinancialRecord{
			{RecordID: "b", Amount: decimal.NewFromInt(2), CurrencyCode: "USD"},
			{RecordID: "a", Amount: decimal.NewFromInt(1), CurrencyCode: "USD"},
		},
	}

	suite.mockRecordRepo.On("ListRecords", ctx, mock.AnythingOfType("repositories.RecordListFilter")).Return(page, nil).Once()
	suite.mockRateSvc.On("RateTable", ctx).Return(nil, fmt.Errorf("rates unavailable")).Once()

	records, _, err := suite.service.ListRecords(ctx, dto.ListRecordsQuery{
		SortField:     "amount",
		SortDirection: "asc",
	})

	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal("a", records[0].RecordID)
}

func (suite *RecordServiceTestSuite) TestSummarizeRecords_PagesThroughAllRecords() {
	ctx := context.Background()
	kind := domain.KindReceivable
	today := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	firstPage := &portsrepo.RecordListResult{
		Records: []domain.FinancialRecord{
			{Amount: decimal.NewFromInt(100), CurrencyCode: "USD", Status: domain.StatusPaid, DueDate: today},
		},
		NextToken: "page-2",
	}
	secondPage := &portsrepo.RecordListResult{
		Records: []domain.FinancialRecord{
			{Amount: decimal.NewFromInt(50), CurrencyCode: "USD", Status: domain.StatusPending, DueDate: today.AddDate(0, 0, -3)},
		},
	}

	suite.mockRecordRepo.On("ListRecords", ctx, mock.MatchedBy(func(f portsrepo.RecordListFilter) bool {
		return f.NextToken == ""
	})).Return(firstPage, nil).Once()
	suite.mockRecordRepo.On("ListRecords", ctx, mock.MatchedBy(func(f portsrepo.RecordListFilter) bool {
		return f.NextToken == "page-2"
	})).Return(secondPage, nil).Once()
	suite.mockRateSvc.On("RateTable", ctx).Return(finance.RateTable{}, nil).Once()

	summary, err := suite.service.SummarizeRecords(ctx, &kind, "USD", today)

	suite.Require().NoError(err)
	suite.True(summary.Paid.Equal(decimal.NewFromInt(100)))
	suite.True(summary.Overdue.Equal(decimal.NewFromInt(50)))
	suite.True(summary.Total.Equal(decimal.NewFromInt(150)))
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestSummarizeRecords_RateTableErrorFails() {
	ctx := context.Background()

	suite.mockRecordRepo.On("ListRecords", ctx, mock.AnythingOfType("repositories.RecordListFilter")).
		Return(&portsrepo.RecordListResult{}, nil).Once()
	rateErr := fmt.Errorf("rates unavailable")
	suite.mockRateSvc.On("RateTable", ctx).Return(nil, rateErr).Once()

	summary, err := suite.service.SummarizeRecords(ctx, nil, "USD", time.Now())

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, rateErr)
}

func (suite *RecordServiceTestSuite) TestDeleteRecord_Success() {
	ctx := context.Background()
	recordID := uuid.NewString()

	suite.mockRecordRepo.On("DeleteRecord", ctx, recordID).Return(nil).Once()

	err := suite.service.DeleteRecord(ctx, recordID)

	suite.Require().NoError(err)
	suite.mockRecordRepo.AssertExpectations(suite.T())
}

func TestRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}
