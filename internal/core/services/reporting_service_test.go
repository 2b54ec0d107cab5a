package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	portssvc "github.com/rutasur/tour_backoffice_app/internal/core/ports/services"
	"github.com/rutasur/tour_backoffice_app/internal/core/services"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RecordService ---
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) GetRecord(ctx context.Context, recordID string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}

func (m *MockRecordService) ListRecords(ctx context.Context, q dto.ListRecordsQuery) ([]domain.FinancialRecord, string, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.FinancialRecord), args.String(1), args.Error(2)
}

func (m *MockRecordService) SummarizeRecords(ctx context.Context, kind *domain.RecordKind, displayCurrency string, today time.Time) (*domain.FinancialSummary, error) {
	args := m.Called(ctx, kind, displayCurrency, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

func (m *MockRecordService) CreateRecord(ctx context.Context, req dto.CreateRecordRequest, creatorUserID string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}

func (m *MockRecordService) UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest, updaterUserID string) (*domain.FinancialRecord, error) {
	args := m.Called(ctx, recordID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialRecord), args.Error(1)
}

func (m *MockRecordService) DeleteRecord(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

var _ portssvc.RecordSvcFacade = (*MockRecordService)(nil)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRecordService *MockRecordService
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRecordService = new(MockRecordService)
	suite.service = services.NewReportingService(suite.mockRecordService)
}

func kindMatcher(want domain.RecordKind) interface{} {
	return mock.MatchedBy(func(kind *domain.RecordKind) bool {
		return kind != nil && *kind == want
	})
}

func (suite *ReportingServiceTestSuite) TestDashboard_NetPosition() {
	ctx := context.Background()
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	summaries := map[domain.RecordKind]*domain.FinancialSummary{
		domain.KindExpense:     {Total: decimal.NewFromInt(400), CurrencyCode: "USD"},
		domain.KindReceivable:  {Total: decimal.NewFromInt(1000), CurrencyCode: "USD"},
		domain.KindTransaction: {Total: decimal.NewFromInt(50), CurrencyCode: "USD"},
		domain.KindCommission:  {Total: decimal.NewFromInt(30), CurrencyCode: "USD"},
	}
	for kind, summary := range summaries {
		suite.mockRecordService.On("SummarizeRecords", ctx, kindMatcher(kind), "USD", today).Return(summary, nil).Once()
	}

	report, err := suite.service.Dashboard(ctx, "USD", today)

	suite.Require().NoError(err)
	suite.True(report.NetPosition.Equal(decimal.NewFromInt(600)))
	suite.True(report.Expenses.Total.Equal(decimal.NewFromInt(400)))
	suite.Equal("USD", report.CurrencyCode)
	suite.mockRecordService.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDashboard_SummaryErrorFails() {
	ctx := context.Background()
	today := time.Now()

	suite.mockRecordService.On("SummarizeRecords", ctx, kindMatcher(domain.KindExpense), "USD", today).
		Return(nil, errors.New("rates unavailable")).Once()

	report, err := suite.service.Dashboard(ctx, "USD", today)

	suite.Require().Error(err)
	suite.Nil(report)
}

func exportRecords() []domain.FinancialRecord {
	return []domain.FinancialRecord{
		{
			RecordID:     "rec-1",
			Kind:         domain.KindExpense,
			Amount:       decimal.NewFromInt(1500),
			CurrencyCode: "USD",
			DueDate:      time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			Status:       domain.StatusPending,
			Category:     "fuel",
			Description:  "Airport transfers",
		},
	}
}

func (suite *ReportingServiceTestSuite) TestExportRecordsCSV() {
	ctx := context.Background()
	q := dto.ListRecordsQuery{}

	suite.mockRecordService.On("ListRecords", ctx, q).Return(exportRecords(), "", nil).Once()

	out, err := suite.service.ExportRecordsCSV(ctx, q)

	suite.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	suite.Require().Len(lines, 2)
	suite.Contains(lines[0], "Due Date")
	suite.Contains(lines[1], "rec-1")
	suite.Contains(lines[1], "EXPENSE")
	suite.Contains(lines[1], "2024-06-10")
	suite.Contains(lines[1], "fuel")
}

func (suite *ReportingServiceTestSuite) TestExportRecordsXLSX() {
	ctx := context.Background()
	q := dto.ListRecordsQuery{}

	suite.mockRecordService.On("ListRecords", ctx, q).Return(exportRecords(), "", nil).Once()

	out, err := suite.service.ExportRecordsXLSX(ctx, q)

	suite.Require().NoError(err)
	suite.NotEmpty(out)
	// XLSX files are zip archives.
	suite.Equal("PK", string(out[:2]))
}

func (suite *ReportingServiceTestSuite) TestExportRecordsCSV_ListError() {
	ctx := context.Background()
	q := dto.ListRecordsQuery{}

	suite.mockRecordService.On("ListRecords", ctx, q).Return(nil, "", errors.New("db down")).Once()

	out, err := suite.service.ExportRecordsCSV(ctx, q)

	suite.Require().Error(err)
	suite.Nil(out)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
