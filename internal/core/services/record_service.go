package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/core/finance"
	portsrepo "github.com/rutasur/tour_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/rutasur/tour_backoffice_app/internal/core/ports/services"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
	"github.com/google/uuid"
)

const defaultListLimit = 100

// recordService implements the RecordSvcFacade interface
type recordService struct {
	BaseService
	recordRepo      portsrepo.RecordRepositoryFacade
	rateService     portssvc.ExchangeRateReaderSvc
	defaultCurrency string
}

// RecordServiceOption is a functional option for configuring the record service
type RecordServiceOption func(*recordService)

// WithDefaultDisplayCurrency sets the currency used when a query does not name one.
func WithDefaultDisplayCurrency(code string) RecordServiceOption {
	return func(s *recordService) {
		s.defaultCurrency = code
	}
}

// NewRecordService creates a new record service with the provided options
func NewRecordService(repo portsrepo.RecordRepositoryFacade, rateService portssvc.ExchangeRateReaderSvc, options ...RecordServiceOption) portssvc.RecordSvcFacade {
	svc := &recordService{
		recordRepo:      repo,
		rateService:     rateService,
		defaultCurrency: "USD",
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RecordSvcFacade = (*recordService)(nil)

// CreateRecord persists a new financial record. The amount string coerces to
// zero when malformed, matching how the forms treat unparseable input.
func (s *recordService) CreateRecord(ctx context.Context, req dto.CreateRecordRequest, creatorUserID string) (*domain.FinancialRecord, error) {
	now := time.Now()
	record := domain.FinancialRecord{
		RecordID:     uuid.NewString(),
		Kind:         req.Kind,
		Amount:       finance.ParseAmount(req.Amount),
		CurrencyCode: req.CurrencyCode,
		DueDate:      req.DueDate,
		Status:       req.Status,
		Direction:    req.Direction,
		Category:     req.Category,
		Description:  req.Description,
		BookingID:    req.BookingID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save financial record", slog.String("kind", string(req.Kind)))
		return nil, fmt.Errorf("failed to create record in service: %w", err)
	}

	s.LogInfo(ctx, "Financial record created",
		slog.String("record_id", record.RecordID),
		slog.String("kind", string(record.Kind)))
	return &record, nil
}

// GetRecord retrieves a single financial record.
func (s *recordService) GetRecord(ctx context.Context, recordID string) (*domain.FinancialRecord, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get record in service: %w", err)
	}
	return record, nil
}

// UpdateRecord applies the non-nil fields of the request to an existing record.
func (s *recordService) UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest, updaterUserID string) (*domain.FinancialRecord, error) {
	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load record for update: %w", err)
	}

	if req.Amount != nil {
		record.Amount = finance.ParseAmount(*req.Amount)
	}
	if req.CurrencyCode != nil {
		record.CurrencyCode = *req.CurrencyCode
	}
	if req.DueDate != nil {
		record.DueDate = *req.DueDate
	}
	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.Category != nil {
		record.Category = *req.Category
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = updaterUserID

	if err := s.recordRepo.UpdateRecord(ctx, *record); err != nil {
		s.LogError(ctx, err, "Failed to update financial record", slog.String("record_id", recordID))
		return nil, fmt.Errorf("failed to update record in service: %w", err)
	}
	return record, nil
}

// DeleteRecord removes a record.
func (s *recordService) DeleteRecord(ctx context.Context, recordID string) error {
	if err := s.recordRepo.DeleteRecord(ctx, recordID); err != nil {
		return fmt.Errorf("failed to delete record in service: %w", err)
	}
	s.LogInfo(ctx, "Financial record deleted", slog.String("record_id", recordID))
	return nil
}

// ListRecords fetches a page from storage, then runs the in-memory
// filter and currency-aware sort pipeline over it.
func (s *recordService) ListRecords(ctx context.Context, q dto.ListRecordsQuery) ([]domain.FinancialRecord, string, error) {
	filter := portsrepo.RecordListFilter{
		Limit:     q.Limit,
		NextToken: q.NextToken,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if q.Kind != "" {
		kind := domain.RecordKind(q.Kind)
		filter.Kind = &kind
	}
	if q.Status != "" {
		status := domain.RecordStatus(q.Status)
		filter.Status = &status
	}

	page, err := s.recordRepo.ListRecords(ctx, filter)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list records in service: %w", err)
	}

	records := s.refine(ctx, page.Records, q)
	return records, page.NextToken, nil
}

// refine applies the predicate filters and, when requested, the tri-state sort
// to an already-fetched record set.
func (s *recordService) refine(ctx context.Context, records []domain.FinancialRecord, q dto.ListRecordsQuery) []domain.FinancialRecord {
	preds := []finance.Predicate[domain.FinancialRecord]{finance.All[domain.FinancialRecord]}
	if q.Category != "" {
		preds = append(preds, finance.ByCategory(q.Category))
	}
	if q.Direction != "" {
		preds = append(preds, finance.ByDirection(domain.Direction(q.Direction)))
	}
	if q.ExcludeVoided {
		preds = append(preds, finance.NotCancelled)
	}
	records = finance.Filter(records, preds...)

	if q.SortField == "" || q.SortDirection == "" {
		return records
	}

	display := q.DisplayCurrency
	if display == "" {
		display = s.defaultCurrency
	}
	rates, err := s.rateService.RateTable(ctx)
	if err != nil {
		// Sorting still works without rates; amounts fall back to raw values.
		s.LogError(ctx, err, "Failed to load rate table for sorting, using raw amounts")
		rates = finance.RateTable{}
	}
	state := finance.SortState{
		Field:     finance.SortField(q.SortField),
		Direction: finance.SortDirection(q.SortDirection),
	}
	return finance.SortRecords(records, state, display, rates)
}

// SummarizeRecords buckets all records of a kind (or every kind when nil) by
// due date and status in the display currency.
func (s *recordService) SummarizeRecords(ctx context.Context, kind *domain.RecordKind, displayCurrency string, today time.Time) (*domain.FinancialSummary, error) {
	if displayCurrency == "" {
		displayCurrency = s.defaultCurrency
	}

	records, err := s.fetchAll(ctx, kind)
	if err != nil {
		return nil, err
	}

	rates, err := s.rateService.RateTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate table for summary: %w", err)
	}

	summary := finance.Summarize(records, displayCurrency, rates, today)
	return &summary, nil
}

// fetchAll pages through the repository until the record set is exhausted.
func (s *recordService) fetchAll(ctx context.Context, kind *domain.RecordKind) ([]domain.FinancialRecord, error) {
	var all []domain.FinancialRecord
	filter := portsrepo.RecordListFilter{Kind: kind, Limit: defaultListLimit}
	for {
		page, err := s.recordRepo.ListRecords(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch records for summary: %w", err)
		}
		all = append(all, page.Records...)
		if page.NextToken == "" {
			return all, nil
		}
		filter.NextToken = page.NextToken
	}
}
