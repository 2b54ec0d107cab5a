package services

import (
	"context"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
)

// RecordReaderSvc defines read operations over financial records
type RecordReaderSvc interface {
	// GetRecord retrieves a single financial record.
	GetRecord(ctx context.Context, recordID string) (*domain.FinancialRecord, error)

	// ListRecords retrieves records for the query, applying the in-memory
	// filter and currency-aware sort pipeline. Returns the page and the next
	// pagination token.
	ListRecords(ctx context.Context, q dto.ListRecordsQuery) ([]domain.FinancialRecord, string, error)

	// SummarizeRecords buckets the matching records by due date and status,
	// all values converted into the display currency.
	SummarizeRecords(ctx context.Context, kind *domain.RecordKind, displayCurrency string, today time.Time) (*domain.FinancialSummary, error)
}

// RecordWriterSvc defines write operations over financial records
type RecordWriterSvc interface {
	CreateRecord(ctx context.Context, req dto.CreateRecordRequest, creatorUserID string) (*domain.FinancialRecord, error)
	UpdateRecord(ctx context.Context, recordID string, req dto.UpdateRecordRequest, updaterUserID string) (*domain.FinancialRecord, error)
	DeleteRecord(ctx context.Context, recordID string) error
}

// RecordSvcFacade combines all record-related service interfaces
type RecordSvcFacade interface {
	RecordReaderSvc
	RecordWriterSvc
}
