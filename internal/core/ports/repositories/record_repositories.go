package repositories

import (
	"context"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
)

// RecordListFilter narrows a financial record listing at the storage layer.
// In-memory sort/filter/summary refinement happens in the service on top of
// whatever this returns.
type RecordListFilter struct {
	Kind      *domain.RecordKind
	Status    *domain.RecordStatus
	DueBefore *time.Time
	DueAfter  *time.Time
	Limit     int
	NextToken string
}

// RecordListResult is one page of records plus the token for the next page.
type RecordListResult struct {
	Records   []domain.FinancialRecord
	NextToken string
}

// RecordReader defines read operations for financial records
type RecordReader interface {
	// FindRecordByID retrieves a single financial record.
	FindRecordByID(ctx context.Context, recordID string) (*domain.FinancialRecord, error)

	// ListRecords retrieves a page of records matching the filter, ordered by
	// due date then creation time.
	ListRecords(ctx context.Context, filter RecordListFilter) (*RecordListResult, error)
}

// RecordWriter defines write operations for financial records
type RecordWriter interface {
	// SaveRecord persists a new financial record.
	SaveRecord(ctx context.Context, record domain.FinancialRecord) error

	// UpdateRecord persists changes to an existing record.
	UpdateRecord(ctx context.Context, record domain.FinancialRecord) error

	// DeleteRecord removes a record.
	DeleteRecord(ctx context.Context, recordID string) error
}

// RecordRepositoryFacade combines all record-related repository interfaces
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
}
