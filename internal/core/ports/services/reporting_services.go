package services

import (
	"context"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
)

// ReportingSvcFacade produces the dashboard aggregates and the export
// surfaces fed by the sorted/filtered record pipeline.
type ReportingSvcFacade interface {
	// Dashboard computes the per-kind financial summaries in one display
	// currency plus the operator's net position.
	Dashboard(ctx context.Context, displayCurrency string, today time.Time) (*domain.DashboardReport, error)

	// ExportRecordsXLSX renders the records matching the query as a spreadsheet.
	ExportRecordsXLSX(ctx context.Context, q dto.ListRecordsQuery) ([]byte, error)

	// ExportRecordsCSV renders the records matching the query as CSV.
	ExportRecordsCSV(ctx context.Context, q dto.ListRecordsQuery) ([]byte, error)
}
