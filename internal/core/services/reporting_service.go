package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/core/finance"
	portssvc "github.com/rutasur/tour_backoffice_app/internal/core/ports/services"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
	"github.com/xuri/excelize/v2"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	recordService portssvc.RecordSvcFacade
}

// NewReportingService creates a new reporting service on top of the record pipeline.
func NewReportingService(recordService portssvc.RecordSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{recordService: recordService}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Dashboard computes one bucketed summary per record kind in the display
// currency, plus the net position (receivables total minus expenses total).
func (s *reportingService) Dashboard(ctx context.Context, displayCurrency string, today time.Time) (*domain.DashboardReport, error) {
	report := &domain.DashboardReport{CurrencyCode: displayCurrency}

	kinds := []struct {
		kind domain.RecordKind
		dest *domain.FinancialSummary
	}{
		{domain.KindExpense, &report.Expenses},
		{domain.KindReceivable, &report.Receivables},
		{domain.KindTransaction, &report.Transactions},
		{domain.KindCommission, &report.Commissions},
	}
	for _, k := range kinds {
		kind := k.kind
		summary, err := s.recordService.SummarizeRecords(ctx, &kind, displayCurrency, today)
		if err != nil {
			s.LogError(ctx, err, "Failed to summarize records for dashboard",
				slog.String("kind", string(kind)))
			return nil, fmt.Errorf("failed to build dashboard for %s: %w", kind, err)
		}
		*k.dest = *summary
	}

	report.NetPosition = report.Receivables.Total.Sub(report.Expenses.Total)

	s.LogInfo(ctx, "Dashboard report generated",
		slog.String("display_currency", displayCurrency),
		slog.String("net_position", report.NetPosition.String()))
	return report, nil
}

var exportHeader = []string{"ID", "Kind", "Amount", "Currency", "Formatted", "Due Date", "Status", "Category", "Description"}

func exportRow(r domain.FinancialRecord) []string {
	return []string{
		r.RecordID,
		string(r.Kind),
		r.Amount.String(),
		r.CurrencyCode,
		finance.Format(r.Amount, r.CurrencyCode),
		r.DueDate.Format("2006-01-02"),
		string(r.Status),
		r.Category,
		r.Description,
	}
}

// ExportRecordsXLSX renders the records matching the query as a spreadsheet.
// The rows are the already-sorted/filtered output of the record pipeline.
func (s *reportingService) ExportRecordsXLSX(ctx context.Context, q dto.ListRecordsQuery) ([]byte, error) {
	records, _, err := s.recordService.ListRecords(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records for XLSX export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Records"
	f.SetSheetName(f.GetSheetName(0), sheet)

	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write XLSX header: %w", err)
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute XLSX cell: %w", err)
		}
		row := exportRow(r)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write XLSX row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize XLSX export: %w", err)
	}

	s.LogInfo(ctx, "XLSX export generated", slog.Int("row_count", len(records)))
	return buf.Bytes(), nil
}

// ExportRecordsCSV renders the records matching the query as CSV with the
// same columns as the spreadsheet export.
func (s *reportingService) ExportRecordsCSV(ctx context.Context, q dto.ListRecordsQuery) ([]byte, error) {
	records, _, err := s.recordService.ListRecords(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records for CSV export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(exportRow(r)); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV export: %w", err)
	}

	s.LogInfo(ctx, "CSV export generated", slog.Int("row_count", len(records)))
	return buf.Bytes(), nil
}
