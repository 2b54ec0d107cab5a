package dto

import (
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/core/finance"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest defines the structure for creating a financial record.
// Amount arrives as a string so that malformed client values coerce to zero
// instead of failing the whole submission.
type CreateRecordRequest struct {
	Kind         domain.RecordKind   `json:"kind" binding:"required,oneof=EXPENSE RECEIVABLE BANK_TRANSACTION COMMISSION"`
	Amount       string              `json:"amount" binding:"required"`
	CurrencyCode string              `json:"currencyCode" binding:"required,currencycode"`
	DueDate      time.Time           `json:"dueDate" binding:"required"`
	Status       domain.RecordStatus `json:"status" binding:"required,oneof=PENDING PARTIAL PAID RECEIVED COMPLETED OVERDUE CANCELLED"`
	Direction    domain.Direction    `json:"direction" binding:"omitempty,oneof=INCOMING OUTGOING"`
	Category     string              `json:"category"`
	Description  string              `json:"description"`
	BookingID    *string             `json:"bookingID"`
}

// UpdateRecordRequest defines the mutable fields of a financial record.
type UpdateRecordRequest struct {
	Amount       *string              `json:"amount"`
	CurrencyCode *string              `json:"currencyCode" binding:"omitempty,currencycode"`
	DueDate      *time.Time           `json:"dueDate"`
	Status       *domain.RecordStatus `json:"status" binding:"omitempty,oneof=PENDING PARTIAL PAID RECEIVED COMPLETED OVERDUE CANCELLED"`
	Category     *string              `json:"category"`
	Description  *string              `json:"description"`
}

// ListRecordsQuery carries the list endpoint's filter, sort and pagination
// controls. A zero-valued filter field means "all".
type ListRecordsQuery struct {
	Kind            string `form:"kind" binding:"omitempty,oneof=EXPENSE RECEIVABLE BANK_TRANSACTION COMMISSION"`
	Status          string `form:"status" binding:"omitempty,oneof=PENDING PARTIAL PAID RECEIVED COMPLETED OVERDUE CANCELLED"`
	Category        string `form:"category"`
	Direction       string `form:"direction" binding:"omitempty,oneof=INCOMING OUTGOING"`
	ExcludeVoided   bool   `form:"excludeVoided"`
	SortField       string `form:"sortField" binding:"omitempty,oneof=amount dueDate status category description currency"`
	SortDirection   string `form:"sortDirection" binding:"omitempty,oneof=asc desc"`
	DisplayCurrency string `form:"displayCurrency" binding:"omitempty,currencycode"`
	Limit           int    `form:"limit" binding:"omitempty,gte=1,lte=500"`
	NextToken       string `form:"nextToken"`
}

// RecordResponse defines the API shape of a financial record, including the
// display-formatted amount.
type RecordResponse struct {
	RecordID        string              `json:"recordID"`
	Kind            domain.RecordKind   `json:"kind"`
	Amount          decimal.Decimal     `json:"amount"`
	FormattedAmount string              `json:"formattedAmount"`
	CurrencyCode    string              `json:"currencyCode"`
	DueDate         time.Time           `json:"dueDate"`
	Status          domain.RecordStatus `json:"status"`
	Direction       domain.Direction    `json:"direction,omitempty"`
	Category        string              `json:"category,omitempty"`
	Description     string              `json:"description,omitempty"`
	BookingID       *string             `json:"bookingID,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
}

// ToRecordResponse converts a domain.FinancialRecord to RecordResponse DTO
func ToRecordResponse(record *domain.FinancialRecord) RecordResponse {
	return RecordResponse{
		RecordID:        record.RecordID,
		Kind:            record.Kind,
		Amount:          record.Amount,
		FormattedAmount: finance.Format(record.Amount, record.CurrencyCode),
		CurrencyCode:    record.CurrencyCode,
		DueDate:         record.DueDate,
		Status:          record.Status,
		Direction:       record.Direction,
		Category:        record.Category,
		Description:     record.Description,
		BookingID:       record.BookingID,
		CreatedAt:       record.CreatedAt,
	}
}

// ListRecordsResponse is one page of records plus the pagination token.
type ListRecordsResponse struct {
	Records   []RecordResponse `json:"records"`
	NextToken string           `json:"nextToken,omitempty"`
}

// ToListRecordsResponse converts a record page to the response DTO.
func ToListRecordsResponse(records []domain.FinancialRecord, nextToken string) ListRecordsResponse {
	responses := make([]RecordResponse, len(records))
	for i := range records {
		responses[i] = ToRecordResponse(&records[i])
	}
	return ListRecordsResponse{Records: responses, NextToken: nextToken}
}

// SummaryResponse is the bucketed financial summary with display formatting
// alongside the raw values.
type SummaryResponse struct {
	Overdue           decimal.Decimal `json:"overdue"`
	DueToday          decimal.Decimal `json:"dueToday"`
	Due               decimal.Decimal `json:"due"`
	Paid              decimal.Decimal `json:"paid"`
	Total             decimal.Decimal `json:"total"`
	FormattedTotal    string          `json:"formattedTotal"`
	CurrencyCode      string          `json:"currencyCode"`
}

// ToSummaryResponse converts a domain.FinancialSummary to SummaryResponse DTO
func ToSummaryResponse(summary *domain.FinancialSummary) SummaryResponse {
	return SummaryResponse{
		Overdue:        summary.Overdue,
		DueToday:       summary.DueToday,
		Due:            summary.Due,
		Paid:           summary.Paid,
		Total:          summary.Total,
		FormattedTotal: finance.FormatWhole(summary.Total, summary.CurrencyCode),
		CurrencyCode:   summary.CurrencyCode,
	}
}
