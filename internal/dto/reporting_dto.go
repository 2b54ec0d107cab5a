package dto

import (
	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/core/finance"
	"github.com/shopspring/decimal"
)

// DashboardResponse is the dashboard aggregate: one bucketed summary per
// record kind plus the operator's net position, all in one display currency.
type DashboardResponse struct {
	Expenses              SummaryResponse `json:"expenses"`
	Receivables           SummaryResponse `json:"receivables"`
	Transactions          SummaryResponse `json:"transactions"`
	Commissions           SummaryResponse `json:"commissions"`
	NetPosition           decimal.Decimal `json:"netPosition"`
	FormattedNetPosition  string          `json:"formattedNetPosition"`
	CurrencyCode          string          `json:"currencyCode"`
}

// ToDashboardResponse converts a domain.DashboardReport to DashboardResponse DTO
func ToDashboardResponse(report *domain.DashboardReport) DashboardResponse {
	return DashboardResponse{
		Expenses:             ToSummaryResponse(&report.Expenses),
		Receivables:          ToSummaryResponse(&report.Receivables),
		Transactions:         ToSummaryResponse(&report.Transactions),
		Commissions:          ToSummaryResponse(&report.Commissions),
		NetPosition:          report.NetPosition,
		FormattedNetPosition: finance.Format(report.NetPosition, report.CurrencyCode),
		CurrencyCode:         report.CurrencyCode,
	}
}
