package domain

import "github.com/shopspring/decimal"

// FinancialSummary holds the due-date buckets for a record set, all values
// converted to one display currency. A record lands in exactly one of the
// four status buckets; Total always includes it.
type FinancialSummary struct {
	Overdue      decimal.Decimal `json:"overdue"`
	DueToday     decimal.Decimal `json:"dueToday"`
	Due          decimal.Decimal `json:"due"`
	Paid         decimal.Decimal `json:"paid"`
	Total        decimal.Decimal `json:"total"`
	CurrencyCode string          `json:"currencyCode"`
}

// DashboardReport combines per-kind summaries for the dashboard view.
type DashboardReport struct {
	Expenses     FinancialSummary `json:"expenses"`
	Receivables  FinancialSummary `json:"receivables"`
	Transactions FinancialSummary `json:"transactions"`
	Commissions  FinancialSummary `json:"commissions"`
	NetPosition  decimal.Decimal  `json:"netPosition"` // receivables total minus expenses total
	CurrencyCode string           `json:"currencyCode"`
}
