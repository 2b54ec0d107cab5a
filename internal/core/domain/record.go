package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind tags the variant of a financial record. The shared bucketing and
// sorting engine only reads the common projection (amount, currency, due date,
// status); kind-specific fields live on the record and are interpreted by
// kind-aware callers.
type RecordKind string

const (
	KindExpense     RecordKind = "EXPENSE"
	KindReceivable  RecordKind = "RECEIVABLE"
	KindTransaction RecordKind = "BANK_TRANSACTION"
	KindCommission  RecordKind = "COMMISSION"
)

// RecordStatus is the lifecycle status of a financial record.
type RecordStatus string

const (
	StatusPending   RecordStatus = "PENDING"
	StatusPartial   RecordStatus = "PARTIAL"
	StatusPaid      RecordStatus = "PAID"
	StatusReceived  RecordStatus = "RECEIVED"
	StatusCompleted RecordStatus = "COMPLETED"
	StatusOverdue   RecordStatus = "OVERDUE"
	StatusCancelled RecordStatus = "CANCELLED"
)

// Direction distinguishes money flowing in from money flowing out.
type Direction string

const (
	DirectionIncoming Direction = "INCOMING"
	DirectionOutgoing Direction = "OUTGOING"
)

// FinancialRecord is the common shape shared by expenses, receivables, bank
// transactions and commissions. Records are created and mutated by the backing
// store; this layer only aggregates and displays them.
type FinancialRecord struct {
	RecordID     string          `json:"recordID"` // Primary Key (UUID)
	Kind         RecordKind      `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	DueDate      time.Time       `json:"dueDate"`
	Status       RecordStatus    `json:"status"`
	Direction    Direction       `json:"direction,omitempty"`
	Category     string          `json:"category,omitempty"`
	Description  string          `json:"description,omitempty"`
	BookingID    *string         `json:"bookingID,omitempty"` // Set when the record originates from a booking
	AuditFields
}

// IsSettled reports whether the record has reached a terminal paid state.
// Receivables use RECEIVED and bank transactions use COMPLETED where expenses
// use PAID; all three count as settled for bucketing purposes.
func (r FinancialRecord) IsSettled() bool {
	switch r.Status {
	case StatusPaid, StatusReceived, StatusCompleted:
		return true
	}
	return false
}

// IsCancelled reports whether the record was voided.
func (r FinancialRecord) IsCancelled() bool {
	return r.Status == StatusCancelled
}
