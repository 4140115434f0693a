package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// RecurrenceFrequency enumerates the supported repeat cadences for a
// recurring transaction.
type RecurrenceFrequency string

const (
	Daily   RecurrenceFrequency = "daily"
	Weekly  RecurrenceFrequency = "weekly"
	Monthly RecurrenceFrequency = "monthly"
	Yearly  RecurrenceFrequency = "yearly"
)

// Recurrence describes how a transaction repeats. A nil Recurrence on a
// Transaction means it is a one-off entry.
type Recurrence struct {
	Frequency           RecurrenceFrequency `json:"frequency"`
	Interval            int                 `json:"interval"` // every N periods, >= 1
	StartDate           time.Time           `json:"startDate"`
	EndDate             *time.Time          `json:"endDate,omitempty"`
	ParentTransactionID *string             `json:"parentTransactionID,omitempty"`
}

// Transaction is a single money movement recorded by a user.
// Amount is always positive; the sign is carried by Type.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID)
	UserID        string          `json:"userID"`        // Owner (Not Null)
	Amount        decimal.Decimal `json:"amount"`        // Positive value
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Category      string          `json:"category"` // Open vocabulary
	Type          TransactionType `json:"type"`     // income or expense
	PaymentMethod string          `json:"paymentMethod"`
	Recurrence    *Recurrence     `json:"recurrence,omitempty"`
	Contact       string          `json:"contact,omitempty"` // Optional counterparty
	AuditFields
}

// SignedAmount returns the amount with expense entries negated, the form
// used by balance sums and the export surface.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}
