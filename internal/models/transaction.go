package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. The recurrence columns
// are all null for one-off entries.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	Description   string          `db:"description"`
	Category      string          `db:"category"`
	Type          string          `db:"type"`
	PaymentMethod string          `db:"payment_method"`
	Contact       string          `db:"contact"`

	RecurrenceFrequency *string    `db:"recurrence_frequency"`
	RecurrenceInterval  *int       `db:"recurrence_interval"`
	RecurrenceStartDate *time.Time `db:"recurrence_start_date"`
	RecurrenceEndDate   *time.Time `db:"recurrence_end_date"`
	RecurrenceParentID  *string    `db:"recurrence_parent_id"`

	AuditFields
}
