package dto

import (
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/core/finance"
	"github.com/shopspring/decimal"
)

// RecurrenceRequest describes how a created transaction repeats.
// ParentTransactionID links a materialized occurrence back to the entry
// that defined the series; deleting the parent removes its occurrences.
type RecurrenceRequest struct {
	Frequency           string     `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	Interval            int        `json:"interval" binding:"required,min=1"`
	StartDate           time.Time  `json:"startDate" binding:"required"`
	EndDate             *time.Time `json:"endDate,omitempty"`
	ParentTransactionID *string    `json:"parentTransactionID,omitempty"`
}

// CreateTransactionRequest is the payload for recording a transaction.
type CreateTransactionRequest struct {
	Amount        decimal.Decimal    `json:"amount" binding:"required"`
	Date          time.Time          `json:"date" binding:"required"`
	Description   string             `json:"description" binding:"required"`
	Category      string             `json:"category" binding:"required"`
	Type          string             `json:"type" binding:"required,oneof=income expense"`
	PaymentMethod string             `json:"paymentMethod"`
	Recurrence    *RecurrenceRequest `json:"recurrence,omitempty"`
	Contact       string             `json:"contact,omitempty"`
}

// UpdateTransactionRequest carries the editable transaction fields; nil
// pointers leave the stored value untouched.
type UpdateTransactionRequest struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Date          *time.Time       `json:"date,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Type          *string          `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	Contact       *string          `json:"contact,omitempty"`
}

// TransactionResponse is the API shape of a transaction.
type TransactionResponse struct {
	TransactionID string             `json:"transactionID"`
	Amount        decimal.Decimal    `json:"amount"`
	Date          time.Time          `json:"date"`
	Description   string             `json:"description"`
	Category      string             `json:"category"`
	Type          string             `json:"type"`
	PaymentMethod string             `json:"paymentMethod"`
	Recurrence    *domain.Recurrence `json:"recurrence,omitempty"`
	Contact       string             `json:"contact,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// ToTransactionResponse converts a domain transaction to its API shape.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		Date:          txn.Date,
		Description:   txn.Description,
		Category:      txn.Category,
		Type:          string(txn.Type),
		PaymentMethod: txn.PaymentMethod,
		Recurrence:    txn.Recurrence,
		Contact:       txn.Contact,
		CreatedAt:     txn.CreatedAt,
	}
}

// MonthBucketResponse is one calendar month of the summary.
type MonthBucketResponse struct {
	Month   string          `json:"month"` // "2006-01"
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// MonthlySummaryResponse wraps the per-month aggregation.
type MonthlySummaryResponse struct {
	Months []MonthBucketResponse `json:"months"`
}

// ToMonthlySummaryResponse converts the summary buckets.
func ToMonthlySummaryResponse(buckets []finance.MonthBucket) MonthlySummaryResponse {
	out := MonthlySummaryResponse{Months: make([]MonthBucketResponse, len(buckets))}
	for i, b := range buckets {
		out.Months[i] = MonthBucketResponse{
			Month:   b.Label(),
			Income:  b.Income,
			Expense: b.Expense,
			Net:     b.Net,
		}
	}
	return out
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a slice of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	out := ListTransactionsResponse{Transactions: make([]TransactionResponse, len(txns))}
	for i, txn := range txns {
		out.Transactions[i] = ToTransactionResponse(txn)
	}
	return out
}
