package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeaceFundTransactionType is the direction of a fund ledger entry.
type PeaceFundTransactionType string

const (
	Deposit    PeaceFundTransactionType = "deposit"
	Withdrawal PeaceFundTransactionType = "withdrawal"
)

// PeaceFund is a user's emergency fund. There is at most one per user,
// created lazily on first access.
//
// CurrentAmount is always derived from the ledger
// (sum of deposits minus sum of withdrawals); it is never stored or
// incremented, so recomputing it is safe at any time.
type PeaceFund struct {
	PeaceFundID        string           `json:"peaceFundID"` // Primary key (UUID)
	UserID             string           `json:"userID"`      // Owner, unique
	TargetAmount       decimal.Decimal  `json:"targetAmount"`
	CurrentAmount      decimal.Decimal  `json:"currentAmount"` // Derived on read
	MinimumAlertAmount *decimal.Decimal `json:"minimumAlertAmount,omitempty"`
	AuditFields
}

// PeaceFundTransaction is an append-only entry in a fund's ledger.
// Entries are never mutated or deleted in normal flow.
type PeaceFundTransaction struct {
	PeaceFundTransactionID string                   `json:"peaceFundTransactionID"` // Primary key (UUID)
	PeaceFundID            string                   `json:"peaceFundID"`            // FK -> PeaceFund
	UserID                 string                   `json:"userID"`                 // Owner (Not Null)
	Type                   PeaceFundTransactionType `json:"type"`
	Amount                 decimal.Decimal          `json:"amount"` // Positive value
	Description            string                   `json:"description"`
	Date                   time.Time                `json:"date"`
	AuditFields
}

// SignedAmount returns the amount with withdrawals negated.
func (t PeaceFundTransaction) SignedAmount() decimal.Decimal {
	if t.Type == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}
