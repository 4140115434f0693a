package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeaceFund is a row of the peace_funds table. CurrentAmount is not a
// column; reads fill it from a SUM over the ledger.
type PeaceFund struct {
	PeaceFundID        string           `db:"peace_fund_id"`
	UserID             string           `db:"user_id"`
	TargetAmount       decimal.Decimal  `db:"target_amount"`
	MinimumAlertAmount *decimal.Decimal `db:"minimum_alert_amount"`
	CurrentAmount      decimal.Decimal
	AuditFields
}

// PeaceFundTransaction is a row of the peace_fund_transactions table.
type PeaceFundTransaction struct {
	PeaceFundTransactionID string          `db:"peace_fund_transaction_id"`
	PeaceFundID            string          `db:"peace_fund_id"`
	UserID                 string          `db:"user_id"`
	Type                   string          `db:"type"`
	Amount                 decimal.Decimal `db:"amount"`
	Description            string          `db:"description"`
	Date                   time.Time       `db:"date"`
	AuditFields
}
