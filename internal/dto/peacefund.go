package dto

import (
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/core/finance"
	"github.com/shopspring/decimal"
)

// UpdatePeaceFundRequest sets the fund's target and optional minimum
// alert amount.
type UpdatePeaceFundRequest struct {
	TargetAmount       decimal.Decimal  `json:"targetAmount" binding:"required"`
	MinimumAlertAmount *decimal.Decimal `json:"minimumAlertAmount,omitempty"`
}

// CreatePeaceFundTransactionRequest records a deposit or withdrawal.
// Date defaults to now when omitted.
type CreatePeaceFundTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=deposit withdrawal"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Date        *time.Time      `json:"date,omitempty"`
}

// PeaceFundResponse is the API shape of a fund. CurrentAmount is the
// balance derived from the ledger at read time.
type PeaceFundResponse struct {
	PeaceFundID        string           `json:"peaceFundID"`
	TargetAmount       decimal.Decimal  `json:"targetAmount"`
	CurrentAmount      decimal.Decimal  `json:"currentAmount"`
	MinimumAlertAmount *decimal.Decimal `json:"minimumAlertAmount,omitempty"`
	Progress           decimal.Decimal  `json:"progress"`
}

// ToPeaceFundResponse converts a domain fund to its API shape, reusing
// the goal progress contract for target completion.
func ToPeaceFundResponse(fund domain.PeaceFund) PeaceFundResponse {
	progress := finance.GoalProgress(domain.Goal{
		TargetAmount:  fund.TargetAmount,
		CurrentAmount: fund.CurrentAmount,
	})
	return PeaceFundResponse{
		PeaceFundID:        fund.PeaceFundID,
		TargetAmount:       fund.TargetAmount,
		CurrentAmount:      fund.CurrentAmount,
		MinimumAlertAmount: fund.MinimumAlertAmount,
		Progress:           progress,
	}
}

// PeaceFundTransactionResponse is the API shape of a ledger entry.
type PeaceFundTransactionResponse struct {
	PeaceFundTransactionID string          `json:"peaceFundTransactionID"`
	Type                   string          `json:"type"`
	Amount                 decimal.Decimal `json:"amount"`
	Description            string          `json:"description"`
	Date                   time.Time       `json:"date"`
}

// ToPeaceFundTransactionResponse converts a ledger entry.
func ToPeaceFundTransactionResponse(txn domain.PeaceFundTransaction) PeaceFundTransactionResponse {
	return PeaceFundTransactionResponse{
		PeaceFundTransactionID: txn.PeaceFundTransactionID,
		Type:                   string(txn.Type),
		Amount:                 txn.Amount,
		Description:            txn.Description,
		Date:                   txn.Date,
	}
}

// ListPeaceFundTransactionsResponse wraps the fund ledger.
type ListPeaceFundTransactionsResponse struct {
	Transactions []PeaceFundTransactionResponse `json:"transactions"`
}

// ToListPeaceFundTransactionsResponse converts the ledger.
func ToListPeaceFundTransactionsResponse(txns []domain.PeaceFundTransaction) ListPeaceFundTransactionsResponse {
	out := ListPeaceFundTransactionsResponse{Transactions: make([]PeaceFundTransactionResponse, len(txns))}
	for i, txn := range txns {
		out.Transactions[i] = ToPeaceFundTransactionResponse(txn)
	}
	return out
}

// EvolutionPointResponse is one month of the fund's running balance.
type EvolutionPointResponse struct {
	Month   string          `json:"month"` // "2006-01"
	Delta   decimal.Decimal `json:"delta"`
	Balance decimal.Decimal `json:"balance"`
}

// EvolutionResponse wraps the fund's monthly evolution series.
type EvolutionResponse struct {
	Points []EvolutionPointResponse `json:"points"`
}

// ToEvolutionResponse converts a running-balance series.
func ToEvolutionResponse(points []finance.BalancePoint) EvolutionResponse {
	out := EvolutionResponse{Points: make([]EvolutionPointResponse, len(points))}
	for i, p := range points {
		out.Points[i] = EvolutionPointResponse{Month: p.Label(), Delta: p.Delta, Balance: p.Balance}
	}
	return out
}
