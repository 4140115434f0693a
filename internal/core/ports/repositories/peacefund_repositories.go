package repositories

import (
	"context"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
)

// PeaceFundReader defines read operations for Peace Fund data.
// Implementations must always derive CurrentAmount from the ledger
// (sum of deposits minus withdrawals) rather than return a cached value.
type PeaceFundReader interface {
	// FindPeaceFundByUser retrieves the user's fund with its derived balance.
	FindPeaceFundByUser(ctx context.Context, userID string) (*domain.PeaceFund, error)

	// ListPeaceFundTransactions retrieves the fund's full ledger, oldest first.
	ListPeaceFundTransactions(ctx context.Context, peaceFundID string) ([]domain.PeaceFundTransaction, error)
}

// PeaceFundWriter defines write operations for Peace Fund data
type PeaceFundWriter interface {
	// SavePeaceFund persists a new fund.
	SavePeaceFund(ctx context.Context, fund domain.PeaceFund) error

	// UpdatePeaceFund updates a fund's target and minimum alert amount.
	UpdatePeaceFund(ctx context.Context, fund domain.PeaceFund) error

	// SavePeaceFundTransaction appends a ledger entry. The ledger is
	// append-only; there is no update or delete.
	SavePeaceFundTransaction(ctx context.Context, txn domain.PeaceFundTransaction) error
}

// PeaceFundRepositoryFacade combines all Peace Fund repository interfaces.
type PeaceFundRepositoryFacade interface {
	PeaceFundReader
	PeaceFundWriter
}
