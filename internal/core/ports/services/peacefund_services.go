package services

import (
	"context"
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/core/finance"
	"github.com/lunnorapp/lunnor_caixa/internal/dto"
)

// PeaceFundReaderSvc defines read operations for the Peace Fund
type PeaceFundReaderSvc interface {
	// GetPeaceFund retrieves the user's fund, creating an empty one on
	// first access. CurrentAmount is always derived from the ledger.
	GetPeaceFund(ctx context.Context, userID string) (*domain.PeaceFund, error)

	// ListPeaceFundTransactions retrieves the fund's ledger, oldest first.
	ListPeaceFundTransactions(ctx context.Context, userID string) ([]domain.PeaceFundTransaction, error)

	// Evolution produces the fund's monthly running-balance series.
	Evolution(ctx context.Context, userID string, months int, now time.Time) ([]finance.BalancePoint, error)
}

// PeaceFundWriterSvc defines write operations for the Peace Fund
type PeaceFundWriterSvc interface {
	// UpdatePeaceFund sets the fund's target and minimum alert amount.
	UpdatePeaceFund(ctx context.Context, userID string, req dto.UpdatePeaceFundRequest) (*domain.PeaceFund, error)

	// CreatePeaceFundTransaction appends a deposit or withdrawal to the
	// ledger and queues the outbound notification. The notification is
	// fire-and-forget: its failure never rolls back the ledger write.
	CreatePeaceFundTransaction(ctx context.Context, userID string, req dto.CreatePeaceFundTransactionRequest) (*domain.PeaceFundTransaction, error)
}

// PeaceFundSvcFacade combines all Peace Fund service interfaces.
type PeaceFundSvcFacade interface {
	PeaceFundReaderSvc
	PeaceFundWriterSvc
}
