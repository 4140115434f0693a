package services

import (
	"context"
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/core/finance"
	"github.com/lunnorapp/lunnor_caixa/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves one of the user's transactions.
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the user's transactions with the filter
	// applied, preserving date-descending order.
	ListTransactions(ctx context.Context, userID string, filter finance.Filter, limit, offset int) ([]domain.Transaction, error)

	// MonthlySummary aggregates the user's transactions into the last
	// months calendar-month buckets.
	MonthlySummary(ctx context.Context, userID string, months int, now time.Time) ([]finance.MonthBucket, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction records a new transaction for the user.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransaction edits one of the user's transactions.
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes one of the user's transactions.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
