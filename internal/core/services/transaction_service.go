package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lunnorapp/lunnor_caixa/internal/apperrors"
	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/core/finance"
	portsrepo "github.com/lunnorapp/lunnor_caixa/internal/core/ports/repositories"
	portssvc "github.com/lunnorapp/lunnor_caixa/internal/core/ports/services"
	"github.com/lunnorapp/lunnor_caixa/internal/dto"
)

// transactionService implements portssvc.TransactionSvcFacade.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates the transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates and records a new transaction.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        req.Amount,
		Date:          req.Date,
		Description:   req.Description,
		Category:      req.Category,
		Type:          domain.TransactionType(req.Type),
		PaymentMethod: req.PaymentMethod,
		Contact:       req.Contact,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if req.Recurrence != nil {
		if req.Recurrence.EndDate != nil && req.Recurrence.EndDate.Before(req.Recurrence.StartDate) {
			return nil, fmt.Errorf("recurrence end date before start date: %w", apperrors.ErrValidation)
		}
		txn.Recurrence = &domain.Recurrence{
			Frequency:           domain.RecurrenceFrequency(req.Recurrence.Frequency),
			Interval:            req.Recurrence.Interval,
			StartDate:           req.Recurrence.StartDate,
			EndDate:             req.Recurrence.EndDate,
			ParentTransactionID: req.Recurrence.ParentTransactionID,
		}
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// GetTransactionByID retrieves a transaction, refusing access to rows
// owned by other users.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return txn, nil
}

// ListTransactions loads the user's transactions and applies the filter
// in memory, then the page bounds. Order (date descending) is preserved
// by the filter. Unfiltered explicit pages skip the full load and page
// in SQL instead.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, filter finance.Filter, limit, offset int) ([]domain.Transaction, error) {
	if filter.IsZero() && limit > 0 {
		txns, err := s.txnRepo.ListTransactionsByUserPaged(ctx, userID, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		return txns, nil
	}

	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	filtered := finance.FilterTransactions(txns, filter)

	if offset >= len(filtered) {
		return []domain.Transaction{}, nil
	}
	filtered = filtered[offset:]
	if limit > 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// MonthlySummary aggregates the user's transactions per calendar month.
func (s *transactionService) MonthlySummary(ctx context.Context, userID string, months int, now time.Time) ([]finance.MonthBucket, error) {
	if months <= 0 {
		return nil, fmt.Errorf("months must be positive: %w", apperrors.ErrValidation)
	}
	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return finance.MonthlySummary(txns, months, now), nil
}

// UpdateTransaction applies the non-nil fields of the request.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.GetTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.PaymentMethod != nil {
		txn.PaymentMethod = *req.PaymentMethod
	}
	if req.Contact != nil {
		txn.Contact = *req.Contact
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return txn, nil
}

// DeleteTransaction removes a user's transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if _, err := s.GetTransactionByID(ctx, userID, transactionID); err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
