package services

import (
	"context"
	"errors"
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
	"github.com/lunnorapp/lunnor_caixa/internal/notify"
	"github.com/lunnorapp/lunnor_caixa/internal/utils"
	"github.com/shopspring/decimal"
)

// peaceFundService implements portssvc.PeaceFundSvcFacade over an
// append-only ledger. The fund's balance is never stored; every read
// derives it from the ledger.
type peaceFundService struct {
	BaseService
	fundRepo  portsrepo.PeaceFundRepositoryFacade
	notifRepo portsrepo.NotificationWriter
	userRepo  portsrepo.UserReader
	publisher notify.Publisher
}

// NewPeaceFundService creates the Peace Fund service.
func NewPeaceFundService(
	fundRepo portsrepo.PeaceFundRepositoryFacade,
	notifRepo portsrepo.NotificationWriter,
	userRepo portsrepo.UserReader,
	publisher notify.Publisher,
) portssvc.PeaceFundSvcFacade {
	return &peaceFundService{
		fundRepo:  fundRepo,
		notifRepo: notifRepo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

var _ portssvc.PeaceFundSvcFacade = (*peaceFundService)(nil)

// GetPeaceFund retrieves the user's fund, creating an empty one on first
// access.
func (s *peaceFundService) GetPeaceFund(ctx context.Context, userID string) (*domain.PeaceFund, error) {
	fund, err := s.fundRepo.FindPeaceFundByUser(ctx, userID)
	if err == nil {
		return fund, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find peace fund: %w", err)
	}

	now := time.Now()
	created := domain.PeaceFund{
		PeaceFundID:  uuid.NewString(),
		UserID:       userID,
		TargetAmount: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.fundRepo.SavePeaceFund(ctx, created); err != nil {
		s.LogError(ctx, err, "Failed to create peace fund", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create peace fund: %w", err)
	}
	s.LogInfo(ctx, "Peace fund created", slog.String("peace_fund_id", created.PeaceFundID))
	return &created, nil
}

// ListPeaceFundTransactions retrieves the fund's ledger, oldest first.
func (s *peaceFundService) ListPeaceFundTransactions(ctx context.Context, userID string) ([]domain.PeaceFundTransaction, error) {
	fund, err := s.GetPeaceFund(ctx, userID)
	if err != nil {
		return nil, err
	}
	txns, err := s.fundRepo.ListPeaceFundTransactions(ctx, fund.PeaceFundID)
	if err != nil {
		return nil, fmt.Errorf("failed to list peace fund transactions: %w", err)
	}
	return txns, nil
}

// Evolution produces the fund's monthly running-balance series.
func (s *peaceFundService) Evolution(ctx context.Context, userID string, months int, now time.Time) ([]finance.BalancePoint, error) {
	if months <= 0 {
		return nil, fmt.Errorf("months must be positive: %w", apperrors.ErrValidation)
	}
	txns, err := s.ListPeaceFundTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	return finance.FundSeries(txns, months, now), nil
}

// UpdatePeaceFund sets the fund's target and minimum alert amount.
func (s *peaceFundService) UpdatePeaceFund(ctx context.Context, userID string, req dto.UpdatePeaceFundRequest) (*domain.PeaceFund, error) {
	if req.TargetAmount.IsNegative() {
		return nil, fmt.Errorf("target must not be negative: %w", apperrors.ErrValidation)
	}
	if req.MinimumAlertAmount != nil && req.MinimumAlertAmount.IsNegative() {
		return nil, fmt.Errorf("minimum alert amount must not be negative: %w", apperrors.ErrValidation)
	}

	fund, err := s.GetPeaceFund(ctx, userID)
	if err != nil {
		return nil, err
	}
	fund.TargetAmount = req.TargetAmount
	fund.MinimumAlertAmount = req.MinimumAlertAmount
	fund.LastUpdatedAt = time.Now()
	fund.LastUpdatedBy = userID

	if err := s.fundRepo.UpdatePeaceFund(ctx, *fund); err != nil {
		s.LogError(ctx, err, "Failed to update peace fund", slog.String("peace_fund_id", fund.PeaceFundID))
		return nil, fmt.Errorf("failed to update peace fund: %w", err)
	}
	return fund, nil
}

// CreatePeaceFundTransaction appends a ledger entry, records an in-app
// notification and queues the WhatsApp message. The ledger write is the
// only step that can fail the request.
func (s *peaceFundService) CreatePeaceFundTransaction(ctx context.Context, userID string, req dto.CreatePeaceFundTransactionRequest) (*domain.PeaceFundTransaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	fund, err := s.GetPeaceFund(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	txn := domain.PeaceFundTransaction{
		PeaceFundTransactionID: uuid.NewString(),
		PeaceFundID:            fund.PeaceFundID,
		UserID:                 userID,
		Type:                   domain.PeaceFundTransactionType(req.Type),
		Amount:                 req.Amount,
		Description:            req.Description,
		Date:                   date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.fundRepo.SavePeaceFundTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save peace fund transaction", slog.String("peace_fund_id", fund.PeaceFundID))
		return nil, fmt.Errorf("failed to save peace fund transaction: %w", err)
	}

	s.notifyFundMovement(ctx, txn)
	return &txn, nil
}

// notifyFundMovement persists the in-app notification and publishes the
// WhatsApp message. Failures are logged and swallowed.
func (s *peaceFundService) notifyFundMovement(ctx context.Context, txn domain.PeaceFundTransaction) {
	mensagem := fundMovementText(txn)

	notification := domain.Notification{
		NotificationID:       uuid.NewString(),
		UserID:               txn.UserID,
		Message:              mensagem,
		Type:                 "peace-fund",
		RelatedTransactionID: &txn.PeaceFundTransactionID,
		CreatedAt:            time.Now(),
	}
	if err := s.notifRepo.SaveNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "Failed to save fund movement notification", slog.String("user_id", txn.UserID))
	}

	user, err := s.userRepo.FindUserByID(ctx, txn.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load user for fund movement message", slog.String("user_id", txn.UserID))
		return
	}

	msg := notify.FundMovementMessage{
		Nome:      user.Name,
		Tipo:      string(txn.Type),
		Valor:     txn.Amount,
		Descricao: txn.Description,
		Data:      txn.Date.Format("02/01/2006"),
		Telefone:  user.Phone,
		UserID:    txn.UserID,
		Mensagem:  mensagem,
	}
	if err := s.publisher.PublishFundMovement(ctx, msg); err != nil {
		s.LogError(ctx, err, "Failed to publish fund movement message", slog.String("user_id", txn.UserID))
	}
}

// fundMovementText builds the pt-BR notification text for a ledger entry.
func fundMovementText(txn domain.PeaceFundTransaction) string {
	verb := "Depósito"
	if txn.Type == domain.Withdrawal {
		verb = "Saque"
	}
	return fmt.Sprintf("%s de %s no Fundo da Paz: %s (%s)",
		verb, utils.FormatBRL(txn.Amount), txn.Description, txn.Date.Format("02/01/2006"))
}
