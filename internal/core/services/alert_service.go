package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/apperrors"
	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/core/finance"
	portsrepo "github.com/lunnorapp/lunnor_caixa/internal/core/ports/repositories"
	portssvc "github.com/lunnorapp/lunnor_caixa/internal/core/ports/services"
	"github.com/lunnorapp/lunnor_caixa/internal/dto"
)

// alertService implements portssvc.AlertSvcFacade. Evaluation itself is
// pure; this layer assembles the data snapshot and the effective
// configuration.
type alertService struct {
	BaseService
	cfgRepo  portsrepo.AlertConfigRepositoryFacade
	txnRepo  portsrepo.TransactionReader
	goalRepo portsrepo.GoalReader
	fundRepo portsrepo.PeaceFundReader
}

// NewAlertService creates the alert service.
func NewAlertService(
	cfgRepo portsrepo.AlertConfigRepositoryFacade,
	txnRepo portsrepo.TransactionReader,
	goalRepo portsrepo.GoalReader,
	fundRepo portsrepo.PeaceFundReader,
) portssvc.AlertSvcFacade {
	return &alertService{
		cfgRepo:  cfgRepo,
		txnRepo:  txnRepo,
		goalRepo: goalRepo,
		fundRepo: fundRepo,
	}
}

var _ portssvc.AlertSvcFacade = (*alertService)(nil)

// EvaluateAlerts runs every alert rule over the user's current data.
func (s *alertService) EvaluateAlerts(ctx context.Context, userID string, now time.Time) ([]domain.AlertItem, error) {
	cfg, err := s.GetAlertConfig(ctx, userID)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for alert evaluation: %w", err)
	}
	goals, err := s.goalRepo.ListGoalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals for alert evaluation: %w", err)
	}

	// A user without a fund simply has no fund alert; lazy creation is
	// left to the fund endpoints.
	fund, err := s.fundRepo.FindPeaceFundByUser(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find peace fund for alert evaluation: %w", err)
	}

	in := finance.AlertInput{
		Transactions: txns,
		Goals:        goals,
		Fund:         fund,
	}
	return finance.EvaluateAlerts(in, cfg, now), nil
}

// GetAlertConfig retrieves the user's preferences, falling back to the
// defaults when none are stored.
func (s *alertService) GetAlertConfig(ctx context.Context, userID string) (domain.AlertConfig, error) {
	cfg, err := s.cfgRepo.FindAlertConfigByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.DefaultAlertConfig(userID), nil
		}
		// An unreadable row must not take the alerts page down.
		s.LogWarn(ctx, "Failed to load alert config, using defaults",
			slog.String("user_id", userID), slog.Any("error", err))
		return domain.DefaultAlertConfig(userID), nil
	}
	return *cfg, nil
}

// UpdateAlertConfig creates or replaces the user's preferences.
func (s *alertService) UpdateAlertConfig(ctx context.Context, userID string, req dto.AlertConfigRequest) (*domain.AlertConfig, error) {
	if req.BalanceThreshold != nil && req.BalanceThreshold.IsNegative() {
		return nil, fmt.Errorf("balance threshold must not be negative: %w", apperrors.ErrValidation)
	}

	cfg := req.ToAlertConfig(userID)
	now := time.Now()
	cfg.CreatedAt = now
	cfg.CreatedBy = userID
	cfg.LastUpdatedAt = now
	cfg.LastUpdatedBy = userID

	if err := s.cfgRepo.UpsertAlertConfig(ctx, cfg); err != nil {
		s.LogError(ctx, err, "Failed to upsert alert config", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save alert config: %w", err)
	}
	return &cfg, nil
}
