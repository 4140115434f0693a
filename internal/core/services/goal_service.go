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

// goalService implements portssvc.GoalSvcFacade. It depends on the
// transaction repository to compute achievability from transaction
// history.
type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
	txnRepo  portsrepo.TransactionReader
}

// NewGoalService creates the goal service.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade, txnRepo portsrepo.TransactionReader) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: goalRepo, txnRepo: txnRepo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func validateGoalDates(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("end date must not be before start date: %w", apperrors.ErrValidation)
	}
	return nil
}

// CreateGoal validates and records a new goal.
func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*finance.GoalStatus, error) {
	if req.TargetAmount.IsNegative() || req.CurrentAmount.IsNegative() {
		return nil, fmt.Errorf("amounts must not be negative: %w", apperrors.ErrValidation)
	}
	if err := validateGoalDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Type:          domain.GoalType(req.Type),
		Period:        domain.GoalPeriod(req.Period),
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	s.LogInfo(ctx, "Goal created", slog.String("goal_id", goal.GoalID))
	return s.status(ctx, goal)
}

// GetGoalByID retrieves a goal with computed progress, refusing access
// to rows owned by other users.
func (s *goalService) GetGoalByID(ctx context.Context, userID, goalID string) (*finance.GoalStatus, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}
	if goal.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return s.status(ctx, *goal)
}

// ListGoals retrieves the user's goals with computed progress.
func (s *goalService) ListGoals(ctx context.Context, userID string) ([]finance.GoalStatus, error) {
	goals, err := s.goalRepo.ListGoalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	txns, err := s.txnRepo.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for goal evaluation: %w", err)
	}

	now := time.Now()
	statuses := make([]finance.GoalStatus, len(goals))
	for i, goal := range goals {
		statuses[i] = finance.EvaluateGoal(goal, txns, now)
	}
	return statuses, nil
}

// UpdateGoal applies the non-nil fields of the request.
func (s *goalService) UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest) (*finance.GoalStatus, error) {
	existing, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}
	if existing.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	goal := *existing
	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.TargetAmount != nil {
		if req.TargetAmount.IsNegative() {
			return nil, fmt.Errorf("target must not be negative: %w", apperrors.ErrValidation)
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		if req.CurrentAmount.IsNegative() {
			return nil, fmt.Errorf("current amount must not be negative: %w", apperrors.ErrValidation)
		}
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Type != nil {
		goal.Type = domain.GoalType(*req.Type)
	}
	if req.Period != nil {
		goal.Period = domain.GoalPeriod(*req.Period)
	}
	if req.StartDate != nil {
		goal.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		goal.EndDate = *req.EndDate
	}
	if err := validateGoalDates(goal.StartDate, goal.EndDate); err != nil {
		return nil, err
	}
	goal.LastUpdatedAt = time.Now()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return s.status(ctx, goal)
}

// DeleteGoal removes a user's goal.
func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	existing, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}
	if existing.UserID != userID {
		return apperrors.ErrForbidden
	}
	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal", slog.String("goal_id", goalID))
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	s.LogInfo(ctx, "Goal deleted", slog.String("goal_id", goalID))
	return nil
}

// status evaluates one goal against the owner's transaction history.
func (s *goalService) status(ctx context.Context, goal domain.Goal) (*finance.GoalStatus, error) {
	txns, err := s.txnRepo.ListTransactionsByUser(ctx, goal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for goal evaluation: %w", err)
	}
	status := finance.EvaluateGoal(goal, txns, time.Now())
	return &status, nil
}
