package services

import (
	"context"

	"github.com/lunnorapp/lunnor_caixa/internal/core/finance"
	"github.com/lunnorapp/lunnor_caixa/internal/dto"
)

// GoalReaderSvc defines read operations for goal data
type GoalReaderSvc interface {
	// GetGoalByID retrieves one of the user's goals with computed progress.
	GetGoalByID(ctx context.Context, userID, goalID string) (*finance.GoalStatus, error)

	// ListGoals retrieves all of the user's goals with computed progress.
	ListGoals(ctx context.Context, userID string) ([]finance.GoalStatus, error)
}

// GoalWriterSvc defines write operations for goal data
type GoalWriterSvc interface {
	// CreateGoal records a new goal for the user.
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*finance.GoalStatus, error)

	// UpdateGoal edits one of the user's goals.
	UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest) (*finance.GoalStatus, error)

	// DeleteGoal removes one of the user's goals.
	DeleteGoal(ctx context.Context, userID, goalID string) error
}

// GoalSvcFacade combines all goal service interfaces.
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
