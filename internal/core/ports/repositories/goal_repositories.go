package repositories

import (
	"context"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
)

// GoalReader defines read operations for goal data
type GoalReader interface {
	// FindGoalByID retrieves a specific goal by its ID.
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// ListGoalsByUser retrieves every goal owned by a user.
	ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for goal data
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// UpdateGoal updates an existing goal.
	UpdateGoal(ctx context.Context, goal domain.Goal) error

	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, goalID string) error
}

// GoalRepositoryFacade combines all goal repository interfaces.
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
