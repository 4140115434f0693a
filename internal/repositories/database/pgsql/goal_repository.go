package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lunnorapp/lunnor_caixa/internal/apperrors"
	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	portsrepo "github.com/lunnorapp/lunnor_caixa/internal/core/ports/repositories"
	"github.com/lunnorapp/lunnor_caixa/internal/models"
)

type PgxGoalRepository struct {
	db *pgxpool.Pool
}

func newPgxGoalRepository(db *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{db: db}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

const goalColumns = `
	goal_id, user_id, title, target_amount, current_amount, type, period, start_date, end_date,
	created_at, created_by, last_updated_at, last_updated_by
`

func toDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:        m.GoalID,
		UserID:        m.UserID,
		Title:         m.Title,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Type:          domain.GoalType(m.Type),
		Period:        domain.GoalPeriod(m.Period),
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var m models.Goal
	err := row.Scan(
		&m.GoalID,
		&m.UserID,
		&m.Title,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.Type,
		&m.Period,
		&m.StartDate,
		&m.EndDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainGoal(m)
	return &d, nil
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	query := `
        INSERT INTO goals (` + goalColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err := r.db.Exec(ctx, query,
		goal.GoalID, goal.UserID, goal.Title, goal.TargetAmount, goal.CurrentAmount,
		string(goal.Type), string(goal.Period), goal.StartDate, goal.EndDate,
		goal.CreatedAt, goal.CreatedBy, goal.LastUpdatedAt, goal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE goal_id = $1;`
	goal, err := scanGoal(r.db.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}
	return goal, nil
}

func (r *PgxGoalRepository) ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY end_date ASC, created_at ASC;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, *goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goal rows: %w", err)
	}
	return goals, nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	query := `
        UPDATE goals SET
            title = $2, target_amount = $3, current_amount = $4, type = $5, period = $6,
            start_date = $7, end_date = $8, last_updated_at = $9, last_updated_by = $10
        WHERE goal_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		goal.GoalID, goal.Title, goal.TargetAmount, goal.CurrentAmount,
		string(goal.Type), string(goal.Period), goal.StartDate, goal.EndDate,
		goal.LastUpdatedAt, goal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE goal_id = $1;`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
