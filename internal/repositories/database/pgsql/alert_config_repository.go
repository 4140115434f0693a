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

type PgxAlertConfigRepository struct {
	db *pgxpool.Pool
}

func newPgxAlertConfigRepository(db *pgxpool.Pool) portsrepo.AlertConfigRepositoryFacade {
	return &PgxAlertConfigRepository{db: db}
}

var _ portsrepo.AlertConfigRepositoryFacade = (*PgxAlertConfigRepository)(nil)

func (r *PgxAlertConfigRepository) FindAlertConfigByUser(ctx context.Context, userID string) (*domain.AlertConfig, error) {
	query := `
		SELECT user_id, balance_threshold, monitored_categories,
		       show_category_alerts, show_goal_alerts, show_balance_alerts, show_trend_alerts,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM alert_configs
		WHERE user_id = $1;
	`
	var m models.AlertConfig
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.BalanceThreshold,
		&m.MonitoredCategories,
		&m.ShowCategoryAlerts,
		&m.ShowGoalAlerts,
		&m.ShowBalanceAlerts,
		&m.ShowTrendAlerts,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find alert config: %w", err)
	}

	cfg := domain.AlertConfig{
		UserID:              m.UserID,
		BalanceThreshold:    m.BalanceThreshold,
		MonitoredCategories: m.MonitoredCategories,
		ShowCategoryAlerts:  m.ShowCategoryAlerts,
		ShowGoalAlerts:      m.ShowGoalAlerts,
		ShowBalanceAlerts:   m.ShowBalanceAlerts,
		ShowTrendAlerts:     m.ShowTrendAlerts,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if cfg.MonitoredCategories == nil {
		cfg.MonitoredCategories = []string{}
	}
	return &cfg, nil
}

func (r *PgxAlertConfigRepository) UpsertAlertConfig(ctx context.Context, cfg domain.AlertConfig) error {
	query := `
        INSERT INTO alert_configs (user_id, balance_threshold, monitored_categories,
            show_category_alerts, show_goal_alerts, show_balance_alerts, show_trend_alerts,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (user_id) DO UPDATE SET
            balance_threshold = EXCLUDED.balance_threshold,
            monitored_categories = EXCLUDED.monitored_categories,
            show_category_alerts = EXCLUDED.show_category_alerts,
            show_goal_alerts = EXCLUDED.show_goal_alerts,
            show_balance_alerts = EXCLUDED.show_balance_alerts,
            show_trend_alerts = EXCLUDED.show_trend_alerts,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		cfg.UserID, cfg.BalanceThreshold, cfg.MonitoredCategories,
		cfg.ShowCategoryAlerts, cfg.ShowGoalAlerts, cfg.ShowBalanceAlerts, cfg.ShowTrendAlerts,
		cfg.CreatedAt, cfg.CreatedBy, cfg.LastUpdatedAt, cfg.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert alert config: %w", err)
	}
	return nil
}
