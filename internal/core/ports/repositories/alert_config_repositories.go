package repositories

import (
	"context"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
)

// AlertConfigRepositoryFacade persists per-user alert preferences.
type AlertConfigRepositoryFacade interface {
	// FindAlertConfigByUser retrieves the user's stored preferences.
	// Returns apperrors.ErrNotFound when the user has none yet.
	FindAlertConfigByUser(ctx context.Context, userID string) (*domain.AlertConfig, error)

	// UpsertAlertConfig creates or replaces the user's preferences.
	UpsertAlertConfig(ctx context.Context, cfg domain.AlertConfig) error
}
