package services

import (
	"context"
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/dto"
)

// AlertSvcFacade evaluates the alert rules and manages alert preferences.
type AlertSvcFacade interface {
	// EvaluateAlerts runs all alert rules over the user's current data
	// snapshot and returns the fired alerts in rule-declaration order.
	EvaluateAlerts(ctx context.Context, userID string, now time.Time) ([]domain.AlertItem, error)

	// GetAlertConfig retrieves the user's alert preferences, falling back
	// to the defaults when none are stored or the stored row is unusable.
	GetAlertConfig(ctx context.Context, userID string) (domain.AlertConfig, error)

	// UpdateAlertConfig creates or replaces the user's alert preferences.
	UpdateAlertConfig(ctx context.Context, userID string, req dto.AlertConfigRequest) (*domain.AlertConfig, error)
}
