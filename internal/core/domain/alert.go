package domain

import "github.com/shopspring/decimal"

// AlertSeverity classifies an alert for presentation purposes.
type AlertSeverity string

const (
	SeverityInfo    AlertSeverity = "info"
	SeverityWarning AlertSeverity = "warning"
	SeveritySuccess AlertSeverity = "success"
	SeverityDanger  AlertSeverity = "danger"
)

// AlertItem is an ephemeral alert produced by an evaluation pass.
// It is never persisted; the ID is deterministic for a given underlying
// state so repeated evaluations yield stable identities.
type AlertItem struct {
	ID       string        `json:"id"` // Rule-derived key, e.g. "low-balance", "goal-<id>-near"
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Severity AlertSeverity `json:"severity"`
}

// AlertConfig is a user's alert preference bundle.
type AlertConfig struct {
	UserID              string          `json:"userID"`
	BalanceThreshold    decimal.Decimal `json:"balanceThreshold"`
	MonitoredCategories []string        `json:"monitoredCategories"`
	ShowCategoryAlerts  bool            `json:"showCategoryAlerts"`
	ShowGoalAlerts      bool            `json:"showGoalAlerts"`
	ShowBalanceAlerts   bool            `json:"showBalanceAlerts"`
	ShowTrendAlerts     bool            `json:"showTrendAlerts"`
	AuditFields
}

// DefaultAlertConfig returns the fallback preferences used when a user has
// no stored configuration or the stored row cannot be decoded.
func DefaultAlertConfig(userID string) AlertConfig {
	return AlertConfig{
		UserID:              userID,
		BalanceThreshold:    decimal.NewFromInt(1000),
		MonitoredCategories: []string{},
		ShowCategoryAlerts:  true,
		ShowGoalAlerts:      true,
		ShowBalanceAlerts:   true,
		ShowTrendAlerts:     true,
	}
}
