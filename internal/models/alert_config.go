package models

import "github.com/shopspring/decimal"

// AlertConfig is a row of the alert_configs table. Categories map to a
// TEXT[] column.
type AlertConfig struct {
	UserID              string          `db:"user_id"`
	BalanceThreshold    decimal.Decimal `db:"balance_threshold"`
	MonitoredCategories []string        `db:"monitored_categories"`
	ShowCategoryAlerts  bool            `db:"show_category_alerts"`
	ShowGoalAlerts      bool            `db:"show_goal_alerts"`
	ShowBalanceAlerts   bool            `db:"show_balance_alerts"`
	ShowTrendAlerts     bool            `db:"show_trend_alerts"`
	AuditFields
}
