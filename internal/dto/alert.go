package dto

import (
	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AlertConfigRequest creates or replaces a user's alert preferences.
// The field names match the legacy client-local JSON blob
// ("lunnorAlertConfig"), so existing clients can PUT their stored value
// as-is; unknown fields are ignored. Nil fields fall back to defaults.
type AlertConfigRequest struct {
	BalanceThreshold    *decimal.Decimal `json:"balanceThreshold,omitempty"`
	MonitoredCategories []string         `json:"monitoredCategories,omitempty"`
	ShowCategoryAlerts  *bool            `json:"showCategoryAlerts,omitempty"`
	ShowGoalAlerts      *bool            `json:"showGoalAlerts,omitempty"`
	ShowBalanceAlerts   *bool            `json:"showBalanceAlerts,omitempty"`
	ShowTrendAlerts     *bool            `json:"showTrendAlerts,omitempty"`
}

// ToAlertConfig merges the request over the defaults for the user.
func (r AlertConfigRequest) ToAlertConfig(userID string) domain.AlertConfig {
	cfg := domain.DefaultAlertConfig(userID)
	if r.BalanceThreshold != nil {
		cfg.BalanceThreshold = *r.BalanceThreshold
	}
	if r.MonitoredCategories != nil {
		cfg.MonitoredCategories = r.MonitoredCategories
	}
	if r.ShowCategoryAlerts != nil {
		cfg.ShowCategoryAlerts = *r.ShowCategoryAlerts
	}
	if r.ShowGoalAlerts != nil {
		cfg.ShowGoalAlerts = *r.ShowGoalAlerts
	}
	if r.ShowBalanceAlerts != nil {
		cfg.ShowBalanceAlerts = *r.ShowBalanceAlerts
	}
	if r.ShowTrendAlerts != nil {
		cfg.ShowTrendAlerts = *r.ShowTrendAlerts
	}
	return cfg
}

// AlertConfigResponse is the API shape of alert preferences.
type AlertConfigResponse struct {
	BalanceThreshold    decimal.Decimal `json:"balanceThreshold"`
	MonitoredCategories []string        `json:"monitoredCategories"`
	ShowCategoryAlerts  bool            `json:"showCategoryAlerts"`
	ShowGoalAlerts      bool            `json:"showGoalAlerts"`
	ShowBalanceAlerts   bool            `json:"showBalanceAlerts"`
	ShowTrendAlerts     bool            `json:"showTrendAlerts"`
}

// ToAlertConfigResponse converts stored preferences.
func ToAlertConfigResponse(cfg domain.AlertConfig) AlertConfigResponse {
	return AlertConfigResponse{
		BalanceThreshold:    cfg.BalanceThreshold,
		MonitoredCategories: cfg.MonitoredCategories,
		ShowCategoryAlerts:  cfg.ShowCategoryAlerts,
		ShowGoalAlerts:      cfg.ShowGoalAlerts,
		ShowBalanceAlerts:   cfg.ShowBalanceAlerts,
		ShowTrendAlerts:     cfg.ShowTrendAlerts,
	}
}

// ListAlertsResponse wraps an evaluation pass result.
type ListAlertsResponse struct {
	Alerts []domain.AlertItem `json:"alerts"`
}
