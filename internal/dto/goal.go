package dto

import (
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/core/finance"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest is the payload for creating a goal.
type CreateGoalRequest struct {
	Title         string          `json:"title" binding:"required"`
	TargetAmount  decimal.Decimal `json:"targetAmount" binding:"required"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Type          string          `json:"type" binding:"required,oneof=income expense-reduction"`
	Period        string          `json:"period" binding:"required,oneof=weekly monthly yearly"`
	StartDate     time.Time       `json:"startDate" binding:"required"`
	EndDate       time.Time       `json:"endDate" binding:"required"`
}

// UpdateGoalRequest carries the editable goal fields; nil pointers leave
// the stored value untouched.
type UpdateGoalRequest struct {
	Title         *string          `json:"title,omitempty"`
	TargetAmount  *decimal.Decimal `json:"targetAmount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"currentAmount,omitempty"`
	Type          *string          `json:"type,omitempty" binding:"omitempty,oneof=income expense-reduction"`
	Period        *string          `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
	StartDate     *time.Time       `json:"startDate,omitempty"`
	EndDate       *time.Time       `json:"endDate,omitempty"`
}

// GoalResponse is the API shape of a goal with its computed progress.
type GoalResponse struct {
	GoalID        string          `json:"goalID"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Type          string          `json:"type"`
	Period        string          `json:"period"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	Progress      decimal.Decimal `json:"progress"`
	Band          string          `json:"band,omitempty"`
	Achievable    bool            `json:"achievable"`
}

// ToGoalResponse converts a computed goal status to its API shape.
func ToGoalResponse(status finance.GoalStatus) GoalResponse {
	return GoalResponse{
		GoalID:        status.GoalID,
		Title:         status.Title,
		TargetAmount:  status.TargetAmount,
		CurrentAmount: status.CurrentAmount,
		Type:          string(status.Type),
		Period:        string(status.Period),
		StartDate:     status.StartDate,
		EndDate:       status.EndDate,
		Progress:      status.Progress,
		Band:          string(status.Band),
		Achievable:    status.Achievable,
	}
}

// ListGoalsResponse wraps the user's goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToListGoalsResponse converts computed goal statuses.
func ToListGoalsResponse(statuses []finance.GoalStatus) ListGoalsResponse {
	out := ListGoalsResponse{Goals: make([]GoalResponse, len(statuses))}
	for i, status := range statuses {
		out.Goals[i] = ToGoalResponse(status)
	}
	return out
}
