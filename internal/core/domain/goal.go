package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalType distinguishes saving-up goals from spending-reduction goals.
type GoalType string

const (
	GoalIncome           GoalType = "income"
	GoalExpenseReduction GoalType = "expense-reduction"
)

// GoalPeriod is the cadence a goal is tracked against.
type GoalPeriod string

const (
	GoalPeriodWeekly  GoalPeriod = "weekly"
	GoalPeriodMonthly GoalPeriod = "monthly"
	GoalPeriodYearly  GoalPeriod = "yearly"
)

// Goal is a savings or expense-reduction target owned by a user.
// Invariant: EndDate >= StartDate; CurrentAmount and TargetAmount >= 0.
type Goal struct {
	GoalID        string          `json:"goalID"` // Primary key (UUID)
	UserID        string          `json:"userID"` // Owner (Not Null)
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Type          GoalType        `json:"type"`
	Period        GoalPeriod      `json:"period"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	AuditFields
}
