package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a row of the goals table.
type Goal struct {
	GoalID        string          `db:"goal_id"`
	UserID        string          `db:"user_id"`
	Title         string          `db:"title"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Type          string          `db:"type"`
	Period        string          `db:"period"`
	StartDate     time.Time       `db:"start_date"`
	EndDate       time.Time       `db:"end_date"`
	AuditFields
}
