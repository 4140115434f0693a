package finance

import (
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalBand classifies a goal's progress for alerting. The bands are
// mutually exclusive: exactly 100% is Complete, never NearCompletion.
type GoalBand string

const (
	BandNone           GoalBand = ""
	BandComplete       GoalBand = "complete"        // progress >= 100
	BandNearCompletion GoalBand = "near-completion" // 80 <= progress < 100
	BandAtRisk         GoalBand = "at-risk"         // progress < 50
)

var hundred = decimal.NewFromInt(100)

// GoalProgress returns the goal's completion percentage clamped to
// [0, 100]. A zero target is defined as 0 progress rather than a
// division error.
func GoalProgress(goal domain.Goal) decimal.Decimal {
	if !goal.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	progress := goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)
	if progress.IsNegative() {
		return decimal.Zero
	}
	if progress.GreaterThan(hundred) {
		return hundred
	}
	return progress
}

// ProgressBand maps a progress percentage to its alert band.
func ProgressBand(progress decimal.Decimal) GoalBand {
	switch {
	case progress.GreaterThanOrEqual(hundred):
		return BandComplete
	case progress.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return BandNearCompletion
	case progress.LessThan(decimal.NewFromInt(50)):
		return BandAtRisk
	default:
		return BandNone
	}
}

// GoalStatus bundles a goal with its computed progress figures.
type GoalStatus struct {
	domain.Goal
	Progress   decimal.Decimal `json:"progress"` // Percentage in [0, 100]
	Band       GoalBand        `json:"band"`
	Achievable bool            `json:"achievable"`
}

// EvaluateGoal computes a goal's progress, band and achievability against
// the user's transaction history.
func EvaluateGoal(goal domain.Goal, txns []domain.Transaction, now time.Time) GoalStatus {
	progress := GoalProgress(goal)
	return GoalStatus{
		Goal:       goal,
		Progress:   progress,
		Band:       ProgressBand(progress),
		Achievable: GoalAchievable(goal, txns, now),
	}
}

// velocityWindowDays is the look-back used to observe the current saving
// rate for the achievability estimate.
const velocityWindowDays = 90

// GoalAchievable estimates whether the goal's remaining amount is
// attainable before its end date at the currently observed net saving
// rate. The observed rate is the net signed amount of the user's
// transactions over the last 90 days, scaled to the remaining window.
// A goal that is already complete is always achievable; one whose window
// has closed while incomplete never is.
func GoalAchievable(goal domain.Goal, txns []domain.Transaction, now time.Time) bool {
	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)
	if !remaining.IsPositive() {
		return true
	}

	remainingDays := goal.EndDate.Sub(now).Hours() / 24
	if remainingDays <= 0 {
		return false
	}

	windowStart := now.AddDate(0, 0, -velocityWindowDays)
	observed := decimal.Zero
	for _, txn := range txns {
		if txn.Date.Before(windowStart) || txn.Date.After(now) {
			continue
		}
		observed = observed.Add(txn.SignedAmount())
	}
	if !observed.IsPositive() {
		return false
	}

	dailyRate := observed.Div(decimal.NewFromInt(velocityWindowDays))
	projected := dailyRate.Mul(decimal.NewFromFloat(remainingDays))
	return projected.GreaterThanOrEqual(remaining)
}
