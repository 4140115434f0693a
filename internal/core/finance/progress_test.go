package finance_test

import (
	"testing"
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func goal(current, target float64, end time.Time) domain.Goal {
	return domain.Goal{
		GoalID:        "g1",
		UserID:        "user-1",
		Title:         "Reserva",
		TargetAmount:  decimal.NewFromFloat(target),
		CurrentAmount: decimal.NewFromFloat(current),
		Type:          domain.GoalIncome,
		Period:        domain.GoalPeriodMonthly,
		StartDate:     end.AddDate(-1, 0, 0),
		EndDate:       end,
	}
}

func TestGoalProgressIsClampedToZeroHundred(t *testing.T) {
	end := date(2025, time.December, 31)

	tests := []struct {
		name            string
		current, target float64
		want            int64
	}{
		{name: "zero target defines zero progress", current: 500, target: 0, want: 0},
		{name: "halfway", current: 50, target: 100, want: 50},
		{name: "exactly complete", current: 100, target: 100, want: 100},
		{name: "overshoot clamps to 100", current: 250, target: 100, want: 100},
		{name: "negative current clamps to 0", current: -10, target: 100, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			progress := finance.GoalProgress(goal(tc.current, tc.target, end))
			assert.True(t, progress.Equal(decimal.NewFromInt(tc.want)),
				"got %s, want %d", progress, tc.want)
			assert.True(t, progress.GreaterThanOrEqual(decimal.Zero))
			assert.True(t, progress.LessThanOrEqual(decimal.NewFromInt(100)))
		})
	}
}

func TestProgressBandsAreMutuallyExclusive(t *testing.T) {
	tests := []struct {
		progress int64
		want     finance.GoalBand
	}{
		{progress: 0, want: finance.BandAtRisk},
		{progress: 49, want: finance.BandAtRisk},
		{progress: 50, want: finance.BandNone},
		{progress: 79, want: finance.BandNone},
		{progress: 80, want: finance.BandNearCompletion},
		{progress: 99, want: finance.BandNearCompletion},
		{progress: 100, want: finance.BandComplete},
	}

	for _, tc := range tests {
		got := finance.ProgressBand(decimal.NewFromInt(tc.progress))
		assert.Equal(t, tc.want, got, "progress %d", tc.progress)
	}
}

func TestGoalAchievable(t *testing.T) {
	now := date(2025, time.June, 15)

	// Steady saver: R$ 100/day net over the look-back window.
	steady := []domain.Transaction{}
	for i := 0; i < 90; i++ {
		steady = append(steady, txn("s", domain.Income, 100, now.AddDate(0, 0, -i)))
	}

	t.Run("attainable at the observed rate", func(t *testing.T) {
		// Needs 1000 more with ~30 days left; rate projects ~3000.
		g := goal(4000, 5000, now.AddDate(0, 1, 0))
		assert.True(t, finance.GoalAchievable(g, steady, now))
	})

	t.Run("not attainable at the observed rate", func(t *testing.T) {
		// Needs 90000 more with ~30 days left.
		g := goal(10000, 100000, now.AddDate(0, 1, 0))
		assert.False(t, finance.GoalAchievable(g, steady, now))
	})

	t.Run("closed window while incomplete", func(t *testing.T) {
		g := goal(10, 100, now.AddDate(0, 0, -1))
		assert.False(t, finance.GoalAchievable(g, steady, now))
	})

	t.Run("already complete is always achievable", func(t *testing.T) {
		g := goal(100, 100, now.AddDate(0, 0, -1))
		assert.True(t, finance.GoalAchievable(g, nil, now))
	})

	t.Run("negative savings rate", func(t *testing.T) {
		spender := []domain.Transaction{
			txn("e", domain.Expense, 9000, now.AddDate(0, 0, -10)),
		}
		g := goal(10, 100, now.AddDate(0, 1, 0))
		assert.False(t, finance.GoalAchievable(g, spender, now))
	})
}
