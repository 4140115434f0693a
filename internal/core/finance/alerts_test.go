package finance_test

import (
	"testing"
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alertIDs(alerts []domain.AlertItem) []string {
	ids := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.ID)
	}
	return ids
}

func findAlert(t *testing.T, alerts []domain.AlertItem, id string) domain.AlertItem {
	t.Helper()
	for _, a := range alerts {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("alert %q not found in %v", id, alertIDs(alerts))
	return domain.AlertItem{}
}

func TestLowBalanceAlertThreshold(t *testing.T) {
	now := date(2025, time.June, 15)
	cfg := domain.DefaultAlertConfig("user-1") // threshold 1000

	t.Run("balance 500 fires", func(t *testing.T) {
		txns := []domain.Transaction{txn("i", domain.Income, 500, now.AddDate(0, 0, -1))}
		alerts := finance.EvaluateAlerts(finance.AlertInput{Transactions: txns}, cfg, now)
		findAlert(t, alerts, "low-balance")
	})

	t.Run("balance 1500 does not fire", func(t *testing.T) {
		txns := []domain.Transaction{txn("i", domain.Income, 1500, now.AddDate(0, 0, -1))}
		alerts := finance.EvaluateAlerts(finance.AlertInput{Transactions: txns}, cfg, now)
		assert.NotContains(t, alertIDs(alerts), "low-balance")
	})
}

func TestLowBalanceEndToEndScenario(t *testing.T) {
	// 2 income totaling R$ 2000, 1 expense of R$ 2500, all this month:
	// balance -500 against threshold 1000.
	now := date(2025, time.June, 15)
	txns := []domain.Transaction{
		txn("i1", domain.Income, 1200, date(2025, time.June, 2)),
		txn("i2", domain.Income, 800, date(2025, time.June, 5)),
		txn("e1", domain.Expense, 2500, date(2025, time.June, 10)),
	}
	cfg := domain.DefaultAlertConfig("user-1")

	alerts := finance.EvaluateAlerts(finance.AlertInput{Transactions: txns}, cfg, now)

	alert := findAlert(t, alerts, "low-balance")
	assert.Equal(t, domain.SeverityDanger, alert.Severity)
	assert.Contains(t, alert.Message, "R$ -500,00")
	assert.Contains(t, alert.Message, "R$ 1.000,00")
}

func TestGoalBandAlertsDoNotDoubleFire(t *testing.T) {
	now := date(2025, time.June, 15)
	cfg := domain.DefaultAlertConfig("user-1")

	t.Run("80 percent yields near-completion only", func(t *testing.T) {
		g := goal(80, 100, now.AddDate(0, 6, 0))
		alerts := finance.EvaluateAlerts(finance.AlertInput{Goals: []domain.Goal{g}}, cfg, now)

		ids := alertIDs(alerts)
		assert.Contains(t, ids, "goal-g1-near")
		assert.NotContains(t, ids, "goal-g1-risk")
		assert.NotContains(t, ids, "goal-g1-complete")
	})

	t.Run("exactly 100 percent yields complete only", func(t *testing.T) {
		g := goal(100, 100, now.AddDate(0, 6, 0))
		alerts := finance.EvaluateAlerts(finance.AlertInput{Goals: []domain.Goal{g}}, cfg, now)

		ids := alertIDs(alerts)
		assert.Contains(t, ids, "goal-g1-complete")
		assert.NotContains(t, ids, "goal-g1-near")
		assert.NotContains(t, ids, "goal-g1-risk")
		assert.Equal(t, domain.SeveritySuccess, findAlert(t, alerts, "goal-g1-complete").Severity)
	})

	t.Run("at risk carries achievability verdict", func(t *testing.T) {
		g := goal(10, 100, now.AddDate(0, 0, 10))
		alerts := finance.EvaluateAlerts(finance.AlertInput{Goals: []domain.Goal{g}}, cfg, now)

		alert := findAlert(t, alerts, "goal-g1-risk")
		assert.Contains(t, alert.Message, "não será alcançada")
	})
}

func TestCategorySpikeThreshold(t *testing.T) {
	now := date(2025, time.June, 15)
	cfg := domain.DefaultAlertConfig("user-1")
	prevMonth := date(2025, time.May, 10)

	spend := func(amount float64, on time.Time) domain.Transaction {
		e := txn("e", domain.Expense, amount, on)
		e.Category = "Alimentação"
		return e
	}

	t.Run("30 percent increase fires", func(t *testing.T) {
		txns := []domain.Transaction{spend(100, prevMonth), spend(130, now)}
		alerts := finance.EvaluateAlerts(finance.AlertInput{Transactions: txns}, cfg, now)

		alert := findAlert(t, alerts, "category-Alimentação-spike")
		assert.Contains(t, alert.Message, "30%")
	})

	t.Run("10 percent increase does not fire", func(t *testing.T) {
		txns := []domain.Transaction{spend(100, prevMonth), spend(110, now)}
		alerts := finance.EvaluateAlerts(finance.AlertInput{Transactions: txns}, cfg, now)
		assert.NotContains(t, alertIDs(alerts), "category-Alimentação-spike")
	})

	t.Run("monitored list restricts categories", func(t *testing.T) {
		restricted := cfg
		restricted.MonitoredCategories = []string{"Transporte"}
		txns := []domain.Transaction{spend(100, prevMonth), spend(200, now)}
		alerts := finance.EvaluateAlerts(finance.AlertInput{Transactions: txns}, restricted, now)
		assert.NotContains(t, alertIDs(alerts), "category-Alimentação-spike")
	})
}

func TestBalanceTrendAlert(t *testing.T) {
	now := date(2025, time.June, 15)
	cfg := domain.DefaultAlertConfig("user-1")
	// Only the trend rule, to keep assertions focused.
	cfg.ShowBalanceAlerts = false
	cfg.ShowCategoryAlerts = false
	cfg.ShowGoalAlerts = false

	monthlyIncome := func(amounts ...float64) []domain.Transaction {
		txns := []domain.Transaction{}
		for i, amount := range amounts {
			on := date(2025, time.April, 10).AddDate(0, i, 0)
			txns = append(txns, txn("i", domain.Income, amount, on))
		}
		return txns
	}

	t.Run("rising nets fire an up alert", func(t *testing.T) {
		alerts := finance.EvaluateAlerts(finance.AlertInput{Transactions: monthlyIncome(100, 200, 300)}, cfg, now)
		require.Len(t, alerts, 1)
		assert.Equal(t, "balance-trend", alerts[0].ID)
		assert.Equal(t, domain.SeveritySuccess, alerts[0].Severity)
	})

	t.Run("falling nets fire a down alert", func(t *testing.T) {
		alerts := finance.EvaluateAlerts(finance.AlertInput{Transactions: monthlyIncome(300, 200, 100)}, cfg, now)
		require.Len(t, alerts, 1)
		assert.Equal(t, domain.SeverityWarning, alerts[0].Severity)
	})

	t.Run("flat stays silent", func(t *testing.T) {
		alerts := finance.EvaluateAlerts(finance.AlertInput{Transactions: monthlyIncome(200, 200, 200)}, cfg, now)
		assert.Empty(t, alerts)
	})
}

func TestUpcomingExpensesAndExpectedIncome(t *testing.T) {
	now := date(2025, time.June, 15)
	cfg := domain.DefaultAlertConfig("user-1")
	cfg.BalanceThreshold = decimal.NewFromInt(-100000) // keep low-balance quiet

	txns := []domain.Transaction{
		txn("e1", domain.Expense, 150, now.AddDate(0, 0, 3)),
		txn("e2", domain.Expense, 50, now.AddDate(0, 0, 6)),
		txn("e3", domain.Expense, 75, now.AddDate(0, 0, 20)), // beyond the window
		txn("i1", domain.Income, 900, now.AddDate(0, 0, 10)),
	}

	alerts := finance.EvaluateAlerts(finance.AlertInput{Transactions: txns}, cfg, now)

	upcoming := findAlert(t, alerts, "upcoming-expenses")
	assert.Contains(t, upcoming.Message, "2 despesa(s)")
	assert.Contains(t, upcoming.Message, "R$ 200,00")

	income := findAlert(t, alerts, "expected-income")
	assert.Contains(t, income.Message, "R$ 900,00")
}

func TestFundBelowMinimumAlert(t *testing.T) {
	now := date(2025, time.June, 15)
	cfg := domain.DefaultAlertConfig("user-1")
	minimum := decimal.NewFromInt(500)

	t.Run("below minimum fires", func(t *testing.T) {
		fund := &domain.PeaceFund{CurrentAmount: decimal.NewFromInt(200), MinimumAlertAmount: &minimum}
		alerts := finance.EvaluateAlerts(finance.AlertInput{Fund: fund}, cfg, now)
		findAlert(t, alerts, "fund-below-minimum")
	})

	t.Run("at minimum does not fire", func(t *testing.T) {
		fund := &domain.PeaceFund{CurrentAmount: decimal.NewFromInt(500), MinimumAlertAmount: &minimum}
		alerts := finance.EvaluateAlerts(finance.AlertInput{Fund: fund}, cfg, now)
		assert.NotContains(t, alertIDs(alerts), "fund-below-minimum")
	})

	t.Run("no minimum configured stays silent", func(t *testing.T) {
		fund := &domain.PeaceFund{CurrentAmount: decimal.NewFromInt(1)}
		alerts := finance.EvaluateAlerts(finance.AlertInput{Fund: fund}, cfg, now)
		assert.NotContains(t, alertIDs(alerts), "fund-below-minimum")
	})
}

func TestAlertTogglesGateRuleFamilies(t *testing.T) {
	now := date(2025, time.June, 15)
	cfg := domain.DefaultAlertConfig("user-1")
	cfg.ShowBalanceAlerts = false
	cfg.ShowGoalAlerts = false

	txns := []domain.Transaction{txn("i", domain.Income, 1, now)}
	goals := []domain.Goal{goal(100, 100, now.AddDate(0, 1, 0))}

	alerts := finance.EvaluateAlerts(finance.AlertInput{Transactions: txns, Goals: goals}, cfg, now)

	ids := alertIDs(alerts)
	assert.NotContains(t, ids, "low-balance")
	assert.NotContains(t, ids, "goal-g1-complete")
}

func TestAlertOrderingFollowsRuleDeclarationOrder(t *testing.T) {
	now := date(2025, time.June, 15)
	cfg := domain.DefaultAlertConfig("user-1")
	minimum := decimal.NewFromInt(10000)

	txns := []domain.Transaction{
		txn("e1", domain.Expense, 100, now.AddDate(0, 0, 2)), // upcoming expense
		txn("i1", domain.Income, 50, now.AddDate(0, 0, 5)),   // expected income
	}
	goals := []domain.Goal{goal(100, 100, now.AddDate(0, 1, 0))}
	fund := &domain.PeaceFund{CurrentAmount: decimal.Zero, MinimumAlertAmount: &minimum}

	alerts := finance.EvaluateAlerts(finance.AlertInput{Transactions: txns, Goals: goals, Fund: fund}, cfg, now)

	assert.Equal(t, []string{
		"upcoming-expenses",
		"expected-income",
		"low-balance",
		"goal-g1-complete",
		"fund-below-minimum",
	}, alertIDs(alerts))
}
