package finance

import (
	"fmt"
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/lunnorapp/lunnor_caixa/internal/utils"
	"github.com/shopspring/decimal"
)

// upcomingWindowDays is the fixed look-ahead for the upcoming-expenses rule.
const upcomingWindowDays = 7

// trendWindowMonths is the fixed window for the balance-trend rule.
const trendWindowMonths = 3

// spikeThresholdPercent is the month-over-month increase above which the
// category rule fires.
var spikeThresholdPercent = decimal.NewFromInt(20)

// AlertInput is the snapshot an evaluation pass runs over. Fund may be
// nil when the user has no Peace Fund yet.
type AlertInput struct {
	Transactions []domain.Transaction
	Goals        []domain.Goal
	Fund         *domain.PeaceFund
}

// EvaluateAlerts runs every alert rule over the snapshot and returns the
// fired alerts in fixed rule-declaration order. Each rule is gated by its
// config toggle: the balance toggle covers the cash-flow rules (upcoming
// expenses, expected income, low balance, fund minimum), and the goal,
// category and trend rules each have their own toggle. Alert IDs are
// deterministic for a given state, so re-evaluation yields stable
// identities.
func EvaluateAlerts(in AlertInput, cfg domain.AlertConfig, now time.Time) []domain.AlertItem {
	alerts := []domain.AlertItem{}

	if cfg.ShowBalanceAlerts {
		if a := upcomingExpensesAlert(in.Transactions, now); a != nil {
			alerts = append(alerts, *a)
		}
		if a := expectedIncomeAlert(in.Transactions, now); a != nil {
			alerts = append(alerts, *a)
		}
		if a := lowBalanceAlert(in.Transactions, cfg.BalanceThreshold); a != nil {
			alerts = append(alerts, *a)
		}
	}

	if cfg.ShowGoalAlerts {
		for _, goal := range in.Goals {
			if a := goalAlert(goal, in.Transactions, now); a != nil {
				alerts = append(alerts, *a)
			}
		}
	}

	if cfg.ShowCategoryAlerts {
		alerts = append(alerts, categorySpikeAlerts(in.Transactions, cfg.MonitoredCategories, now)...)
	}

	if cfg.ShowTrendAlerts {
		if a := balanceTrendAlert(in.Transactions, now); a != nil {
			alerts = append(alerts, *a)
		}
	}

	if cfg.ShowBalanceAlerts && in.Fund != nil {
		if a := fundBelowMinimumAlert(*in.Fund); a != nil {
			alerts = append(alerts, *a)
		}
	}

	return alerts
}

// upcomingExpensesAlert fires when future-dated expenses fall within the
// next seven days.
func upcomingExpensesAlert(txns []domain.Transaction, now time.Time) *domain.AlertItem {
	horizon := now.AddDate(0, 0, upcomingWindowDays)
	count := 0
	total := decimal.Zero
	for _, txn := range txns {
		if txn.Type != domain.Expense {
			continue
		}
		if txn.Date.After(now) && !txn.Date.After(horizon) {
			count++
			total = total.Add(txn.Amount)
		}
	}
	if count == 0 {
		return nil
	}
	return &domain.AlertItem{
		ID:       "upcoming-expenses",
		Title:    "Despesas próximas",
		Message:  fmt.Sprintf("Você tem %d despesa(s) prevista(s) para os próximos %d dias, totalizando %s.", count, upcomingWindowDays, utils.FormatBRL(total)),
		Severity: domain.SeverityWarning,
	}
}

// expectedIncomeAlert fires when any future-dated income exists.
func expectedIncomeAlert(txns []domain.Transaction, now time.Time) *domain.AlertItem {
	count := 0
	total := decimal.Zero
	for _, txn := range txns {
		if txn.Type == domain.Income && txn.Date.After(now) {
			count++
			total = total.Add(txn.Amount)
		}
	}
	if count == 0 {
		return nil
	}
	return &domain.AlertItem{
		ID:       "expected-income",
		Title:    "Receitas previstas",
		Message:  fmt.Sprintf("Você tem %d receita(s) prevista(s), totalizando %s.", count, utils.FormatBRL(total)),
		Severity: domain.SeverityInfo,
	}
}

// lowBalanceAlert fires when total income minus total expense falls below
// the configured threshold.
func lowBalanceAlert(txns []domain.Transaction, threshold decimal.Decimal) *domain.AlertItem {
	balance := Balance(txns)
	if balance.GreaterThanOrEqual(threshold) {
		return nil
	}
	severity := domain.SeverityWarning
	if balance.IsNegative() {
		severity = domain.SeverityDanger
	}
	return &domain.AlertItem{
		ID:       "low-balance",
		Title:    "Saldo baixo",
		Message:  fmt.Sprintf("Seu saldo atual (%s) está abaixo do limite configurado (%s).", utils.FormatBRL(balance), utils.FormatBRL(threshold)),
		Severity: severity,
	}
}

// goalAlert yields at most one alert per goal, chosen by progress band.
// The bands are mutually exclusive; a goal at exactly 100% produces only
// the completion alert. At-risk goals carry the achievability sub-check
// in their message.
func goalAlert(goal domain.Goal, txns []domain.Transaction, now time.Time) *domain.AlertItem {
	progress := GoalProgress(goal)
	switch ProgressBand(progress) {
	case BandComplete:
		return &domain.AlertItem{
			ID:       fmt.Sprintf("goal-%s-complete", goal.GoalID),
			Title:    "Meta concluída",
			Message:  fmt.Sprintf("Parabéns! Você concluiu a meta %q.", goal.Title),
			Severity: domain.SeveritySuccess,
		}
	case BandNearCompletion:
		return &domain.AlertItem{
			ID:       fmt.Sprintf("goal-%s-near", goal.GoalID),
			Title:    "Meta quase concluída",
			Message:  fmt.Sprintf("A meta %q está em %s%%, falta pouco!", goal.Title, progress.Round(0)),
			Severity: domain.SeverityInfo,
		}
	case BandAtRisk:
		msg := fmt.Sprintf("A meta %q está em %s%%.", goal.Title, progress.Round(0))
		if GoalAchievable(goal, txns, now) {
			msg += " No ritmo atual ela ainda pode ser alcançada até o prazo."
		} else {
			msg += " No ritmo atual ela não será alcançada até o prazo."
		}
		return &domain.AlertItem{
			ID:       fmt.Sprintf("goal-%s-risk", goal.GoalID),
			Title:    "Meta em risco",
			Message:  msg,
			Severity: domain.SeverityWarning,
		}
	default:
		return nil
	}
}

// categorySpikeAlerts compares current-month spend per category against
// the previous month and fires for every category whose increase exceeds
// 20%. A non-empty monitored list restricts which categories are checked.
// Order follows first appearance in the transaction list so output is
// deterministic.
func categorySpikeAlerts(txns []domain.Transaction, monitored []string, now time.Time) []domain.AlertItem {
	watch := map[string]bool{}
	for _, c := range monitored {
		watch[c] = true
	}

	current := monthKeyOf(now)
	previous := monthKeyOf(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0))

	currentSpend := map[string]decimal.Decimal{}
	previousSpend := map[string]decimal.Decimal{}
	order := []string{}
	seen := map[string]bool{}

	for _, txn := range txns {
		if txn.Type != domain.Expense {
			continue
		}
		if len(watch) > 0 && !watch[txn.Category] {
			continue
		}
		switch monthKeyOf(txn.Date) {
		case current:
			currentSpend[txn.Category] = currentSpend[txn.Category].Add(txn.Amount)
		case previous:
			previousSpend[txn.Category] = previousSpend[txn.Category].Add(txn.Amount)
		default:
			continue
		}
		if !seen[txn.Category] {
			seen[txn.Category] = true
			order = append(order, txn.Category)
		}
	}

	alerts := []domain.AlertItem{}
	for _, category := range order {
		prev := previousSpend[category]
		curr := currentSpend[category]
		if !prev.IsPositive() || !curr.IsPositive() {
			continue
		}
		change := curr.Sub(prev).Div(prev).Mul(hundred)
		if change.LessThanOrEqual(spikeThresholdPercent) {
			continue
		}
		alerts = append(alerts, domain.AlertItem{
			ID:       fmt.Sprintf("category-%s-spike", category),
			Title:    fmt.Sprintf("Aumento de gastos em %s", category),
			Message:  fmt.Sprintf("Seus gastos com %s subiram %s%% em relação ao mês anterior (%s → %s).", category, change.Round(0), utils.FormatBRL(prev), utils.FormatBRL(curr)),
			Severity: domain.SeverityWarning,
		})
	}
	return alerts
}

// balanceTrendAlert classifies the last three monthly net balances as up,
// down or flat and stays silent on flat.
func balanceTrendAlert(txns []domain.Transaction, now time.Time) *domain.AlertItem {
	buckets := MonthlySummary(txns, trendWindowMonths, now)
	if len(buckets) < trendWindowMonths {
		return nil
	}

	up, down := true, true
	for i := 1; i < len(buckets); i++ {
		if !buckets[i].Net.GreaterThan(buckets[i-1].Net) {
			up = false
		}
		if !buckets[i].Net.LessThan(buckets[i-1].Net) {
			down = false
		}
	}

	switch {
	case up:
		return &domain.AlertItem{
			ID:       "balance-trend",
			Title:    "Tendência de saldo",
			Message:  fmt.Sprintf("Seu saldo mensal vem crescendo nos últimos %d meses. Continue assim!", trendWindowMonths),
			Severity: domain.SeveritySuccess,
		}
	case down:
		return &domain.AlertItem{
			ID:       "balance-trend",
			Title:    "Tendência de saldo",
			Message:  fmt.Sprintf("Seu saldo mensal vem caindo nos últimos %d meses. Vale revisar os gastos.", trendWindowMonths),
			Severity: domain.SeverityWarning,
		}
	default:
		return nil
	}
}

// fundBelowMinimumAlert reuses the threshold-comparison contract of the
// low-balance rule for the Peace Fund's optional minimum.
func fundBelowMinimumAlert(fund domain.PeaceFund) *domain.AlertItem {
	if fund.MinimumAlertAmount == nil {
		return nil
	}
	if fund.CurrentAmount.GreaterThanOrEqual(*fund.MinimumAlertAmount) {
		return nil
	}
	return &domain.AlertItem{
		ID:       "fund-below-minimum",
		Title:    "Fundo da Paz abaixo do mínimo",
		Message:  fmt.Sprintf("O saldo do seu Fundo da Paz (%s) está abaixo do mínimo configurado (%s).", utils.FormatBRL(fund.CurrentAmount), utils.FormatBRL(*fund.MinimumAlertAmount)),
		Severity: domain.SeverityDanger,
	}
}
