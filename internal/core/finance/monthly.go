package finance

import (
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthKey identifies a calendar month. Matching is always by
// (year, month) pair, never by elapsed-days windows, so buckets do not
// drift across month boundaries of different lengths.
type MonthKey struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func monthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// Label returns the key formatted as "2006-01".
func (k MonthKey) Label() string {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// MonthBucket aggregates one calendar month of transactions.
type MonthBucket struct {
	MonthKey
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// monthKeys returns the n calendar months ending at (and including) the
// month of now, in strictly increasing order.
func monthKeys(n int, now time.Time) []MonthKey {
	keys := make([]MonthKey, 0, n)
	// Anchor on the first day of the month so adding months never
	// overflows into the next one (e.g. Jan 31 + 1 month).
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, monthKeyOf(anchor.AddDate(0, -i, 0)))
	}
	return keys
}

// MonthlySummary groups transactions into exactly n calendar-month
// buckets counted back from now, current month included. Months without
// activity still appear with zero values; the sequence never has gaps.
func MonthlySummary(txns []domain.Transaction, n int, now time.Time) []MonthBucket {
	if n <= 0 {
		return []MonthBucket{}
	}

	byMonth := make(map[MonthKey]*MonthBucket, n)
	keys := monthKeys(n, now)
	buckets := make([]MonthBucket, n)
	for i, key := range keys {
		buckets[i] = MonthBucket{
			MonthKey: key,
			Income:   decimal.Zero,
			Expense:  decimal.Zero,
			Net:      decimal.Zero,
		}
		byMonth[key] = &buckets[i]
	}

	for _, txn := range txns {
		bucket, ok := byMonth[monthKeyOf(txn.Date)]
		if !ok {
			continue // outside the window
		}
		switch txn.Type {
		case domain.Income:
			bucket.Income = bucket.Income.Add(txn.Amount)
		case domain.Expense:
			bucket.Expense = bucket.Expense.Add(txn.Amount)
		}
		bucket.Net = bucket.Income.Sub(bucket.Expense)
	}

	return buckets
}

// LedgerEntry is the minimal time-stamped signed amount the running
// balance series operates on.
type LedgerEntry struct {
	Date   time.Time
	Amount decimal.Decimal // Signed: deposits positive, withdrawals negative
}

// BalancePoint is one month of a running-balance series.
type BalancePoint struct {
	MonthKey
	Delta   decimal.Decimal `json:"delta"`   // Net activity within the month
	Balance decimal.Decimal `json:"balance"` // Cumulative balance at month end
}

// RunningSeries produces a gap-free running-balance series over the n
// calendar months ending at now. Entries dated before the window seed the
// opening balance; months with no fresh activity carry the last known
// cumulative value forward rather than resetting to zero.
func RunningSeries(entries []LedgerEntry, n int, now time.Time) []BalancePoint {
	if n <= 0 {
		return []BalancePoint{}
	}

	keys := monthKeys(n, now)
	deltas := make(map[MonthKey]decimal.Decimal, n)
	opening := decimal.Zero

	firstMonth := time.Date(keys[0].Year, keys[0].Month, 1, 0, 0, 0, 0, time.UTC)
	for _, e := range entries {
		if e.Date.Before(firstMonth) {
			opening = opening.Add(e.Amount)
			continue
		}
		key := monthKeyOf(e.Date)
		deltas[key] = deltas[key].Add(e.Amount)
	}

	points := make([]BalancePoint, 0, n)
	balance := opening
	for _, key := range keys {
		delta, ok := deltas[key]
		if !ok {
			delta = decimal.Zero
		}
		balance = balance.Add(delta)
		points = append(points, BalancePoint{MonthKey: key, Delta: delta, Balance: balance})
	}
	return points
}

// FundSeries is the Peace Fund specialization of RunningSeries: deposits
// add, withdrawals subtract, and empty months forward-fill the balance.
func FundSeries(txns []domain.PeaceFundTransaction, n int, now time.Time) []BalancePoint {
	entries := make([]LedgerEntry, len(txns))
	for i, txn := range txns {
		entries[i] = LedgerEntry{Date: txn.Date, Amount: txn.SignedAmount()}
	}
	return RunningSeries(entries, n, now)
}

// Balance is the computed overall balance of a transaction set:
// total income minus total expense.
func Balance(txns []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.SignedAmount())
	}
	return total
}

// FundBalance recomputes a fund balance from its full ledger.
func FundBalance(txns []domain.PeaceFundTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.SignedAmount())
	}
	return total
}
