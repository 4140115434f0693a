// Package finance holds the pure computations of the Lunnor Caixa domain:
// transaction filtering, calendar-month aggregation, goal progress and the
// alert rules. Every function here is side-effect free and takes all of
// its inputs, including the reference time and the user configuration, as
// explicit arguments.
package finance

import (
	"strings"
	"time"

	"github.com/lunnorapp/lunnor_caixa/internal/core/domain"
)

// Filter describes the optional criteria applied to a transaction list.
// A zero Filter matches everything.
type Filter struct {
	StartDate  *time.Time             // Inclusive lower bound on Date
	EndDate    *time.Time             // Inclusive upper bound on Date
	Type       domain.TransactionType // "" means any type
	Category   string                 // "" means any category
	SearchTerm string                 // Case-insensitive over description, category, contact
}

// IsZero reports whether no criterion is set.
func (f Filter) IsZero() bool {
	return f.StartDate == nil && f.EndDate == nil && f.Type == "" && f.Category == "" && f.SearchTerm == ""
}

// FilterTransactions returns the transactions matching every supplied
// criterion, preserving input order. An empty filter returns the input
// unchanged.
func FilterTransactions(txns []domain.Transaction, f Filter) []domain.Transaction {
	if f.IsZero() {
		return txns
	}

	search := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	out := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if f.StartDate != nil && txn.Date.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && txn.Date.After(*f.EndDate) {
			continue
		}
		if f.Type != "" && txn.Type != f.Type {
			continue
		}
		if f.Category != "" && txn.Category != f.Category {
			continue
		}
		if search != "" && !matchesSearch(txn, search) {
			continue
		}
		out = append(out, txn)
	}
	return out
}

// matchesSearch checks the free-text term against description, category
// and contact. An absent contact simply contributes no match; it never
// excludes the transaction on its own.
func matchesSearch(txn domain.Transaction, search string) bool {
	if strings.Contains(strings.ToLower(txn.Description), search) {
		return true
	}
	if strings.Contains(strings.ToLower(txn.Category), search) {
		return true
	}
	if txn.Contact != "" && strings.Contains(strings.ToLower(txn.Contact), search) {
		return true
	}
	return false
}
