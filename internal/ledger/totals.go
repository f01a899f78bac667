package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jask/fintrack/internal/database/repository"
)

// Uncategorized labels transactions with no category in totals.
const Uncategorized = "Uncategorized"

// CategoryTotal is the summed expense magnitude of one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CategoryOf returns the transaction's category, or Uncategorized.
func CategoryOf(t repository.Transaction) string {
	if c := strings.TrimSpace(t.CategoryLabel()); c != "" {
		return c
	}
	return Uncategorized
}

// ExpensesByCategory sums the magnitude of negative amounts per category over
// the transactions keep accepts. A nil keep accepts everything.
func ExpensesByCategory(txs []repository.Transaction, keep func(repository.Transaction) bool) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if !t.Amount.IsNegative() {
			continue
		}
		if keep != nil && !keep(t) {
			continue
		}
		cat := CategoryOf(t)
		out[cat] = out[cat].Add(t.Amount.Neg())
	}
	return out
}

// ExpenseBreakdown returns per-category expense totals for the month/year
// window, ordered by category name. Income is excluded and categories with no
// expenses are omitted.
func ExpenseBreakdown(txs []repository.Transaction, month, year string) []CategoryTotal {
	totals := ExpensesByCategory(txs, func(t repository.Transaction) bool {
		return InWindow(t.Date, month, year)
	})
	return Sorted(totals)
}

// Sorted flattens totals into a slice ordered by category name.
func Sorted(totals map[string]decimal.Decimal) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for cat, total := range totals {
		out = append(out, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
