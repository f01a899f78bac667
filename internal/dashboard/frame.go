package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jask/fintrack/internal/database/repository"
	"github.com/jask/fintrack/internal/ledger"
)

// BarWidth is the longest report bar in cells.
const BarWidth = 30

var (
	hundred    = decimal.NewFromInt(100)
	percentCap = decimal.RequireFromString("999.9")
)

// Data is what the dashboard shows. It is loaded once and never mutated.
type Data struct {
	Transactions []repository.Transaction
	Budgets      []repository.Budget
}

// TransactionLine renders one Transactions screen row.
func TransactionLine(t repository.Transaction, currency string) string {
	return fmt.Sprintf("%d | %s | %s %s | %s", t.ID, t.Date, t.Amount.StringFixed(2), currency, t.DescriptionText())
}

// BudgetRow is one Budgets screen row. Spend covers every loaded transaction,
// not just the current month.
type BudgetRow struct {
	Category  string
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
	Percent   decimal.Decimal
	Over      bool
}

// BudgetRows pairs each budget with its all-time expense total.
func BudgetRows(budgets []repository.Budget, txs []repository.Transaction) []BudgetRow {
	spent := ledger.ExpensesByCategory(txs, nil)
	rows := make([]BudgetRow, 0, len(budgets))
	for _, b := range budgets {
		s := spent[b.Category]
		remaining := b.Limit.Sub(s)
		percent := decimal.Zero
		if b.Limit.IsPositive() {
			percent = decimal.Min(s.Div(b.Limit).Mul(hundred), percentCap)
		}
		rows = append(rows, BudgetRow{
			Category:  b.Category,
			Limit:     b.Limit,
			Spent:     s,
			Remaining: remaining,
			Percent:   percent,
			Over:      remaining.IsNegative(),
		})
	}
	return rows
}

// Line renders the row as text.
func (r BudgetRow) Line(currency string) string {
	return fmt.Sprintf("%s: limit %s %s | spent %s %s | remaining %s %s (%s%%)",
		r.Category,
		r.Limit.StringFixed(2), currency,
		r.Spent.StringFixed(2), currency,
		r.Remaining.StringFixed(2), currency,
		r.Percent.StringFixed(1))
}

// Bar is one Reports screen row.
type Bar struct {
	Category string
	Total    decimal.Decimal
	Cells    int
}

// ReportBars returns this month's expense totals per category as bars scaled
// to the largest total. Every bar is at least one cell. The month is taken
// from now; it is empty when there were no expenses this month.
func ReportBars(txs []repository.Transaction, now time.Time) []Bar {
	month, year := ledger.CurrentWindow(now)
	totals := ledger.ExpenseBreakdown(txs, month, year)
	if len(totals) == 0 {
		return nil
	}
	maxTotal := decimal.NewFromInt(1)
	for _, ct := range totals {
		maxTotal = decimal.Max(maxTotal, ct.Total)
	}
	bars := make([]Bar, 0, len(totals))
	for _, ct := range totals {
		cells := int(ct.Total.Div(maxTotal).Mul(decimal.NewFromInt(BarWidth)).Round(0).IntPart())
		if cells < 1 {
			cells = 1
		}
		bars = append(bars, Bar{Category: ct.Category, Total: ct.Total, Cells: cells})
	}
	return bars
}

// Line renders the bar as text.
func (b Bar) Line(currency string) string {
	return fmt.Sprintf("%s  %-*s  %s %s", b.Category, BarWidth, strings.Repeat("█", b.Cells), b.Total.StringFixed(2), currency)
}

// ReportTitle names the month the Reports screen covers, e.g. "March (03/2024)".
func ReportTitle(now time.Time) string {
	return fmt.Sprintf("%s (%s)", now.Format("January"), now.Format("01/2006"))
}
