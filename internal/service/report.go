package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jask/fintrack/internal/database/repository"
	"github.com/jask/fintrack/internal/ledger"
)

// ReportService aggregates spending for a month/year window. Month and year
// are matched as text: "03" and "2024", not "3".
type ReportService struct {
	Transactions TransactionStore
}

// MonthlySpending returns the absolute value of the net sum of every
// transaction in the window; income offsets expenses before the absolute
// value is taken.
func (s *ReportService) MonthlySpending(ctx context.Context, month, year string) (decimal.Decimal, error) {
	return s.Transactions.SumAbsoluteAmount(ctx, repository.AmountFilter{Month: month, Year: year})
}

// CategoryBreakdown returns expense magnitudes per category in the window,
// ordered by category. Income is excluded.
func (s *ReportService) CategoryBreakdown(ctx context.Context, month, year string) ([]ledger.CategoryTotal, error) {
	txs, err := s.Transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.ExpenseBreakdown(txs, month, year), nil
}
