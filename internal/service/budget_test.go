package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jask/fintrack/internal/apperrors"
	"github.com/jask/fintrack/internal/database/repository"
	"github.com/jask/fintrack/internal/ledger"
)

func newBudgetService(s stores) *BudgetService {
	return &BudgetService{Transactions: s.tx, Budgets: s.budgets, Now: fixedClock(2024, time.March, 20)}
}

func TestSpentThisMonth(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStores(t)
	s.add(t, "-50", "Food", "", "03/01/2024")
	s.add(t, "-30", "Food", "", "03/15/2024")
	s.add(t, "-70", "Food", "", "02/28/2024")
	s.add(t, "-70", "Food", "", "03/01/2023")
	svc := newBudgetService(s)

	spent, err := svc.SpentThisMonth(ctx, "Food")
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(80).Equal(spent))

	spent, err = svc.SpentThisMonth(ctx, "Travel")
	require.NoError(t, err)
	require.True(t, spent.IsZero())
}

func TestCheckBudgetBands(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cases := []struct {
		spent string
		want  ledger.Status
	}{
		{"-80", ledger.Warning},
		{"-100", ledger.Exceeded},
		{"-79.99", ledger.WithinBudget},
	}
	for _, c := range cases {
		s := newStores(t)
		s.add(t, c.spent, "Food", "", "03/10/2024")
		svc := newBudgetService(s)
		require.NoError(t, svc.SetBudget(ctx, "Food", decimal.NewFromInt(100)))

		check, err := svc.CheckBudget(ctx, "Food")
		require.NoError(t, err)
		require.Equal(t, c.want, check.Status, c.spent)
		require.True(t, decimal.NewFromInt(100).Equal(check.Limit))
	}
}

func TestCheckBudgetNotFound(t *testing.T) {
	t.Parallel()
	s := newStores(t)
	svc := newBudgetService(s)

	_, err := svc.CheckBudget(context.Background(), "Food")
	require.ErrorIs(t, err, apperrors.ErrBudgetNotFound)
}

func TestSetBudgetValidatesAndUpserts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStores(t)
	svc := newBudgetService(s)

	err := svc.SetBudget(ctx, "", decimal.NewFromInt(10))
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	err = svc.SetBudget(ctx, "Food", decimal.Zero)
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	require.Contains(t, err.Error(), "limit")

	require.NoError(t, svc.SetBudget(ctx, " Food ", decimal.NewFromInt(10)))
	require.NoError(t, svc.SetBudget(ctx, "Food", decimal.NewFromInt(25)))
	b, err := s.budgets.Get(ctx, "Food")
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(25).Equal(b.Limit))
}

// missingBudgetStore reports one listed category as missing on lookup.
type missingBudgetStore struct {
	BudgetStore
	missing string
}

func (m missingBudgetStore) Get(ctx context.Context, category string) (b repository.Budget, err error) {
	if category == m.missing {
		return b, apperrors.ErrBudgetNotFound
	}
	return m.BudgetStore.Get(ctx, category)
}

func TestCheckAllSkipsFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStores(t)
	s.add(t, "-90", "Food", "", "03/10/2024")
	s.add(t, "-5", "Transport", "", "03/10/2024")

	svc := newBudgetService(s)
	for cat, limit := range map[string]int64{"Food": 100, "Housing": 500, "Transport": 50} {
		require.NoError(t, svc.SetBudget(ctx, cat, decimal.NewFromInt(limit)))
	}
	svc.Budgets = missingBudgetStore{BudgetStore: s.budgets, missing: "Housing"}

	report, err := svc.CheckAll(ctx)
	require.NoError(t, err)
	require.Len(t, report.Checks, 2)
	require.Equal(t, "Food", report.Checks[0].Category)
	require.Equal(t, ledger.Warning, report.Checks[0].Status)
	require.Equal(t, "Transport", report.Checks[1].Category)
	require.Equal(t, ledger.WithinBudget, report.Checks[1].Status)
	require.Len(t, report.Failures, 1)
	require.Equal(t, "Housing", report.Failures[0].Category)
	require.ErrorIs(t, report.Failures[0].Err, apperrors.ErrBudgetNotFound)
}

func TestSuggest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newStores(t)
	svc := newBudgetService(s)
	require.NoError(t, svc.SetBudget(ctx, "Entertainment", decimal.NewFromInt(50)))
	require.NoError(t, svc.SetBudget(ctx, "Food", decimal.NewFromInt(50)))

	got, ok := svc.Suggest(ctx, "food ")
	require.True(t, ok)
	require.Equal(t, "Food", got)

	got, ok = svc.Suggest(ctx, "entertainmnt")
	require.True(t, ok)
	require.Equal(t, "Entertainment", got)

	_, ok = svc.Suggest(ctx, "Housing")
	require.False(t, ok)
}
