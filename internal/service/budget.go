package service

import (
	"context"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jask/fintrack/internal/database/repository"
	"github.com/jask/fintrack/internal/ledger"
)

// suggestDistance bounds "did you mean" suggestions for unknown categories.
const suggestDistance = 3

// BudgetService evaluates month-to-date spend against per-category limits.
type BudgetService struct {
	Transactions TransactionStore
	Budgets      BudgetStore
	Now          func() time.Time
	Log          *zap.Logger
}

// BudgetCheck is the evaluation of one category.
type BudgetCheck struct {
	Category string
	Spent    decimal.Decimal
	Limit    decimal.Decimal
	Ratio    decimal.Decimal
	Status   ledger.Status
}

// BudgetFailure records a category whose evaluation failed.
type BudgetFailure struct {
	Category string
	Err      error
}

// BudgetReport is the result of evaluating every configured budget.
type BudgetReport struct {
	Checks   []BudgetCheck
	Failures []BudgetFailure
}

type budgetInput struct {
	Category string          `validate:"required,max=64"`
	Limit    decimal.Decimal `validate:"gt=0"`
}

func (s *BudgetService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SetBudget inserts or replaces the limit for category.
func (s *BudgetService) SetBudget(ctx context.Context, category string, limit decimal.Decimal) error {
	in := budgetInput{Category: strings.TrimSpace(category), Limit: limit}
	if err := validateInput(in); err != nil {
		return err
	}
	if err := s.Budgets.Upsert(ctx, repository.Budget{Category: in.Category, Limit: in.Limit}); err != nil {
		return err
	}
	nopIfNil(s.Log).Info("budget set", zap.String("category", in.Category), zap.String("limit", in.Limit.String()))
	return nil
}

// SpentThisMonth returns the absolute net amount of category in the current
// calendar month. It is zero, never an error, when nothing matches.
func (s *BudgetService) SpentThisMonth(ctx context.Context, category string) (decimal.Decimal, error) {
	month, year := ledger.CurrentWindow(s.now())
	return s.Transactions.SumAbsoluteAmount(ctx, repository.AmountFilter{
		Category: &category,
		Month:    month,
		Year:     year,
	})
}

// CheckBudget classifies this month's spend for category against its limit.
// It fails with ErrBudgetNotFound when no budget is configured.
func (s *BudgetService) CheckBudget(ctx context.Context, category string) (BudgetCheck, error) {
	b, err := s.Budgets.Get(ctx, category)
	if err != nil {
		return BudgetCheck{}, err
	}
	spent, err := s.SpentThisMonth(ctx, category)
	if err != nil {
		return BudgetCheck{}, err
	}
	status, ratio := ledger.Classify(spent, b.Limit)
	return BudgetCheck{
		Category: category,
		Spent:    spent,
		Limit:    b.Limit,
		Ratio:    ratio,
		Status:   status,
	}, nil
}

// CheckAll evaluates every configured budget. A failing category is recorded
// and skipped; only failing to list budgets aborts.
func (s *BudgetService) CheckAll(ctx context.Context) (BudgetReport, error) {
	log := nopIfNil(s.Log)
	budgets, err := s.Budgets.List(ctx)
	if err != nil {
		return BudgetReport{}, err
	}
	var report BudgetReport
	for _, b := range budgets {
		check, err := s.CheckBudget(ctx, b.Category)
		if err != nil {
			log.Warn("budget check failed", zap.String("category", b.Category), zap.Error(err))
			report.Failures = append(report.Failures, BudgetFailure{Category: b.Category, Err: err})
			continue
		}
		report.Checks = append(report.Checks, check)
	}
	return report, nil
}

// Suggest returns the configured budget category closest to category when it
// is within a small edit distance, ignoring case.
func (s *BudgetService) Suggest(ctx context.Context, category string) (string, bool) {
	budgets, err := s.Budgets.List(ctx)
	if err != nil {
		return "", false
	}
	want := strings.ToLower(strings.TrimSpace(category))
	best, bestDist := "", suggestDistance+1
	for _, b := range budgets {
		d := levenshtein.ComputeDistance(want, strings.ToLower(b.Category))
		if d < bestDist {
			best, bestDist = b.Category, d
		}
	}
	return best, best != ""
}
