// Package testdata fills a database with sample transactions and budgets.
package testdata

import (
	"context"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jask/fintrack/internal/database/repository"
	"github.com/jask/fintrack/internal/ledger"
)

// TransactionInserter stores one transaction.
type TransactionInserter interface {
	Insert(ctx context.Context, t repository.Transaction) (int64, error)
}

// BudgetUpserter stores one budget.
type BudgetUpserter interface {
	Upsert(ctx context.Context, b repository.Budget) error
}

// Stores bundles the stores used by Seed.
type Stores struct {
	Transactions TransactionInserter
	Budgets      BudgetUpserter
}

// Summary reports what Seed wrote.
type Summary struct {
	Transactions int
	Budgets      int
}

type sample struct {
	description string
	min, max    int64 // whole currency units; negative for expenses
}

var samples = []sample{
	{"UBER TRIP", -60, -15},
	{"Taxi airport", -120, -40},
	{"KAUFLAND 0231", -350, -40},
	{"Lidl", -150, -10},
	{"NETFLIX.COM", -60, -60},
	{"Spotify Premium", -25, -25},
	{"Chirie", -2500, -2500},
	{"SALARY ACME", 6000, 9000},
	{"Kiosk", -30, -5},
}

var sampleBudgets = []repository.Budget{
	{Category: "Food", Limit: decimal.NewFromInt(800)},
	{Category: "Transport", Limit: decimal.NewFromInt(200)},
	{Category: "Entertainment", Limit: decimal.NewFromInt(70)},
}

// Seed writes n uncategorized transactions dated in the month of now or the
// month before it, plus a fixed set of budgets. The same rng seed produces the
// same rows.
func Seed(ctx context.Context, stores Stores, now time.Time, n int, rng *rand.Rand) (Summary, error) {
	var sum Summary
	for i := 0; i < n; i++ {
		s := samples[rng.Intn(len(samples))]
		amount := s.min
		if s.max > s.min {
			amount += rng.Int63n(s.max - s.min + 1)
		}
		cents := rng.Int63n(100)
		if amount < 0 {
			cents = -cents
		}
		desc := s.description
		t := repository.Transaction{
			Amount:      decimal.New(amount*100+cents, -2),
			Description: &desc,
			Date:        ledger.FormatDate(now.AddDate(0, 0, -rng.Intn(now.Day()+27))),
		}
		if _, err := stores.Transactions.Insert(ctx, t); err != nil {
			return sum, err
		}
		sum.Transactions++
	}
	for _, b := range sampleBudgets {
		if err := stores.Budgets.Upsert(ctx, b); err != nil {
			return sum, err
		}
		sum.Budgets++
	}
	return sum, nil
}
