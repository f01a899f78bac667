package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jask/fintrack/internal/database"
	"github.com/jask/fintrack/internal/database/repository"
)

type stores struct {
	tx      *repository.TransactionRepo
	budgets *repository.BudgetRepo
}

func newStores(t *testing.T) stores {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return stores{tx: repository.NewTransactionRepo(db), budgets: repository.NewBudgetRepo(db)}
}

func (s stores) add(t *testing.T, amount, category, description, date string) int64 {
	t.Helper()
	row := repository.Transaction{Amount: decimal.RequireFromString(amount), Date: date}
	if category != "" {
		row.Category = &category
	}
	if description != "" {
		row.Description = &description
	}
	id, err := s.tx.Insert(context.Background(), row)
	require.NoError(t, err)
	return id
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time { return time.Date(year, month, day, 10, 0, 0, 0, time.UTC) }
}

var errWrite = errors.New("disk full")

// failingStore fails UpdateCategory after a number of successful writes.
type failingStore struct {
	TransactionStore
	okWrites int
	writes   []int64
}

func (f *failingStore) UpdateCategory(ctx context.Context, id int64, category string) error {
	if len(f.writes) >= f.okWrites {
		return errWrite
	}
	f.writes = append(f.writes, id)
	return f.TransactionStore.UpdateCategory(ctx, id, category)
}
