package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jask/fintrack/internal/database/repository"
)

// TransactionStore is the slice of transaction storage the services use.
// *repository.TransactionRepo satisfies it.
type TransactionStore interface {
	Insert(ctx context.Context, t repository.Transaction) (int64, error)
	List(ctx context.Context) ([]repository.Transaction, error)
	ListUncategorized(ctx context.Context) ([]repository.Transaction, error)
	SearchByCategory(ctx context.Context, keyword string) ([]repository.Transaction, error)
	UpdateCategory(ctx context.Context, id int64, category string) error
	SumAbsoluteAmount(ctx context.Context, f repository.AmountFilter) (decimal.Decimal, error)
}

// BudgetStore is the budget storage the services use.
// *repository.BudgetRepo satisfies it.
type BudgetStore interface {
	Upsert(ctx context.Context, b repository.Budget) error
	Get(ctx context.Context, category string) (repository.Budget, error)
	List(ctx context.Context) ([]repository.Budget, error)
}

func nopIfNil(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
