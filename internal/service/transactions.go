package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jask/fintrack/internal/database/repository"
	"github.com/jask/fintrack/internal/ledger"
)

// TransactionService handles manual entry and lookup.
type TransactionService struct {
	Transactions TransactionStore
	Now          func() time.Time
	Log          *zap.Logger
}

// AddTransactionInput is a manual entry. An empty Date means today.
type AddTransactionInput struct {
	Amount      decimal.Decimal `validate:"ne=0"`
	Category    string          `validate:"max=64"`
	Description string          `validate:"max=256"`
	Date        string          `validate:"required,usdate"`
}

// Add validates and stores a transaction, returning it with its new id.
func (s *TransactionService) Add(ctx context.Context, in AddTransactionInput) (repository.Transaction, error) {
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	in.Date = strings.TrimSpace(in.Date)
	if in.Date == "" {
		now := time.Now
		if s.Now != nil {
			now = s.Now
		}
		in.Date = ledger.FormatDate(now())
	}
	if err := validateInput(in); err != nil {
		return repository.Transaction{}, err
	}

	t := repository.Transaction{
		Amount:      in.Amount,
		Category:    optional(in.Category),
		Description: optional(in.Description),
		Date:        in.Date,
	}
	id, err := s.Transactions.Insert(ctx, t)
	if err != nil {
		return repository.Transaction{}, err
	}
	t.ID = id
	nopIfNil(s.Log).Debug("transaction added", zap.Int64("id", id), zap.String("date", t.Date))
	return t, nil
}

// Search lists transactions whose category contains keyword; all of them when
// keyword is empty.
func (s *TransactionService) Search(ctx context.Context, keyword string) ([]repository.Transaction, error) {
	return s.Transactions.SearchByCategory(ctx, keyword)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
