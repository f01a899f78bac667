package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jask/fintrack/internal/apperrors"
)

// BudgetRepo stores one limit per category.
type BudgetRepo struct{ db *sql.DB }

func NewBudgetRepo(db *sql.DB) *BudgetRepo { return &BudgetRepo{db: db} }

// Upsert inserts the budget or replaces the limit of an existing category.
func (r *BudgetRepo) Upsert(ctx context.Context, b Budget) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO budgets(category, limit_amount)
	VALUES (?, ?)
	ON CONFLICT(category) DO UPDATE SET
	 limit_amount=excluded.limit_amount;
	`, b.Category, b.Limit.InexactFloat64())
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// Get returns the budget for category or ErrBudgetNotFound.
func (r *BudgetRepo) Get(ctx context.Context, category string) (Budget, error) {
	b := Budget{Category: category}
	err := r.db.QueryRowContext(ctx, `SELECT limit_amount FROM budgets WHERE category = ?`, category).Scan(&b.Limit)
	if errors.Is(err, sql.ErrNoRows) {
		return Budget{}, apperrors.WithMessage(apperrors.ErrBudgetNotFound, fmt.Sprintf("no budget configured for %q", category))
	}
	if err != nil {
		return Budget{}, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return b, nil
}

// List returns all budgets ordered by category name.
func (r *BudgetRepo) List(ctx context.Context) ([]Budget, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category, limit_amount FROM budgets ORDER BY category`)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	defer rows.Close()
	var out []Budget
	for rows.Next() {
		var b Budget
		if err := rows.Scan(&b.Category, &b.Limit); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStorage, err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return out, nil
}
