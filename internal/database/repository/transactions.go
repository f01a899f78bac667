package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jask/fintrack/internal/apperrors"
)

// AmountFilter narrows SumAbsoluteAmount. Empty fields do not filter. Month
// and Year compare exactly against the MM and YYYY parts of the stored date.
type AmountFilter struct {
	Category *string
	Month    string
	Year     string
}

// TransactionRepo handles transactions.
type TransactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{db: db} }

const transactionColumns = "id, amount, category, description, date"

// wellFormedDate guards the substring comparisons against rows whose date is not MM/DD/YYYY.
const wellFormedDate = "length(date) = 10 AND substr(date, 3, 1) = '/' AND substr(date, 6, 1) = '/'"

// Insert stores t and returns the id assigned by storage.
func (r *TransactionRepo) Insert(ctx context.Context, t Transaction) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	INSERT INTO transactions(amount, category, description, date)
	VALUES(?, ?, ?, ?);
	`, t.Amount.InexactFloat64(), t.Category, t.Description, t.Date)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return id, nil
}

// UpdateCategory sets the category of a single row.
func (r *TransactionRepo) UpdateCategory(ctx context.Context, id int64, category string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE transactions SET category = ? WHERE id = ?`, category, id); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

// List returns every transaction in ascending id order.
func (r *TransactionRepo) List(ctx context.Context) ([]Transaction, error) {
	return r.query(ctx, "SELECT "+transactionColumns+" FROM transactions ORDER BY id")
}

// ListUncategorized returns transactions whose category is NULL or empty.
func (r *TransactionRepo) ListUncategorized(ctx context.Context) ([]Transaction, error) {
	return r.query(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE category IS NULL OR category = '' ORDER BY id")
}

// SearchByCategory returns transactions whose category contains keyword,
// case-insensitively. An empty keyword returns everything.
func (r *TransactionRepo) SearchByCategory(ctx context.Context, keyword string) ([]Transaction, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return r.List(ctx)
	}
	return r.query(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE category LIKE ? ORDER BY id", "%"+keyword+"%")
}

// SumAbsoluteAmount returns the absolute value of the net sum of matching
// amounts, or zero when nothing matches. Rows with malformed dates never match
// a month or year filter.
func (r *TransactionRepo) SumAbsoluteAmount(ctx context.Context, f AmountFilter) (decimal.Decimal, error) {
	var where []string
	var args []interface{}

	if f.Category != nil {
		where = append(where, "category = ?")
		args = append(args, *f.Category)
	}
	if f.Month != "" || f.Year != "" {
		where = append(where, wellFormedDate)
	}
	if f.Month != "" {
		where = append(where, "substr(date, 1, 2) = ?")
		args = append(args, f.Month)
	}
	if f.Year != "" {
		where = append(where, "substr(date, -4) = ?")
		args = append(args, f.Year)
	}

	query := "SELECT ABS(COALESCE(SUM(amount), 0)) FROM transactions"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	var total decimal.Decimal
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return total, nil
}

func (r *TransactionRepo) query(ctx context.Context, query string, args ...interface{}) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStorage, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return out, nil
}

// scanTransaction handles nullable fields for both Row and Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row scanner) (Transaction, error) {
	var t Transaction
	var category, description sql.NullString
	if err := row.Scan(&t.ID, &t.Amount, &category, &description, &t.Date); err != nil {
		return Transaction{}, err
	}
	if category.Valid {
		t.Category = &category.String
	}
	if description.Valid {
		t.Description = &description.String
	}
	return t, nil
}
