package repository

import "github.com/shopspring/decimal"

// Transaction represents a transaction row. Amount is negative for expenses
// and positive for income. Date is stored as MM/DD/YYYY text.
type Transaction struct {
	ID          int64
	Amount      decimal.Decimal
	Category    *string
	Description *string
	Date        string
}

// CategoryLabel returns the category or "" when unset.
func (t Transaction) CategoryLabel() string {
	if t.Category == nil {
		return ""
	}
	return *t.Category
}

// DescriptionText returns the description or "" when unset.
func (t Transaction) DescriptionText() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}

// Budget represents a per-category spending limit row.
type Budget struct {
	Category string
	Limit    decimal.Decimal
}
