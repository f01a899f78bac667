package ledger

import "github.com/shopspring/decimal"

// Status is the outcome of comparing spend with a budget limit.
type Status int

const (
	WithinBudget Status = iota
	Warning
	Exceeded
)

func (s Status) String() string {
	switch s {
	case Warning:
		return "warning"
	case Exceeded:
		return "exceeded"
	default:
		return "within budget"
	}
}

var warningRatio = decimal.RequireFromString("0.8")

// Classify returns the status band and the spent/limit ratio. A zero or
// negative limit has no ratio: any spend exceeds it and the ratio is zero.
func Classify(spent, limit decimal.Decimal) (Status, decimal.Decimal) {
	if !limit.IsPositive() {
		if spent.IsPositive() {
			return Exceeded, decimal.Zero
		}
		return WithinBudget, decimal.Zero
	}
	ratio := spent.Div(limit)
	switch {
	case ratio.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return Exceeded, ratio
	case ratio.GreaterThanOrEqual(warningRatio):
		return Warning, ratio
	default:
		return WithinBudget, ratio
	}
}
