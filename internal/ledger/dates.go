package ledger

import (
	"time"

	"github.com/jask/fintrack/internal/apperrors"
)

// DateLayout is the only stored date format. Windows compare its MM and YYYY
// substrings as text.
const DateLayout = "01/02/2006"

// MonthYear splits a stored MM/DD/YYYY date into its month and year parts.
// Anything that is not ten characters with separators at positions 3 and 6
// yields ErrMalformedDate.
func MonthYear(date string) (month, year string, err error) {
	if len(date) != 10 || date[2] != '/' || date[5] != '/' {
		return "", "", apperrors.ErrMalformedDate
	}
	return date[0:2], date[6:10], nil
}

// InWindow reports whether date falls in the month/year window using exact
// string equality. Malformed dates are never in a window.
func InWindow(date, month, year string) bool {
	m, y, err := MonthYear(date)
	if err != nil {
		return false
	}
	return m == month && y == year
}

// CurrentWindow returns the two-digit month and four-digit year of now.
func CurrentWindow(now time.Time) (month, year string) {
	return now.Format("01"), now.Format("2006")
}

// FormatDate renders t in the stored layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidDate reports whether s parses as a real MM/DD/YYYY calendar date.
func ValidDate(s string) bool {
	if _, _, err := MonthYear(s); err != nil {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
