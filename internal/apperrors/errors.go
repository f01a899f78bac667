// Package apperrors defines the error taxonomy shared by storage, services,
// the command layer and the dashboard. Every error that crosses a package
// boundary should be an *AppError so callers can branch with errors.Is.
package apperrors

// AppError is a coded application error with an optional internal cause.
type AppError struct {
	Code     string
	Message  string
	Internal error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Internal != nil {
		return e.Message + ": " + e.Internal.Error()
	}
	return e.Message
}

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an *AppError with the same code, so a wrapped
// error still matches its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the sentinel's code and message wrapping internal.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Internal: internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  message,
		Internal: sentinel.Internal,
	}
}

// Storage errors abort the invoking command only.
var (
	ErrStorage = &AppError{Code: "STORAGE", Message: "storage failure"}
)

// Lookup and input errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "budget not configured"}
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "invalid input"}
)

// Data errors are recovered per record by aggregations.
var (
	ErrMalformedDate = &AppError{Code: "MALFORMED_DATE", Message: "date is not in MM/DD/YYYY form"}
)

// Terminal errors are fatal for the dashboard.
var (
	ErrTerminalInit = &AppError{Code: "TERMINAL_INIT", Message: "cannot initialize terminal"}
)
