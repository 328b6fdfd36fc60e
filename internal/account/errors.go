package account

import "errors"

// Sentinel errors for the ledger. Callers discriminate with errors.Is; every
// returned error wraps exactly one of these.
var (
	ErrValidation        = errors.New("invalid input")
	ErrConflict          = errors.New("conflict")
	ErrNotFound          = errors.New("not found")
	ErrAuth              = errors.New("not authorized")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrStorage           = errors.New("storage failure")
)

// Severity tags a user-facing message for the presentation layer.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// SeverityFor maps an error to a display severity. A nil error is success.
func SeverityFor(err error) Severity {
	if err == nil {
		return SeveritySuccess
	}
	return SeverityError
}
