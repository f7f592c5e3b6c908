// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt is not found in the system.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrInvalidDebtID is returned when a debt identifier is malformed.
	ErrInvalidDebtID = errors.New("invalid debt id")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	ErrCodeInvalidDebtID DebtErrorCode = "DBT-010001"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
