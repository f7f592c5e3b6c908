// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Validation domain errors.
var (
	// ErrMissingField is returned when a required field is absent or blank.
	ErrMissingField = errors.New("missing field")

	// ErrInvalidNumber is returned when a monetary field does not parse as a decimal.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrAmountOutOfRange is returned when a monetary field is outside its allowed range.
	ErrAmountOutOfRange = errors.New("amount out of range")

	// ErrInvalidScale is returned when a monetary field has more than two fractional digits.
	ErrInvalidScale = errors.New("too many fractional digits")

	// ErrInvalidDate is returned when a date field does not parse as a timestamp.
	ErrInvalidDate = errors.New("invalid date")

	// ErrFieldTooLong is returned when a text field exceeds its maximum length.
	ErrFieldTooLong = errors.New("field too long")

	// ErrInvalidReference is returned when a reference field is not a valid identifier.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrUnexpectedReference is returned when a debt reference is given for a non-payment transaction.
	ErrUnexpectedReference = errors.New("unexpected reference")

	// ErrInvalidRequestBody is returned when the request body cannot be decoded at all.
	ErrInvalidRequestBody = errors.New("invalid request body")
)

// ValidationErrorCode defines error codes for input validation errors.
// Format: VAL-XXYYYY where XX is category and YYYY is specific error.
type ValidationErrorCode string

const (
	ErrCodeMissingField         ValidationErrorCode = "VAL-010001"
	ErrCodeInvalidNumber        ValidationErrorCode = "VAL-010002"
	ErrCodeAmountOutOfRange     ValidationErrorCode = "VAL-010003"
	ErrCodeInvalidScale         ValidationErrorCode = "VAL-010004"
	ErrCodeInvalidType          ValidationErrorCode = "VAL-010005"
	ErrCodeInvalidDate          ValidationErrorCode = "VAL-010006"
	ErrCodeFieldTooLong         ValidationErrorCode = "VAL-010007"
	ErrCodeInvalidReference     ValidationErrorCode = "VAL-010008"
	ErrCodeUnexpectedReference  ValidationErrorCode = "VAL-010009"
	ErrCodeReferencedDebtAbsent ValidationErrorCode = "VAL-010010"
	ErrCodeInvalidRequestBody   ValidationErrorCode = "VAL-010011"
)

// ValidationError names the first offending input field and why it was rejected.
type ValidationError struct {
	Code    ValidationErrorCode
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(code ValidationErrorCode, field, message string, err error) *ValidationError {
	return &ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
		Err:     err,
	}
}
