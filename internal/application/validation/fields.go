// Package validation turns raw client input into well-typed records, rejecting
// the first field that breaks a rule.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

const (
	// MaxCategoryLength is the maximum allowed length for transaction categories.
	MaxCategoryLength = 255
	// MaxNameLength is the maximum allowed length for debt and investment names.
	MaxNameLength = 255
	// MaxNotesLength is the maximum allowed length for transaction notes.
	MaxNotesLength = 1000
	// MoneyScale is the number of fractional digits kept for monetary values.
	MoneyScale = 2
)

// MaxMoney is the largest amount a decimal(12,2) column holds.
var MaxMoney = decimal.RequireFromString("9999999999.99")

// dateLayouts are tried in order when parsing a date field.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dateOnlyLayout,
}

const dateOnlyLayout = "2006-01-02"

// present reports whether a raw field was supplied with a non-blank value.
func present(raw *string) bool {
	return raw != nil && strings.TrimSpace(*raw) != ""
}

// requiredText validates a mandatory, length-bounded text field.
func requiredText(field string, raw *string, maxLength int) (string, error) {
	if !present(raw) {
		return "", domainerror.NewValidationError(
			domainerror.ErrCodeMissingField,
			field,
			fmt.Sprintf("%s is required", field),
			domainerror.ErrMissingField,
		)
	}
	value := strings.TrimSpace(*raw)
	if utf8.RuneCountInString(value) > maxLength {
		return "", domainerror.NewValidationError(
			domainerror.ErrCodeFieldTooLong,
			field,
			fmt.Sprintf("%s must not exceed %d characters", field, maxLength),
			domainerror.ErrFieldTooLong,
		)
	}
	return value, nil
}

// money validates a mandatory monetary field against a lower bound.
// With strict set the value must be greater than min, otherwise greater than or equal.
func money(field string, raw *string, min decimal.Decimal, strict bool) (decimal.Decimal, error) {
	if !present(raw) {
		return decimal.Zero, domainerror.NewValidationError(
			domainerror.ErrCodeMissingField,
			field,
			fmt.Sprintf("%s is required", field),
			domainerror.ErrMissingField,
		)
	}

	value, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		return decimal.Zero, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidNumber,
			field,
			fmt.Sprintf("%s must be a number", field),
			domainerror.ErrInvalidNumber,
		)
	}

	if strict && value.LessThanOrEqual(min) {
		return decimal.Zero, domainerror.NewValidationError(
			domainerror.ErrCodeAmountOutOfRange,
			field,
			fmt.Sprintf("%s must be greater than %s", field, min.String()),
			domainerror.ErrAmountOutOfRange,
		)
	}
	if !strict && value.LessThan(min) {
		return decimal.Zero, domainerror.NewValidationError(
			domainerror.ErrCodeAmountOutOfRange,
			field,
			fmt.Sprintf("%s must be at least %s", field, min.String()),
			domainerror.ErrAmountOutOfRange,
		)
	}

	if value.GreaterThan(MaxMoney) {
		return decimal.Zero, domainerror.NewValidationError(
			domainerror.ErrCodeAmountOutOfRange,
			field,
			fmt.Sprintf("%s must not exceed %s", field, MaxMoney.StringFixed(MoneyScale)),
			domainerror.ErrAmountOutOfRange,
		)
	}

	if !value.Equal(value.Round(MoneyScale)) {
		return decimal.Zero, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidScale,
			field,
			fmt.Sprintf("%s must have at most %d decimal places", field, MoneyScale),
			domainerror.ErrInvalidScale,
		)
	}

	return value.Round(MoneyScale), nil
}

// parseDate parses a date field in any of the accepted layouts, or as integer
// milliseconds since the Unix epoch, and reports whether the input carried
// only a calendar day.
func parseDate(field, raw string) (time.Time, bool, error) {
	value := strings.TrimSpace(raw)
	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), false, nil
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), layout == dateOnlyLayout, nil
		}
	}
	return time.Time{}, false, domainerror.NewValidationError(
		domainerror.ErrCodeInvalidDate,
		field,
		fmt.Sprintf("%s must be a valid date (YYYY-MM-DD, RFC 3339 or epoch milliseconds)", field),
		domainerror.ErrInvalidDate,
	)
}
