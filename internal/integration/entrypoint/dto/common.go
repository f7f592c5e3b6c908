// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits rendered for money and percentages.
const moneyScale = 2

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// Literal holds a request value exactly as the client wrote it. JSON strings
// are unquoted; numbers and other tokens keep their literal text so monetary
// values never pass through a float.
type Literal string

// UnmarshalJSON implements json.Unmarshaler.
func (l *Literal) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = Literal(s)
		return nil
	}
	*l = Literal(bytes.TrimSpace(data))
	return nil
}

// Ptr returns the literal as a string pointer, nil when the field was absent or null.
func (l *Literal) Ptr() *string {
	if l == nil {
		return nil
	}
	s := string(*l)
	return &s
}

// Money renders a monetary amount with two fractional digits.
func Money(d decimal.Decimal) string {
	return d.StringFixed(moneyScale)
}

// QueryParam returns the query value as a pointer, nil when the key is absent.
func QueryParam(value string, ok bool) *string {
	if !ok {
		return nil
	}
	return &value
}
