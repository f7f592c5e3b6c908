// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Request errors not tied to a single resource.
var (
	// ErrRateLimited is returned when a client exceeds the allowed number of write requests.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// RequestErrorCode defines error codes for request-level errors.
// Format: REQ-XXYYYY where XX is category and YYYY is specific error.
type RequestErrorCode string

const (
	ErrCodeRateLimited RequestErrorCode = "REQ-010001"
	ErrCodeNotFound    RequestErrorCode = "REQ-010002"
	ErrCodeInternal    RequestErrorCode = "REQ-020001"
)
