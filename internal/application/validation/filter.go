package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// MaxListLimit caps the number of transactions a single listing may return.
const MaxListLimit = 1000

// RawTransactionFilter holds the unparsed query parameters of a transaction listing.
type RawTransactionFilter struct {
	StartDate *string
	EndDate   *string
	Type      *string
	Limit     *string
}

// TransactionFilter parses listing parameters. A calendar-day end date covers
// that whole day so the range stays inclusive.
func TransactionFilter(raw RawTransactionFilter) (adapter.TransactionFilter, error) {
	var filter adapter.TransactionFilter

	if present(raw.StartDate) {
		start, _, err := parseDate("startDate", *raw.StartDate)
		if err != nil {
			return adapter.TransactionFilter{}, err
		}
		filter.StartDate = &start
	}

	if present(raw.EndDate) {
		end, dayOnly, err := parseDate("endDate", *raw.EndDate)
		if err != nil {
			return adapter.TransactionFilter{}, err
		}
		if dayOnly {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		filter.EndDate = &end
	}

	if present(raw.Type) {
		txnType, err := ParseTransactionType("type", *raw.Type)
		if err != nil {
			return adapter.TransactionFilter{}, err
		}
		filter.Type = &txnType
	}

	if present(raw.Limit) {
		limit, err := strconv.Atoi(strings.TrimSpace(*raw.Limit))
		if err != nil || limit < 1 || limit > MaxListLimit {
			return adapter.TransactionFilter{}, domainerror.NewValidationError(
				domainerror.ErrCodeInvalidNumber,
				"limit",
				fmt.Sprintf("limit must be an integer between 1 and %d", MaxListLimit),
				domainerror.ErrInvalidNumber,
			)
		}
		filter.Limit = limit
	}

	return filter, nil
}
