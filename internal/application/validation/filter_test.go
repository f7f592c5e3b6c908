package validation

import (
	"testing"
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestTransactionFilter_Empty(t *testing.T) {
	filter, err := TransactionFilter(RawTransactionFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter.StartDate != nil || filter.EndDate != nil || filter.Type != nil || filter.Limit != 0 {
		t.Errorf("expected empty filter, got %+v", filter)
	}
}

func TestTransactionFilter_Full(t *testing.T) {
	filter, err := TransactionFilter(RawTransactionFilter{
		StartDate: str("2024-01-01"),
		EndDate:   str("2024-01-31"),
		Type:      str("income"),
		Limit:     str("50"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !filter.StartDate.Equal(wantStart) {
		t.Errorf("expected start %s, got %s", wantStart, filter.StartDate)
	}

	lastMoment := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	if filter.EndDate.Before(lastMoment) {
		t.Errorf("expected end date to cover the whole day, got %s", filter.EndDate)
	}
	if !filter.EndDate.Before(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected end date to stay within the day, got %s", filter.EndDate)
	}

	if *filter.Type != entity.TransactionTypeIncome {
		t.Errorf("expected type income, got %s", *filter.Type)
	}
	if filter.Limit != 50 {
		t.Errorf("expected limit 50, got %d", filter.Limit)
	}
}

func TestTransactionFilter_TimestampEndDateIsExact(t *testing.T) {
	filter, err := TransactionFilter(RawTransactionFilter{EndDate: str("2024-01-31T12:00:00Z")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	if !filter.EndDate.Equal(want) {
		t.Errorf("expected end %s, got %s", want, filter.EndDate)
	}
}

func TestTransactionFilter_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		raw   RawTransactionFilter
		field string
		code  domainerror.ValidationErrorCode
	}{
		{"bad start date", RawTransactionFilter{StartDate: str("yesterday")}, "startDate", domainerror.ErrCodeInvalidDate},
		{"bad end date", RawTransactionFilter{EndDate: str("2024-13-01")}, "endDate", domainerror.ErrCodeInvalidDate},
		{"unknown type", RawTransactionFilter{Type: str("refund")}, "type", domainerror.ErrCodeInvalidType},
		{"zero limit", RawTransactionFilter{Limit: str("0")}, "limit", domainerror.ErrCodeInvalidNumber},
		{"limit too large", RawTransactionFilter{Limit: str("1001")}, "limit", domainerror.ErrCodeInvalidNumber},
		{"limit not a number", RawTransactionFilter{Limit: str("ten")}, "limit", domainerror.ErrCodeInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TransactionFilter(tt.raw)
			assertValidationError(t, err, tt.field, tt.code)
		})
	}
}
