package validation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestInvestment(t *testing.T) {
	tests := []struct {
		name      string
		raw       RawInvestment
		wantField string
		wantCode  domainerror.ValidationErrorCode
	}{
		{
			name: "valid",
			raw:  RawInvestment{Name: str("Index Fund"), InvestedAmount: str("10000"), CurrentValue: str("12500.00")},
		},
		{
			name: "zero amounts are allowed",
			raw:  RawInvestment{Name: str("Index Fund"), InvestedAmount: str("0"), CurrentValue: str("0")},
		},
		{
			name:      "missing name",
			raw:       RawInvestment{InvestedAmount: str("1"), CurrentValue: str("1")},
			wantField: "name",
			wantCode:  domainerror.ErrCodeMissingField,
		},
		{
			name:      "negative invested amount",
			raw:       RawInvestment{Name: str("Index Fund"), InvestedAmount: str("-1"), CurrentValue: str("1")},
			wantField: "investedAmount",
			wantCode:  domainerror.ErrCodeAmountOutOfRange,
		},
		{
			name:      "missing current value",
			raw:       RawInvestment{Name: str("Index Fund"), InvestedAmount: str("1")},
			wantField: "currentValue",
			wantCode:  domainerror.ErrCodeMissingField,
		},
		{
			name:      "invested amount above the maximum",
			raw:       RawInvestment{Name: str("Index Fund"), InvestedAmount: str("99999999999.99"), CurrentValue: str("1")},
			wantField: "investedAmount",
			wantCode:  domainerror.ErrCodeAmountOutOfRange,
		},
		{
			name:      "current value above the maximum",
			raw:       RawInvestment{Name: str("Index Fund"), InvestedAmount: str("1"), CurrentValue: str("1e20")},
			wantField: "currentValue",
			wantCode:  domainerror.ErrCodeAmountOutOfRange,
		},
		{
			name:      "current value with too many decimals",
			raw:       RawInvestment{Name: str("Index Fund"), InvestedAmount: str("1"), CurrentValue: str("1.001")},
			wantField: "currentValue",
			wantCode:  domainerror.ErrCodeInvalidScale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			investment, err := Investment(tt.raw)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if investment.Name != "Index Fund" {
					t.Errorf("expected name Index Fund, got %s", investment.Name)
				}
				return
			}
			assertValidationError(t, err, tt.wantField, tt.wantCode)
		})
	}
}

func TestInvestmentUpdate_Partial(t *testing.T) {
	changes, err := InvestmentUpdate(RawInvestment{CurrentValue: str("13000.50")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changes.Name != nil || changes.InvestedAmount != nil {
		t.Errorf("expected only current value to change, got %+v", changes)
	}

	investment := entity.NewInvestment("Index Fund", decimal.NewFromInt(10000), decimal.NewFromInt(12500))
	investment.LastUpdated = time.Now().UTC().Add(-time.Hour)
	before := investment.LastUpdated

	changes.Apply(investment)

	if !investment.CurrentValue.Equal(decimal.RequireFromString("13000.50")) {
		t.Errorf("expected current value 13000.50, got %s", investment.CurrentValue)
	}
	if !investment.InvestedAmount.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("expected invested amount unchanged, got %s", investment.InvestedAmount)
	}
	if investment.Name != "Index Fund" {
		t.Errorf("expected name unchanged, got %s", investment.Name)
	}
	if !investment.LastUpdated.After(before) {
		t.Error("expected last updated to move forward")
	}
}

func TestInvestmentUpdate_Invalid(t *testing.T) {
	_, err := InvestmentUpdate(RawInvestment{Name: str(" "), CurrentValue: str("-3")})
	assertValidationError(t, err, "name", domainerror.ErrCodeMissingField)

	_, err = InvestmentUpdate(RawInvestment{InvestedAmount: str("-3")})
	assertValidationError(t, err, "investedAmount", domainerror.ErrCodeAmountOutOfRange)

	_, err = InvestmentUpdate(RawInvestment{CurrentValue: str("10000000000.00")})
	assertValidationError(t, err, "currentValue", domainerror.ErrCodeAmountOutOfRange)
}

func TestInvestmentUpdate_Empty(t *testing.T) {
	changes, err := InvestmentUpdate(RawInvestment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changes.IsEmpty() {
		t.Errorf("expected empty changes, got %+v", changes)
	}
}
