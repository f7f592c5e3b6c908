package validation

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// RawDebt is an unvalidated debt creation request.
type RawDebt struct {
	Name          *string
	InitialAmount *string
}

// Debt validates raw and returns a debt ready for storage.
func Debt(raw RawDebt) (*entity.Debt, error) {
	name, err := requiredText("name", raw.Name, MaxNameLength)
	if err != nil {
		return nil, err
	}

	initialAmount, err := money("initialAmount", raw.InitialAmount, decimal.Zero, true)
	if err != nil {
		return nil, err
	}

	return entity.NewDebt(name, initialAmount), nil
}
