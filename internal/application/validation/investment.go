package validation

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// RawInvestment is an unvalidated investment creation or update request.
type RawInvestment struct {
	Name           *string
	InvestedAmount *string
	CurrentValue   *string
}

// InvestmentChanges holds the validated subset of fields an update touches.
type InvestmentChanges struct {
	Name           *string
	InvestedAmount *decimal.Decimal
	CurrentValue   *decimal.Decimal
}

// IsEmpty reports whether the update touches no field.
func (c InvestmentChanges) IsEmpty() bool {
	return c.Name == nil && c.InvestedAmount == nil && c.CurrentValue == nil
}

// Apply copies the changed fields onto investment and refreshes its timestamp.
func (c InvestmentChanges) Apply(investment *entity.Investment) {
	if c.Name != nil {
		investment.Name = *c.Name
	}
	if c.InvestedAmount != nil {
		investment.InvestedAmount = *c.InvestedAmount
	}
	if c.CurrentValue != nil {
		investment.CurrentValue = *c.CurrentValue
	}
	investment.Touch()
}

// Investment validates raw and returns an investment ready for storage.
func Investment(raw RawInvestment) (*entity.Investment, error) {
	name, err := requiredText("name", raw.Name, MaxNameLength)
	if err != nil {
		return nil, err
	}

	invested, err := money("investedAmount", raw.InvestedAmount, decimal.Zero, false)
	if err != nil {
		return nil, err
	}

	current, err := money("currentValue", raw.CurrentValue, decimal.Zero, false)
	if err != nil {
		return nil, err
	}

	return entity.NewInvestment(name, invested, current), nil
}

// InvestmentUpdate validates the fields supplied in raw with the creation rules.
// Fields that were not supplied are left out of the returned changes.
func InvestmentUpdate(raw RawInvestment) (InvestmentChanges, error) {
	var changes InvestmentChanges

	if raw.Name != nil {
		name, err := requiredText("name", raw.Name, MaxNameLength)
		if err != nil {
			return InvestmentChanges{}, err
		}
		changes.Name = &name
	}

	if raw.InvestedAmount != nil {
		invested, err := money("investedAmount", raw.InvestedAmount, decimal.Zero, false)
		if err != nil {
			return InvestmentChanges{}, err
		}
		changes.InvestedAmount = &invested
	}

	if raw.CurrentValue != nil {
		current, err := money("currentValue", raw.CurrentValue, decimal.Zero, false)
		if err != nil {
			return InvestmentChanges{}, err
		}
		changes.CurrentValue = &current
	}

	return changes, nil
}
