package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// InvestmentROI returns the return on investment as a percentage of the invested amount.
// An investment with nothing invested has an ROI of exactly zero.
func InvestmentROI(investment *entity.Investment) decimal.Decimal {
	if investment.InvestedAmount.IsZero() {
		return decimal.Zero
	}
	gain := investment.CurrentValue.Sub(investment.InvestedAmount)
	return gain.Mul(hundred).Div(investment.InvestedAmount)
}
