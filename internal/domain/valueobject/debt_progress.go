// Package valueobject contains derived financial figures computed from ledger records.
package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// DebtProgress describes how much of a debt has been paid off.
type DebtProgress struct {
	PaidAmount         decimal.Decimal // Unclamped, may exceed the initial amount
	RemainingAmount    decimal.Decimal // Never negative
	ProgressPercentage decimal.Decimal // May exceed 100 on over-payment
}

// NewDebtProgress derives the progress of debt from the given transactions.
// Only debt_payment transactions referencing the debt are counted, so the full
// transaction set can be passed in unfiltered.
func NewDebtProgress(debt *entity.Debt, transactions []*entity.Transaction) DebtProgress {
	paid := decimal.Zero
	for _, txn := range transactions {
		if txn.IsPaymentFor(debt.ID) {
			paid = paid.Add(txn.Amount)
		}
	}

	remaining := debt.InitialAmount.Sub(paid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	progress := decimal.Zero
	if debt.InitialAmount.IsPositive() {
		// Multiply first so exact ratios such as 1000/50000 stay exact.
		progress = paid.Mul(hundred).Div(debt.InitialAmount)
	}

	return DebtProgress{
		PaidAmount:         paid,
		RemainingAmount:    remaining,
		ProgressPercentage: progress,
	}
}

// IsPaidOff reports whether nothing remains to be paid.
func (p DebtProgress) IsPaidOff() bool {
	return p.RemainingAmount.IsZero()
}
