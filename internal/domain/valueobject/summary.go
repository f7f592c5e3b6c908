package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// Summary is the aggregate picture of the household's finances.
type Summary struct {
	TotalIncome           decimal.Decimal
	TotalExpenses         decimal.Decimal
	TotalDebtPayments     decimal.Decimal
	CashBalance           decimal.Decimal
	TotalInitialDebt      decimal.Decimal
	RemainingDebt         decimal.Decimal
	TotalInvestmentsValue decimal.Decimal
	TotalInvested         decimal.Decimal
	NetPosition           decimal.Decimal
}

// ComputeSummary aggregates a ledger snapshot into a Summary.
// It fails on a transaction type it does not know how to account for instead of skipping it.
func ComputeSummary(snapshot *entity.LedgerSnapshot) (Summary, error) {
	s := Summary{
		TotalIncome:           decimal.Zero,
		TotalExpenses:         decimal.Zero,
		TotalDebtPayments:     decimal.Zero,
		TotalInitialDebt:      decimal.Zero,
		TotalInvestmentsValue: decimal.Zero,
		TotalInvested:         decimal.Zero,
	}

	for _, txn := range snapshot.Transactions {
		switch txn.Type {
		case entity.TransactionTypeIncome:
			s.TotalIncome = s.TotalIncome.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			s.TotalExpenses = s.TotalExpenses.Add(txn.Amount)
		case entity.TransactionTypeDebtPayment:
			s.TotalDebtPayments = s.TotalDebtPayments.Add(txn.Amount)
		default:
			return Summary{}, fmt.Errorf("transaction %s has type %q: %w", txn.ID, txn.Type, domainerror.ErrInvalidTransactionType)
		}
	}

	for _, debt := range snapshot.Debts {
		s.TotalInitialDebt = s.TotalInitialDebt.Add(debt.InitialAmount)
	}

	for _, inv := range snapshot.Investments {
		s.TotalInvestmentsValue = s.TotalInvestmentsValue.Add(inv.CurrentValue)
		s.TotalInvested = s.TotalInvested.Add(inv.InvestedAmount)
	}

	s.CashBalance = s.TotalIncome.Sub(s.TotalExpenses.Add(s.TotalDebtPayments))

	s.RemainingDebt = s.TotalInitialDebt.Sub(s.TotalDebtPayments)
	if s.RemainingDebt.IsNegative() {
		s.RemainingDebt = decimal.Zero
	}

	s.NetPosition = s.CashBalance.Add(s.TotalInvestmentsValue).Sub(s.RemainingDebt)

	return s, nil
}
