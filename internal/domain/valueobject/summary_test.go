package valueobject

import (
	"errors"
	"testing"
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func txn(kind entity.TransactionType, amount string) *entity.Transaction {
	return entity.NewTransaction(time.Now().UTC(), kind, "misc", dec(amount), nil, nil)
}

func TestComputeSummary(t *testing.T) {
	carLoan := entity.NewDebt("Car Loan", dec("50000.00"))

	t.Run("reference household", func(t *testing.T) {
		snapshot := &entity.LedgerSnapshot{
			Transactions: []*entity.Transaction{
				txn(entity.TransactionTypeIncome, "8500.00"),
				txn(entity.TransactionTypeExpense, "2500.00"),
				txn(entity.TransactionTypeExpense, "450.50"),
				payment(carLoan.ID, "1000.00"),
			},
			Debts: []*entity.Debt{carLoan},
			Investments: []*entity.Investment{
				entity.NewInvestment("S&P 500 ETF", dec("10000.00"), dec("12500.00")),
			},
		}

		s, err := ComputeSummary(snapshot)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expectations := map[string]struct{ got, want string }{
			"TotalIncome":           {s.TotalIncome.String(), "8500"},
			"TotalExpenses":         {s.TotalExpenses.String(), "2950.5"},
			"TotalDebtPayments":     {s.TotalDebtPayments.String(), "1000"},
			"CashBalance":           {s.CashBalance.String(), "4549.5"},
			"TotalInitialDebt":      {s.TotalInitialDebt.String(), "50000"},
			"RemainingDebt":         {s.RemainingDebt.String(), "49000"},
			"TotalInvestmentsValue": {s.TotalInvestmentsValue.String(), "12500"},
			"TotalInvested":         {s.TotalInvested.String(), "10000"},
			"NetPosition":           {s.NetPosition.String(), "-31950.5"},
		}
		for field, e := range expectations {
			if e.got != e.want {
				t.Errorf("%s: expected %s, got %s", field, e.want, e.got)
			}
		}
	})

	t.Run("net position identity", func(t *testing.T) {
		snapshot := &entity.LedgerSnapshot{
			Transactions: []*entity.Transaction{
				txn(entity.TransactionTypeIncome, "0.10"),
				txn(entity.TransactionTypeIncome, "0.20"),
				txn(entity.TransactionTypeExpense, "0.30"),
			},
			Investments: []*entity.Investment{
				entity.NewInvestment("Bonds", dec("100.00"), dec("100.01")),
			},
		}

		s, err := ComputeSummary(snapshot)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !s.CashBalance.IsZero() {
			t.Errorf("expected exact zero cash balance, got %s", s.CashBalance)
		}
		expected := s.CashBalance.Add(s.TotalInvestmentsValue).Sub(s.RemainingDebt)
		if !s.NetPosition.Equal(expected) {
			t.Errorf("expected net position %s, got %s", expected, s.NetPosition)
		}
	})

	t.Run("remaining debt never negative", func(t *testing.T) {
		small := entity.NewDebt("Small", dec("100.00"))
		snapshot := &entity.LedgerSnapshot{
			Transactions: []*entity.Transaction{payment(small.ID, "250.00")},
			Debts:        []*entity.Debt{small},
		}

		s, err := ComputeSummary(snapshot)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.RemainingDebt.IsZero() {
			t.Errorf("expected remaining debt 0, got %s", s.RemainingDebt)
		}
		if !s.CashBalance.Equal(dec("-250.00")) {
			t.Errorf("expected cash balance -250.00, got %s", s.CashBalance)
		}
	})

	t.Run("empty ledger", func(t *testing.T) {
		s, err := ComputeSummary(&entity.LedgerSnapshot{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.NetPosition.IsZero() || !s.CashBalance.IsZero() || !s.RemainingDebt.IsZero() {
			t.Errorf("expected all zero, got %+v", s)
		}
	})

	t.Run("unknown transaction type", func(t *testing.T) {
		snapshot := &entity.LedgerSnapshot{
			Transactions: []*entity.Transaction{txn(entity.TransactionType("transfer"), "10.00")},
		}

		_, err := ComputeSummary(snapshot)
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Errorf("expected ErrInvalidTransactionType, got %v", err)
		}
	})
}
