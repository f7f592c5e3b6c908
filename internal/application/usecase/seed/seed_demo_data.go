// Package seed contains the demo data bootstrap use case.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// SeedDemoDataOutput reports whether demo records were written.
type SeedDemoDataOutput struct {
	Seeded bool
}

// SeedDemoDataUseCase fills an empty ledger with a small household example.
type SeedDemoDataUseCase struct {
	transactionRepo adapter.TransactionRepository
	debtRepo        adapter.DebtRepository
	investmentRepo  adapter.InvestmentRepository
	now             func() time.Time
}

// NewSeedDemoDataUseCase creates a new SeedDemoDataUseCase instance.
func NewSeedDemoDataUseCase(
	transactionRepo adapter.TransactionRepository,
	debtRepo adapter.DebtRepository,
	investmentRepo adapter.InvestmentRepository,
) *SeedDemoDataUseCase {
	return &SeedDemoDataUseCase{
		transactionRepo: transactionRepo,
		debtRepo:        debtRepo,
		investmentRepo:  investmentRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Execute writes the demo records unless transactions already exist.
func (uc *SeedDemoDataUseCase) Execute(ctx context.Context) (*SeedDemoDataOutput, error) {
	count, err := uc.transactionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	if count > 0 {
		slog.InfoContext(ctx, "Skipping demo data, ledger is not empty", "transactions", count)
		return &SeedDemoDataOutput{Seeded: false}, nil
	}

	carLoan := entity.NewDebt("Car Loan", decimal.RequireFromString("50000.00"))
	if err := uc.debtRepo.Create(ctx, carLoan); err != nil {
		return nil, fmt.Errorf("failed to seed debt: %w", err)
	}

	etf := entity.NewInvestment("S&P 500 ETF", decimal.RequireFromString("10000.00"), decimal.RequireFromString("12500.00"))
	if err := uc.investmentRepo.Create(ctx, etf); err != nil {
		return nil, fmt.Errorf("failed to seed investment: %w", err)
	}

	now := uc.now()
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }
	note := func(s string) *string { return &s }

	transactions := []*entity.Transaction{
		entity.NewTransaction(daysAgo(5), entity.TransactionTypeIncome, "Salary", decimal.RequireFromString("8500.00"), note("Monthly salary"), nil),
		entity.NewTransaction(daysAgo(4), entity.TransactionTypeExpense, "Rent", decimal.RequireFromString("2500.00"), note("Apartment rent"), nil),
		entity.NewTransaction(daysAgo(2), entity.TransactionTypeExpense, "Groceries", decimal.RequireFromString("450.50"), note("Weekly shopping"), nil),
		entity.NewTransaction(daysAgo(1), entity.TransactionTypeDebtPayment, "Loan Repayment", decimal.RequireFromString("1000.00"), note("Car loan installment"), &carLoan.ID),
	}
	for _, txn := range transactions {
		if err := uc.transactionRepo.Create(ctx, txn); err != nil {
			return nil, fmt.Errorf("failed to seed transaction: %w", err)
		}
	}

	slog.InfoContext(ctx, "Demo data seeded",
		"debts", 1,
		"investments", 1,
		"transactions", len(transactions),
	)

	return &SeedDemoDataOutput{Seeded: true}, nil
}
