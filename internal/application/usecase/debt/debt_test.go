package debt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter/adaptertest"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func str(s string) *string {
	return &s
}

func TestCreateDebtUseCase(t *testing.T) {
	store := adaptertest.NewStore()
	uc := NewCreateDebtUseCase(store.Debts())

	output, err := uc.Execute(context.Background(), CreateDebtInput{Name: str("Car Loan"), InitialAmount: str("50000.00")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Debts().FindByID(context.Background(), output.Debt.ID); err != nil {
		t.Errorf("expected debt to be stored, got %v", err)
	}

	_, err = uc.Execute(context.Background(), CreateDebtInput{Name: str("Car Loan"), InitialAmount: str("0")})
	var validationErr *domainerror.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "initialAmount" {
		t.Errorf("expected initialAmount validation error, got %v", err)
	}
}

func TestListDebtsUseCase(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()

	car := entity.NewDebt("Car Loan", decimal.NewFromInt(50000))
	phone := entity.NewDebt("Phone", decimal.NewFromInt(600))
	for _, d := range []*entity.Debt{car, phone} {
		if err := store.Debts().Create(ctx, d); err != nil {
			t.Fatalf("failed to seed debt: %v", err)
		}
	}
	for _, amount := range []int64{1000, 1500} {
		payment := entity.NewTransaction(time.Now().UTC(), entity.TransactionTypeDebtPayment, "Loan", decimal.NewFromInt(amount), nil, &car.ID)
		if err := store.Transactions().Create(ctx, payment); err != nil {
			t.Fatalf("failed to seed payment: %v", err)
		}
	}

	output, err := NewListDebtsUseCase(store.Debts()).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Debts) != 2 {
		t.Fatalf("expected 2 debts, got %d", len(output.Debts))
	}

	carProgress := output.Debts[0].Progress
	if !carProgress.PaidAmount.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("expected paid 2500, got %s", carProgress.PaidAmount)
	}
	if !carProgress.RemainingAmount.Equal(decimal.NewFromInt(47500)) {
		t.Errorf("expected remaining 47500, got %s", carProgress.RemainingAmount)
	}
	if !carProgress.ProgressPercentage.Equal(decimal.NewFromInt(5)) {
		t.Errorf("expected progress 5, got %s", carProgress.ProgressPercentage)
	}
	if !output.Debts[1].Progress.PaidAmount.IsZero() {
		t.Errorf("expected phone to have no payments, got %s", output.Debts[1].Progress.PaidAmount)
	}
}

func TestDeleteDebtUseCase_KeepsPayments(t *testing.T) {
	ctx := context.Background()
	store := adaptertest.NewStore()

	debt := entity.NewDebt("Car Loan", decimal.NewFromInt(50000))
	if err := store.Debts().Create(ctx, debt); err != nil {
		t.Fatalf("failed to seed debt: %v", err)
	}
	payment := entity.NewTransaction(time.Now().UTC(), entity.TransactionTypeDebtPayment, "Loan", decimal.NewFromInt(1000), nil, &debt.ID)
	if err := store.Transactions().Create(ctx, payment); err != nil {
		t.Fatalf("failed to seed payment: %v", err)
	}

	uc := NewDeleteDebtUseCase(store.Debts())
	for i := 0; i < 2; i++ {
		if _, err := uc.Execute(ctx, DeleteDebtInput{DebtID: debt.ID}); err != nil {
			t.Fatalf("delete %d: unexpected error: %v", i, err)
		}
	}

	if count, _ := store.Transactions().Count(ctx); count != 1 {
		t.Errorf("expected payment to be kept, got %d transactions", count)
	}
}
