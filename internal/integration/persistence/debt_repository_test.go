package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestDebtRepository_FindAllWithPayments(t *testing.T) {
	db := newTestDB(t)
	debts := NewDebtRepository(db)
	transactions := NewTransactionRepository(db)
	ctx := context.Background()

	car := entity.NewDebt("Car Loan", dec("50000.00"))
	phone := entity.NewDebt("Phone", dec("600.00"))
	phone.CreatedAt = car.CreatedAt.Add(time.Second)
	for _, d := range []*entity.Debt{car, phone} {
		if err := debts.Create(ctx, d); err != nil {
			t.Fatalf("failed to create debt: %v", err)
		}
	}

	payments := []*entity.Transaction{
		entity.NewTransaction(day(2024, time.March, 1), entity.TransactionTypeDebtPayment, "Loan", dec("1000.00"), nil, &car.ID),
		entity.NewTransaction(day(2024, time.April, 1), entity.TransactionTypeDebtPayment, "Loan", dec("1000.00"), nil, &car.ID),
		entity.NewTransaction(day(2024, time.April, 1), entity.TransactionTypeExpense, "Rent", dec("1500.00"), nil, nil),
	}
	for _, p := range payments {
		if err := transactions.Create(ctx, p); err != nil {
			t.Fatalf("failed to create transaction: %v", err)
		}
	}

	got, err := debts.FindAllWithPayments(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 debts, got %d", len(got))
	}
	if got[0].Debt.ID != car.ID {
		t.Errorf("expected oldest debt first, got %s", got[0].Debt.Name)
	}
	if len(got[0].Payments) != 2 {
		t.Errorf("expected 2 payments for car loan, got %d", len(got[0].Payments))
	}
	if len(got[1].Payments) != 0 {
		t.Errorf("expected no payments for phone, got %d", len(got[1].Payments))
	}
	if !got[0].Debt.InitialAmount.Equal(dec("50000")) {
		t.Errorf("expected initial amount 50000, got %s", got[0].Debt.InitialAmount)
	}
}

func TestDebtRepository_DeleteKeepsPayments(t *testing.T) {
	db := newTestDB(t)
	debts := NewDebtRepository(db)
	transactions := NewTransactionRepository(db)
	ctx := context.Background()

	debt := entity.NewDebt("Credit Card", dec("2000.00"))
	if err := debts.Create(ctx, debt); err != nil {
		t.Fatalf("failed to create debt: %v", err)
	}
	payment := entity.NewTransaction(day(2024, time.May, 1), entity.TransactionTypeDebtPayment, "Card", dec("250.00"), nil, &debt.ID)
	if err := transactions.Create(ctx, payment); err != nil {
		t.Fatalf("failed to create payment: %v", err)
	}

	if err := debts.Delete(ctx, debt.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := debts.Delete(ctx, uuid.New()); err != nil {
		t.Errorf("expected deleting a missing debt to succeed, got %v", err)
	}

	if _, err := debts.FindByID(ctx, debt.ID); !errors.Is(err, domainerror.ErrDebtNotFound) {
		t.Errorf("expected ErrDebtNotFound, got %v", err)
	}

	count, err := transactions.Count(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected payment to survive debt deletion, got %d transactions", count)
	}
}
