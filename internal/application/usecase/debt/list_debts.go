// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// ListDebtsOutput represents the output of listing debts.
type ListDebtsOutput struct {
	Debts []*DebtOutput
}

// DebtOutput is a debt together with its repayment progress.
type DebtOutput struct {
	Debt     *entity.Debt
	Progress valueobject.DebtProgress
}

// ListDebtsUseCase handles listing debts logic.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute returns every debt with progress recomputed from its payments.
func (uc *ListDebtsUseCase) Execute(ctx context.Context) (*ListDebtsOutput, error) {
	debts, err := uc.debtRepo.FindAllWithPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	output := &ListDebtsOutput{
		Debts: make([]*DebtOutput, 0, len(debts)),
	}
	for _, d := range debts {
		output.Debts = append(output.Debts, &DebtOutput{
			Debt:     d.Debt,
			Progress: valueobject.NewDebtProgress(d.Debt, d.Payments),
		})
	}
	return output, nil
}
