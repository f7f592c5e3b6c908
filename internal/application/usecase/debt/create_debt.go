// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/validation"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateDebtInput represents the raw input for debt creation.
type CreateDebtInput struct {
	Name          *string
	InitialAmount *string
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt *entity.Debt
}

// CreateDebtUseCase handles debt creation logic.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the debt creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	debt, err := validation.Debt(validation.RawDebt(input))
	if err != nil {
		return nil, err
	}

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	slog.InfoContext(ctx, "Debt created", "debtID", debt.ID, "name", debt.Name)

	return &CreateDebtOutput{
		Debt: debt,
	}, nil
}
