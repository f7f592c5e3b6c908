// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// DeleteDebtInput represents the input for debt deletion.
type DeleteDebtInput struct {
	DebtID uuid.UUID
}

// DeleteDebtOutput represents the output of debt deletion.
type DeleteDebtOutput struct {
	Success bool
}

// DeleteDebtUseCase handles debt deletion logic.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute removes the debt. Payments recorded against it are kept as history.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) (*DeleteDebtOutput, error) {
	if err := uc.debtRepo.Delete(ctx, input.DebtID); err != nil {
		return nil, fmt.Errorf("failed to delete debt: %w", err)
	}

	slog.InfoContext(ctx, "Debt deleted", "debtID", input.DebtID)

	return &DeleteDebtOutput{
		Success: true,
	}, nil
}
