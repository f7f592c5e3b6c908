// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
)

// DeleteInvestmentInput represents the input for investment deletion.
type DeleteInvestmentInput struct {
	InvestmentID uuid.UUID
}

// DeleteInvestmentOutput represents the output of investment deletion.
type DeleteInvestmentOutput struct {
	Success bool
}

// DeleteInvestmentUseCase handles investment deletion logic.
type DeleteInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the investment deletion. An unknown identifier is a no-op.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, input DeleteInvestmentInput) (*DeleteInvestmentOutput, error) {
	if err := uc.investmentRepo.Delete(ctx, input.InvestmentID); err != nil {
		return nil, fmt.Errorf("failed to delete investment: %w", err)
	}

	slog.InfoContext(ctx, "Investment deleted", "investmentID", input.InvestmentID)

	return &DeleteInvestmentOutput{
		Success: true,
	}, nil
}
