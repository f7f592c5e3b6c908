// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/validation"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateInvestmentInput represents the raw input for investment creation.
type CreateInvestmentInput struct {
	Name           *string
	InvestedAmount *string
	CurrentValue   *string
}

// CreateInvestmentOutput represents the output of investment creation.
type CreateInvestmentOutput struct {
	Investment *entity.Investment
}

// CreateInvestmentUseCase handles investment creation logic.
type CreateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the investment creation.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	investment, err := validation.Investment(validation.RawInvestment(input))
	if err != nil {
		return nil, err
	}

	if err := uc.investmentRepo.Create(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	slog.InfoContext(ctx, "Investment created", "investmentID", investment.ID, "name", investment.Name)

	return &CreateInvestmentOutput{
		Investment: investment,
	}, nil
}
