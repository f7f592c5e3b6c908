// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/validation"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpdateInvestmentInput represents the input for a partial investment update.
// Only non-nil fields are changed.
type UpdateInvestmentInput struct {
	InvestmentID   uuid.UUID
	Name           *string
	InvestedAmount *string
	CurrentValue   *string
}

// UpdateInvestmentOutput represents the output of an investment update.
type UpdateInvestmentOutput struct {
	Investment *entity.Investment
}

// UpdateInvestmentUseCase handles investment update logic.
type UpdateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewUpdateInvestmentUseCase creates a new UpdateInvestmentUseCase instance.
func NewUpdateInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *UpdateInvestmentUseCase {
	return &UpdateInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute applies the supplied fields and refreshes the last-updated timestamp,
// even when no field was supplied.
func (uc *UpdateInvestmentUseCase) Execute(ctx context.Context, input UpdateInvestmentInput) (*UpdateInvestmentOutput, error) {
	changes, err := validation.InvestmentUpdate(validation.RawInvestment{
		Name:           input.Name,
		InvestedAmount: input.InvestedAmount,
		CurrentValue:   input.CurrentValue,
	})
	if err != nil {
		return nil, err
	}

	investment, err := uc.investmentRepo.FindByID(ctx, input.InvestmentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvestmentNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find investment: %w", err)
	}

	changes.Apply(investment)

	if err := uc.investmentRepo.Update(ctx, investment); err != nil {
		if errors.Is(err, domainerror.ErrInvestmentNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	slog.InfoContext(ctx, "Investment updated", "investmentID", investment.ID)

	return &UpdateInvestmentOutput{
		Investment: investment,
	}, nil
}

func notFound() error {
	return domainerror.NewInvestmentError(
		domainerror.ErrCodeInvestmentNotFound,
		"investment not found",
		domainerror.ErrInvestmentNotFound,
	)
}
