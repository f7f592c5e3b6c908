// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// ListInvestmentsOutput represents the output of listing investments.
type ListInvestmentsOutput struct {
	Investments []*InvestmentOutput
}

// InvestmentOutput is an investment with its return on investment percentage.
type InvestmentOutput struct {
	Investment *entity.Investment
	ROI        decimal.Decimal
}

// ListInvestmentsUseCase handles listing investments logic.
type ListInvestmentsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentRepo adapter.InvestmentRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute returns every investment with its ROI.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context) (*ListInvestmentsOutput, error) {
	investments, err := uc.investmentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	output := &ListInvestmentsOutput{
		Investments: make([]*InvestmentOutput, 0, len(investments)),
	}
	for _, inv := range investments {
		output.Investments = append(output.Investments, &InvestmentOutput{
			Investment: inv,
			ROI:        valueobject.InvestmentROI(inv),
		})
	}
	return output, nil
}
