// Package summary contains the financial summary use case.
package summary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// GetSummaryOutput represents the output of the summary computation.
type GetSummaryOutput struct {
	Summary valueobject.Summary
}

// GetSummaryUseCase computes the ledger-wide financial position.
type GetSummaryUseCase struct {
	ledgerReader adapter.LedgerReader
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(ledgerReader adapter.LedgerReader) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		ledgerReader: ledgerReader,
	}
}

// Execute recomputes the summary from a single snapshot of the store.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	snapshot, err := uc.ledgerReader.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	summary, err := valueobject.ComputeSummary(snapshot)
	if err != nil {
		slog.ErrorContext(ctx, "Ledger contains an unsupported record", "error", err)
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	slog.DebugContext(ctx, "Summary computed",
		"transactions", len(snapshot.Transactions),
		"debts", len(snapshot.Debts),
		"investments", len(snapshot.Investments),
	)

	return &GetSummaryOutput{
		Summary: summary,
	}, nil
}
