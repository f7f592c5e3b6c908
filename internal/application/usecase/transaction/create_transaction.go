// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/validation"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// CreateTransactionInput represents the raw input for transaction creation.
// A nil field was not supplied by the client.
type CreateTransactionInput struct {
	Type     *string
	Category *string
	Amount   *string
	Date     *string
	Notes    *string
	DebtID   *string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	debtRepo        adapter.DebtRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	debtRepo adapter.DebtRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		debtRepo:        debtRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	transaction, err := validation.Transaction(validation.RawTransaction(input))
	if err != nil {
		return nil, err
	}

	// A payment must point at a debt that exists when it is recorded
	if transaction.DebtID != nil {
		if _, err := uc.debtRepo.FindByID(ctx, *transaction.DebtID); err != nil {
			if errors.Is(err, domainerror.ErrDebtNotFound) {
				return nil, domainerror.NewValidationError(
					domainerror.ErrCodeReferencedDebtAbsent,
					"debtId",
					"debtId does not reference an existing debt",
					domainerror.ErrDebtNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find debt: %w", err)
		}
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction recorded",
		"transactionID", transaction.ID,
		"type", transaction.Type,
		"amount", transaction.Amount.StringFixed(validation.MoneyScale),
	)

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
