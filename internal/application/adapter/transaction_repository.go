// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// Zero values mean "no filter"; StartDate and EndDate are inclusive.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Limit     int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByFilter retrieves transactions matching the filter, most recent date first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Count returns the number of stored transactions.
	Count(ctx context.Context) (int64, error)

	// Delete removes a transaction. Deleting a missing transaction is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
