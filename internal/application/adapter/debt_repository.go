// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	// Create creates a new debt in the database.
	Create(ctx context.Context, debt *entity.Debt) error

	// FindByID retrieves a debt by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// FindAllWithPayments retrieves every debt together with the debt_payment
	// transactions referencing it, read in a single consistent snapshot.
	FindAllWithPayments(ctx context.Context) ([]*entity.DebtWithPayments, error)

	// Delete removes a debt. Payments referencing it are left untouched.
	// Deleting a missing debt is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
