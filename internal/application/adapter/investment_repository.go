// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// InvestmentRepository defines the interface for investment persistence operations.
type InvestmentRepository interface {
	// Create creates a new investment in the database.
	Create(ctx context.Context, investment *entity.Investment) error

	// FindByID retrieves an investment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// FindAll retrieves every investment, oldest first.
	FindAll(ctx context.Context) ([]*entity.Investment, error)

	// Update persists the changed fields of an existing investment.
	Update(ctx context.Context, investment *entity.Investment) error

	// Delete removes an investment. Deleting a missing investment is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
