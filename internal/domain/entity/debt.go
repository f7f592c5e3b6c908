// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Debt represents an outstanding liability that is paid down by debt_payment transactions.
type Debt struct {
	ID            uuid.UUID
	Name          string
	InitialAmount decimal.Decimal
	CreatedAt     time.Time
}

// NewDebt creates a new Debt entity.
func NewDebt(name string, initialAmount decimal.Decimal) *Debt {
	return &Debt{
		ID:            uuid.New(),
		Name:          name,
		InitialAmount: initialAmount,
		CreatedAt:     time.Now().UTC(),
	}
}

// DebtWithPayments pairs a debt with every payment transaction referencing it.
type DebtWithPayments struct {
	Debt     *Debt
	Payments []*Transaction
}
