// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investment represents a holding tracked by what was put in and what it is worth now.
type Investment struct {
	ID             uuid.UUID
	Name           string
	InvestedAmount decimal.Decimal
	CurrentValue   decimal.Decimal
	LastUpdated    time.Time
}

// NewInvestment creates a new Investment entity.
func NewInvestment(name string, investedAmount, currentValue decimal.Decimal) *Investment {
	return &Investment{
		ID:             uuid.New(),
		Name:           name,
		InvestedAmount: investedAmount,
		CurrentValue:   currentValue,
		LastUpdated:    time.Now().UTC(),
	}
}

// Touch refreshes the last-updated timestamp.
func (i *Investment) Touch() {
	i.LastUpdated = time.Now().UTC()
}
