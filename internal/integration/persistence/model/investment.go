// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(255);not null"`
	InvestedAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CurrentValue   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	LastUpdated    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:             m.ID,
		Name:           m.Name,
		InvestedAmount: m.InvestedAmount,
		CurrentValue:   m.CurrentValue,
		LastUpdated:    m.LastUpdated.UTC(),
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:             investment.ID,
		Name:           investment.Name,
		InvestedAmount: investment.InvestedAmount,
		CurrentValue:   investment.CurrentValue,
		LastUpdated:    investment.LastUpdated.UTC(),
	}
}
