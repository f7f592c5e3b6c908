// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	InitialAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:            m.ID,
		Name:          m.Name,
		InitialAmount: m.InitialAmount,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:            debt.ID,
		Name:          debt.Name,
		InitialAmount: debt.InitialAmount,
		CreatedAt:     debt.CreatedAt.UTC(),
	}
}
