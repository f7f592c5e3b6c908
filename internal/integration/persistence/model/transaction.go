// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Date      time.Time       `gorm:"type:timestamp;not null;index"`
	Type      string          `gorm:"type:varchar(20);not null;index"`
	Category  string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notes     *string         `gorm:"type:text"`
	DebtID    *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:        m.ID,
		Date:      m.Date.UTC(),
		Type:      entity.TransactionType(m.Type),
		Category:  m.Category,
		Amount:    m.Amount,
		Notes:     m.Notes,
		DebtID:    m.DebtID,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:        transaction.ID,
		Date:      transaction.Date.UTC(),
		Type:      string(transaction.Type),
		Category:  transaction.Category,
		Amount:    transaction.Amount,
		Notes:     transaction.Notes,
		DebtID:    transaction.DebtID,
		CreatedAt: transaction.CreatedAt.UTC(),
	}
}

// TransactionsToEntities converts a slice of models, preserving order.
func TransactionsToEntities(models []TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, len(models))
	for i := range models {
		transactions[i] = models[i].ToEntity()
	}
	return transactions
}
