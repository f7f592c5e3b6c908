// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of a transaction.
type TransactionType string

const (
	TransactionTypeIncome      TransactionType = "income"
	TransactionTypeExpense     TransactionType = "expense"
	TransactionTypeDebtPayment TransactionType = "debt_payment"
)

// TransactionTypes lists every supported transaction type.
var TransactionTypes = []TransactionType{
	TransactionTypeIncome,
	TransactionTypeExpense,
	TransactionTypeDebtPayment,
}

// IsValid reports whether t is one of the supported transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeDebtPayment:
		return true
	default:
		return false
	}
}

// Transaction represents a single money movement recorded in the ledger.
type Transaction struct {
	ID       uuid.UUID
	Date     time.Time
	Type     TransactionType
	Category string
	Amount   decimal.Decimal // Always positive, scale 2
	Notes    *string
	// DebtID is set only for debt_payment transactions. The referenced debt
	// may have been deleted since; payments are never removed with it.
	DebtID    *uuid.UUID
	CreatedAt time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	date time.Time,
	transactionType TransactionType,
	category string,
	amount decimal.Decimal,
	notes *string,
	debtID *uuid.UUID,
) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		Date:      date,
		Type:      transactionType,
		Category:  category,
		Amount:    amount,
		Notes:     notes,
		DebtID:    debtID,
		CreatedAt: time.Now().UTC(),
	}
}

// IsPaymentFor reports whether the transaction is a payment towards the given debt.
func (t *Transaction) IsPaymentFor(debtID uuid.UUID) bool {
	return t.Type == TransactionTypeDebtPayment && t.DebtID != nil && *t.DebtID == debtID
}
