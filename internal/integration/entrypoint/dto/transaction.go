// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type     *Literal `json:"type"`
	Category *Literal `json:"category"`
	Amount   *Literal `json:"amount"`
	Date     *Literal `json:"date"`
	Notes    *Literal `json:"notes"`
	DebtID   *Literal `json:"debtId"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	Notes     *string   `json:"notes"`
	DebtID    *string   `json:"debtId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:        t.ID.String(),
		Date:      t.Date.UTC(),
		Type:      string(t.Type),
		Category:  t.Category,
		Amount:    Money(t.Amount),
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt.UTC(),
	}
	if t.DebtID != nil {
		debtID := t.DebtID.String()
		response.DebtID = &debtID
	}
	return response
}

// ToTransactionListResponse converts transactions to their DTOs, preserving order.
func ToTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	response := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = ToTransactionResponse(t)
	}
	return response
}
