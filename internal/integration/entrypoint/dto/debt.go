// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/application/usecase/debt"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateDebtRequest represents the request body for debt creation.
type CreateDebtRequest struct {
	Name          *Literal `json:"name"`
	InitialAmount *Literal `json:"initialAmount"`
}

// DebtResponse represents a debt in API responses.
type DebtResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	InitialAmount string    `json:"initialAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DebtWithProgressResponse represents a debt with its repayment progress.
type DebtWithProgressResponse struct {
	DebtResponse
	PaidAmount      string `json:"paidAmount"`
	RemainingAmount string `json:"remainingAmount"`
	Progress        string `json:"progress"`
	PaidOff         bool   `json:"paidOff"`
}

// ToDebtResponse converts a domain Debt entity to a DebtResponse DTO.
func ToDebtResponse(d *entity.Debt) DebtResponse {
	return DebtResponse{
		ID:            d.ID.String(),
		Name:          d.Name,
		InitialAmount: Money(d.InitialAmount),
		CreatedAt:     d.CreatedAt.UTC(),
	}
}

// ToDebtListResponse converts debt listing output to DTOs.
func ToDebtListResponse(debts []*debt.DebtOutput) []DebtWithProgressResponse {
	response := make([]DebtWithProgressResponse, len(debts))
	for i, d := range debts {
		response[i] = DebtWithProgressResponse{
			DebtResponse:    ToDebtResponse(d.Debt),
			PaidAmount:      Money(d.Progress.PaidAmount),
			RemainingAmount: Money(d.Progress.RemainingAmount),
			Progress:        Money(d.Progress.ProgressPercentage),
			PaidOff:         d.Progress.IsPaidOff(),
		}
	}
	return response
}
