// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/application/usecase/investment"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// InvestmentRequest represents the request body for investment creation and update.
type InvestmentRequest struct {
	Name           *Literal `json:"name"`
	InvestedAmount *Literal `json:"investedAmount"`
	CurrentValue   *Literal `json:"currentValue"`
}

// InvestmentResponse represents an investment in API responses.
type InvestmentResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	InvestedAmount string    `json:"investedAmount"`
	CurrentValue   string    `json:"currentValue"`
	LastUpdated    time.Time `json:"lastUpdated"`
	ROI            string    `json:"roi"`
}

// ToInvestmentResponse converts a domain Investment entity to an InvestmentResponse DTO.
func ToInvestmentResponse(i *entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:             i.ID.String(),
		Name:           i.Name,
		InvestedAmount: Money(i.InvestedAmount),
		CurrentValue:   Money(i.CurrentValue),
		LastUpdated:    i.LastUpdated.UTC(),
		ROI:            Money(valueobject.InvestmentROI(i)),
	}
}

// ToInvestmentListResponse converts investment listing output to DTOs.
func ToInvestmentListResponse(investments []*investment.InvestmentOutput) []InvestmentResponse {
	response := make([]InvestmentResponse, len(investments))
	for i, inv := range investments {
		response[i] = ToInvestmentResponse(inv.Investment)
		response[i].ROI = Money(inv.ROI)
	}
	return response
}
