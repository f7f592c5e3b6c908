// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/finance-tracker/ledger/internal/domain/valueobject"

// SummaryResponse represents the financial summary.
type SummaryResponse struct {
	TotalIncome           string `json:"totalIncome"`
	TotalExpenses         string `json:"totalExpenses"`
	TotalDebtPayments     string `json:"totalDebtPayments"`
	CashBalance           string `json:"cashBalance"`
	TotalInitialDebt      string `json:"totalInitialDebt"`
	RemainingDebt         string `json:"remainingDebt"`
	TotalInvestmentsValue string `json:"totalInvestmentsValue"`
	TotalInvested         string `json:"totalInvested"`
	NetPosition           string `json:"netPosition"`
}

// ToSummaryResponse converts a computed Summary to its DTO.
func ToSummaryResponse(s valueobject.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:           Money(s.TotalIncome),
		TotalExpenses:         Money(s.TotalExpenses),
		TotalDebtPayments:     Money(s.TotalDebtPayments),
		CashBalance:           Money(s.CashBalance),
		TotalInitialDebt:      Money(s.TotalInitialDebt),
		RemainingDebt:         Money(s.RemainingDebt),
		TotalInvestmentsValue: Money(s.TotalInvestmentsValue),
		TotalInvested:         Money(s.TotalInvested),
		NetPosition:           Money(s.NetPosition),
	}
}
