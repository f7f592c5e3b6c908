// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/debt"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// DebtController handles debt endpoints.
type DebtController struct {
	createUseCase *debt.CreateDebtUseCase
	listUseCase   *debt.ListDebtsUseCase
	deleteUseCase *debt.DeleteDebtUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	createUseCase *debt.CreateDebtUseCase,
	listUseCase *debt.ListDebtsUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
) *DebtController {
	return &DebtController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /api/debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output.Debts))
}

// Create handles POST /api/debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	var req dto.CreateDebtRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), debt.CreateDebtInput{
		Name:          req.Name.Ptr(),
		InitialAmount: req.InitialAmount.Ptr(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt))
}

// Delete handles DELETE /api/debts/:id requests.
// Payments recorded against the debt are kept.
func (c *DebtController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, domainerror.NewDebtError(
		domainerror.ErrCodeInvalidDebtID,
		"Invalid debt ID format",
		domainerror.ErrInvalidDebtID,
	))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{DebtID: id}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
