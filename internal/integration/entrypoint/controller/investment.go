// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/investment"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// InvestmentController handles investment endpoints.
type InvestmentController struct {
	createUseCase *investment.CreateInvestmentUseCase
	listUseCase   *investment.ListInvestmentsUseCase
	updateUseCase *investment.UpdateInvestmentUseCase
	deleteUseCase *investment.DeleteInvestmentUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	createUseCase *investment.CreateInvestmentUseCase,
	listUseCase *investment.ListInvestmentsUseCase,
	updateUseCase *investment.UpdateInvestmentUseCase,
	deleteUseCase *investment.DeleteInvestmentUseCase,
) *InvestmentController {
	return &InvestmentController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /api/investments requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentListResponse(output.Investments))
}

// Create handles POST /api/investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	var req dto.InvestmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), investment.CreateInvestmentInput{
		Name:           req.Name.Ptr(),
		InvestedAmount: req.InvestedAmount.Ptr(),
		CurrentValue:   req.CurrentValue.Ptr(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentResponse(output.Investment))
}

// Update handles PUT /api/investments/:id requests. Absent fields are left unchanged.
func (c *InvestmentController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, invalidInvestmentID())
	if !ok {
		return
	}

	var req dto.InvestmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), investment.UpdateInvestmentInput{
		InvestmentID:   id,
		Name:           req.Name.Ptr(),
		InvestedAmount: req.InvestedAmount.Ptr(),
		CurrentValue:   req.CurrentValue.Ptr(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// Delete handles DELETE /api/investments/:id requests.
func (c *InvestmentController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, invalidInvestmentID())
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), investment.DeleteInvestmentInput{InvestmentID: id}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func invalidInvestmentID() error {
	return domainerror.NewInvestmentError(
		domainerror.ErrCodeInvalidInvestmentID,
		"Invalid investment ID format",
		domainerror.ErrInvalidInvestmentID,
	)
}
