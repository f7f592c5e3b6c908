// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/summary"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// SummaryController handles the financial summary endpoint.
type SummaryController struct {
	getUseCase *summary.GetSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(getUseCase *summary.GetSummaryUseCase) *SummaryController {
	return &SummaryController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /api/summary requests.
func (c *SummaryController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}
