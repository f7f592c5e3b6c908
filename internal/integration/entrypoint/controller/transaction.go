// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /api/transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{
		StartDate: dto.QueryParam(ctx.GetQuery("startDate")),
		EndDate:   dto.QueryParam(ctx.GetQuery("endDate")),
		Type:      dto.QueryParam(ctx.GetQuery("type")),
		Limit:     dto.QueryParam(ctx.GetQuery("limit")),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /api/transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := transaction.CreateTransactionInput{
		Type:     req.Type.Ptr(),
		Category: req.Category.Ptr(),
		Amount:   req.Amount.Ptr(),
		Date:     req.Date.Ptr(),
		Notes:    req.Notes.Ptr(),
		DebtID:   req.DebtID.Ptr(),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /api/transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidTransactionID,
		"Invalid transaction ID format",
		domainerror.ErrInvalidTransactionID,
	))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{TransactionID: id}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
