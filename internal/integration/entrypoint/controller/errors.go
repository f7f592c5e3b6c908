// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// handleError writes the response for an error returned by a use case.
// Unrecognised errors are logged and reported without detail.
func handleError(ctx *gin.Context, err error) {
	var validationErr *domainerror.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: validationErr.Error(),
			Code:  string(validationErr.Code),
			Field: validationErr.Field,
		})
		return
	}

	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	var investmentErr *domainerror.InvestmentError
	if errors.As(err, &investmentErr) {
		ctx.JSON(getStatusCodeForInvestmentError(investmentErr.Code), dto.ErrorResponse{
			Error: investmentErr.Message,
			Code:  string(investmentErr.Code),
		})
		return
	}

	slog.ErrorContext(ctx.Request.Context(), "Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeInternal),
	})
}

// getStatusCodeForInvestmentError maps investment error codes to HTTP status codes.
func getStatusCodeForInvestmentError(code domainerror.InvestmentErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvestmentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidInvestmentID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// bindJSON decodes the request body into req, answering 400 when it is not a JSON object.
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidRequestBody),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// parseID reads the :id path parameter, answering with invalid when it is malformed.
func parseID(ctx *gin.Context, invalid error) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		handleError(ctx, invalid)
		return uuid.Nil, false
	}
	return id, true
}
