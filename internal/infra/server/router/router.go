// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	summaryController     *controller.SummaryController
	transactionController *controller.TransactionController
	debtController        *controller.DebtController
	investmentController  *controller.InvestmentController
	writeRateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
// A nil writeRateLimiter leaves mutating routes unthrottled.
func NewRouter(
	healthController *controller.HealthController,
	summaryController *controller.SummaryController,
	transactionController *controller.TransactionController,
	debtController *controller.DebtController,
	investmentController *controller.InvestmentController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		summaryController:     summaryController,
		transactionController: transactionController,
		debtController:        debtController,
		investmentController:  investmentController,
		writeRateLimiter:      writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()
	r.engine.NoRoute(notFound)

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	write := r.writeMiddleware()
	{
		api.GET("/summary", r.summaryController.Get)

		transactions := api.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", append(write, r.transactionController.Create)...)
			transactions.DELETE("/:id", append(write, r.transactionController.Delete)...)
		}

		debts := api.Group("/debts")
		{
			debts.GET("", r.debtController.List)
			debts.POST("", append(write, r.debtController.Create)...)
			debts.DELETE("/:id", append(write, r.debtController.Delete)...)
		}

		investments := api.Group("/investments")
		{
			investments.GET("", r.investmentController.List)
			investments.POST("", append(write, r.investmentController.Create)...)
			investments.PUT("/:id", append(write, r.investmentController.Update)...)
			investments.DELETE("/:id", append(write, r.investmentController.Delete)...)
		}
	}
}

// writeMiddleware returns the handlers placed in front of every mutating route.
func (r *Router) writeMiddleware() []gin.HandlerFunc {
	if r.writeRateLimiter == nil {
		return nil
	}
	return []gin.HandlerFunc{r.writeRateLimiter.Middleware()}
}

func notFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
		Error: "Resource not found",
		Code:  string(domainerror.ErrCodeNotFound),
	})
}
