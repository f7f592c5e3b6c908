// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/usecase/debt"
	"github.com/finance-tracker/ledger/internal/application/usecase/investment"
	"github.com/finance-tracker/ledger/internal/application/usecase/seed"
	"github.com/finance-tracker/ledger/internal/application/usecase/summary"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/infra/cache"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
	Seed   *seed.SeedDemoDataUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case rate limiting is kept in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthChecker controller.HealthChecker, redisClient *redis.Client) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	debtRepo := persistence.NewDebtRepository(db)
	investmentRepo := persistence.NewInvestmentRepository(db)
	ledgerReader := persistence.NewLedgerReader(db)

	// Create summary use cases
	getSummaryUseCase := summary.NewGetSummaryUseCase(ledgerReader)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, debtRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create debt use cases
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo)
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)

	// Create investment use cases
	createInvestmentUseCase := investment.NewCreateInvestmentUseCase(investmentRepo)
	listInvestmentsUseCase := investment.NewListInvestmentsUseCase(investmentRepo)
	updateInvestmentUseCase := investment.NewUpdateInvestmentUseCase(investmentRepo)
	deleteInvestmentUseCase := investment.NewDeleteInvestmentUseCase(investmentRepo)

	seedUseCase := seed.NewSeedDemoDataUseCase(transactionRepo, debtRepo, investmentRepo)

	// Create controllers
	var redisHealthChecker controller.HealthChecker
	if redisClient != nil {
		redisHealthChecker = cache.HealthCheck(redisClient)
	}
	healthController := controller.NewHealthController(dbHealthChecker, redisHealthChecker)

	summaryController := controller.NewSummaryController(getSummaryUseCase)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
	)

	debtController := controller.NewDebtController(
		createDebtUseCase,
		listDebtsUseCase,
		deleteDebtUseCase,
	)

	investmentController := controller.NewInvestmentController(
		createInvestmentUseCase,
		listInvestmentsUseCase,
		updateInvestmentUseCase,
		deleteInvestmentUseCase,
	)

	// Create middleware
	var writeRateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		var store middleware.RateLimitStore = middleware.NewMemoryStore()
		if redisClient != nil {
			store = middleware.NewRedisStore(redisClient)
		}
		writeRateLimiter = middleware.NewRateLimiterWithConfig(store, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		summaryController,
		transactionController,
		debtController,
		investmentController,
		writeRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
		Seed:   seedUseCase,
	}
}
