package routes

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler of the API
type Handlers struct {
	Health      *handler.HealthHandler
	User        *handler.UserHandler
	Account     *handler.AccountHandler
	Transaction *handler.TransactionHandler
	Budget      *handler.BudgetHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	users usecase.UserUseCase,
	logger coreport.Logger,
) {
	router.GET("/health", handlers.Health.Health)

	v1 := router.Group("/v1")

	// Registration only needs an authenticated subject
	v1.POST("/users", middleware.RequireSubject(), handlers.User.Register)

	authed := v1.Group("", middleware.Authenticate(users, logger))

	accountRoutes := authed.Group("/accounts")
	{
		accountRoutes.GET("", handlers.Account.List)
		accountRoutes.POST("", handlers.Account.Create)
		accountRoutes.GET("/:accountId", handlers.Account.Get)
		accountRoutes.PUT("/:accountId/default", handlers.Account.SetDefault)
	}

	transactionRoutes := authed.Group("/transactions")
	{
		transactionRoutes.POST("", handlers.Transaction.Create)
		transactionRoutes.POST("/bulk-delete", handlers.Transaction.BulkDelete)
	}

	budgetRoutes := authed.Group("/budgets")
	{
		budgetRoutes.GET("", handlers.Budget.Get)
		budgetRoutes.PUT("", handlers.Budget.SetAmount)
		budgetRoutes.PUT("/:budgetId/global", handlers.Budget.SetGlobal)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	allowedOrigins []string,
	requestTimeout time.Duration,
) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(requestid.New())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestContext(requestTimeout))
}
