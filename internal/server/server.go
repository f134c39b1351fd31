// Package server wires services, handlers and routes into a gin engine.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"fintrack/internal/clock"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
)

// Services holds every service the API and the CLIs share.
type Services struct {
	Unit           *database.UnitOfWork
	Users          services.UserServicer
	Wallets        services.WalletServicer
	Categories     services.CategoryServicer
	Transactions   services.TransactionServicer
	Budgets        services.BudgetServicer
	Goals          services.GoalServicer
	Reconciliation services.ReconciliationServicer
	Audit          services.AuditServicer
}

// NewServices builds the service graph over db. Every balance-moving service
// shares the same unit of work so degraded-mode counters are process-wide.
func NewServices(db *gorm.DB, unit *database.UnitOfWork, clk clock.Clock, epsilon decimal.Decimal) *Services {
	access := services.NewAccessChecker()
	wallets := services.NewWalletService(db, access)
	categories := services.NewCategoryService(db)
	budgets := services.NewBudgetService(db, unit, clk, wallets)

	return &Services{
		Unit:           unit,
		Users:          services.NewUserService(db),
		Wallets:        wallets,
		Categories:     categories,
		Transactions:   services.NewTransactionService(db, unit, clk, wallets, categories, budgets),
		Budgets:        budgets,
		Goals:          services.NewGoalService(db, unit, clk, wallets, categories, budgets),
		Reconciliation: services.NewReconciliationService(db, unit, clk, access, wallets, epsilon),
		Audit:          services.NewAuditService(db, unit),
	}
}

// Options configures the router.
type Options struct {
	// OpsAPIKey guards /api/v1/ops. Empty disables those routes.
	OpsAPIKey string
	// Swagger mounts the API documentation at /swagger.
	Swagger bool
	// RequestLogging adds the zap request logger.
	RequestLogging bool
}

// NewRouter registers every route on a new gin engine.
func NewRouter(svc *Services, opts Options) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users, svc.Audit)
	walletHandler := handlers.NewWalletHandler(svc.Wallets, svc.Audit)
	categoryHandler := handlers.NewCategoryHandler(svc.Categories, svc.Audit)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions, svc.Audit)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets, svc.Wallets, svc.Audit)
	goalHandler := handlers.NewGoalHandler(svc.Goals, svc.Audit)
	reconcileHandler := handlers.NewReconcileHandler(svc.Reconciliation, svc.Audit)

	router := gin.New()
	router.Use(gin.Recovery())
	if opts.RequestLogging {
		router.Use(middleware.RequestLogging())
	}
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		stats := svc.Unit.Stats()
		c.JSON(http.StatusOK, gin.H{
			"status":                "ok",
			"atomic_units":          svc.Unit.SupportsTransactions(),
			"unit_degraded_runs":    stats.DegradedRuns,
			"unit_conflict_retries": stats.Retries,
		})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Operational routes
	ops := v1.Group("/ops")
	ops.Use(middleware.OpsAuthMiddleware(opts.OpsAPIKey))
	ops.POST("/reconcile", reconcileHandler.OpsReconcile)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)
	protected.POST("/reconcile", reconcileHandler.Reconcile)

	wallets := protected.Group("/wallets")
	wallets.POST("", walletHandler.CreateWallet)
	wallets.GET("", walletHandler.GetWallets)
	wallets.GET("/:id", walletHandler.GetWallet)
	wallets.PUT("/:id", walletHandler.UpdateWallet)
	wallets.DELETE("/:id", walletHandler.DeactivateWallet)
	wallets.POST("/:id/members", walletHandler.AddMember)
	wallets.DELETE("/:id/members/:memberId", walletHandler.RemoveMember)
	wallets.GET("/:id/transactions", transactionHandler.GetWalletTransactions)
	wallets.GET("/:id/overspend", budgetHandler.CheckOverspend)
	wallets.POST("/:id/reconcile", reconcileHandler.ReconcileWallet)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.POST("/transfer", transactionHandler.CreateTransfer)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.POST("/:id/contributions", goalHandler.AddContribution)
	goals.DELETE("/:id/contributions/:contributionId", goalHandler.RemoveContribution)

	return router
}
