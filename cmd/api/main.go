package main

import (
	"fmt"
	"os"

	"fintrack/internal/clock"
	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/server"
	"fintrack/internal/validator"

	_ "fintrack/internal/docs" // Import swagger docs
)

// @title           Fintrack API
// @version         1.0
// @description     Fintrack keeps wallet balances, budget spend and savings goals consistent with an append-only ledger of income and expense entries.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	unit := database.NewUnitOfWork(dbManager.DB(),
		database.WithMaxRetries(appConfig.UnitMaxRetries),
		database.WithForceNonAtomic(appConfig.UnitForceNonAtomic),
	)
	if !unit.SupportsTransactions() {
		log.Warn("running without atomic units of work; schedule cmd/reconcile to repair drift")
	}

	validator.Register()

	svc := server.NewServices(dbManager.DB(), unit, clock.Real{}, appConfig.ReconcileEpsilon)
	router := server.NewRouter(svc, server.Options{
		OpsAPIKey:      appConfig.OpsAPIKey,
		Swagger:        appConfig.Env != "production",
		RequestLogging: true,
	})

	log.Infof("Starting Fintrack server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
