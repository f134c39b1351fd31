package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"gorm.io/gorm"

	"fintrack/internal/clock"
	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/server"
	"fintrack/internal/services"
	"fintrack/internal/uuid"
)

var cli struct {
	User   string `help:"Reconcile the wallets, budgets and goals of this user ID." xor:"scope"`
	Wallet string `help:"Limit reconciliation to one wallet. Requires --user."`
	All    bool   `help:"Reconcile every active user." xor:"scope"`
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	ctx := kong.Parse(&cli,
		kong.Name("reconcile"),
		kong.Description("Recompute wallet balances, budget spend and goal amounts from the ledger and repair drift."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(validateFlags())
	ctx.FatalIfErrorf(run(ctx))
}

func validateFlags() error {
	if cli.User == "" && !cli.All {
		return errors.New("one of --user or --all is required")
	}
	if cli.User != "" && !uuid.IsValid(cli.User) {
		return fmt.Errorf("--user %q is not a valid ID", cli.User)
	}
	if cli.Wallet != "" {
		if cli.User == "" {
			return errors.New("--wallet requires --user")
		}
		if !uuid.IsValid(cli.Wallet) {
			return fmt.Errorf("--wallet %q is not a valid ID", cli.Wallet)
		}
	}
	return nil
}

func run(ctx *kong.Context) error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	unit := database.NewUnitOfWork(dbManager.DB(),
		database.WithMaxRetries(appConfig.UnitMaxRetries),
		database.WithForceNonAtomic(appConfig.UnitForceNonAtomic),
	)
	svc := server.NewServices(dbManager.DB(), unit, clock.Real{}, appConfig.ReconcileEpsilon)

	userIDs := []string{cli.User}
	if cli.All {
		if userIDs, err = activeUserIDs(dbManager.DB()); err != nil {
			return err
		}
	}

	var walletID *string
	if cli.Wallet != "" {
		walletID = &cli.Wallet
	}

	var total services.ReconcileResult
	failed := 0
	for _, userID := range userIDs {
		result, err := svc.Reconciliation.Recalculate(userID, walletID)
		if err != nil {
			failed++
			log.Errorw("reconciliation failed", "user_id", userID, "error", err)
			continue
		}
		total.WalletsChecked += result.WalletsChecked
		total.WalletsFixed += result.WalletsFixed
		total.BudgetsChecked += result.BudgetsChecked
		total.BudgetsFixed += result.BudgetsFixed
		total.GoalsChecked += result.GoalsChecked
		total.GoalsFixed += result.GoalsFixed
	}

	_, _ = fmt.Fprintf(ctx.Stdout, "users: %d (failed %d)\n", len(userIDs), failed)
	_, _ = fmt.Fprintf(ctx.Stdout, "wallets: %d checked, %d fixed\n", total.WalletsChecked, total.WalletsFixed)
	_, _ = fmt.Fprintf(ctx.Stdout, "budgets: %d checked, %d fixed\n", total.BudgetsChecked, total.BudgetsFixed)
	_, _ = fmt.Fprintf(ctx.Stdout, "goals:   %d checked, %d fixed\n", total.GoalsChecked, total.GoalsFixed)

	if failed > 0 {
		return fmt.Errorf("%d of %d users could not be reconciled", failed, len(userIDs))
	}
	return nil
}

func activeUserIDs(db *gorm.DB) ([]string, error) {
	var ids []string
	if err := db.Model(&models.User{}).Where("is_active = ?", true).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return ids, nil
}
