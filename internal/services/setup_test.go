package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fintrack/internal/clock"
	"fintrack/internal/database"
	"fintrack/internal/testutil"
)

// harness wires every service over one isolated database and a pinned clock.
type harness struct {
	db    *gorm.DB
	clock *clock.Fixed
	unit  *database.UnitOfWork

	wallets      WalletServicer
	categories   CategoryServicer
	budgets      BudgetServicer
	transactions TransactionServicer
	goals        GoalServicer
	reconciler   ReconciliationServicer
}

func newHarness(t *testing.T, opts ...database.UnitOption) *harness {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	clk := clock.NewFixed(testutil.Now)
	unit := database.NewUnitOfWork(db, opts...)
	access := NewAccessChecker()

	wallets := NewWalletService(db, access)
	categories := NewCategoryService(db)
	budgets := NewBudgetService(db, unit, clk, wallets)

	return &harness{
		db:           db,
		clock:        clk,
		unit:         unit,
		wallets:      wallets,
		categories:   categories,
		budgets:      budgets,
		transactions: NewTransactionService(db, unit, clk, wallets, categories, budgets),
		goals:        NewGoalService(db, unit, clk, wallets, categories, budgets),
		reconciler:   NewReconciliationService(db, unit, clk, access, wallets, DefaultReconcileEpsilon),
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func strPtr(s string) *string {
	return &s
}
