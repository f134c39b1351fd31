package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Now is the instant test clocks are pinned to: mid-month, so a monthly
// budget window has room on both sides.
var Now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// MonthStart is the first instant of Now's month.
var MonthStart = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestWallet creates an active wallet whose initial and current
// balance are both balance.
func CreateTestWallet(t *testing.T, db *gorm.DB, userID string, balance int64) *models.Wallet {
	t.Helper()

	amount := decimal.NewFromInt(balance)
	wallet := &models.Wallet{
		UserID:         userID,
		Name:           fmt.Sprintf("Test Wallet %d", nextID()),
		InitialBalance: amount,
		Balance:        amount,
		Currency:       "USD",
		Status:         models.WalletStatusActive,
	}
	if err := db.Create(wallet).Error; err != nil {
		t.Fatalf("failed to create test wallet: %v", err)
	}
	return wallet
}

// AddTestMember shares a wallet with another user.
func AddTestMember(t *testing.T, db *gorm.DB, walletID, userID string, permission models.WalletPermission) *models.WalletMember {
	t.Helper()

	member := &models.WalletMember{WalletID: walletID, UserID: userID, Permission: permission}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test wallet member: %v", err)
	}
	return member
}

// CreateTestCategory creates a category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Type:   categoryType,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction inserts a ledger entry directly, without touching
// the wallet balance. Use it to simulate drift.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, walletID string, txType models.TransactionType, amount int64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		WalletID: walletID,
		Type:     txType,
		Amount:   decimal.NewFromInt(amount),
		Date:     date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestBudget creates an active monthly budget for Now's month.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID, walletID string, categoryID *string, amount int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:         userID,
		WalletID:       walletID,
		CategoryID:     categoryID,
		Name:           fmt.Sprintf("Test Budget %d", nextID()),
		Amount:         decimal.NewFromInt(amount),
		Period:         models.BudgetPeriodMonthly,
		StartDate:      MonthStart,
		EndDate:        models.PeriodEnd(models.BudgetPeriodMonthly, MonthStart),
		AlertThreshold: 80,
		IsActive:       true,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal creates an active goal, optionally linked to a wallet.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, walletID *string, target int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:       userID,
		WalletID:     walletID,
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: decimal.NewFromInt(target),
		Status:       models.GoalStatusActive,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// ReloadWallet reads the wallet's stored state.
func ReloadWallet(t *testing.T, db *gorm.DB, walletID string) *models.Wallet {
	t.Helper()

	var wallet models.Wallet
	if err := db.First(&wallet, "id = ?", walletID).Error; err != nil {
		t.Fatalf("failed to reload wallet: %v", err)
	}
	return &wallet
}

// ReloadGoal reads the goal's stored state with its contributions.
func ReloadGoal(t *testing.T, db *gorm.DB, goalID string) *models.Goal {
	t.Helper()

	var goal models.Goal
	if err := db.Preload("Contributions").First(&goal, "id = ?", goalID).Error; err != nil {
		t.Fatalf("failed to reload goal: %v", err)
	}
	return &goal
}
