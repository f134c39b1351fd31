package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fintrack/internal/database"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UnitRunner executes work inside an atomic unit. *database.UnitOfWork satisfies it.
type UnitRunner interface {
	Run(work func(tx *gorm.DB) error) (database.UnitResult, error)
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// WalletInput carries the fields accepted when creating a wallet.
type WalletInput struct {
	Name           string
	Description    string
	Currency       string
	InitialBalance decimal.Decimal
}

// WalletServicer defines the contract for wallet-related business logic.
//
// LoadWalletForUpdate, ApplyBalanceDelta and SetBalance take the handle of
// the enclosing unit of work and are the only sanctioned way to move a
// wallet's balance.
type WalletServicer interface {
	CreateWallet(userID string, in WalletInput) (*models.Wallet, error)
	GetUserWallets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Wallet], error)
	GetWalletByID(userID, walletID string) (*models.Wallet, error)
	UpdateWallet(userID, walletID string, name, description *string) (*models.Wallet, error)
	DeactivateWallet(userID, walletID string) error
	AddMember(userID, walletID, memberEmail string, permission models.WalletPermission) (*models.WalletMember, error)
	RemoveMember(userID, walletID, memberID string) error

	LoadWalletForUpdate(tx *gorm.DB, userID, walletID string) (*models.Wallet, error)
	ApplyBalanceDelta(tx *gorm.DB, wallet *models.Wallet, delta decimal.Decimal) error
	SetBalance(tx *gorm.DB, wallet *models.Wallet, balance decimal.Decimal) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType, description, icon, color string) (*models.Category, error)
	GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetUserCategoriesByType(userID string, categoryType models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID, name, description, icon, color string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
	EnsureSystemCategory(tx *gorm.DB, userID, name string, categoryType models.CategoryType) (*models.Category, error)
}

// EntryInput holds the user-settable fields of a ledger entry. Updates
// replace all of them except a zero Date, which keeps the stored one.
type EntryInput struct {
	WalletID   string
	CategoryID *string
	Type       models.TransactionType
	Amount     decimal.Decimal
	Note       string
	Date       time.Time
}

// TransferInput describes a movement between two wallets.
type TransferInput struct {
	FromWalletID string
	ToWalletID   string
	Amount       decimal.Decimal
	Note         string
	Date         time.Time
}

// TransferResult holds both legs of a transfer.
type TransferResult struct {
	TransferID string              `json:"transfer_id"`
	FromEntry  *models.Transaction `json:"from_entry"`
	ToEntry    *models.Transaction `json:"to_entry"`
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	WalletID   *string
}

// TransactionServicer defines the contract for ledger entries and the
// balance mutations they drive.
type TransactionServicer interface {
	CreateTransaction(userID string, in EntryInput) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, in EntryInput) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
	CreateTransfer(userID string, in TransferInput) (*TransferResult, error)
	GetWalletTransactions(userID, walletID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
}

// BudgetInput carries the fields accepted when creating a budget. A nil
// EndDate derives the end from Period; custom budgets must set it.
type BudgetInput struct {
	WalletID       string
	CategoryID     *string
	Name           string
	Amount         decimal.Decimal
	Period         models.BudgetPeriod
	StartDate      time.Time
	EndDate        *time.Time
	AlertThreshold int
}

// BudgetUpdate holds the optional fields of a budget update.
type BudgetUpdate struct {
	Name           *string
	Amount         *decimal.Decimal
	EndDate        *time.Time
	AlertThreshold *int
	IsActive       *bool
}

// BudgetProgress contains spending vs budget data for a budget's window.
type BudgetProgress struct {
	BudgetID       string          `json:"budget_id"`
	Budgeted       decimal.Decimal `json:"budgeted"`
	Spent          decimal.Decimal `json:"spent"`
	Remaining      decimal.Decimal `json:"remaining"`
	Percentage     int64           `json:"percentage"`
	IsOverBudget   bool            `json:"is_over_budget"`
	AlertTriggered bool            `json:"alert_triggered"`
}

// OverspendResult is the answer to an overspend check. HasBudget is false
// when no active budget covers the date; that is not the same as 0% spent.
type OverspendResult struct {
	HasBudget      bool            `json:"has_budget"`
	Budget         *models.Budget  `json:"budget"`
	Spent          decimal.Decimal `json:"spent"`
	Cap            decimal.Decimal `json:"cap"`
	Remaining      decimal.Decimal `json:"remaining"`
	Percentage     int64           `json:"percentage"`
	IsOverBudget   bool            `json:"is_over_budget"`
	AlertTriggered bool            `json:"alert_triggered"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID string, in BudgetInput) (*models.Budget, error)
	GetUserBudgets(userID string, page pagination.PageRequest, isActive *bool, period *models.BudgetPeriod) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(userID, budgetID string) (*models.Budget, error)
	UpdateBudget(userID, budgetID string, in BudgetUpdate) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
	GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error)
	CheckOverspend(walletID string, categoryID *string, asOf time.Time) (*OverspendResult, error)
	RefreshBudgetSpent(tx *gorm.DB, entry *models.Transaction) error
}

// GoalInput carries the fields accepted when creating a goal.
type GoalInput struct {
	Name         string
	TargetAmount decimal.Decimal
	WalletID     *string
}

// GoalUpdate holds the optional fields of a goal update. Status may only be
// set to active, paused or cancelled; completion is derived.
type GoalUpdate struct {
	Name         *string
	TargetAmount *decimal.Decimal
	Status       *models.GoalStatus
}

// GoalView is a goal with derived progress figures.
type GoalView struct {
	models.Goal
	Progress  int64           `json:"progress"`
	Remaining decimal.Decimal `json:"remaining"`
}

// GoalServicer defines the contract for savings goals and their contributions.
type GoalServicer interface {
	CreateGoal(userID string, in GoalInput) (*GoalView, error)
	GetUserGoals(userID string, page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[GoalView], error)
	GetGoalByID(userID, goalID string) (*GoalView, error)
	UpdateGoal(userID, goalID string, in GoalUpdate) (*GoalView, error)
	DeleteGoal(userID, goalID string) error
	AddContribution(userID, goalID string, amount decimal.Decimal, note string, date time.Time) (*GoalView, error)
	RemoveContribution(userID, goalID, contributionID string) (*GoalView, error)
}

// ReconcileResult reports how many aggregates were examined and corrected.
type ReconcileResult struct {
	WalletsChecked int `json:"wallets_checked"`
	WalletsFixed   int `json:"wallets_fixed"`
	BudgetsChecked int `json:"budgets_checked"`
	BudgetsFixed   int `json:"budgets_fixed"`
	GoalsChecked   int `json:"goals_checked"`
	GoalsFixed     int `json:"goals_fixed"`
}

// ReconciliationServicer recomputes aggregates from the ledger and repairs drift.
type ReconciliationServicer interface {
	Recalculate(userID string, walletID *string) (*ReconcileResult, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
