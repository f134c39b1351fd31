package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fintrack/internal/clock"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
)

// DefaultReconcileEpsilon is the drift tolerated before an aggregate is rewritten.
var DefaultReconcileEpsilon = decimal.RequireFromString("0.01")

// reconciliationService recomputes wallet balances, budget spent figures
// and goal amounts from the ledger and rewrites the ones that drifted.
type reconciliationService struct {
	db            *gorm.DB
	unit          UnitRunner
	clock         clock.Clock
	access        AccessChecker
	walletService WalletServicer
	epsilon       decimal.Decimal
}

// NewReconciliationService creates a new ReconciliationServicer. A
// non-positive epsilon falls back to DefaultReconcileEpsilon.
func NewReconciliationService(
	db *gorm.DB,
	unit UnitRunner,
	clk clock.Clock,
	access AccessChecker,
	walletService WalletServicer,
	epsilon decimal.Decimal,
) ReconciliationServicer {
	if !epsilon.IsPositive() {
		epsilon = DefaultReconcileEpsilon
	}
	return &reconciliationService{
		db:            db,
		unit:          unit,
		clock:         clk,
		access:        access,
		walletService: walletService,
		epsilon:       epsilon,
	}
}

// Recalculate repairs every aggregate in scope. With walletID set the scope
// is that wallet (edit access required), its active budgets and the goals
// linked to it. Otherwise it is every wallet the user owns, their active
// budgets and the user's goals that are not cancelled. Each correction is
// its own unit of work, so one failure does not undo earlier repairs.
func (s *reconciliationService) Recalculate(userID string, walletID *string) (*ReconcileResult, error) {
	wallets, err := s.walletsInScope(userID, walletID)
	if err != nil {
		return nil, err
	}

	walletIDs := make([]string, 0, len(wallets))
	for _, w := range wallets {
		walletIDs = append(walletIDs, w.ID)
	}

	result := &ReconcileResult{}

	for _, w := range wallets {
		fixed, err := s.reconcileWallet(w.ID)
		if err != nil {
			return nil, err
		}
		result.WalletsChecked++
		if fixed {
			result.WalletsFixed++
		}
	}

	var budgets []models.Budget
	if len(walletIDs) > 0 {
		if err := s.db.Where("wallet_id IN ? AND is_active = ?", walletIDs, true).Find(&budgets).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	for _, b := range budgets {
		fixed, err := s.reconcileBudget(b.ID)
		if err != nil {
			return nil, err
		}
		result.BudgetsChecked++
		if fixed {
			result.BudgetsFixed++
		}
	}

	goalQuery := s.db.Model(&models.Goal{}).Where("status <> ?", models.GoalStatusCancelled)
	if walletID != nil {
		goalQuery = goalQuery.Where("wallet_id = ?", *walletID)
	} else {
		goalQuery = goalQuery.Where("user_id = ?", userID)
	}
	var goalIDs []string
	if err := goalQuery.Pluck("id", &goalIDs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, id := range goalIDs {
		fixed, err := s.reconcileGoal(id)
		if err != nil {
			return nil, err
		}
		result.GoalsChecked++
		if fixed {
			result.GoalsFixed++
		}
	}

	logger.Get().Infow("reconciliation finished",
		"user_id", userID,
		"wallets_checked", result.WalletsChecked,
		"wallets_fixed", result.WalletsFixed,
		"budgets_checked", result.BudgetsChecked,
		"budgets_fixed", result.BudgetsFixed,
		"goals_checked", result.GoalsChecked,
		"goals_fixed", result.GoalsFixed,
	)

	return result, nil
}

// walletsInScope resolves the wallets to repair. Inactive wallets are
// included: their historical entries still define their balance.
func (s *reconciliationService) walletsInScope(userID string, walletID *string) ([]models.Wallet, error) {
	if walletID != nil {
		wallet, err := findWallet(s.db, *walletID)
		if err != nil {
			return nil, err
		}
		if err := requireAccess(s.access, wallet, userID, AccessEdit); err != nil {
			return nil, err
		}
		return []models.Wallet{*wallet}, nil
	}

	var wallets []models.Wallet
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&wallets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return wallets, nil
}

func (s *reconciliationService) drifted(stored, computed decimal.Decimal) bool {
	return stored.Sub(computed).Abs().GreaterThan(s.epsilon)
}

func (s *reconciliationService) reconcileWallet(walletID string) (bool, error) {
	var fixed bool
	_, err := s.unit.Run(func(tx *gorm.DB) error {
		fixed = false

		var wallet models.Wallet
		if err := tx.Where("id = ?", walletID).First(&wallet).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var entries []models.Transaction
		if err := tx.Select("type", "amount").Where("wallet_id = ?", walletID).Find(&entries).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		computed := wallet.InitialBalance
		for i := range entries {
			computed = computed.Add(entries[i].Signed())
		}

		if !s.drifted(wallet.Balance, computed) {
			return nil
		}

		stored := wallet.Balance
		if err := s.walletService.SetBalance(tx, &wallet, computed); err != nil {
			return err
		}
		logger.Get().Infow("reconciled wallet balance",
			"wallet_id", walletID,
			"stored", stored.String(),
			"computed", computed.String(),
		)
		fixed = true
		return nil
	})
	return fixed, err
}

func (s *reconciliationService) reconcileBudget(budgetID string) (bool, error) {
	var fixed bool
	_, err := s.unit.Run(func(tx *gorm.DB) error {
		fixed = false

		var budget models.Budget
		if err := tx.Where("id = ?", budgetID).First(&budget).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		until := s.clock.Now()
		if budget.EndDate.Before(until) {
			until = budget.EndDate
		}
		computed, err := sumBudgetSpent(tx, &budget, until)
		if err != nil {
			return err
		}

		if !s.drifted(budget.Spent, computed) {
			return nil
		}

		if err := tx.Model(&models.Budget{}).Where("id = ?", budget.ID).Update("spent", computed).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		logger.Get().Infow("reconciled budget spent",
			"budget_id", budgetID,
			"stored", budget.Spent.String(),
			"computed", computed.String(),
		)
		fixed = true
		return nil
	})
	return fixed, err
}

// reconcileGoal re-sums a goal from its contributions' backing entries.
// A contribution whose entry is gone counts as zero and is dropped, and one
// whose entry amount changed takes the entry's amount, so the contribution
// list agrees with the ledger afterwards.
func (s *reconciliationService) reconcileGoal(goalID string) (bool, error) {
	var fixed bool
	_, err := s.unit.Run(func(tx *gorm.DB) error {
		fixed = false

		var goal models.Goal
		if err := tx.Preload("Contributions").Where("id = ?", goalID).First(&goal).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		computed := decimal.Zero
		for _, c := range goal.Contributions {
			if c.TransactionID == nil {
				computed = computed.Add(c.Amount)
				continue
			}

			var entry models.Transaction
			err := tx.Select("id", "amount").Where("id = ?", *c.TransactionID).First(&entry).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Delete(&models.GoalContribution{}, "id = ?", c.ID).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
				logger.Get().Infow("dropped contribution without ledger entry",
					"goal_id", goalID,
					"contribution_id", c.ID,
				)
			case err != nil:
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			default:
				if !entry.Amount.Equal(c.Amount) {
					if err := tx.Model(&models.GoalContribution{}).Where("id = ?", c.ID).Update("amount", entry.Amount).Error; err != nil {
						return apperrors.Wrap(apperrors.ErrInternalServer, err)
					}
				}
				computed = computed.Add(entry.Amount)
			}
		}
		if computed.IsNegative() {
			computed = decimal.Zero
		}

		stored := goal.CurrentAmount
		prevStatus := goal.Status
		target := stored
		if s.drifted(stored, computed) {
			target = computed
		}
		goal.ApplyAmount(target, s.clock.Now())

		if goal.CurrentAmount.Equal(stored) && goal.Status == prevStatus {
			return nil
		}

		if err := saveGoalState(tx, &goal); err != nil {
			return err
		}
		logger.Get().Infow("reconciled goal",
			"goal_id", goalID,
			"stored", stored.String(),
			"computed", computed.String(),
			"status", goal.Status,
		)
		fixed = true
		return nil
	})
	return fixed, err
}
