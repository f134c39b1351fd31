package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fintrack/internal/clock"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// goalService maintains savings goals. When a goal is linked to a wallet
// every contribution is backed by an expense entry on that wallet.
type goalService struct {
	db              *gorm.DB
	unit            UnitRunner
	clock           clock.Clock
	walletService   WalletServicer
	categoryService CategoryServicer
	budgetService   BudgetServicer
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(
	db *gorm.DB,
	unit UnitRunner,
	clk clock.Clock,
	walletService WalletServicer,
	categoryService CategoryServicer,
	budgetService BudgetServicer,
) GoalServicer {
	return &goalService{
		db:              db,
		unit:            unit,
		clock:           clk,
		walletService:   walletService,
		categoryService: categoryService,
		budgetService:   budgetService,
	}
}

// CreateGoal creates an active goal, optionally linked to a wallet the user can edit.
func (s *goalService) CreateGoal(userID string, in GoalInput) (*GoalView, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if !in.TargetAmount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	if in.WalletID != nil {
		if _, err := s.walletService.LoadWalletForUpdate(s.db, userID, *in.WalletID); err != nil {
			return nil, err
		}
	}

	goal := &models.Goal{
		UserID:       userID,
		WalletID:     in.WalletID,
		Name:         name,
		TargetAmount: in.TargetAmount,
		Status:       models.GoalStatusActive,
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return newGoalView(goal), nil
}

// GetUserGoals returns the user's goals, optionally filtered by status.
func (s *goalService) GetUserGoals(userID string, page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[GoalView], error) {
	page.Defaults()

	base := s.db.Model(&models.Goal{}).Where("user_id = ?", userID)
	if status != nil {
		base = base.Where("status = ?", *status)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := base.Scopes(pagination.Paginate(page)).Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	views := make([]GoalView, 0, len(goals))
	for i := range goals {
		views = append(views, *newGoalView(&goals[i]))
	}

	result := pagination.NewPageResponse(views, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID returns a goal with its contributions.
func (s *goalService) GetGoalByID(userID, goalID string) (*GoalView, error) {
	goal, err := findGoal(s.db, userID, goalID)
	if err != nil {
		return nil, err
	}
	return newGoalView(goal), nil
}

// UpdateGoal changes name, target or status. A new target re-derives completion.
func (s *goalService) UpdateGoal(userID, goalID string, in GoalUpdate) (*GoalView, error) {
	_, err := s.unit.Run(func(tx *gorm.DB) error {
		goal, err := findGoal(tx, userID, goalID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name cannot be empty")
			}
			updates["name"] = name
		}
		if in.TargetAmount != nil {
			if !in.TargetAmount.IsPositive() {
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
			}
			goal.TargetAmount = *in.TargetAmount
			updates["target_amount"] = *in.TargetAmount
		}
		if in.Status != nil {
			switch *in.Status {
			case models.GoalStatusActive, models.GoalStatusPaused, models.GoalStatusCancelled:
			default:
				return apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be active, paused or cancelled")
			}
			// Reactivating a completed goal is a no-op; completion is derived below.
			if *in.Status != models.GoalStatusActive || goal.Status != models.GoalStatusCompleted {
				goal.Status = *in.Status
				goal.CompletedAt = nil
			}
		}

		goal.ApplyAmount(goal.CurrentAmount, s.clock.Now())
		updates["status"] = goal.Status
		updates["completed_at"] = goal.CompletedAt

		if err := tx.Model(&models.Goal{}).Where("id = ?", goal.ID).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetGoalByID(userID, goalID)
}

// DeleteGoal refunds the accumulated amount to the linked wallet, removes
// the entries behind every contribution, unlinks any other entry still
// pointing at the goal, then deletes the contributions and the goal, all
// in one unit of work.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	_, err := s.unit.Run(func(tx *gorm.DB) error {
		goal, err := findGoal(tx, userID, goalID)
		if err != nil {
			return err
		}

		if goal.WalletID != nil && goal.CurrentAmount.IsPositive() {
			wallet, err := s.walletService.LoadWalletForUpdate(tx, userID, *goal.WalletID)
			if err != nil {
				return err
			}
			if err := s.walletService.ApplyBalanceDelta(tx, wallet, goal.CurrentAmount); err != nil {
				return err
			}
		}

		for _, c := range goal.Contributions {
			if c.TransactionID == nil {
				continue
			}
			var entry models.Transaction
			err := tx.Where("id = ?", *c.TransactionID).First(&entry).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := tx.Delete(&entry).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := s.budgetService.RefreshBudgetSpent(tx, &entry); err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Transaction{}).Where("goal_id = ?", goal.ID).Update("goal_id", nil).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("goal_id = ?", goal.ID).Delete(&models.GoalContribution{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&models.Goal{}, "id = ?", goal.ID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	return err
}

// AddContribution deposits amount into an active goal. With a linked wallet
// the wallet must cover the amount, and an expense entry in the Saving Goal
// category backs the contribution.
func (s *goalService) AddContribution(userID, goalID string, amount decimal.Decimal, note string, date time.Time) (*GoalView, error) {
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "contribution amount must be greater than zero")
	}
	if date.IsZero() {
		date = s.clock.Now()
	}

	_, err := s.unit.Run(func(tx *gorm.DB) error {
		goal, err := findGoal(tx, userID, goalID)
		if err != nil {
			return err
		}
		if goal.Status != models.GoalStatusActive {
			return apperrors.ErrGoalNotActive
		}

		var entryID *string
		if goal.WalletID != nil {
			wallet, err := s.walletService.LoadWalletForUpdate(tx, userID, *goal.WalletID)
			if err != nil {
				return err
			}
			if wallet.Balance.LessThan(amount) {
				return apperrors.ErrInsufficientBalance
			}

			category, err := s.categoryService.EnsureSystemCategory(tx, userID, models.CategoryNameSavingGoal, models.CategoryTypeExpense)
			if err != nil {
				return err
			}

			entry := &models.Transaction{
				UserID:     userID,
				WalletID:   wallet.ID,
				CategoryID: &category.ID,
				GoalID:     &goal.ID,
				Type:       models.TransactionTypeExpense,
				Amount:     amount,
				Note:       note,
				Date:       date,
			}
			if err := tx.Create(entry).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := s.walletService.ApplyBalanceDelta(tx, wallet, entry.Signed()); err != nil {
				return err
			}
			if err := s.budgetService.RefreshBudgetSpent(tx, entry); err != nil {
				return err
			}
			entryID = &entry.ID
		}

		contribution := &models.GoalContribution{
			GoalID:        goal.ID,
			Amount:        amount,
			Date:          date.UTC(),
			Note:          note,
			TransactionID: entryID,
		}
		if err := tx.Create(contribution).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		goal.ApplyAmount(goal.CurrentAmount.Add(amount), s.clock.Now())
		return saveGoalState(tx, goal)
	})
	if err != nil {
		return nil, err
	}

	return s.GetGoalByID(userID, goalID)
}

// RemoveContribution strips a contribution from the goal. A backing entry
// is deleted and its amount refunded to the wallet.
func (s *goalService) RemoveContribution(userID, goalID, contributionID string) (*GoalView, error) {
	_, err := s.unit.Run(func(tx *gorm.DB) error {
		goal, err := findGoal(tx, userID, goalID)
		if err != nil {
			return err
		}

		var contribution models.GoalContribution
		if err := tx.Where("id = ? AND goal_id = ?", contributionID, goal.ID).First(&contribution).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrContributionNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if contribution.TransactionID != nil {
			var entry models.Transaction
			err := tx.Where("id = ?", *contribution.TransactionID).First(&entry).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				// Entry already gone; its wallet effect went with it.
			case err != nil:
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			default:
				wallet, err := s.walletService.LoadWalletForUpdate(tx, userID, entry.WalletID)
				if err != nil {
					return err
				}
				if err := s.walletService.ApplyBalanceDelta(tx, wallet, entry.Signed().Neg()); err != nil {
					return err
				}
				if err := tx.Delete(&entry).Error; err != nil {
					return apperrors.Wrap(apperrors.ErrInternalServer, err)
				}
				if err := s.budgetService.RefreshBudgetSpent(tx, &entry); err != nil {
					return err
				}
			}
		}

		if err := tx.Delete(&contribution).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		goal.ApplyAmount(goal.CurrentAmount.Sub(contribution.Amount), s.clock.Now())
		return saveGoalState(tx, goal)
	})
	if err != nil {
		return nil, err
	}

	return s.GetGoalByID(userID, goalID)
}

// detachContribution removes the contribution backed by transactionID, if
// any, and takes its amount off the goal. Callers delete the entry itself.
func detachContribution(tx *gorm.DB, transactionID string, now time.Time) error {
	var contribution models.GoalContribution
	err := tx.Where("transaction_id = ?", transactionID).First(&contribution).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := tx.Delete(&contribution).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goal models.Goal
	err = tx.Where("id = ?", contribution.GoalID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	goal.ApplyAmount(goal.CurrentAmount.Sub(contribution.Amount), now)
	logger.Get().Infow("goal contribution removed with its entry",
		"goal_id", goal.ID,
		"contribution_id", contribution.ID,
		"transaction_id", transactionID,
	)
	return saveGoalState(tx, &goal)
}

// saveGoalState persists the derived fields only, so loaded contributions
// are never written back.
func saveGoalState(tx *gorm.DB, goal *models.Goal) error {
	if err := tx.Model(&models.Goal{}).Where("id = ?", goal.ID).Updates(map[string]interface{}{
		"current_amount": goal.CurrentAmount,
		"status":         goal.Status,
		"completed_at":   goal.CompletedAt,
	}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// findGoal loads one of the user's goals with contributions in date order.
func findGoal(db *gorm.DB, userID, goalID string) (*models.Goal, error) {
	var goal models.Goal
	err := db.Preload("Contributions", func(db *gorm.DB) *gorm.DB {
		return db.Order("date ASC").Order("created_at ASC")
	}).Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

func newGoalView(goal *models.Goal) *GoalView {
	if goal.Contributions == nil {
		goal.Contributions = []models.GoalContribution{}
	}

	view := &GoalView{Goal: *goal, Remaining: decimal.Zero}
	if goal.TargetAmount.IsPositive() {
		view.Progress = goal.CurrentAmount.Mul(hundred).Div(goal.TargetAmount).Round(0).IntPart()
	}
	if remaining := goal.TargetAmount.Sub(goal.CurrentAmount); remaining.IsPositive() {
		view.Remaining = remaining
	}
	return view
}
