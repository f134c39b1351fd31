package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fintrack/internal/clock"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

const defaultAlertThreshold = 80

var hundred = decimal.NewFromInt(100)

// budgetService handles budget-related business logic.
type budgetService struct {
	db            *gorm.DB
	unit          UnitRunner
	clock         clock.Clock
	walletService WalletServicer
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB, unit UnitRunner, clk clock.Clock, walletService WalletServicer) BudgetServicer {
	return &budgetService{
		db:            db,
		unit:          unit,
		clock:         clk,
		walletService: walletService,
	}
}

// CreateBudget creates a budget after checking no active budget already
// covers the same wallet, category and period over an overlapping window.
// The check and the insert share one unit of work.
func (s *budgetService) CreateBudget(userID string, in BudgetInput) (*models.Budget, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget name is required")
	}
	if !in.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount must be greater than zero")
	}
	if !in.Period.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unsupported budget period")
	}

	threshold := in.AlertThreshold
	if threshold == 0 {
		threshold = defaultAlertThreshold
	}
	if threshold < 1 || threshold > 100 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "alert threshold must be between 1 and 100")
	}

	start := in.StartDate.UTC()
	if start.IsZero() {
		now := s.clock.Now()
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	var end time.Time
	switch {
	case in.EndDate != nil:
		end = in.EndDate.UTC()
	case in.Period == models.BudgetPeriodCustom:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "custom budgets need an end date")
	default:
		end = models.PeriodEnd(in.Period, start)
	}
	if !end.After(start) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end date must be after start date")
	}

	var budget *models.Budget
	_, err := s.unit.Run(func(tx *gorm.DB) error {
		wallet, err := s.walletService.LoadWalletForUpdate(tx, userID, in.WalletID)
		if err != nil {
			return err
		}
		if in.CategoryID != nil {
			if _, err := findCategory(tx, userID, *in.CategoryID); err != nil {
				return err
			}
		}

		dup := tx.Model(&models.Budget{}).
			Where("wallet_id = ? AND period = ? AND is_active = ?", wallet.ID, in.Period, true).
			Where("start_date <= ? AND end_date >= ?", end, start)
		dup = scopeCategory(dup, in.CategoryID)

		var count int64
		if err := dup.Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return apperrors.ErrDuplicateBudget
		}

		budget = &models.Budget{
			UserID:         userID,
			WalletID:       wallet.ID,
			CategoryID:     in.CategoryID,
			Name:           name,
			Amount:         in.Amount,
			Period:         in.Period,
			StartDate:      start,
			EndDate:        end,
			AlertThreshold: threshold,
			IsActive:       true,
		}

		spent, err := sumBudgetSpent(tx, budget, s.spentCutoff(budget))
		if err != nil {
			return err
		}
		budget.Spent = spent

		if err := tx.Create(budget).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return budget, nil
}

// GetUserBudgets returns a paginated list of budgets for the user with optional filters.
func (s *budgetService) GetUserBudgets(
	userID string,
	page pagination.PageRequest,
	isActive *bool,
	period *models.BudgetPeriod,
) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)
	if isActive != nil {
		base = base.Where("is_active = ?", *isActive)
	}
	if period != nil {
		base = base.Where("period = ?", *period)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Scopes(pagination.Paginate(page)).Order("start_date DESC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(budgets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBudgetByID returns a budget by ID if it belongs to the user.
func (s *budgetService) GetBudgetByID(userID, budgetID string) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

// UpdateBudget updates an existing budget's fields.
func (s *budgetService) UpdateBudget(userID, budgetID string, in BudgetUpdate) (*models.Budget, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget name cannot be empty")
		}
		updates["name"] = name
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount must be greater than zero")
		}
		updates["amount"] = *in.Amount
	}
	if in.AlertThreshold != nil {
		if *in.AlertThreshold < 1 || *in.AlertThreshold > 100 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "alert threshold must be between 1 and 100")
		}
		updates["alert_threshold"] = *in.AlertThreshold
	}
	if in.EndDate != nil {
		end := in.EndDate.UTC()
		if !end.After(budget.StartDate) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end date must be after start date")
		}
		updates["end_date"] = end
		budget.EndDate = end
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	if len(updates) == 0 {
		return budget, nil
	}

	_, err = s.unit.Run(func(tx *gorm.DB) error {
		// A moved end date changes which entries count.
		if in.EndDate != nil {
			spent, err := sumBudgetSpent(tx, budget, s.spentCutoff(budget))
			if err != nil {
				return err
			}
			updates["spent"] = spent
		}
		if err := tx.Model(&models.Budget{}).Where("id = ?", budget.ID).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetBudgetByID(userID, budgetID)
}

// DeleteBudget soft-deletes a budget.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(budget).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetBudgetProgress calculates live spending against the budget's window up to now.
func (s *budgetService) GetBudgetProgress(userID, budgetID string) (*BudgetProgress, error) {
	budget, err := s.GetBudgetByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	res, err := s.evaluate(budget, s.clock.Now())
	if err != nil {
		return nil, err
	}

	return &BudgetProgress{
		BudgetID:       budget.ID,
		Budgeted:       res.Cap,
		Spent:          res.Spent,
		Remaining:      res.Remaining,
		Percentage:     res.Percentage,
		IsOverBudget:   res.IsOverBudget,
		AlertTriggered: res.AlertTriggered,
	}, nil
}

// CheckOverspend finds the most recently created active budget covering
// asOf for the wallet and category (nil meaning the whole-wallet budget) and
// sums matching expenses from the budget start up to asOf. It never writes.
func (s *budgetService) CheckOverspend(walletID string, categoryID *string, asOf time.Time) (*OverspendResult, error) {
	if walletID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "wallet ID is required")
	}
	if asOf.IsZero() {
		asOf = s.clock.Now()
	}
	asOf = asOf.UTC()

	q := s.db.Where("wallet_id = ? AND is_active = ?", walletID, true).
		Where("start_date <= ? AND end_date >= ?", asOf, asOf)
	q = scopeCategory(q, categoryID)

	var budget models.Budget
	if err := q.Order("created_at DESC").Order("id DESC").First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &OverspendResult{HasBudget: false}, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !budget.Covers(asOf) {
		return &OverspendResult{HasBudget: false}, nil
	}

	return s.evaluate(&budget, asOf)
}

// RefreshBudgetSpent recomputes the stored spent figure of every active
// budget the expense entry falls into. It recomputes rather than increments
// so repeated calls for the same entry are harmless.
func (s *budgetService) RefreshBudgetSpent(tx *gorm.DB, entry *models.Transaction) error {
	if entry == nil || entry.Type != models.TransactionTypeExpense {
		return nil
	}
	date := entry.Date.UTC()

	q := tx.Where("wallet_id = ? AND is_active = ?", entry.WalletID, true).
		Where("start_date <= ? AND end_date >= ?", date, date)
	switch {
	case entry.IsTransferLeg() && entry.CategoryID != nil:
		q = q.Where("category_id = ?", *entry.CategoryID)
	case entry.IsTransferLeg():
		return nil
	case entry.CategoryID != nil:
		q = q.Where("category_id IS NULL OR category_id = ?", *entry.CategoryID)
	default:
		q = q.Where("category_id IS NULL")
	}

	var budgets []models.Budget
	if err := q.Find(&budgets).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range budgets {
		b := &budgets[i]
		if !b.Covers(date) {
			continue
		}
		spent, err := sumBudgetSpent(tx, b, s.spentCutoff(b))
		if err != nil {
			return err
		}
		if spent.Equal(b.Spent) {
			continue
		}
		if err := tx.Model(&models.Budget{}).Where("id = ?", b.ID).Update("spent", spent).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

func (s *budgetService) evaluate(budget *models.Budget, asOf time.Time) (*OverspendResult, error) {
	until := budget.EndDate
	if asOf.Before(until) {
		until = asOf
	}

	spent, err := sumBudgetSpent(s.db, budget, until)
	if err != nil {
		return nil, err
	}

	var pct int64
	if budget.Amount.IsPositive() {
		pct = spent.Mul(hundred).Div(budget.Amount).Round(0).IntPart()
	}

	return &OverspendResult{
		HasBudget:      true,
		Budget:         budget,
		Spent:          spent,
		Cap:            budget.Amount,
		Remaining:      budget.Amount.Sub(spent),
		Percentage:     pct,
		IsOverBudget:   spent.GreaterThan(budget.Amount),
		AlertTriggered: pct >= int64(budget.AlertThreshold),
	}, nil
}

// spentCutoff is the end of the window clipped to now.
func (s *budgetService) spentCutoff(budget *models.Budget) time.Time {
	now := s.clock.Now()
	if now.Before(budget.EndDate) {
		return now
	}
	return budget.EndDate
}

// scopeCategory narrows a budget query to one category, or to whole-wallet
// budgets when categoryID is nil.
func scopeCategory(q *gorm.DB, categoryID *string) *gorm.DB {
	if categoryID == nil {
		return q.Where("category_id IS NULL")
	}
	return q.Where("category_id = ?", *categoryID)
}

// sumBudgetSpent adds up the expense entries counted against budget dated
// in [StartDate, until]. Whole-wallet budgets ignore transfer legs.
func sumBudgetSpent(db *gorm.DB, budget *models.Budget, until time.Time) (decimal.Decimal, error) {
	if until.Before(budget.StartDate) {
		return decimal.Zero, nil
	}

	q := db.Model(&models.Transaction{}).
		Where("wallet_id = ? AND type = ?", budget.WalletID, models.TransactionTypeExpense).
		Where("date >= ? AND date <= ?", budget.StartDate.UTC(), until.UTC())
	if budget.CategoryID != nil {
		q = q.Where("category_id = ?", *budget.CategoryID)
	} else {
		q = q.Where("transfer_id IS NULL")
	}

	var amounts []decimal.Decimal
	if err := q.Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return decimal.Sum(decimal.Zero, amounts...), nil
}
