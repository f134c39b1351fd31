package services

import (
	"errors"

	"gorm.io/gorm"

	"fintrack/internal/clock"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/uuid"
)

// transactionService records ledger entries and keeps wallet balances in
// step with them. Every mutation runs in exactly one unit of work.
type transactionService struct {
	db              *gorm.DB
	unit            UnitRunner
	clock           clock.Clock
	walletService   WalletServicer
	categoryService CategoryServicer
	budgetService   BudgetServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(
	db *gorm.DB,
	unit UnitRunner,
	clk clock.Clock,
	walletService WalletServicer,
	categoryService CategoryServicer,
	budgetService BudgetServicer,
) TransactionServicer {
	return &transactionService{
		db:              db,
		unit:            unit,
		clock:           clk,
		walletService:   walletService,
		categoryService: categoryService,
		budgetService:   budgetService,
	}
}

func (s *transactionService) validateEntry(in *EntryInput) error {
	if in.WalletID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "wallet ID is required")
	}
	if !in.Type.Valid() {
		return apperrors.ErrInvalidTransactionType
	}
	if !in.Amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	return nil
}

// checkReferences verifies the optional category belongs to the user.
// Goal links are only ever set by the contribution path.
func checkReferences(tx *gorm.DB, userID string, in EntryInput) error {
	if in.CategoryID != nil {
		if _, err := findCategory(tx, userID, *in.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

// CreateTransaction inserts a ledger entry and applies its signed amount to the wallet.
func (s *transactionService) CreateTransaction(userID string, in EntryInput) (*models.Transaction, error) {
	if err := s.validateEntry(&in); err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		in.Date = s.clock.Now()
	}

	var entry *models.Transaction
	_, err := s.unit.Run(func(tx *gorm.DB) error {
		wallet, err := s.walletService.LoadWalletForUpdate(tx, userID, in.WalletID)
		if err != nil {
			return err
		}
		if err := checkReferences(tx, userID, in); err != nil {
			return err
		}

		entry = &models.Transaction{
			UserID:     userID,
			WalletID:   wallet.ID,
			CategoryID: in.CategoryID,
			Type:       in.Type,
			Amount:     in.Amount,
			Note:       in.Note,
			Date:       in.Date,
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := s.walletService.ApplyBalanceDelta(tx, wallet, entry.Signed()); err != nil {
			return err
		}
		return s.budgetService.RefreshBudgetSpent(tx, entry)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// UpdateTransaction replaces the user-settable fields of an entry and
// re-derives the balances it touches. A zero Date keeps the entry's date. Moving an entry between wallets reverses it on the
// old wallet and applies it to the new one within the same unit.
func (s *transactionService) UpdateTransaction(userID, transactionID string, in EntryInput) (*models.Transaction, error) {
	if err := s.validateEntry(&in); err != nil {
		return nil, err
	}

	var entry *models.Transaction
	_, err := s.unit.Run(func(tx *gorm.DB) error {
		existing, err := findEntry(tx, userID, transactionID)
		if err != nil {
			return err
		}
		if existing.IsTransferLeg() {
			return apperrors.WithMessage(apperrors.ErrTransactionNotEditable, "transfer legs cannot be edited; delete the transfer instead")
		}
		backing, err := isContributionLeg(tx, existing.ID)
		if err != nil {
			return err
		}
		if backing {
			return apperrors.WithMessage(apperrors.ErrTransactionNotEditable, "goal contributions are managed through the goal")
		}

		oldWallet, err := s.walletService.LoadWalletForUpdate(tx, userID, existing.WalletID)
		if err != nil {
			return err
		}
		newWallet := oldWallet
		if in.WalletID != existing.WalletID {
			newWallet, err = s.walletService.LoadWalletForUpdate(tx, userID, in.WalletID)
			if err != nil {
				return err
			}
		}
		if err := checkReferences(tx, userID, in); err != nil {
			return err
		}

		before := *existing
		oldSigned := existing.Signed()
		newSigned := models.Signed(in.Type, in.Amount)

		if newWallet.ID == oldWallet.ID {
			if err := s.walletService.ApplyBalanceDelta(tx, oldWallet, newSigned.Sub(oldSigned)); err != nil {
				return err
			}
		} else {
			if err := s.walletService.ApplyBalanceDelta(tx, oldWallet, oldSigned.Neg()); err != nil {
				return err
			}
			if err := s.walletService.ApplyBalanceDelta(tx, newWallet, newSigned); err != nil {
				return err
			}
		}

		existing.WalletID = newWallet.ID
		existing.CategoryID = in.CategoryID
		existing.Type = in.Type
		existing.Amount = in.Amount
		existing.Note = in.Note
		if !in.Date.IsZero() {
			existing.Date = in.Date
		}
		if err := tx.Save(existing).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := s.budgetService.RefreshBudgetSpent(tx, &before); err != nil {
			return err
		}
		if err := s.budgetService.RefreshBudgetSpent(tx, existing); err != nil {
			return err
		}

		entry = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteTransaction reverses an entry on its wallet and removes it. Deleting
// one leg of a transfer removes both; deleting the entry behind a goal
// contribution also removes the contribution.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	_, err := s.unit.Run(func(tx *gorm.DB) error {
		entry, err := findEntry(tx, userID, transactionID)
		if err != nil {
			return err
		}

		legs := []models.Transaction{*entry}
		if entry.IsTransferLeg() {
			legs = nil
			if err := tx.Where("transfer_id = ?", *entry.TransferID).Order("created_at ASC").Find(&legs).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		// Resolve every wallet before touching any balance.
		wallets := make(map[string]*models.Wallet, len(legs))
		for _, leg := range legs {
			if _, ok := wallets[leg.WalletID]; ok {
				continue
			}
			wallet, err := s.walletService.LoadWalletForUpdate(tx, userID, leg.WalletID)
			if err != nil {
				return err
			}
			wallets[leg.WalletID] = wallet
		}

		now := s.clock.Now()
		for i := range legs {
			leg := &legs[i]
			if err := s.walletService.ApplyBalanceDelta(tx, wallets[leg.WalletID], leg.Signed().Neg()); err != nil {
				return err
			}
			if err := detachContribution(tx, leg.ID, now); err != nil {
				return err
			}
			if err := tx.Delete(leg).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := s.budgetService.RefreshBudgetSpent(tx, leg); err != nil {
				return err
			}
		}
		return nil
	})
	return err
}

// CreateTransfer moves amount between two distinct active wallets as an
// expense leg and an income leg sharing a transfer ID and timestamp.
func (s *transactionService) CreateTransfer(userID string, in TransferInput) (*TransferResult, error) {
	if in.FromWalletID == "" || in.ToWalletID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source and destination wallets are required")
	}
	if in.FromWalletID == in.ToWalletID {
		return nil, apperrors.ErrSameWalletTransfer
	}
	if !in.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if in.Date.IsZero() {
		in.Date = s.clock.Now()
	}

	var result *TransferResult
	_, err := s.unit.Run(func(tx *gorm.DB) error {
		from, err := s.walletService.LoadWalletForUpdate(tx, userID, in.FromWalletID)
		if err != nil {
			return err
		}
		to, err := s.walletService.LoadWalletForUpdate(tx, userID, in.ToWalletID)
		if err != nil {
			return err
		}
		if from.Currency != to.Currency {
			return apperrors.ErrCurrencyMismatch
		}
		if from.Balance.LessThan(in.Amount) {
			return apperrors.ErrInsufficientBalance
		}

		category, err := s.categoryService.EnsureSystemCategory(tx, userID, models.CategoryNameTransfer, models.CategoryTypeTransfer)
		if err != nil {
			return err
		}

		transferID := uuid.New()
		out := &models.Transaction{
			UserID:     userID,
			WalletID:   from.ID,
			CategoryID: &category.ID,
			TransferID: &transferID,
			Type:       models.TransactionTypeExpense,
			Amount:     in.Amount,
			Note:       in.Note,
			Date:       in.Date,
		}
		inLeg := &models.Transaction{
			UserID:     userID,
			WalletID:   to.ID,
			CategoryID: &category.ID,
			TransferID: &transferID,
			Type:       models.TransactionTypeIncome,
			Amount:     in.Amount,
			Note:       in.Note,
			Date:       in.Date,
		}
		if err := tx.Create(out).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Create(inLeg).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := s.walletService.ApplyBalanceDelta(tx, from, in.Amount.Neg()); err != nil {
			return err
		}
		if err := s.walletService.ApplyBalanceDelta(tx, to, in.Amount); err != nil {
			return err
		}
		if err := s.budgetService.RefreshBudgetSpent(tx, out); err != nil {
			return err
		}

		result = &TransferResult{TransferID: transferID, FromEntry: out, ToEntry: inLeg}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetWalletTransactions retrieves a paginated, filtered list of a wallet's
// entries. Any member who can view the wallet sees all of its entries.
func (s *transactionService) GetWalletTransactions(userID, walletID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if _, err := s.walletService.GetWalletByID(userID, walletID); err != nil {
		return nil, err
	}

	filter.WalletID = nil
	base := s.db.Model(&models.Transaction{}).Where("wallet_id = ?", walletID)
	return s.listTransactions(base, page, filter)
}

// GetUserTransactions retrieves a paginated, filtered list of the user's own entries.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	return s.listTransactions(base, page, filter)
}

func (s *transactionService) listTransactions(base *gorm.DB, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", f.FromDate.UTC())
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", f.ToDate.UTC())
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	if f.WalletID != nil {
		q = q.Where("wallet_id = ?", *f.WalletID)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID for a specific user
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	return findEntry(s.db, userID, transactionID)
}

// findEntry loads one of the user's entries through db, which may be a unit handle.
func findEntry(db *gorm.DB, userID, transactionID string) (*models.Transaction, error) {
	var entry models.Transaction
	if err := db.Where("id = ? AND user_id = ?", transactionID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

func isContributionLeg(db *gorm.DB, transactionID string) (bool, error) {
	var count int64
	if err := db.Model(&models.GoalContribution{}).Where("transaction_id = ?", transactionID).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}
