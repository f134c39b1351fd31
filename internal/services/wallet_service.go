package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// walletService handles wallet-related business logic and owns the
// version-conditioned balance write.
type walletService struct {
	db     *gorm.DB
	access AccessChecker
}

// NewWalletService creates a new WalletServicer.
func NewWalletService(db *gorm.DB, access AccessChecker) WalletServicer {
	return &walletService{db: db, access: access}
}

// CreateWallet creates a wallet whose balance starts at its initial balance.
func (s *walletService) CreateWallet(userID string, in WalletInput) (*models.Wallet, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "wallet name is required")
	}

	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = "USD"
	}

	if err := s.ensureUniqueName(userID, name, ""); err != nil {
		return nil, err
	}

	wallet := &models.Wallet{
		UserID:         userID,
		Name:           name,
		Description:    in.Description,
		InitialBalance: in.InitialBalance,
		Balance:        in.InitialBalance,
		Currency:       currency,
		Status:         models.WalletStatusActive,
	}

	if err := s.db.Create(wallet).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return wallet, nil
}

// GetUserWallets returns active wallets the user owns or is a member of.
func (s *walletService) GetUserWallets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Wallet], error) {
	page.Defaults()

	memberOf := s.db.Model(&models.WalletMember{}).Select("wallet_id").Where("user_id = ?", userID)
	base := s.db.Model(&models.Wallet{}).
		Where("status = ?", models.WalletStatusActive).
		Where("user_id = ? OR id IN (?)", userID, memberOf)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var wallets []models.Wallet
	if err := base.Preload("Members").
		Scopes(pagination.Paginate(page)).
		Order("created_at ASC").
		Find(&wallets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(wallets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetWalletByID returns a wallet the user can at least view.
func (s *walletService) GetWalletByID(userID, walletID string) (*models.Wallet, error) {
	wallet, err := findWallet(s.db, walletID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(s.access, wallet, userID, AccessView); err != nil {
		return nil, err
	}
	return wallet, nil
}

// UpdateWallet changes a wallet's name or description. Owner only.
func (s *walletService) UpdateWallet(userID, walletID string, name, description *string) (*models.Wallet, error) {
	wallet, err := s.ownedWallet(userID, walletID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "wallet name cannot be empty")
		}
		if trimmed != wallet.Name {
			if err := s.ensureUniqueName(userID, trimmed, wallet.ID); err != nil {
				return nil, err
			}
			updates["name"] = trimmed
		}
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Wallet{}).Where("id = ?", wallet.ID).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return findWallet(s.db, wallet.ID)
}

// DeactivateWallet flips the wallet to inactive. Its ledger entries stay.
func (s *walletService) DeactivateWallet(userID, walletID string) error {
	wallet, err := s.ownedWallet(userID, walletID)
	if err != nil {
		return err
	}

	if err := s.db.Model(&models.Wallet{}).
		Where("id = ?", wallet.ID).
		Update("status", models.WalletStatusInactive).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// AddMember shares the wallet with the user registered under memberEmail.
// Adding an existing member changes their permission.
func (s *walletService) AddMember(userID, walletID, memberEmail string, permission models.WalletPermission) (*models.WalletMember, error) {
	if permission != models.WalletPermissionView && permission != models.WalletPermissionEdit {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "permission must be view or edit")
	}

	wallet, err := s.ownedWallet(userID, walletID)
	if err != nil {
		return nil, err
	}

	var member models.User
	if err := s.db.Where("email = ? AND is_active = ?", strings.ToLower(memberEmail), true).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if member.ID == wallet.UserID {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "the owner cannot be added as a member")
	}

	for i := range wallet.Members {
		existing := wallet.Members[i]
		if existing.UserID != member.ID {
			continue
		}
		if err := s.db.Model(&models.WalletMember{}).
			Where("id = ?", existing.ID).
			Update("permission", permission).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		existing.Permission = permission
		return &existing, nil
	}

	wm := &models.WalletMember{WalletID: wallet.ID, UserID: member.ID, Permission: permission}
	if err := s.db.Create(wm).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return wm, nil
}

// RemoveMember revokes a member's access.
func (s *walletService) RemoveMember(userID, walletID, memberID string) error {
	wallet, err := s.ownedWallet(userID, walletID)
	if err != nil {
		return err
	}

	result := s.db.Where("id = ? AND wallet_id = ?", memberID, wallet.ID).Delete(&models.WalletMember{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

// LoadWalletForUpdate loads a wallet inside a unit of work and checks the
// user may move money on it. Inactive wallets are treated as missing.
func (s *walletService) LoadWalletForUpdate(tx *gorm.DB, userID, walletID string) (*models.Wallet, error) {
	if walletID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "wallet ID is required")
	}

	wallet, err := findWallet(tx, walletID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(s.access, wallet, userID, AccessEdit); err != nil {
		return nil, err
	}
	if !wallet.IsActive() {
		return nil, apperrors.WithMessage(apperrors.ErrWalletNotFound, "wallet is inactive")
	}
	return wallet, nil
}

// ApplyBalanceDelta adds delta to the wallet's balance.
func (s *walletService) ApplyBalanceDelta(tx *gorm.DB, wallet *models.Wallet, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}
	return s.SetBalance(tx, wallet, wallet.Balance.Add(delta))
}

// SetBalance writes balance conditioned on the version the wallet was read
// at. A concurrent writer makes the update match no rows, which surfaces as
// ErrConcurrentModification so the enclosing unit can retry from scratch.
func (s *walletService) SetBalance(tx *gorm.DB, wallet *models.Wallet, balance decimal.Decimal) error {
	result := tx.Model(&models.Wallet{}).
		Where("id = ? AND version = ?", wallet.ID, wallet.Version).
		Updates(map[string]interface{}{
			"balance": balance,
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Get().Infow("wallet version conflict",
			"wallet_id", wallet.ID,
			"version", wallet.Version,
		)
		return apperrors.WithMessage(apperrors.ErrConcurrentModification, "wallet was modified concurrently")
	}

	wallet.Balance = balance
	wallet.Version++
	return nil
}

func (s *walletService) ownedWallet(userID, walletID string) (*models.Wallet, error) {
	wallet, err := findWallet(s.db, walletID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(s.access, wallet, userID, AccessOwner); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *walletService) ensureUniqueName(userID, name, excludeID string) error {
	q := s.db.Model(&models.Wallet{}).
		Where("user_id = ? AND name = ? AND status = ?", userID, name, models.WalletStatusActive)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateWalletName
	}
	return nil
}

// findWallet loads a wallet with its members through db, which may be a unit handle.
func findWallet(db *gorm.DB, walletID string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := db.Preload("Members").Where("id = ?", walletID).First(&wallet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWalletNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &wallet, nil
}
