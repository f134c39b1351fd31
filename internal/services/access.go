package services

import (
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// AccessLevel is a user's standing on a wallet, ordered from least to most.
type AccessLevel int

const (
	AccessNone AccessLevel = iota
	AccessView
	AccessEdit
	AccessOwner
)

func (l AccessLevel) String() string {
	switch l {
	case AccessView:
		return "view"
	case AccessEdit:
		return "edit"
	case AccessOwner:
		return "owner"
	}
	return "none"
}

// AccessChecker resolves what a user may do with a wallet. The wallet must
// be loaded with its Members.
type AccessChecker interface {
	WalletAccess(wallet *models.Wallet, userID string) AccessLevel
}

type memberAccessChecker struct{}

// NewAccessChecker returns the owner/member access checker.
func NewAccessChecker() AccessChecker {
	return memberAccessChecker{}
}

func (memberAccessChecker) WalletAccess(wallet *models.Wallet, userID string) AccessLevel {
	if wallet == nil || userID == "" {
		return AccessNone
	}
	if wallet.UserID == userID {
		return AccessOwner
	}
	for _, m := range wallet.Members {
		if m.UserID != userID {
			continue
		}
		switch m.Permission {
		case models.WalletPermissionEdit:
			return AccessEdit
		case models.WalletPermissionView:
			return AccessView
		}
	}
	return AccessNone
}

// requireAccess hides wallets the user cannot see and forbids those they can
// see but not act on.
func requireAccess(checker AccessChecker, wallet *models.Wallet, userID string, min AccessLevel) error {
	level := checker.WalletAccess(wallet, userID)
	if level == AccessNone {
		return apperrors.ErrWalletNotFound
	}
	if level < min {
		return apperrors.ErrForbidden
	}
	return nil
}
