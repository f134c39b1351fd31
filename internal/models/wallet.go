package models

import (
	"github.com/shopspring/decimal"
)

// WalletStatus represents the lifecycle state of a wallet.
type WalletStatus string

const (
	WalletStatusActive   WalletStatus = "active"
	WalletStatusInactive WalletStatus = "inactive"
)

// WalletPermission is the permission a member holds on a shared wallet.
type WalletPermission string

const (
	WalletPermissionView WalletPermission = "view"
	WalletPermissionEdit WalletPermission = "edit"
)

// Wallet is a pool of money with a cached running balance.
//
// Balance is only written through the balance protocol and must equal
// InitialBalance plus the signed sum of the wallet's ledger entries; drift is
// repaired by reconciliation. Version increases on every balance write so
// concurrent writers can detect each other.
type Wallet struct {
	Base
	UserID         string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string          `gorm:"not null" json:"name"`
	Description    string          `json:"description"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"initial_balance"`
	Balance        decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"balance"`
	Currency       string          `gorm:"size:3;not null;default:'USD'" json:"currency"`
	Status         WalletStatus    `gorm:"not null;default:'active'" json:"status"`
	Version        int64           `gorm:"not null;default:0" json:"version"`

	Members []WalletMember `gorm:"foreignKey:WalletID" json:"members,omitempty"`
}

// IsActive reports whether the wallet accepts new movements.
func (w *Wallet) IsActive() bool {
	return w.Status == WalletStatusActive
}

// WalletMember grants another user access to a wallet.
type WalletMember struct {
	Base
	WalletID   string           `gorm:"type:uuid;not null;index" json:"wallet_id"`
	UserID     string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Permission WalletPermission `gorm:"not null" json:"permission"`
}
