package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of a ledger entry.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a supported direction.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Signed returns +amount for income and -amount for expense.
func Signed(t TransactionType, amount decimal.Decimal) decimal.Decimal {
	if t == TransactionTypeIncome {
		return amount
	}
	return amount.Neg()
}

// Transaction is a ledger entry: one monetary movement on a wallet.
type Transaction struct {
	Base
	UserID     string          `gorm:"type:uuid;not null;index" json:"user_id"`
	WalletID   string          `gorm:"type:uuid;not null;index" json:"wallet_id"`
	CategoryID *string         `gorm:"type:uuid;index" json:"category_id,omitempty"`
	GoalID     *string         `gorm:"type:uuid;index" json:"goal_id,omitempty"`
	TransferID *string         `gorm:"type:uuid;index" json:"transfer_id,omitempty"`
	Type       TransactionType `gorm:"not null" json:"type"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Note       string          `json:"note"`
	Date       time.Time       `gorm:"not null;index" json:"date"`
}

// Signed returns the entry's effect on its wallet balance.
func (t *Transaction) Signed() decimal.Decimal {
	return Signed(t.Type, t.Amount)
}

// IsTransferLeg reports whether the entry is one side of a transfer.
func (t *Transaction) IsTransferLeg() bool {
	return t.TransferID != nil
}

// BeforeSave normalizes the date so range queries compare consistently.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	t.Date = t.Date.UTC()
	return nil
}
