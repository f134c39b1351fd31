package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod represents the period label of a budget
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
	BudgetPeriodCustom  BudgetPeriod = "custom"
)

// Valid reports whether p is a supported period label.
func (p BudgetPeriod) Valid() bool {
	switch p {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly, BudgetPeriodCustom:
		return true
	}
	return false
}

// Budget caps spending on a wallet, optionally for one category, within
// [StartDate, EndDate]. A nil CategoryID covers the whole wallet.
//
// Spent is a display cache. Overspend decisions always re-sum the ledger.
type Budget struct {
	Base
	UserID         string          `gorm:"type:uuid;not null;index" json:"user_id"`
	WalletID       string          `gorm:"type:uuid;not null;index" json:"wallet_id"`
	CategoryID     *string         `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name           string          `gorm:"not null" json:"name"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Spent          decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"spent"`
	Period         BudgetPeriod    `gorm:"not null" json:"period"`
	StartDate      time.Time       `gorm:"not null" json:"start_date"`
	EndDate        time.Time       `gorm:"not null" json:"end_date"`
	AlertThreshold int             `gorm:"not null;default:80" json:"alert_threshold"`
	IsActive       bool            `gorm:"default:true" json:"is_active"`
}

// Covers reports whether t falls inside the budget window.
func (b *Budget) Covers(t time.Time) bool {
	return !t.Before(b.StartDate) && !t.After(b.EndDate)
}

// BeforeSave normalizes the window to UTC.
func (b *Budget) BeforeSave(tx *gorm.DB) error {
	b.StartDate = b.StartDate.UTC()
	b.EndDate = b.EndDate.UTC()
	return nil
}

// PeriodEnd returns the inclusive end of a period starting at start.
func PeriodEnd(period BudgetPeriod, start time.Time) time.Time {
	var next time.Time
	switch period {
	case BudgetPeriodWeekly:
		next = start.AddDate(0, 0, 7)
	case BudgetPeriodYearly:
		next = start.AddDate(1, 0, 0)
	default:
		next = start.AddDate(0, 1, 0)
	}
	return next.Add(-time.Nanosecond)
}
