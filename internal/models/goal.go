package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusPaused    GoalStatus = "paused"
	GoalStatusCancelled GoalStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s GoalStatus) Valid() bool {
	switch s {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusPaused, GoalStatusCancelled:
		return true
	}
	return false
}

// Goal accumulates contributions toward a target amount.
// CurrentAmount always equals the sum of its contributions.
type Goal struct {
	Base
	UserID        string          `gorm:"type:uuid;not null;index" json:"user_id"`
	WalletID      *string         `gorm:"type:uuid;index" json:"wallet_id,omitempty"`
	Name          string          `gorm:"not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"current_amount"`
	Status        GoalStatus      `gorm:"not null;default:'active'" json:"status"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`

	Contributions []GoalContribution `gorm:"foreignKey:GoalID" json:"contributions"`
}

// ApplyAmount sets CurrentAmount (floored at zero) and re-derives the
// active/completed status. Paused and cancelled goals keep their status.
func (g *Goal) ApplyAmount(amount decimal.Decimal, now time.Time) {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	g.CurrentAmount = amount

	switch g.Status {
	case GoalStatusActive:
		if g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
			g.Status = GoalStatusCompleted
			completed := now
			g.CompletedAt = &completed
		}
	case GoalStatusCompleted:
		if g.CurrentAmount.LessThan(g.TargetAmount) {
			g.Status = GoalStatusActive
			g.CompletedAt = nil
		}
	}
}

// GoalContribution is one deposit toward a goal. TransactionID points at the
// wallet expense entry backing it when the goal has a linked wallet.
type GoalContribution struct {
	Base
	GoalID        string          `gorm:"type:uuid;not null;index" json:"goal_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Date          time.Time       `gorm:"not null" json:"date"`
	Note          string          `json:"note"`
	TransactionID *string         `gorm:"type:uuid;index" json:"transaction_id,omitempty"`
}
