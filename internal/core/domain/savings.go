package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal is a target the user saves towards.
type SavingsGoal struct {
	GoalID        string          `json:"id"`
	UserID        string          `json:"userId"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`  // > 0
	CurrentAmount decimal.Decimal `json:"currentAmount"` // >= 0, running total of contributions
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Accomplished reports whether the goal has reached its target.
func (g SavingsGoal) Accomplished() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// AmountNeeded returns how much is left to reach the target, never negative.
func (g SavingsGoal) AmountNeeded() decimal.Decimal {
	needed := g.TargetAmount.Sub(g.CurrentAmount)
	if needed.IsNegative() {
		return decimal.Zero
	}
	return needed
}

// ContributionSource records which flow produced a contribution.
type ContributionSource string

const (
	SourceManual   ContributionSource = "manual"
	SourceRollover ContributionSource = "rollover"
)

// Contribution is an append-only ledger entry adding money to a goal.
type Contribution struct {
	ContributionID string             `json:"id"`
	UserID         string             `json:"userId"`
	GoalID         string             `json:"goalId"`
	Amount         decimal.Decimal    `json:"amount"` // > 0
	Date           time.Time          `json:"date"`
	Source         ContributionSource `json:"source"`
}

// GoalDrift compares a goal's stored running total with its contribution ledger.
type GoalDrift struct {
	GoalID            string          `json:"goalId"`
	Name              string          `json:"name"`
	CurrentAmount     decimal.Decimal `json:"currentAmount"`
	ContributionTotal decimal.Decimal `json:"contributionTotal"`
	Drift             decimal.Decimal `json:"drift"`
}
