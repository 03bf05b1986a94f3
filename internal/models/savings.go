package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a row of the budgets table. There is at most one row per user.
type Budget struct {
	BudgetID string          `db:"budget_id"`
	UserID   string          `db:"user_id"`
	Amount   decimal.Decimal `db:"amount"`
	AuditFields
}

// SavingsGoal is a row of the savings_goals table.
type SavingsGoal struct {
	GoalID        string          `db:"goal_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	AuditFields
}

// Contribution is a row of the contributions table.
type Contribution struct {
	ContributionID   string          `db:"contribution_id"`
	UserID           string          `db:"user_id"`
	GoalID           string          `db:"goal_id"`
	Amount           decimal.Decimal `db:"amount"`
	ContributionDate time.Time       `db:"contribution_date"`
	Source           string          `db:"source"`
}

// Rollover is a row of the rollovers table.
type Rollover struct {
	RolloverID          string          `db:"rollover_id"`
	UserID              string          `db:"user_id"`
	Month               string          `db:"month"`
	TransferredAmount   decimal.Decimal `db:"transferred_amount"`
	TransferredToGoalID string          `db:"transferred_to_goal_id"`
	CreatedAt           time.Time       `db:"created_at"`
}
