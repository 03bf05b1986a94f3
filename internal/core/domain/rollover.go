package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rollover records one transfer of a past month's budget surplus into a goal.
// A month may have several rollovers; they are never mutated.
type Rollover struct {
	RolloverID          string          `json:"id"`
	UserID              string          `json:"userId"`
	Month               MonthKey        `json:"month"`
	TransferredAmount   decimal.Decimal `json:"transferredAmount"` // > 0
	TransferredToGoalID string          `json:"transferredToGoalId"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// LedgerCollection names a per-user collection in the ledger store.
type LedgerCollection string

const (
	CollectionExpenses      LedgerCollection = "expenses"
	CollectionCategories    LedgerCollection = "categories"
	CollectionBudgets       LedgerCollection = "budgets"
	CollectionSavingsGoals  LedgerCollection = "savings_goals"
	CollectionContributions LedgerCollection = "contributions"
	CollectionRollovers     LedgerCollection = "rollovers"
)

// LedgerChange notifies that a user's collection was written.
type LedgerChange struct {
	UserID     string           `json:"userId"`
	Collection LedgerCollection `json:"collection"`
}

// LedgerSnapshot is an immutable view of the records the rollover engine consumes.
type LedgerSnapshot struct {
	Expenses  []Expense
	Budget    *Budget
	Rollovers []Rollover
}

// MonthReport is one closed month with its transfers.
type MonthReport struct {
	Month       MonthKey        `json:"month"`
	TotalSpent  decimal.Decimal `json:"totalSpent"`
	Surplus     decimal.Decimal `json:"surplus"`
	Transferred decimal.Decimal `json:"transferred"`
}
