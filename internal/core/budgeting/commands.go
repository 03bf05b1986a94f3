package budgeting

import (
	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WriteKind names the ledger write a command performs.
type WriteKind string

const (
	WriteInsertRollover      WriteKind = "insert_rollover"
	WriteInsertContribution  WriteKind = "insert_contribution"
	WriteIncrementGoalAmount WriteKind = "increment_goal_amount"
)

// WriteCommand describes one ledger write. Exactly one payload is set, matching Kind.
type WriteCommand struct {
	Kind         WriteKind
	Rollover     *domain.Rollover
	Contribution *domain.Contribution
	GoalUpdate   *GoalAmountUpdate
}

// GoalAmountUpdate increments a goal's running total.
// NewCurrentAmount is the value expected after the increment against the planning snapshot.
type GoalAmountUpdate struct {
	UserID           string
	GoalID           string
	Delta            decimal.Decimal
	NewCurrentAmount decimal.Decimal
}

func insertRollover(r domain.Rollover) WriteCommand {
	return WriteCommand{Kind: WriteInsertRollover, Rollover: &r}
}

func insertContribution(c domain.Contribution) WriteCommand {
	return WriteCommand{Kind: WriteInsertContribution, Contribution: &c}
}

func incrementGoal(u GoalAmountUpdate) WriteCommand {
	return WriteCommand{Kind: WriteIncrementGoalAmount, GoalUpdate: &u}
}
