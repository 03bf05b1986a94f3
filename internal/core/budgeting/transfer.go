package budgeting

import (
	"fmt"
	"time"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferInput is everything needed to plan a rollover transfer.
type TransferInput struct {
	Month            domain.MonthKey
	Goal             domain.SavingsGoal
	AvailableSurplus decimal.Decimal
	UserID           string
	Now              time.Time
	NewID            func() string // Defaults to uuid.NewString
}

// TransferPlan is the outcome of a planned transfer and the writes that realise it.
type TransferPlan struct {
	TransferAmount decimal.Decimal
	Contribution   domain.Contribution
	Rollover       domain.Rollover
	UpdatedGoal    domain.SavingsGoal
	Completed      bool // The goal crossed its target with this transfer
	Commands       []WriteCommand
}

// PlanTransfer bounds the transfer to what the goal still needs and describes the
// rollover, contribution and goal-increment writes, in that order.
func PlanTransfer(in TransferInput) (*TransferPlan, error) {
	if !in.AvailableSurplus.IsPositive() {
		return nil, fmt.Errorf("%w: no surplus available for %s", apperrors.ErrInvalidTransfer, in.Month)
	}
	if in.Goal.Accomplished() {
		return nil, fmt.Errorf("%w: goal %q is already accomplished", apperrors.ErrInvalidTransfer, in.Goal.Name)
	}

	newID := in.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	amount := decimal.Min(in.AvailableSurplus, in.Goal.AmountNeeded())

	contribution := domain.Contribution{
		ContributionID: newID(),
		UserID:         in.UserID,
		GoalID:         in.Goal.GoalID,
		Amount:         amount,
		Date:           in.Now,
		Source:         domain.SourceRollover,
	}
	rollover := domain.Rollover{
		RolloverID:          newID(),
		UserID:              in.UserID,
		Month:               in.Month,
		TransferredAmount:   amount,
		TransferredToGoalID: in.Goal.GoalID,
		CreatedAt:           in.Now,
	}

	updated, completed := applyContribution(in.Goal, amount, in.Now)

	return &TransferPlan{
		TransferAmount: amount,
		Contribution:   contribution,
		Rollover:       rollover,
		UpdatedGoal:    updated,
		Completed:      completed,
		Commands: []WriteCommand{
			insertRollover(rollover),
			insertContribution(contribution),
			incrementGoal(GoalAmountUpdate{
				UserID:           in.UserID,
				GoalID:           in.Goal.GoalID,
				Delta:            amount,
				NewCurrentAmount: updated.CurrentAmount,
			}),
		},
	}, nil
}

// ContributionPlan is the outcome of a manual "add money" action.
type ContributionPlan struct {
	Contribution domain.Contribution
	UpdatedGoal  domain.SavingsGoal
	Completed    bool
	Commands     []WriteCommand
}

// PlanContribution describes a manual contribution. Unlike transfers it is not bounded
// by the target and is allowed on accomplished goals, which then never re-fire completion.
func PlanContribution(goal domain.SavingsGoal, amount decimal.Decimal, userID string, now time.Time, newID func() string) (*ContributionPlan, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: contribution amount must be positive", apperrors.ErrValidation)
	}
	if err := CheckScale("contribution amount", amount); err != nil {
		return nil, err
	}
	if newID == nil {
		newID = uuid.NewString
	}

	contribution := domain.Contribution{
		ContributionID: newID(),
		UserID:         userID,
		GoalID:         goal.GoalID,
		Amount:         amount,
		Date:           now,
		Source:         domain.SourceManual,
	}
	updated, completed := applyContribution(goal, amount, now)

	return &ContributionPlan{
		Contribution: contribution,
		UpdatedGoal:  updated,
		Completed:    completed,
		Commands: []WriteCommand{
			insertContribution(contribution),
			incrementGoal(GoalAmountUpdate{
				UserID:           userID,
				GoalID:           goal.GoalID,
				Delta:            amount,
				NewCurrentAmount: updated.CurrentAmount,
			}),
		},
	}, nil
}

// applyContribution returns the goal after adding amount and whether this crossed the target.
func applyContribution(goal domain.SavingsGoal, amount decimal.Decimal, now time.Time) (domain.SavingsGoal, bool) {
	wasAccomplished := goal.Accomplished()
	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	goal.UpdatedAt = now
	return goal, goal.Accomplished() && !wasAccomplished
}
