package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SavingsGoalReader defines read operations for savings goals
type SavingsGoalReader interface {
	FindGoalByID(ctx context.Context, userID, goalID string) (*domain.SavingsGoal, error)
	ListGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
}

// SavingsGoalWriter defines write operations for savings goals
type SavingsGoalWriter interface {
	SaveGoal(ctx context.Context, goal domain.SavingsGoal) error

	// UpdateGoal updates name and target. The running total is only changed via IncrementGoalAmount.
	UpdateGoal(ctx context.Context, goal domain.SavingsGoal) error

	DeleteGoal(ctx context.Context, userID, goalID string) error

	// IncrementGoalAmount adds delta to current_amount in place and returns the stored result.
	IncrementGoalAmount(ctx context.Context, userID, goalID string, delta decimal.Decimal, now time.Time) (decimal.Decimal, error)
}

// SavingsGoalRepositoryFacade combines all savings goal repository interfaces
type SavingsGoalRepositoryFacade interface {
	SavingsGoalReader
	SavingsGoalWriter
}

// ContributionRepositoryFacade defines operations on the append-only contribution ledger
type ContributionRepositoryFacade interface {
	SaveContribution(ctx context.Context, contribution domain.Contribution) error

	// ListContributions retrieves every contribution of the user, newest first.
	ListContributions(ctx context.Context, userID string) ([]domain.Contribution, error)

	// SumContributionsByGoal returns the contribution total per goal id.
	SumContributionsByGoal(ctx context.Context, userID string) (map[string]decimal.Decimal, error)
}
