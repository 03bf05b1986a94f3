package services

import (
	"context"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/SscSPs/insightbud/internal/dto"
	"github.com/shopspring/decimal"
)

// SavingsGoalSvc defines operations on savings goals
type SavingsGoalSvc interface {
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.SavingsGoal, error)
	GetGoal(ctx context.Context, userID, goalID string) (*domain.SavingsGoal, error)
	UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest) (*domain.SavingsGoal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
	ListGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
}

// ContributionSvc defines operations on the contribution ledger
type ContributionSvc interface {
	// AddContribution records a manual contribution and increments the goal.
	AddContribution(ctx context.Context, userID, goalID string, amount decimal.Decimal) (*dto.AddContributionResponse, error)
	ListContributions(ctx context.Context, userID string) ([]domain.Contribution, error)

	// Streak returns the savings streak with a motivational message.
	Streak(ctx context.Context, userID string) (*domain.SavingsStreak, error)

	// DriftReport compares each goal's running total with its contribution sum.
	DriftReport(ctx context.Context, userID string) ([]domain.GoalDrift, error)
}

// SavingsSvcFacade combines all savings-related service interfaces
type SavingsSvcFacade interface {
	SavingsGoalSvc
	ContributionSvc
}
