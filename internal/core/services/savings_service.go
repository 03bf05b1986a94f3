package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/budgeting"
	"github.com/SscSPs/insightbud/internal/core/domain"
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/dto"
	"github.com/SscSPs/insightbud/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type savingsService struct {
	BaseService
	goalRepo         portsrepo.SavingsGoalRepositoryFacade
	contributionRepo portsrepo.ContributionRepositoryFacade
	executor         *WriteExecutor
	insights         portssvc.InsightsSvc
	completion       goalCompletion
}

// NewSavingsService creates a new savings goal and contribution service.
func NewSavingsService(
	goalRepo portsrepo.SavingsGoalRepositoryFacade,
	contributionRepo portsrepo.ContributionRepositoryFacade,
	executor *WriteExecutor,
	insights portssvc.InsightsSvc,
	tracker portssvc.EventTracker,
	m *metrics.Metrics,
	clock Clock,
) portssvc.SavingsSvcFacade {
	if m == nil {
		m = metrics.NewMetrics()
	}
	return &savingsService{
		BaseService:      BaseService{Clock: clock},
		goalRepo:         goalRepo,
		contributionRepo: contributionRepo,
		executor:         executor,
		insights:         insights,
		completion:       goalCompletion{insights: insights, tracker: tracker, metrics: m},
	}
}

func (s *savingsService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.SavingsGoal, error) {
	if userID == "" {
		return nil, nil
	}
	if !req.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}
	if err := budgeting.CheckScale("target amount", req.TargetAmount); err != nil {
		return nil, err
	}

	now := s.Now()
	goal := domain.SavingsGoal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save savings goal", slog.String("goal_id", goal.GoalID))
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	s.LogInfo(ctx, "Savings goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *savingsService) GetGoal(ctx context.Context, userID, goalID string) (*domain.SavingsGoal, error) {
	if userID == "" {
		return nil, apperrors.ErrNotFound
	}
	goal, err := s.goalRepo.FindGoalByID(ctx, userID, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find savings goal", slog.String("goal_id", goalID))
		}
		return nil, err
	}
	return goal, nil
}

func (s *savingsService) UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest) (*domain.SavingsGoal, error) {
	if userID == "" {
		return nil, nil
	}
	goal, err := s.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if !req.TargetAmount.IsPositive() {
			return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
		}
		if err := budgeting.CheckScale("target amount", *req.TargetAmount); err != nil {
			return nil, err
		}
		goal.TargetAmount = *req.TargetAmount
	}
	goal.UpdatedAt = s.Now()

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update savings goal", slog.String("goal_id", goalID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Savings goal updated", slog.String("goal_id", goalID))
	return goal, nil
}

// DeleteGoal removes the goal. Its contributions and rollovers stay in the ledger.
func (s *savingsService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if userID == "" {
		return nil
	}
	if err := s.goalRepo.DeleteGoal(ctx, userID, goalID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete savings goal", slog.String("goal_id", goalID))
		}
		return err
	}
	s.LogInfo(ctx, "Savings goal deleted", slog.String("goal_id", goalID))
	return nil
}

func (s *savingsService) ListGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	if userID == "" {
		return []domain.SavingsGoal{}, nil
	}
	goals, err := s.goalRepo.ListGoals(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list savings goals")
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}
	if goals == nil {
		return []domain.SavingsGoal{}, nil
	}
	return goals, nil
}

// AddContribution records a manual contribution and waits for the ledger writes.
func (s *savingsService) AddContribution(ctx context.Context, userID, goalID string, amount decimal.Decimal) (*dto.AddContributionResponse, error) {
	if userID == "" {
		return nil, nil
	}

	unlock, err := s.executor.LockUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	goal, err := s.GetGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	plan, err := budgeting.PlanContribution(*goal, amount, userID, s.Now(), nil)
	if err != nil {
		return nil, err
	}

	var result WriteResult
	select {
	case result = <-s.executor.Submit(ctx, plan.Commands):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if result.Err != nil {
		return nil, fmt.Errorf("failed to add contribution: %w", result.Err)
	}

	resp := &dto.AddContributionResponse{
		Contribution: dto.ToContributionResponse(&plan.Contribution),
		Goal:         dto.ToGoalResponse(&plan.UpdatedGoal),
		Completed:    plan.Completed,
	}
	if plan.Completed {
		resp.Message = s.completion.announce(ctx, userID, plan.UpdatedGoal, domain.SourceManual)
	}

	s.LogInfo(ctx, "Contribution added",
		slog.String("goal_id", goalID),
		slog.String("amount", amount.String()),
		slog.Bool("completed", plan.Completed))
	return resp, nil
}

func (s *savingsService) ListContributions(ctx context.Context, userID string) ([]domain.Contribution, error) {
	if userID == "" {
		return []domain.Contribution{}, nil
	}
	contributions, err := s.contributionRepo.ListContributions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contributions")
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	if contributions == nil {
		return []domain.Contribution{}, nil
	}
	return contributions, nil
}

// Streak computes the savings streak. The message never changes the numbers.
func (s *savingsService) Streak(ctx context.Context, userID string) (*domain.SavingsStreak, error) {
	contributions, err := s.ListContributions(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := budgeting.Streak(contributions, s.Now())
	return &domain.SavingsStreak{
		StreakMonths:        result.StreakMonths,
		CurrentMonthSavings: result.CurrentMonthSavings,
		Message:             s.insights.StreakMessage(ctx, result, len(contributions) > 0),
	}, nil
}

// DriftReport lists every goal with the difference between its running total and its contribution ledger.
func (s *savingsService) DriftReport(ctx context.Context, userID string) ([]domain.GoalDrift, error) {
	goals, err := s.ListGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return []domain.GoalDrift{}, nil
	}

	sums, err := s.contributionRepo.SumContributionsByGoal(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum contributions")
		return nil, fmt.Errorf("failed to sum contributions: %w", err)
	}

	report := make([]domain.GoalDrift, len(goals))
	for i, g := range goals {
		total := sums[g.GoalID]
		report[i] = domain.GoalDrift{
			GoalID:            g.GoalID,
			Name:              g.Name,
			CurrentAmount:     g.CurrentAmount,
			ContributionTotal: total,
			Drift:             g.CurrentAmount.Sub(total),
		}
		if !report[i].Drift.IsZero() {
			s.LogInfo(ctx, "Savings goal drifted from its contributions",
				slog.String("goal_id", g.GoalID),
				slog.String("drift", report[i].Drift.String()))
		}
	}
	return report, nil
}
