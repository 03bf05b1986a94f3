package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/insightbud/internal/core/domain"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/middleware"
	"github.com/SscSPs/insightbud/internal/platform/metrics"
)

// EventGoalAccomplished is tracked once per goal, when a contribution crosses its target.
const EventGoalAccomplished = "goal_accomplished"

// goalCompletion announces goals that just crossed their target.
type goalCompletion struct {
	insights portssvc.InsightsSvc
	tracker  portssvc.EventTracker
	metrics  *metrics.Metrics
}

// announce returns the celebration message and records the completion.
func (g goalCompletion) announce(ctx context.Context, userID string, goal domain.SavingsGoal, source domain.ContributionSource) string {
	g.metrics.GoalsCompleted.Inc()
	if g.tracker != nil {
		g.tracker.Enqueue(userID, EventGoalAccomplished, map[string]any{
			"goal_id":       goal.GoalID,
			"target_amount": goal.TargetAmount.String(),
			"source":        string(source),
		})
	}
	middleware.GetLoggerFromCtx(ctx).Info("Savings goal accomplished",
		slog.String("goal_id", goal.GoalID),
		slog.String("source", string(source)))
	return g.insights.GoalMessage(ctx, goal.Name)
}
