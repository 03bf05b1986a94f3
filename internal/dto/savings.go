package dto

import (
	"time"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required,max=120"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required" swaggertype:"string" example:"50000"`
}

// UpdateGoalRequest defines the editable fields of a goal.
type UpdateGoalRequest struct {
	Name         *string          `json:"name" binding:"omitempty,max=120"`
	TargetAmount *decimal.Decimal `json:"targetAmount" swaggertype:"string"`
}

// AddContributionRequest adds money to a goal.
type AddContributionRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"500"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID        string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount" swaggertype:"string"`
	CurrentAmount decimal.Decimal `json:"currentAmount" swaggertype:"string"`
	Accomplished  bool            `json:"accomplished"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ListGoalsResponse splits goals by state.
type ListGoalsResponse struct {
	Active       []GoalResponse `json:"active"`
	Accomplished []GoalResponse `json:"accomplished"`
}

// ContributionResponse defines the data returned for a contribution.
type ContributionResponse struct {
	ContributionID string          `json:"id"`
	GoalID         string          `json:"goalId"`
	Amount         decimal.Decimal `json:"amount" swaggertype:"string"`
	Date           time.Time       `json:"date"`
	Source         string          `json:"source"`
}

// AddContributionResponse is the goal after a manual contribution.
type AddContributionResponse struct {
	Contribution ContributionResponse `json:"contribution"`
	Goal         GoalResponse         `json:"goal"`
	Completed    bool                 `json:"completed"`
	Message      string               `json:"message,omitempty"`
}

// ToGoalResponse converts a domain.SavingsGoal to GoalResponse DTO
func ToGoalResponse(g *domain.SavingsGoal) GoalResponse {
	return GoalResponse{
		GoalID:        g.GoalID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Accomplished:  g.Accomplished(),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// ToListGoalsResponse splits goals into active and accomplished.
func ToListGoalsResponse(goals []domain.SavingsGoal) ListGoalsResponse {
	res := ListGoalsResponse{Active: []GoalResponse{}, Accomplished: []GoalResponse{}}
	for i := range goals {
		g := ToGoalResponse(&goals[i])
		if g.Accomplished {
			res.Accomplished = append(res.Accomplished, g)
		} else {
			res.Active = append(res.Active, g)
		}
	}
	return res
}

// ToContributionResponse converts a domain.Contribution to ContributionResponse DTO
func ToContributionResponse(c *domain.Contribution) ContributionResponse {
	return ContributionResponse{
		ContributionID: c.ContributionID,
		GoalID:         c.GoalID,
		Amount:         c.Amount,
		Date:           c.Date,
		Source:         string(c.Source),
	}
}

// ToContributionResponses converts a slice of domain.Contribution to []ContributionResponse.
func ToContributionResponses(cs []domain.Contribution) []ContributionResponse {
	res := make([]ContributionResponse, len(cs))
	for i := range cs {
		res[i] = ToContributionResponse(&cs[i])
	}
	return res
}
