package mapping

import (
	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/SscSPs/insightbud/internal/models"
)

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:  m.BudgetID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToModelSavingsGoal converts a domain SavingsGoal to a model SavingsGoal
func ToModelSavingsGoal(d domain.SavingsGoal) models.SavingsGoal {
	return models.SavingsGoal{
		GoalID:        d.GoalID,
		UserID:        d.UserID,
		Name:          d.Name,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		AuditFields:   models.AuditFields{CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
	}
}

// ToDomainSavingsGoal converts a model SavingsGoal to a domain SavingsGoal
func ToDomainSavingsGoal(m models.SavingsGoal) domain.SavingsGoal {
	return domain.SavingsGoal{
		GoalID:        m.GoalID,
		UserID:        m.UserID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToModelContribution converts a domain Contribution to a model Contribution
func ToModelContribution(d domain.Contribution) models.Contribution {
	return models.Contribution{
		ContributionID:   d.ContributionID,
		UserID:           d.UserID,
		GoalID:           d.GoalID,
		Amount:           d.Amount,
		ContributionDate: d.Date,
		Source:           string(d.Source),
	}
}

// ToDomainContribution converts a model Contribution to a domain Contribution
func ToDomainContribution(m models.Contribution) domain.Contribution {
	return domain.Contribution{
		ContributionID: m.ContributionID,
		UserID:         m.UserID,
		GoalID:         m.GoalID,
		Amount:         m.Amount,
		Date:           m.ContributionDate,
		Source:         domain.ContributionSource(m.Source),
	}
}

// ToModelRollover converts a domain Rollover to a model Rollover
func ToModelRollover(d domain.Rollover) models.Rollover {
	return models.Rollover{
		RolloverID:          d.RolloverID,
		UserID:              d.UserID,
		Month:               d.Month.String(),
		TransferredAmount:   d.TransferredAmount,
		TransferredToGoalID: d.TransferredToGoalID,
		CreatedAt:           d.CreatedAt,
	}
}

// ToDomainRollover converts a model Rollover to a domain Rollover
func ToDomainRollover(m models.Rollover) domain.Rollover {
	return domain.Rollover{
		RolloverID:          m.RolloverID,
		UserID:              m.UserID,
		Month:               domain.MonthKey(m.Month),
		TransferredAmount:   m.TransferredAmount,
		TransferredToGoalID: m.TransferredToGoalID,
		CreatedAt:           m.CreatedAt,
	}
}
