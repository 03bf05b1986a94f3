package services

import (
	"context"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetSvc defines operations on the monthly budget
type BudgetSvc interface {
	// GetBudget returns the budget or apperrors.ErrNotFound when none was set.
	GetBudget(ctx context.Context, userID string) (*domain.Budget, error)

	// SetBudget creates or updates the budget amount. CreatedAt is kept from the first call.
	SetBudget(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Budget, error)

	// BudgetStatus summarises the current month's spend against the budget.
	BudgetStatus(ctx context.Context, userID string) (*domain.BudgetStatus, error)
}
