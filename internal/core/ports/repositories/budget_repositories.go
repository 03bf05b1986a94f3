package repositories

import (
	"context"

	"github.com/SscSPs/insightbud/internal/core/domain"
)

// BudgetRepositoryFacade defines operations on the per-user budget singleton
type BudgetRepositoryFacade interface {
	// FindBudget returns the user's budget or apperrors.ErrNotFound.
	FindBudget(ctx context.Context, userID string) (*domain.Budget, error)

	// UpsertBudget creates the budget or updates its amount, keeping the original created_at.
	UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error)
}
