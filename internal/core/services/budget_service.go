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
	"github.com/shopspring/decimal"
)

type budgetService struct {
	BaseService
	budgetRepo  portsrepo.BudgetRepositoryFacade
	expenseRepo portsrepo.ExpenseReader
	categorySvc portssvc.CategorySvc
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, expenseRepo portsrepo.ExpenseReader, categorySvc portssvc.CategorySvc, clock Clock) portssvc.BudgetSvc {
	return &budgetService{
		BaseService: BaseService{Clock: clock},
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		categorySvc: categorySvc,
	}
}

func (s *budgetService) GetBudget(ctx context.Context, userID string) (*domain.Budget, error) {
	if userID == "" {
		return nil, apperrors.ErrNotFound
	}
	budget, err := s.budgetRepo.FindBudget(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget")
		}
		return nil, err
	}
	return budget, nil
}

// SetBudget upserts the budget. CreatedAt is only taken on first creation.
func (s *budgetService) SetBudget(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Budget, error) {
	if userID == "" {
		return nil, nil
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: budget amount cannot be negative", apperrors.ErrValidation)
	}
	if err := budgeting.CheckScale("budget amount", amount); err != nil {
		return nil, err
	}

	now := s.Now()
	budget, err := s.budgetRepo.UpsertBudget(ctx, domain.Budget{
		BudgetID:  domain.MainBudgetID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to set budget", slog.String("amount", amount.String()))
		return nil, fmt.Errorf("failed to set budget: %w", err)
	}

	s.LogInfo(ctx, "Budget set", slog.String("amount", amount.String()))
	return budget, nil
}

// BudgetStatus sums this month's expenses and finds the category with the largest spend.
func (s *budgetService) BudgetStatus(ctx context.Context, userID string) (*domain.BudgetStatus, error) {
	now := s.Now()
	month := domain.MonthKeyOf(now)
	status := &domain.BudgetStatus{Month: month}
	if userID == "" {
		return status, nil
	}

	budget, err := s.budgetRepo.FindBudget(ctx, userID)
	switch {
	case err == nil:
		status.BudgetAmount = budget.Amount
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		s.LogError(ctx, err, "Failed to find budget")
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}

	start := month.Start(now.Location())
	expenses, err := s.expenseRepo.ListExpensesBetween(ctx, userID, start, start.AddDate(0, 1, 0))
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses of month", slog.String("month", month.String()))
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		status.SpentThisMonth = status.SpentThisMonth.Add(e.Amount)
		byCategory[e.CategoryID] = byCategory[e.CategoryID].Add(e.Amount)
	}
	status.Remaining = status.BudgetAmount.Sub(status.SpentThisMonth)

	for id, total := range byCategory {
		if total.GreaterThan(status.TopCategoryTotal) || (total.Equal(status.TopCategoryTotal) && id < status.TopCategoryID) {
			status.TopCategoryID = id
			status.TopCategoryTotal = total
		}
	}
	if status.TopCategoryID != "" {
		status.TopCategoryName = status.TopCategoryID
		if categories, err := s.categorySvc.ListCategories(ctx, userID); err == nil {
			if name, ok := categoryNames(categories)[status.TopCategoryID]; ok {
				status.TopCategoryName = name
			}
		}
	}
	return status, nil
}
