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
	"github.com/google/uuid"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, clock Clock) portssvc.ExpenseSvcFacade {
	return &expenseService{BaseService: BaseService{Clock: clock}, expenseRepo: repo}
}

func (s *expenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if userID == "" {
		return nil, nil
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if err := budgeting.CheckScale("amount", req.Amount); err != nil {
		return nil, err
	}

	now := s.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		Amount:      req.Amount,
		Date:        req.Date,
		CategoryID:  req.CategoryID,
		IsRecurring: req.IsRecurring,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created", slog.String("expense_id", expense.ExpenseID))
	return &expense, nil
}

func (s *expenseService) GetExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	if userID == "" {
		return nil, apperrors.ErrNotFound
	}
	expense, err := s.expenseRepo.FindExpenseByID(ctx, userID, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense", slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, userID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	if userID == "" {
		return &dto.ListExpensesResponse{Expenses: []dto.ExpenseResponse{}}, nil
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	expenses, nextToken, err := s.expenseRepo.ListExpenses(ctx, userID, limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list expenses", slog.Int("limit", limit))
		}
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	s.LogDebug(ctx, "Expenses listed", slog.Int("count", len(expenses)))
	return &dto.ListExpensesResponse{
		Expenses:  dto.ToExpenseResponses(expenses),
		NextToken: nextToken,
	}, nil
}

// UpdateExpense merges the provided fields into the stored expense.
func (s *expenseService) UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	if userID == "" {
		return nil, nil
	}
	expense, err := s.GetExpense(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		expense.Title = *req.Title
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		if err := budgeting.CheckScale("amount", *req.Amount); err != nil {
			return nil, err
		}
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.CategoryID != nil {
		expense.CategoryID = *req.CategoryID
	}
	if req.IsRecurring != nil {
		expense.IsRecurring = *req.IsRecurring
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	expense.UpdatedAt = s.Now()

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Expense updated", slog.String("expense_id", expenseID))
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	if userID == "" {
		return nil
	}
	if err := s.expenseRepo.DeleteExpense(ctx, userID, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		}
		return err
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

func (s *expenseService) MarkRecurring(ctx context.Context, userID string, expenseIDs []string) (int64, error) {
	if userID == "" || len(expenseIDs) == 0 {
		return 0, nil
	}
	updated, err := s.expenseRepo.MarkExpensesRecurring(ctx, userID, expenseIDs, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to mark expenses recurring", slog.Int("count", len(expenseIDs)))
		return 0, fmt.Errorf("failed to mark expenses recurring: %w", err)
	}
	s.LogInfo(ctx, "Expenses marked recurring", slog.Int64("updated", updated))
	return updated, nil
}
