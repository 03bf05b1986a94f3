package services

import (
	"context"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/SscSPs/insightbud/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses
type ExpenseReaderSvc interface {
	GetExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error)

	// ListExpenses returns a page of expenses, newest first.
	ListExpenses(ctx context.Context, userID string, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)
}

// ExpenseWriterSvc defines write operations for expenses
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error

	// MarkRecurring flags expenses as recurring, typically after accepting AI suggestions.
	MarkRecurring(ctx context.Context, userID string, expenseIDs []string) (int64, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}

// CategorySvc defines operations on expense categories
type CategorySvc interface {
	// ListCategories returns the user's categories, seeding missing defaults first.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
}
