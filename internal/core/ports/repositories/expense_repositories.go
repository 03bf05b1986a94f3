package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/insightbud/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a single expense of the user.
	FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves a page of expenses, newest first, using token-based pagination.
	ListExpenses(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Expense, *string, error)

	// ListAllExpenses retrieves the full expense history of the user.
	ListAllExpenses(ctx context.Context, userID string) ([]domain.Expense, error)

	// ListExpensesBetween retrieves expenses dated in [from, to).
	ListExpensesBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, userID, expenseID string) error

	// MarkExpensesRecurring flags the given expenses and returns how many rows changed.
	MarkExpensesRecurring(ctx context.Context, userID string, expenseIDs []string, now time.Time) (int64, error)
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
