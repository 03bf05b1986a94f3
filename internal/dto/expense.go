package dto

import (
	"time"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to log an expense.
type CreateExpenseRequest struct {
	Title       string          `json:"title" binding:"required,max=200"`
	Amount      decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"249.50"`
	Date        time.Time       `json:"date" binding:"required"`
	CategoryID  string          `json:"categoryId" binding:"required"`
	IsRecurring bool            `json:"isRecurring"`
	Notes       string          `json:"notes" binding:"max=1000"` // Optional
}

// UpdateExpenseRequest defines the data allowed for editing an expense.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateExpenseRequest struct {
	Title       *string          `json:"title" binding:"omitempty,max=200"`
	Amount      *decimal.Decimal `json:"amount" swaggertype:"string"`
	Date        *time.Time       `json:"date"`
	CategoryID  *string          `json:"categoryId"`
	IsRecurring *bool            `json:"isRecurring"`
	Notes       *string          `json:"notes" binding:"omitempty,max=1000"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	Date        time.Time       `json:"date"`
	CategoryID  string          `json:"categoryId"`
	IsRecurring bool            `json:"isRecurring"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListExpensesResponse wraps a page of expenses.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// MarkRecurringRequest lists expenses to flag as recurring.
type MarkRecurringRequest struct {
	ExpenseIDs []string `json:"expenseIds" binding:"required,min=1,dive,required"`
}

// MarkRecurringResponse reports how many expenses were flagged.
type MarkRecurringResponse struct {
	Updated int64 `json:"updated"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string `json:"id"`
	Name       string `json:"name"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Title:       e.Title,
		Amount:      e.Amount,
		Date:        e.Date,
		CategoryID:  e.CategoryID,
		IsRecurring: e.IsRecurring,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseResponses converts a slice of domain.Expense to []ExpenseResponse.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}

// ToCategoryResponses converts a slice of domain.Category to []CategoryResponse.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = CategoryResponse{CategoryID: c.CategoryID, Name: c.Name}
	}
	return res
}
