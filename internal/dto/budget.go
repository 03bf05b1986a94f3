package dto

import (
	"time"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetRequest sets the monthly budget amount.
type SetBudgetRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"25000"`
}

// BudgetResponse defines the data returned for the budget.
type BudgetResponse struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// BudgetStatusResponse summarises the current month.
type BudgetStatusResponse struct {
	Month            string          `json:"month" example:"2024-07"`
	BudgetAmount     decimal.Decimal `json:"budgetAmount" swaggertype:"string"`
	SpentThisMonth   decimal.Decimal `json:"spentThisMonth" swaggertype:"string"`
	Remaining        decimal.Decimal `json:"remaining" swaggertype:"string"`
	Summary          string          `json:"summary"`
	TopCategoryName  string          `json:"topCategoryName,omitempty"`
	TopCategoryTotal decimal.Decimal `json:"topCategoryTotal" swaggertype:"string"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{Amount: b.Amount, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}
