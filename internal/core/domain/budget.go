package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MainBudgetID is the id of the singleton budget row of every user.
const MainBudgetID = "main"

// Budget is the user's monthly spending budget.
type Budget struct {
	BudgetID  string          `json:"id"`
	UserID    string          `json:"userId"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"` // Set on first creation only; anchors rollover history
	UpdatedAt time.Time       `json:"updatedAt"`
}

// BudgetStatus summarises the current month against the budget.
type BudgetStatus struct {
	Month            MonthKey        `json:"month"`
	BudgetAmount     decimal.Decimal `json:"budgetAmount"`
	SpentThisMonth   decimal.Decimal `json:"spentThisMonth"`
	Remaining        decimal.Decimal `json:"remaining"`
	TopCategoryID    string          `json:"topCategoryId,omitempty"`
	TopCategoryName  string          `json:"topCategoryName,omitempty"`
	TopCategoryTotal decimal.Decimal `json:"topCategoryTotal"`
}
