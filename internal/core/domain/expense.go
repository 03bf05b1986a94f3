package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record owned by a user.
type Expense struct {
	ExpenseID   string          `json:"id"`
	UserID      string          `json:"userId"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"` // Positive
	Date        time.Time       `json:"date"`
	CategoryID  string          `json:"categoryId"`
	IsRecurring bool            `json:"isRecurring"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Category groups expenses.
type Category struct {
	CategoryID string `json:"id"`
	UserID     string `json:"userId"`
	Name       string `json:"name"`
}

// DefaultCategories are seeded for every user that is missing them.
var DefaultCategories = []Category{
	{CategoryID: "grocery", Name: "Grocery"},
	{CategoryID: "food", Name: "Food & Dining"},
	{CategoryID: "snacks", Name: "Snacks"},
	{CategoryID: "clothing", Name: "Clothing"},
	{CategoryID: "fashion", Name: "Fashion & Accessories"},
	{CategoryID: "home-appliances", Name: "Home Appliances"},
	{CategoryID: "stationery", Name: "Stationery"},
	{CategoryID: "transportation", Name: "Transportation"},
	{CategoryID: "utilities", Name: "Utilities"},
	{CategoryID: "rent-mortgage", Name: "Rent/Mortgage"},
	{CategoryID: "health", Name: "Health & Wellness"},
	{CategoryID: "education", Name: "Education"},
	{CategoryID: "entertainment", Name: "Entertainment"},
	{CategoryID: "travel", Name: "Travel"},
	{CategoryID: "shopping", Name: "Shopping"},
	{CategoryID: "gifts", Name: "Gifts & Donations"},
	{CategoryID: "personal-care", Name: "Personal Care"},
	{CategoryID: "pets", Name: "Pets"},
	{CategoryID: "insurance", Name: "Insurance"},
	{CategoryID: "investments", Name: "Investments"},
	{CategoryID: "other", Name: "Other"},
}
