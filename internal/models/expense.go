package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields are the timestamps every mutable row carries.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Expense is a row of the expenses table.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	UserID      string          `db:"user_id"`
	Title       string          `db:"title"`
	Amount      decimal.Decimal `db:"amount"`
	ExpenseDate time.Time       `db:"expense_date"`
	CategoryID  string          `db:"category_id"`
	IsRecurring bool            `db:"is_recurring"`
	Notes       *string         `db:"notes"` // Nullable
	AuditFields
}

// Category is a row of the categories table.
type Category struct {
	CategoryID string    `db:"category_id"`
	UserID     string    `db:"user_id"`
	Name       string    `db:"name"`
	CreatedAt  time.Time `db:"created_at"`
}
