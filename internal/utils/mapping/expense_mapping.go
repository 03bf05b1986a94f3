package mapping

import (
	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/SscSPs/insightbud/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	m := models.Expense{
		ExpenseID:   d.ExpenseID,
		UserID:      d.UserID,
		Title:       d.Title,
		Amount:      d.Amount,
		ExpenseDate: d.Date,
		CategoryID:  d.CategoryID,
		IsRecurring: d.IsRecurring,
		AuditFields: models.AuditFields{CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
	}
	if d.Notes != "" {
		notes := d.Notes
		m.Notes = &notes
	}
	return m
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	d := domain.Expense{
		ExpenseID:   m.ExpenseID,
		UserID:      m.UserID,
		Title:       m.Title,
		Amount:      m.Amount,
		Date:        m.ExpenseDate,
		CategoryID:  m.CategoryID,
		IsRecurring: m.IsRecurring,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Notes != nil {
		d.Notes = *m.Notes
	}
	return d
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{CategoryID: m.CategoryID, UserID: m.UserID, Name: m.Name}
}

// ToDomainCategorySlice converts a slice of model Categories to a slice of domain Categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
