package repositories

import (
	"context"

	"github.com/SscSPs/insightbud/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CategoryRepositoryFacade defines operations on expense categories
type CategoryRepositoryFacade interface {
	// ListCategories retrieves all categories of the user ordered by name.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// SaveCategoriesInTx inserts categories, skipping ids the user already has.
	SaveCategoriesInTx(ctx context.Context, tx pgx.Tx, categories []domain.Category) error
}

// TransactionManager is implemented by repositories whose writes can be grouped in a pgx transaction.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// CategoryRepositoryWithTx lets default categories be seeded atomically.
type CategoryRepositoryWithTx interface {
	CategoryRepositoryFacade
	TransactionManager
}
