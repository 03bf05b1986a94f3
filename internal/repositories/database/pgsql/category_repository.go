package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/domain"
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	"github.com/SscSPs/insightbud/internal/models"
	"github.com/SscSPs/insightbud/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for expense categories.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryWithTx {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryWithTx = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT category_id, user_id, name, created_at FROM categories WHERE user_id = $1 ORDER BY name;`, userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query categories", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan categories", err)
	}
	return mapping.ToDomainCategorySlice(ms), nil
}

// SaveCategoriesInTx inserts categories in one batch within tx. Existing ids are left untouched.
func (r *PgxCategoryRepository) SaveCategoriesInTx(ctx context.Context, tx pgx.Tx, categories []domain.Category) error {
	if len(categories) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, c := range categories {
		batch.Queue(`
			INSERT INTO categories (category_id, user_id, name, created_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (user_id, category_id) DO NOTHING;`,
			c.CategoryID, c.UserID, c.Name,
		)
	}
	// Close the batch results to check for errors in each command
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert categories", err)
	}
	return nil
}
