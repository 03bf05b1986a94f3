package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/domain"
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	"github.com/SscSPs/insightbud/internal/models"
	"github.com/SscSPs/insightbud/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = `budget_id, user_id, amount, created_at, updated_at`

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for the budget singleton.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func (r *PgxBudgetRepository) FindBudget(ctx context.Context, userID string) (*domain.Budget, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE user_id = $1;`, userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query budget", err)
	}
	return collectBudget(rows)
}

// UpsertBudget inserts the budget or updates amount and updated_at. created_at is never overwritten.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	query := `
		INSERT INTO budgets (budget_id, user_id, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at
		RETURNING ` + budgetColumns + `;`
	rows, err := r.Pool.Query(ctx, query, domain.MainBudgetID, budget.UserID, budget.Amount, budget.CreatedAt, budget.UpdatedAt)
	if err != nil {
		return nil, wrapExecErr(err, "failed to upsert budget")
	}
	return collectBudget(rows)
}

func collectBudget(rows pgx.Rows) (*domain.Budget, error) {
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan budget", err)
	}
	b := mapping.ToDomainBudget(m)
	return &b, nil
}
