package pgsql

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/domain"
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	"github.com/SscSPs/insightbud/internal/models"
	"github.com/SscSPs/insightbud/internal/utils/mapping"
	"github.com/SscSPs/insightbud/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultPageSize = 20

const expenseColumns = `expense_id, user_id, title, amount, expense_date, category_id, is_recurring, notes, created_at, updated_at`

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.UserID, m.Title, m.Amount, m.ExpenseDate, m.CategoryID, m.IsRecurring, m.Notes, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return wrapExecErr(err, "failed to insert expense "+m.ExpenseID)
	}
	return nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		UPDATE expenses
		SET title = $3, amount = $4, expense_date = $5, category_id = $6, is_recurring = $7, notes = $8, updated_at = $9
		WHERE user_id = $1 AND expense_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.ExpenseID, m.Title, m.Amount, m.ExpenseDate, m.CategoryID, m.IsRecurring, m.Notes, m.UpdatedAt,
	)
	if err != nil {
		return wrapExecErr(err, "failed to update expense "+m.ExpenseID)
	}
	return requireAffected(tag)
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE user_id = $1 AND expense_id = $2;`, userID, expenseID)
	if err != nil {
		return wrapExecErr(err, "failed to delete expense "+expenseID)
	}
	return requireAffected(tag)
}

func (r *PgxExpenseRepository) MarkExpensesRecurring(ctx context.Context, userID string, expenseIDs []string, now time.Time) (int64, error) {
	query := `
		UPDATE expenses SET is_recurring = TRUE, updated_at = $3
		WHERE user_id = $1 AND expense_id = ANY($2) AND NOT is_recurring;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, expenseIDs, now)
	if err != nil {
		return 0, wrapExecErr(err, "failed to mark expenses recurring")
	}
	return tag.RowsAffected(), nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1 AND expense_id = $2;`
	rows, err := r.Pool.Query(ctx, query, userID, expenseID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query expense "+expenseID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan expense "+expenseID, err)
	}
	e := mapping.ToDomainExpense(m)
	return &e, nil
}

// ListExpenses pages through expenses ordered by (expense_date, created_at, expense_id) DESC.
// It returns the page and a token for the next page, nil when this is the last one.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Expense, *string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	var rows pgx.Rows
	var err error
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", errors.Join(apperrors.ErrValidation, decodeErr))
		}
		query := `SELECT ` + expenseColumns + ` FROM expenses
			WHERE user_id = $1 AND (expense_date, created_at, expense_id) < ($2, $3, $4)
			ORDER BY expense_date DESC, created_at DESC, expense_id DESC
			LIMIT $5;`
		rows, err = r.Pool.Query(ctx, query, userID, cursor.Date, cursor.CreatedAt, cursor.ID, fetchLimit)
	} else {
		query := `SELECT ` + expenseColumns + ` FROM expenses
			WHERE user_id = $1
			ORDER BY expense_date DESC, created_at DESC, expense_id DESC
			LIMIT $2;`
		rows, err = r.Pool.Query(ctx, query, userID, fetchLimit)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query expenses", err)
	}

	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan expenses", err)
	}

	var nextTokenVal *string
	if len(ms) > limit {
		// The token points to the last item included in this page.
		last := ms[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.ExpenseDate, CreatedAt: last.CreatedAt, ID: last.ExpenseID})
		nextTokenVal = &token
		ms = ms[:limit]
	}

	return mapping.ToDomainExpenseSlice(ms), nextTokenVal, nil
}

func (r *PgxExpenseRepository) ListAllExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1 ORDER BY expense_date DESC;`
	return r.collect(ctx, query, userID)
}

func (r *PgxExpenseRepository) ListExpensesBetween(ctx context.Context, userID string, from, to time.Time) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses
		WHERE user_id = $1 AND expense_date >= $2 AND expense_date < $3
		ORDER BY expense_date DESC;`
	return r.collect(ctx, query, userID, from, to)
}

func (r *PgxExpenseRepository) collect(ctx context.Context, query string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query expenses", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Expense])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan expenses", err)
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}
