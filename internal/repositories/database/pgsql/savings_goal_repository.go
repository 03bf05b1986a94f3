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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const goalColumns = `goal_id, user_id, name, target_amount, current_amount, created_at, updated_at`

type PgxSavingsGoalRepository struct {
	BaseRepository
}

// newPgxSavingsGoalRepository creates a new repository for savings goals.
func newPgxSavingsGoalRepository(pool *pgxpool.Pool) portsrepo.SavingsGoalRepositoryFacade {
	return &PgxSavingsGoalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SavingsGoalRepositoryFacade = (*PgxSavingsGoalRepository)(nil)

func (r *PgxSavingsGoalRepository) SaveGoal(ctx context.Context, goal domain.SavingsGoal) error {
	m := mapping.ToModelSavingsGoal(goal)
	query := `INSERT INTO savings_goals (` + goalColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	_, err := r.Pool.Exec(ctx, query, m.GoalID, m.UserID, m.Name, m.TargetAmount, m.CurrentAmount, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return wrapExecErr(err, "failed to insert savings goal "+m.GoalID)
	}
	return nil
}

func (r *PgxSavingsGoalRepository) UpdateGoal(ctx context.Context, goal domain.SavingsGoal) error {
	query := `UPDATE savings_goals SET name = $3, target_amount = $4, updated_at = $5 WHERE user_id = $1 AND goal_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, goal.UserID, goal.GoalID, goal.Name, goal.TargetAmount, goal.UpdatedAt)
	if err != nil {
		return wrapExecErr(err, "failed to update savings goal "+goal.GoalID)
	}
	return requireAffected(tag)
}

func (r *PgxSavingsGoalRepository) DeleteGoal(ctx context.Context, userID, goalID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM savings_goals WHERE user_id = $1 AND goal_id = $2;`, userID, goalID)
	if err != nil {
		return wrapExecErr(err, "failed to delete savings goal "+goalID)
	}
	return requireAffected(tag)
}

// IncrementGoalAmount applies delta in a single statement so concurrent increments never lose each other.
func (r *PgxSavingsGoalRepository) IncrementGoalAmount(ctx context.Context, userID, goalID string, delta decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	query := `
		UPDATE savings_goals SET current_amount = current_amount + $3, updated_at = $4
		WHERE user_id = $1 AND goal_id = $2
		RETURNING current_amount;`
	var current decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, userID, goalID, delta, now).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, wrapExecErr(err, "failed to increment savings goal "+goalID)
	}
	return current, nil
}

func (r *PgxSavingsGoalRepository) FindGoalByID(ctx context.Context, userID, goalID string) (*domain.SavingsGoal, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+goalColumns+` FROM savings_goals WHERE user_id = $1 AND goal_id = $2;`, userID, goalID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query savings goal "+goalID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.SavingsGoal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan savings goal "+goalID, err)
	}
	g := mapping.ToDomainSavingsGoal(m)
	return &g, nil
}

func (r *PgxSavingsGoalRepository) ListGoals(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+goalColumns+` FROM savings_goals WHERE user_id = $1 ORDER BY created_at;`, userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query savings goals", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SavingsGoal])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan savings goals", err)
	}
	goals := make([]domain.SavingsGoal, len(ms))
	for i, m := range ms {
		goals[i] = mapping.ToDomainSavingsGoal(m)
	}
	return goals, nil
}
