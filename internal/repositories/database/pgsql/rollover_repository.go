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

type PgxRolloverRepository struct {
	BaseRepository
}

// newPgxRolloverRepository creates a new repository for the rollover ledger.
func newPgxRolloverRepository(pool *pgxpool.Pool) portsrepo.RolloverRepositoryFacade {
	return &PgxRolloverRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RolloverRepositoryFacade = (*PgxRolloverRepository)(nil)

func (r *PgxRolloverRepository) SaveRollover(ctx context.Context, rollover domain.Rollover) error {
	m := mapping.ToModelRollover(rollover)
	query := `
		INSERT INTO rollovers (rollover_id, user_id, month, transferred_amount, transferred_to_goal_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`
	if _, err := r.Pool.Exec(ctx, query, m.RolloverID, m.UserID, m.Month, m.TransferredAmount, m.TransferredToGoalID, m.CreatedAt); err != nil {
		return wrapExecErr(err, "failed to insert rollover "+m.RolloverID)
	}
	return nil
}

func (r *PgxRolloverRepository) ListRollovers(ctx context.Context, userID string) ([]domain.Rollover, error) {
	query := `
		SELECT rollover_id, user_id, month, transferred_amount, transferred_to_goal_id, created_at
		FROM rollovers WHERE user_id = $1
		ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query rollovers", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Rollover])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan rollovers", err)
	}
	out := make([]domain.Rollover, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainRollover(m)
	}
	return out, nil
}
