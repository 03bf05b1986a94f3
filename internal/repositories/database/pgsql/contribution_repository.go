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
	"github.com/shopspring/decimal"
)

type PgxContributionRepository struct {
	BaseRepository
}

// newPgxContributionRepository creates a new repository for the contribution ledger.
func newPgxContributionRepository(pool *pgxpool.Pool) portsrepo.ContributionRepositoryFacade {
	return &PgxContributionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContributionRepositoryFacade = (*PgxContributionRepository)(nil)

func (r *PgxContributionRepository) SaveContribution(ctx context.Context, contribution domain.Contribution) error {
	m := mapping.ToModelContribution(contribution)
	query := `
		INSERT INTO contributions (contribution_id, user_id, goal_id, amount, contribution_date, source)
		VALUES ($1, $2, $3, $4, $5, $6);`
	if _, err := r.Pool.Exec(ctx, query, m.ContributionID, m.UserID, m.GoalID, m.Amount, m.ContributionDate, m.Source); err != nil {
		return wrapExecErr(err, "failed to insert contribution "+m.ContributionID)
	}
	return nil
}

func (r *PgxContributionRepository) ListContributions(ctx context.Context, userID string) ([]domain.Contribution, error) {
	query := `
		SELECT contribution_id, user_id, goal_id, amount, contribution_date, source
		FROM contributions WHERE user_id = $1
		ORDER BY contribution_date DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query contributions", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Contribution])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan contributions", err)
	}
	out := make([]domain.Contribution, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainContribution(m)
	}
	return out, nil
}

func (r *PgxContributionRepository) SumContributionsByGoal(ctx context.Context, userID string) (map[string]decimal.Decimal, error) {
	rows, err := r.Pool.Query(ctx, `SELECT goal_id, SUM(amount) FROM contributions WHERE user_id = $1 GROUP BY goal_id;`, userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to sum contributions", err)
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal)
	for rows.Next() {
		var goalID string
		var total decimal.Decimal
		if err := rows.Scan(&goalID, &total); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan contribution sum", err)
		}
		sums[goalID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating contribution sums", err)
	}
	return sums, nil
}
