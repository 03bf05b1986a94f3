package pgsql

import (
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool, notifier portsrepo.ChangeNotifier) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		CategoryRepo:     newPgxCategoryRepository(dbPool),
		BudgetRepo:       newPgxBudgetRepository(dbPool),
		GoalRepo:         newPgxSavingsGoalRepository(dbPool),
		ContributionRepo: newPgxContributionRepository(dbPool),
		RolloverRepo:     newPgxRolloverRepository(dbPool),
		Notifier:         notifier,
	}
}
