package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/domain"
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	"golang.org/x/sync/errgroup"
)

// snapshotParts selects which collections a snapshot loads.
type snapshotParts uint8

const (
	withExpenses snapshotParts = 1 << iota
	withBudget
	withRollovers

	rolloverParts = withExpenses | withBudget | withRollovers
)

// snapshotLoader reads the ledger collections of one user concurrently.
type snapshotLoader struct {
	expenses  portsrepo.ExpenseReader
	budgets   portsrepo.BudgetRepositoryFacade
	rollovers portsrepo.RolloverRepositoryFacade
}

func newSnapshotLoader(repos portsrepo.RepositoryProvider) *snapshotLoader {
	return &snapshotLoader{
		expenses:  repos.ExpenseRepo,
		budgets:   repos.BudgetRepo,
		rollovers: repos.RolloverRepo,
	}
}

// Load returns an immutable snapshot of the requested collections. A missing budget is not an error.
func (l *snapshotLoader) Load(ctx context.Context, userID string, parts snapshotParts) (*domain.LedgerSnapshot, error) {
	snap := &domain.LedgerSnapshot{}
	g, gctx := errgroup.WithContext(ctx)

	if parts&withExpenses != 0 {
		g.Go(func() error {
			expenses, err := l.expenses.ListAllExpenses(gctx, userID)
			if err != nil {
				return fmt.Errorf("load expenses: %w", err)
			}
			snap.Expenses = expenses
			return nil
		})
	}
	if parts&withBudget != 0 {
		g.Go(func() error {
			budget, err := l.budgets.FindBudget(gctx, userID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil
				}
				return fmt.Errorf("load budget: %w", err)
			}
			snap.Budget = budget
			return nil
		})
	}
	if parts&withRollovers != 0 {
		g.Go(func() error {
			rollovers, err := l.rollovers.ListRollovers(gctx, userID)
			if err != nil {
				return fmt.Errorf("load rollovers: %w", err)
			}
			snap.Rollovers = rollovers
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
