package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/budgeting"
	"github.com/SscSPs/insightbud/internal/core/domain"
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/dto"
	"github.com/SscSPs/insightbud/internal/platform/metrics"
)

type rolloverService struct {
	BaseService
	snapshots    *snapshotLoader
	goalRepo     portsrepo.SavingsGoalReader
	rolloverRepo portsrepo.RolloverRepositoryFacade
	notifier     portsrepo.ChangeNotifier
	executor     *WriteExecutor
	completion   goalCompletion
	metrics      *metrics.Metrics
}

// NewRolloverService creates the budget rollover service.
func NewRolloverService(
	repos portsrepo.RepositoryProvider,
	executor *WriteExecutor,
	insights portssvc.InsightsSvc,
	tracker portssvc.EventTracker,
	m *metrics.Metrics,
	clock Clock,
) portssvc.RolloverSvcFacade {
	if m == nil {
		m = metrics.NewMetrics()
	}
	return &rolloverService{
		BaseService:  BaseService{Clock: clock},
		snapshots:    newSnapshotLoader(repos),
		goalRepo:     repos.GoalRepo,
		rolloverRepo: repos.RolloverRepo,
		notifier:     repos.Notifier,
		executor:     executor,
		completion:   goalCompletion{insights: insights, tracker: tracker, metrics: m},
		metrics:      m,
	}
}

func (s *rolloverService) aggregate(ctx context.Context, userID string) (budgeting.MonthlyAggregate, *domain.LedgerSnapshot, error) {
	snap, err := s.snapshots.Load(ctx, userID, rolloverParts)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger snapshot")
		return nil, nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	return budgeting.Aggregate(snap.Expenses, snap.Budget, s.Now()), snap, nil
}

func (s *rolloverService) Surplus(ctx context.Context, userID string) ([]budgeting.SurplusMonth, error) {
	if userID == "" {
		return []budgeting.SurplusMonth{}, nil
	}
	agg, snap, err := s.aggregate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return budgeting.RemainingSurplus(agg, snap.Rollovers, s.Now()), nil
}

// MonthlyReport lists every closed month in ascending order with what was transferred out of it.
func (s *rolloverService) MonthlyReport(ctx context.Context, userID string) ([]domain.MonthReport, error) {
	if userID == "" {
		return []domain.MonthReport{}, nil
	}
	agg, snap, err := s.aggregate(ctx, userID)
	if err != nil {
		return nil, err
	}

	transferred := budgeting.TransferredByMonth(snap.Rollovers)
	months := agg.Months()
	report := make([]domain.MonthReport, len(months))
	for i, m := range months {
		report[i] = domain.MonthReport{
			Month:       m.Month,
			TotalSpent:  m.TotalSpent,
			Surplus:     m.Surplus,
			Transferred: transferred[m.Month],
		}
	}
	return report, nil
}

func (s *rolloverService) ListRollovers(ctx context.Context, userID string) ([]domain.Rollover, error) {
	if userID == "" {
		return []domain.Rollover{}, nil
	}
	rollovers, err := s.rolloverRepo.ListRollovers(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rollovers")
		return nil, fmt.Errorf("failed to list rollovers: %w", err)
	}
	if rollovers == nil {
		return []domain.Rollover{}, nil
	}
	return rollovers, nil
}

// Transfer moves a past month's remaining surplus into a goal.
// The per-user lock is held until the ledger writes finish, even when the caller does not wait.
func (s *rolloverService) Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*dto.TransferResponse, error) {
	if userID == "" {
		return nil, nil
	}
	month, err := domain.ParseMonthKey(req.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	unlock, err := s.executor.LockUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	released := false
	defer func() {
		if !released {
			unlock()
		}
	}()
	if s.executor.Closed() {
		return nil, ErrExecutorClosed
	}

	goal, err := s.goalRepo.FindGoalByID(ctx, userID, req.GoalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find savings goal", slog.String("goal_id", req.GoalID))
		}
		return nil, err
	}
	remaining, err := s.Surplus(ctx, userID)
	if err != nil {
		return nil, err
	}
	available, _ := budgeting.FindSurplus(remaining, month)

	plan, err := budgeting.PlanTransfer(budgeting.TransferInput{
		Month:            month,
		Goal:             *goal,
		AvailableSurplus: available,
		UserID:           userID,
		Now:              s.Now(),
	})
	if err != nil {
		s.metrics.TransfersTotal.WithLabelValues("rejected").Inc()
		s.LogInfo(ctx, "Transfer rejected", slog.String("month", month.String()), slog.String("reason", err.Error()))
		return nil, err
	}
	s.metrics.TransfersTotal.WithLabelValues("planned").Inc()
	s.metrics.TransferredAmount.Add(plan.TransferAmount.InexactFloat64())

	results := s.executor.Submit(ctx, plan.Commands)
	// A batch rejected by a closing executor reports synchronously.
	var early *WriteResult
	select {
	case r := <-results:
		if errors.Is(r.Err, ErrExecutorClosed) {
			return nil, r.Err
		}
		early = &r
	default:
	}
	relay := make(chan WriteResult, 1)
	released = true
	go func() {
		defer unlock()
		if early != nil {
			relay <- *early
			return
		}
		relay <- <-results
	}()

	resp := &dto.TransferResponse{
		Month:          month.String(),
		TransferAmount: plan.TransferAmount,
		Goal:           dto.ToGoalResponse(&plan.UpdatedGoal),
		Completed:      plan.Completed,
		Status:         dto.TransferPending,
	}

	if req.Wait {
		select {
		case result := <-relay:
			resp.Status = transferStatus(result)
			if resp.Status == dto.TransferNotStored {
				return nil, fmt.Errorf("transfer of %s not stored: %w", month, result.Err)
			}
		case <-ctx.Done():
			s.LogInfo(ctx, "Stopped waiting for transfer writes", slog.String("month", month.String()))
		}
	}

	if plan.Completed {
		resp.Message = s.completion.announce(ctx, userID, plan.UpdatedGoal, domain.SourceRollover)
	}

	s.LogInfo(ctx, "Surplus transferred",
		slog.String("month", month.String()),
		slog.String("goal_id", goal.GoalID),
		slog.String("amount", plan.TransferAmount.String()),
		slog.String("status", string(resp.Status)))
	return resp, nil
}

func transferStatus(result WriteResult) dto.TransferStatus {
	switch {
	case result.Err == nil:
		return dto.TransferApplied
	case result.Applied > 0:
		return dto.TransferPartial
	default:
		return dto.TransferNotStored
	}
}

// Watch emits the remaining surplus once and again after every relevant ledger change.
// The channel is closed when ctx is done or the notifier shuts down.
func (s *rolloverService) Watch(ctx context.Context, userID string) <-chan portssvc.SurplusUpdate {
	out := make(chan portssvc.SurplusUpdate, 1)
	if userID == "" || s.notifier == nil {
		go func() {
			defer close(out)
			select {
			case out <- portssvc.SurplusUpdate{Months: []budgeting.SurplusMonth{}}:
			case <-ctx.Done():
			}
		}()
		return out
	}

	changes, cancel := s.notifier.Subscribe(userID)
	go func() {
		defer close(out)
		defer cancel()

		emit := func() bool {
			months, err := s.Surplus(ctx, userID)
			if err != nil {
				err = fmt.Errorf("%w: %w", apperrors.ErrDataUnavailable, err)
			}
			select {
			case out <- portssvc.SurplusUpdate{Months: months, Err: err}:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case change, ok := <-changes:
				if !ok {
					return
				}
				if !affectsSurplus(change.Collection) {
					continue
				}
				if !emit() {
					return
				}
			}
		}
	}()
	return out
}

// affectsSurplus reports whether writes to c can change the remaining surplus.
// An empty collection means the listener reconnected and anything may have changed.
func affectsSurplus(c domain.LedgerCollection) bool {
	switch c {
	case "", domain.CollectionExpenses, domain.CollectionBudgets, domain.CollectionRollovers:
		return true
	default:
		return false
	}
}
