package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/budgeting"
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	"github.com/SscSPs/insightbud/internal/middleware"
	"github.com/SscSPs/insightbud/internal/platform/metrics"
)

// ErrExecutorClosed is returned for batches submitted after Close.
var ErrExecutorClosed = fmt.Errorf("%w: write executor closed", apperrors.ErrUnavailable)

// WriteResult reports how many commands of a batch were applied.
type WriteResult struct {
	Applied int
	Total   int
	Err     error
}

// WriteExecutor applies ledger write commands off the request path.
// Each command is attempted exactly once, in order, whether or not an earlier one failed.
type WriteExecutor struct {
	goals         portsrepo.SavingsGoalWriter
	contributions portsrepo.ContributionRepositoryFacade
	rollovers     portsrepo.RolloverRepositoryFacade
	timeout       time.Duration
	metrics       *metrics.Metrics
	locks         *userLocks

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewWriteExecutor creates an executor whose batches give up after timeout.
func NewWriteExecutor(
	goals portsrepo.SavingsGoalWriter,
	contributions portsrepo.ContributionRepositoryFacade,
	rollovers portsrepo.RolloverRepositoryFacade,
	timeout time.Duration,
	m *metrics.Metrics,
) *WriteExecutor {
	if m == nil {
		m = metrics.NewMetrics()
	}
	return &WriteExecutor{
		goals:         goals,
		contributions: contributions,
		rollovers:     rollovers,
		timeout:       timeout,
		metrics:       m,
		locks:         newUserLocks(),
	}
}

// LockUser serialises plan-and-write sequences of one user. Hold it from reading the
// snapshot until the batch result arrives so concurrent plans never see stale totals.
func (e *WriteExecutor) LockUser(ctx context.Context, userID string) (func(), error) {
	return e.locks.lock(ctx, userID)
}

// Submit starts applying cmds and returns a channel that receives exactly one result.
// The batch is detached from ctx cancellation but keeps its values, so the caller
// may stop waiting without aborting the writes.
func (e *WriteExecutor) Submit(ctx context.Context, cmds []budgeting.WriteCommand) <-chan WriteResult {
	out := make(chan WriteResult, 1)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		out <- WriteResult{Total: len(cmds), Err: ErrExecutorClosed}
		close(out)
		return out
	}
	e.wg.Add(1)
	e.mu.Unlock()

	go func() {
		defer e.wg.Done()
		defer close(out)
		out <- e.run(context.WithoutCancel(ctx), cmds)
	}()
	return out
}

// Closed reports whether Close has been called.
func (e *WriteExecutor) Closed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// Close rejects new batches and waits for in-flight ones.
func (e *WriteExecutor) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	e.wg.Wait()
}

func (e *WriteExecutor) run(ctx context.Context, cmds []budgeting.WriteCommand) WriteResult {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	result := WriteResult{Total: len(cmds)}
	var errs []error
	for _, cmd := range cmds {
		if err := e.apply(ctx, cmd); err != nil {
			logger.Error("Ledger write failed", slog.String("kind", string(cmd.Kind)), slog.String("error", err.Error()))
			e.metrics.WriteFailuresTotal.WithLabelValues(string(cmd.Kind)).Inc()
			errs = append(errs, fmt.Errorf("%s: %w", cmd.Kind, err))
			continue
		}
		result.Applied++
	}

	switch {
	case len(errs) == 0:
		e.metrics.WriteBatchesTotal.WithLabelValues("applied").Inc()
	case result.Applied == 0:
		e.metrics.WriteBatchesTotal.WithLabelValues("failed").Inc()
		result.Err = fmt.Errorf("no ledger writes applied: %w", errors.Join(errs...))
	default:
		e.metrics.WriteBatchesTotal.WithLabelValues("partial").Inc()
		result.Err = fmt.Errorf("%w: %d of %d writes applied: %w",
			apperrors.ErrPartialWrite, result.Applied, result.Total, errors.Join(errs...))
		logger.Error("Ledger left partially written", slog.Int("applied", result.Applied), slog.Int("total", result.Total))
	}
	return result
}

func (e *WriteExecutor) apply(ctx context.Context, cmd budgeting.WriteCommand) error {
	switch cmd.Kind {
	case budgeting.WriteInsertRollover:
		return e.rollovers.SaveRollover(ctx, *cmd.Rollover)
	case budgeting.WriteInsertContribution:
		return e.contributions.SaveContribution(ctx, *cmd.Contribution)
	case budgeting.WriteIncrementGoalAmount:
		u := cmd.GoalUpdate
		stored, err := e.goals.IncrementGoalAmount(ctx, u.UserID, u.GoalID, u.Delta, time.Now())
		if err != nil {
			return err
		}
		if !stored.Equal(u.NewCurrentAmount) {
			middleware.GetLoggerFromCtx(ctx).Warn("Goal amount changed concurrently",
				slog.String("goal_id", u.GoalID),
				slog.String("expected", u.NewCurrentAmount.String()),
				slog.String("stored", stored.String()))
		}
		return nil
	default:
		return fmt.Errorf("unknown write kind %q", cmd.Kind)
	}
}
