package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/insightbud/internal/core/domain"
	portsrepo "github.com/SscSPs/insightbud/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerChannel is the PostgreSQL notification channel written by the ledger triggers.
const LedgerChannel = "ledger_changes"

const reconnectDelay = 2 * time.Second

// ChangeNotifier listens on LedgerChannel over one dedicated connection and fans
// notifications out to per-user subscribers.
type ChangeNotifier struct {
	pool   *pgxpool.Pool
	logger *slog.Logger

	mu     sync.Mutex
	subs   map[string]map[*subscription]struct{}
	closed bool
}

type subscription struct {
	ch   chan domain.LedgerChange
	once sync.Once
}

var _ portsrepo.ChangeNotifier = (*ChangeNotifier)(nil)

// NewChangeNotifier creates a notifier. Call Run to start listening.
func NewChangeNotifier(pool *pgxpool.Pool, logger *slog.Logger) *ChangeNotifier {
	return &ChangeNotifier{
		pool:   pool,
		logger: logger,
		subs:   make(map[string]map[*subscription]struct{}),
	}
}

// Subscribe registers for changes of userID. The channel holds at most one pending
// change; bursts coalesce into a single wake-up.
func (n *ChangeNotifier) Subscribe(userID string) (<-chan domain.LedgerChange, func()) {
	sub := &subscription{ch: make(chan domain.LedgerChange, 1)}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		close(sub.ch)
		return sub.ch, func() {}
	}
	if n.subs[userID] == nil {
		n.subs[userID] = make(map[*subscription]struct{})
	}
	n.subs[userID][sub] = struct{}{}

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if set, ok := n.subs[userID]; ok {
			delete(set, sub)
			if len(set) == 0 {
				delete(n.subs, userID)
			}
		}
		sub.once.Do(func() { close(sub.ch) })
	}
	return sub.ch, cancel
}

// Publish delivers change to every subscriber of its user without blocking.
func (n *ChangeNotifier) Publish(change domain.LedgerChange) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for sub := range n.subs[change.UserID] {
		select {
		case sub.ch <- change:
		default:
		}
	}
}

// Run listens until ctx is done, reconnecting after connection failures.
func (n *ChangeNotifier) Run(ctx context.Context) {
	for {
		err := n.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		n.logger.Warn("Ledger change listener stopped, reconnecting",
			slog.String("error", err.Error()),
			slog.Duration("delay", reconnectDelay))

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (n *ChangeNotifier) listen(ctx context.Context) error {
	conn, err := n.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listener connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+LedgerChannel); err != nil {
		return fmt.Errorf("listen on %s: %w", LedgerChannel, err)
	}
	n.logger.Info("Listening for ledger changes", slog.String("channel", LedgerChannel))

	// Changes may have been missed while disconnected.
	n.wakeAll()

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		var change domain.LedgerChange
		if err := json.Unmarshal([]byte(notification.Payload), &change); err != nil {
			n.logger.Warn("Ignoring malformed ledger notification",
				slog.String("payload", notification.Payload),
				slog.String("error", err.Error()))
			continue
		}
		if change.UserID == "" {
			continue
		}
		n.Publish(change)
	}
}

func (n *ChangeNotifier) wakeAll() {
	n.mu.Lock()
	users := make([]string, 0, len(n.subs))
	for userID := range n.subs {
		users = append(users, userID)
	}
	n.mu.Unlock()

	for _, userID := range users {
		n.Publish(domain.LedgerChange{UserID: userID})
	}
}

// Close releases every subscriber. Later subscriptions receive a closed channel.
func (n *ChangeNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	for userID, set := range n.subs {
		for sub := range set {
			sub.once.Do(func() { close(sub.ch) })
		}
		delete(n.subs, userID)
	}
}
