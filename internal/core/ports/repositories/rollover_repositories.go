package repositories

import (
	"context"

	"github.com/SscSPs/insightbud/internal/core/domain"
)

// RolloverRepositoryFacade defines operations on the append-only rollover ledger
type RolloverRepositoryFacade interface {
	SaveRollover(ctx context.Context, rollover domain.Rollover) error

	// ListRollovers retrieves every rollover of the user, newest first.
	ListRollovers(ctx context.Context, userID string) ([]domain.Rollover, error)
}

// ChangeNotifier delivers ledger change notifications.
type ChangeNotifier interface {
	// Subscribe returns a channel of changes to the user's collections and a cancel func
	// that must be called to release it. The channel is closed after cancel.
	Subscribe(userID string) (<-chan domain.LedgerChange, func())
}
