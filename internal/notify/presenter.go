// Package notify defines the dashboard presenter interface and its
// implementations. A presenter renders one watched printing after each
// watcher cycle.
package notify

import (
	"context"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// Presenter publishes the latest price history for a watchlist entry.
//
// Present returns the message reference that should be stored for the
// entry. Implementations reuse entry.DashboardMessageRef when they can.
type Presenter interface {
	Present(
		ctx context.Context,
		entry *domain.WatchlistEntry,
		history []domain.PriceHistoryPoint,
	) (string, error)
}
