// Package store defines the datastore abstraction for mtg-price-tracker.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// ErrNotFound is returned when a watchlist entry does not exist.
var ErrNotFound = errors.New("not found")

// Store defines all data access operations for mtg-price-tracker.
type Store interface {
	// Watchlist
	GetWatchlist(ctx context.Context) ([]domain.WatchlistEntry, error)
	GetWatchlistEntry(ctx context.Context, externalID string) (*domain.WatchlistEntry, error)
	AddToWatchlist(ctx context.Context, e *domain.WatchlistEntry) (string, error)
	RemoveFromWatchlist(ctx context.Context, cardName string) (string, error)
	MarkScraped(ctx context.Context, externalID string, at time.Time) error
	SetDashboardMessageRef(ctx context.Context, externalID, ref string) error

	// Price history
	SaveScrapeData(ctx context.Context, externalID string, r *domain.AnalysisResult) error
	GetPriceHistory(ctx context.Context, externalID string) ([]domain.PriceHistoryPoint, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close() error
}
