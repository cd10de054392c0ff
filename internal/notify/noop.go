package notify

import (
	"context"
	"log/slog"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// NoOpPresenter implements Presenter by logging discarded updates. It is
// used when no dashboard backend is configured.
type NoOpPresenter struct {
	log *slog.Logger
}

// NewNoOpPresenter creates a presenter that discards updates with a log
// message.
func NewNoOpPresenter(log *slog.Logger) *NoOpPresenter {
	return &NoOpPresenter{log: log}
}

// Present logs and discards the update, keeping the existing reference.
func (n *NoOpPresenter) Present(
	_ context.Context,
	entry *domain.WatchlistEntry,
	history []domain.PriceHistoryPoint,
) (string, error) {
	n.log.Debug("dashboard update discarded (no backend configured)",
		"card", entry.Label(),
		"points", len(history),
	)
	return entry.DashboardMessageRef, nil
}
