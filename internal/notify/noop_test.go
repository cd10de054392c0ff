package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

func TestNoOpPresenter_Present(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n := NewNoOpPresenter(log)

	entry := testEntry()
	entry.DashboardMessageRef = "42"

	ref, err := n.Present(context.Background(), entry, []domain.PriceHistoryPoint{{}, {}})
	require.NoError(t, err)
	assert.Equal(t, "42", ref)
	assert.Contains(t, buf.String(), "dashboard update discarded")
	assert.Contains(t, buf.String(), "points=2")
}

func TestNoOpPresenter_ImplementsPresenter(t *testing.T) {
	t.Parallel()

	var _ Presenter = (*NoOpPresenter)(nil)
	var _ Presenter = (*DiscordPresenter)(nil)
}
