package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

func TestFormatETA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0m 0s"},
		{59, "0m 59s"},
		{60, "1m 0s"},
		{187, "3m 7s"},
		{3725, "62m 5s"},
		{-4, "0m 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatETA(tt.seconds))
		})
	}
}

func TestStatusTracker_Lifecycle(t *testing.T) {
	t.Parallel()

	st := NewStatusTracker()
	assert.Equal(t, domain.IdleStatus(), st.Snapshot())

	st.initializing()
	snap := st.Snapshot()
	assert.True(t, snap.IsRunning)
	assert.Equal(t, domain.PhaseInitializing, snap.Phase)

	st.running(3)
	st.current("Lightning Bolt (Magic 2010)")
	snap = st.Snapshot()
	assert.Equal(t, domain.PhaseRunning, snap.Phase)
	assert.Equal(t, 3, snap.ItemsTotal)
	assert.Equal(t, 0, snap.ItemsCompleted)
	assert.Equal(t, "Lightning Bolt (Magic 2010)", snap.CurrentItem)

	st.completed(10 * time.Second)
	snap = st.Snapshot()
	assert.Equal(t, 1, snap.ItemsCompleted)
	assert.InDelta(t, 10.0, snap.AverageItemSeconds, 0.001)
	assert.Equal(t, 20, snap.ETASeconds)
	assert.Equal(t, "0m 20s", snap.EstimatedTimeRemaining)

	st.completed(20 * time.Second)
	snap = st.Snapshot()
	assert.Equal(t, 2, snap.ItemsCompleted)
	assert.InDelta(t, 15.0, snap.AverageItemSeconds, 0.001)
	assert.Equal(t, 15, snap.ETASeconds)

	st.completed(95 * time.Second)
	snap = st.Snapshot()
	assert.Equal(t, 0, snap.ETASeconds)
	assert.Equal(t, "0m 0s", snap.EstimatedTimeRemaining)

	st.presenting()
	snap = st.Snapshot()
	assert.Equal(t, domain.PhasePresenting, snap.Phase)
	assert.Empty(t, snap.CurrentItem)
	assert.True(t, snap.IsRunning)

	st.reset()
	assert.Equal(t, domain.IdleStatus(), st.Snapshot())
}

func TestStatusTracker_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	st := NewStatusTracker()
	st.initializing()
	snap := st.Snapshot()
	snap.Phase = "tampered"

	assert.Equal(t, domain.PhaseInitializing, st.Snapshot().Phase)
}
