package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	w, _ := newTestWatcher(t)

	sched, err := NewScheduler(w, 4*time.Hour, 10*time.Second, quietLogger())
	require.NoError(t, err)
	assert.Len(t, sched.Entries(), 1)
	assert.True(t, sched.NextRun().IsZero())
}

func TestNewScheduler_RejectsTinyInterval(t *testing.T) {
	t.Parallel()

	w, _ := newTestWatcher(t)

	_, err := NewScheduler(w, 0, time.Second, quietLogger())
	require.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	w, _ := newTestWatcher(t)

	sched, err := NewScheduler(w, time.Hour, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start()
	next := sched.NextRun()
	assert.WithinDuration(t, time.Now().Add(time.Hour), next, 5*time.Second)

	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_StartupDelayFiresCycle(t *testing.T) {
	t.Parallel()

	w, d := newTestWatcher(t)

	ran := make(chan struct{})
	d.store.EXPECT().GetWatchlist(mock.Anything).
		RunAndReturn(func(context.Context) ([]domain.WatchlistEntry, error) {
			close(ran)
			return nil, nil
		}).Once()

	sched, err := NewScheduler(w, time.Hour, 10*time.Millisecond, quietLogger())
	require.NoError(t, err)

	sched.Start()
	defer func() { <-sched.Stop().Done() }()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("startup cycle did not run")
	}
}

func TestScheduler_Trigger(t *testing.T) {
	t.Parallel()

	w, d := newTestWatcher(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	d.store.EXPECT().GetWatchlist(mock.Anything).
		RunAndReturn(func(context.Context) ([]domain.WatchlistEntry, error) {
			close(entered)
			<-release
			return nil, nil
		}).Once()

	sched, err := NewScheduler(w, time.Hour, time.Hour, quietLogger())
	require.NoError(t, err)

	require.NoError(t, sched.Trigger())
	<-entered

	require.ErrorIs(t, sched.Trigger(), ErrCycleRunning)

	close(release)
	assert.Eventually(t, func() bool { return !w.Running() }, 5*time.Second, 5*time.Millisecond)
}

func TestScheduler_TriggerClaimsSlotBeforeReturning(t *testing.T) {
	t.Parallel()

	w, d := newTestWatcher(t)

	release := make(chan struct{})
	d.store.EXPECT().GetWatchlist(mock.Anything).
		RunAndReturn(func(context.Context) ([]domain.WatchlistEntry, error) {
			<-release
			return nil, nil
		}).Once()

	sched, err := NewScheduler(w, time.Hour, time.Hour, quietLogger())
	require.NoError(t, err)

	// No wait between calls: the second trigger and the scheduled job
	// must both see the first cycle even before it has started running.
	require.NoError(t, sched.Trigger())
	require.ErrorIs(t, sched.Trigger(), ErrCycleRunning)
	sched.scheduled.Run()

	close(release)
	assert.Eventually(t, func() bool {
		return !w.Running() && sched.acquire()
	}, 5*time.Second, 5*time.Millisecond)
	sched.release()
}

func TestScheduler_StopInterruptsCycle(t *testing.T) {
	t.Parallel()

	w, d := newTestWatcher(t)

	entered := make(chan struct{})
	d.store.EXPECT().GetWatchlist(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]domain.WatchlistEntry, error) {
			close(entered)
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	sched, err := NewScheduler(w, time.Hour, time.Hour, quietLogger())
	require.NoError(t, err)

	require.NoError(t, sched.Trigger())
	<-entered

	<-sched.Stop().Done()
	assert.Eventually(t, func() bool { return !w.Running() }, 5*time.Second, 5*time.Millisecond)
}
