package engine

import (
	"fmt"
	"math"
	"sync"
	"time"

	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// StatusTracker holds the watcher's progress. Only the Watcher writes it;
// any number of readers take copies with Snapshot. Readers may observe a
// stale or idle snapshot at any time.
type StatusTracker struct {
	mu           sync.RWMutex
	status       domain.WatcherRunStatus
	totalSeconds float64
}

// NewStatusTracker returns a tracker in the idle state.
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{status: domain.IdleStatus()}
}

// Snapshot returns a copy of the current status.
func (t *StatusTracker) Snapshot() domain.WatcherRunStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

func (t *StatusTracker) initializing() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = domain.WatcherRunStatus{
		IsRunning: true,
		Phase:     domain.PhaseInitializing,
	}
	t.totalSeconds = 0
}

func (t *StatusTracker) running(total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Phase = domain.PhaseRunning
	t.status.ItemsTotal = total
	t.status.ItemsCompleted = 0
	t.status.AverageItemSeconds = 0
	t.status.ETASeconds = 0
	t.status.EstimatedTimeRemaining = ""
	t.totalSeconds = 0
}

func (t *StatusTracker) current(label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.CurrentItem = label
}

// completed records one finished entry and recomputes the ETA as
// remaining items times the running average.
func (t *StatusTracker) completed(elapsed time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.status.ItemsCompleted++
	t.totalSeconds += elapsed.Seconds()
	t.status.AverageItemSeconds = t.totalSeconds / float64(t.status.ItemsCompleted)

	remaining := max(t.status.ItemsTotal-t.status.ItemsCompleted, 0)
	t.status.ETASeconds = int(math.Round(float64(remaining) * t.status.AverageItemSeconds))
	t.status.EstimatedTimeRemaining = FormatETA(t.status.ETASeconds)
}

func (t *StatusTracker) presenting() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Phase = domain.PhasePresenting
	t.status.CurrentItem = ""
}

func (t *StatusTracker) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = domain.IdleStatus()
	t.totalSeconds = 0
}

// FormatETA renders seconds as whole minutes and seconds, e.g. 187 as
// "3m 7s".
func FormatETA(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
