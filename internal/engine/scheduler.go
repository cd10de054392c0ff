package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/mtg-price-tracker/internal/metrics"
)

// Scheduler fires the watcher cycle once after a startup delay and then on
// a fixed period. Nothing about past runs is persisted; a restart re-arms
// the startup timer.
type Scheduler struct {
	cron         *cron.Cron
	watcher      *Watcher
	job          cron.Job
	scheduled    cron.Job
	slot         chan struct{}
	startupDelay time.Duration
	log          *slog.Logger

	mu      sync.Mutex
	startup *time.Timer
	runCtx  context.Context
	cancel  context.CancelFunc
}

// NewScheduler creates a Scheduler that runs w every interval.
func NewScheduler(
	w *Watcher,
	interval time.Duration,
	startupDelay time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if interval < time.Second {
		return nil, fmt.Errorf("scheduler interval must be at least 1s (got %s)", interval)
	}

	cl := cronLogger{log: log}
	c := cron.New(cron.WithLogger(cl))

	s := &Scheduler{
		cron:         c,
		watcher:      w,
		startupDelay: startupDelay,
		log:          log,
		slot:         make(chan struct{}, 1),
	}
	s.runCtx, s.cancel = context.WithCancel(context.Background())

	// The timer, the cron entry and Trigger all claim the same slot, so at
	// most one cycle is in flight and a skipped run is known up front.
	s.job = cron.NewChain(cron.Recover(cl)).Then(cron.FuncJob(s.runCycle))
	s.scheduled = cron.FuncJob(s.runScheduled)

	c.Schedule(cron.Every(interval), s.scheduled)

	return s, nil
}

// Start begins running scheduled cycles and arms the startup timer.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "startup_delay", s.startupDelay)
	s.cron.Start()

	s.mu.Lock()
	s.startup = time.AfterFunc(s.startupDelay, s.scheduled.Run)
	s.mu.Unlock()

	s.SyncNextRunTimestamp()
}

// Stop halts scheduling and interrupts a running cycle between entries.
// The returned context is done once the running job has returned.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")

	s.mu.Lock()
	if s.startup != nil {
		s.startup.Stop()
	}
	s.mu.Unlock()

	s.cancel()
	return s.cron.Stop()
}

// Trigger starts a cycle in the background. It returns ErrCycleRunning
// when a cycle is already in progress. A nil return means the cycle has
// claimed the run slot and will run.
func (s *Scheduler) Trigger() error {
	if s.watcher.Running() || !s.acquire() {
		return ErrCycleRunning
	}
	go func() {
		defer s.release()
		s.job.Run()
	}()
	return nil
}

func (s *Scheduler) acquire() bool {
	select {
	case s.slot <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s *Scheduler) release() { <-s.slot }

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// NextRun returns the next scheduled cycle time, or the zero time when the
// scheduler has not started.
func (s *Scheduler) NextRun() time.Time {
	var next time.Time
	for _, e := range s.cron.Entries() {
		if next.IsZero() || (!e.Next.IsZero() && e.Next.Before(next)) {
			next = e.Next
		}
	}
	return next
}

// SyncNextRunTimestamp exports the next cycle time as a gauge.
func (s *Scheduler) SyncNextRunTimestamp() {
	if next := s.NextRun(); !next.IsZero() {
		metrics.NextCycleTimestamp.Set(float64(next.Unix()))
	}
}

func (s *Scheduler) runScheduled() {
	if !s.acquire() {
		s.log.Info("scheduled watcher cycle skipped, previous cycle still running")
		return
	}
	defer s.release()
	s.job.Run()
}

func (s *Scheduler) runCycle() {
	defer s.SyncNextRunTimestamp()

	s.log.Info("scheduled watcher cycle starting")
	err := s.watcher.RunCycle(s.runCtx)
	switch {
	case errors.Is(err, ErrCycleRunning):
		s.log.Info("scheduled watcher cycle skipped, previous cycle still running")
	case err != nil:
		s.log.Error("scheduled watcher cycle failed", "error", err)
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
