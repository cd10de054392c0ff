package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mtg-price-tracker/internal/api/handlers"
	"github.com/donaldgifford/mtg-price-tracker/internal/engine"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

type fakeStatus struct {
	status domain.WatcherRunStatus
}

func (f *fakeStatus) Status() domain.WatcherRunStatus { return f.status }

type fakeTrigger struct {
	err     error
	next    time.Time
	trigger int
}

func (f *fakeTrigger) Trigger() error {
	f.trigger++
	return f.err
}

func (f *fakeTrigger) NextRun() time.Time { return f.next }

func TestWatcherHandler_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   domain.WatcherRunStatus
		next     time.Time
		contains []string
		absent   []string
	}{
		{
			name:     "idle without schedule",
			status:   domain.IdleStatus(),
			contains: []string{`"phase":"Idle"`, `"is_running":false`},
			absent:   []string{`next_run`},
		},
		{
			name: "running with progress",
			status: domain.WatcherRunStatus{
				IsRunning:              true,
				Phase:                  domain.PhaseRunning,
				CurrentItem:            "Lightning Bolt (Magic 2010)",
				ItemsCompleted:         3,
				ItemsTotal:             10,
				AverageItemSeconds:     12.5,
				ETASeconds:             88,
				EstimatedTimeRemaining: "1m 28s",
			},
			next: time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC),
			contains: []string{
				`"current_item":"Lightning Bolt (Magic 2010)"`,
				`"items_completed":3`,
				`"estimated_time_remaining":"1m 28s"`,
				`"next_run":"2026-03-14T16:00:00Z"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewWatcherHandler(&fakeStatus{status: tt.status}, &fakeTrigger{next: tt.next})
			_, api := humatest.New(t)
			handlers.RegisterWatcherRoutes(api, h)

			resp := api.Get("/api/v1/watcher/status")
			require.Equal(t, http.StatusOK, resp.Code)
			for _, s := range tt.contains {
				assert.Contains(t, resp.Body.String(), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, resp.Body.String(), s)
			}
		})
	}
}

func TestWatcherHandler_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "accepted",
			wantStatus: http.StatusAccepted,
			wantBody:   "watcher cycle started",
		},
		{
			name:       "already running",
			err:        engine.ErrCycleRunning,
			wantStatus: http.StatusConflict,
			wantBody:   "already running",
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			trig := &fakeTrigger{err: tt.err}
			h := handlers.NewWatcherHandler(&fakeStatus{status: domain.IdleStatus()}, trig)
			_, api := humatest.New(t)
			handlers.RegisterWatcherRoutes(api, h)

			resp := api.Post("/api/v1/watcher/run")
			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
			assert.Equal(t, 1, trig.trigger)
		})
	}
}
