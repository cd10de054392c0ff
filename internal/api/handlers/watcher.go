package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/mtg-price-tracker/internal/engine"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// StatusProvider exposes the watcher's progress snapshot.
type StatusProvider interface {
	Status() domain.WatcherRunStatus
}

// CycleTrigger starts watcher cycles on demand.
type CycleTrigger interface {
	Trigger() error
	NextRun() time.Time
}

// WatcherHandler serves watcher status and manual runs.
type WatcherHandler struct {
	status  StatusProvider
	trigger CycleTrigger
}

// NewWatcherHandler creates a new WatcherHandler.
func NewWatcherHandler(s StatusProvider, t CycleTrigger) *WatcherHandler {
	return &WatcherHandler{status: s, trigger: t}
}

// WatcherStatusBody is the watcher status plus the next scheduled run.
type WatcherStatusBody struct {
	domain.WatcherRunStatus
	NextRun *time.Time `json:"next_run,omitempty" doc:"Next scheduled cycle, absent when scheduling is disabled"`
}

// WatcherStatusOutput is the response for GET /api/v1/watcher/status.
type WatcherStatusOutput struct {
	Body WatcherStatusBody
}

// Status returns the current run status.
func (h *WatcherHandler) Status(_ context.Context, _ *struct{}) (*WatcherStatusOutput, error) {
	out := &WatcherStatusOutput{}
	out.Body.WatcherRunStatus = h.status.Status()
	if next := h.trigger.NextRun(); !next.IsZero() {
		next = next.UTC()
		out.Body.NextRun = &next
	}
	return out, nil
}

// RunOutput is the response for POST /api/v1/watcher/run.
type RunOutput struct {
	Body struct {
		Status string `json:"status" example:"watcher cycle started" doc:"Run status"`
	}
}

// Run starts a watcher cycle in the background.
func (h *WatcherHandler) Run(_ context.Context, _ *struct{}) (*RunOutput, error) {
	if err := h.trigger.Trigger(); err != nil {
		if errors.Is(err, engine.ErrCycleRunning) {
			return nil, huma.Error409Conflict("a watcher cycle is already running")
		}
		return nil, huma.Error500InternalServerError("starting watcher cycle: " + err.Error())
	}

	out := &RunOutput{}
	out.Body.Status = "watcher cycle started"
	return out, nil
}

// RegisterWatcherRoutes registers watcher endpoints with the Huma API.
func RegisterWatcherRoutes(api huma.API, h *WatcherHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-watcher-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/watcher/status",
		Summary:     "Get watcher status",
		Description: "Returns the phase, progress and ETA of the current watcher cycle.",
		Tags:        []string{"watcher"},
	}, h.Status)

	huma.Register(api, huma.Operation{
		OperationID:   "run-watcher",
		Method:        http.MethodPost,
		Path:          "/api/v1/watcher/run",
		Summary:       "Start a watcher cycle",
		Description:   "Starts a full pass over the watchlist in the background.",
		Tags:          []string{"watcher"},
		DefaultStatus: http.StatusAccepted,
		Errors:        []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.Run)
}
