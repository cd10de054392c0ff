package client

import (
	"context"

	"github.com/donaldgifford/mtg-price-tracker/internal/api/handlers"
)

// WatcherStatus returns the watcher's progress and next scheduled run.
func (c *Client) WatcherStatus(ctx context.Context) (*handlers.WatcherStatusBody, error) {
	var s handlers.WatcherStatusBody
	if err := c.get(ctx, "/api/v1/watcher/status", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// RunWatcher starts a cycle. A cycle already in progress surfaces as an
// APIError with status 409.
func (c *Client) RunWatcher(ctx context.Context) error {
	return c.post(ctx, "/api/v1/watcher/run", nil, nil)
}
