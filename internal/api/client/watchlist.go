package client

import (
	"context"
	"net/url"

	"github.com/donaldgifford/mtg-price-tracker/internal/api/handlers"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// ListWatchlist returns every watched printing.
func (c *Client) ListWatchlist(ctx context.Context) ([]domain.WatchlistEntry, error) {
	var entries []domain.WatchlistEntry
	if err := c.get(ctx, "/api/v1/watchlist", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AddToWatchlist adds a printing by Scryfall id and returns the server's
// message.
func (c *Client) AddToWatchlist(ctx context.Context, externalID string) (string, error) {
	body := map[string]string{"external_id": externalID}
	var msg handlers.MessageBody
	if err := c.post(ctx, "/api/v1/watchlist", body, &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}

// RemoveFromWatchlist removes every printing of a card by name.
func (c *Client) RemoveFromWatchlist(ctx context.Context, cardName string) (string, error) {
	q := url.Values{"name": {cardName}}
	var msg handlers.MessageBody
	if err := c.del(ctx, "/api/v1/watchlist?"+q.Encode(), &msg); err != nil {
		return "", err
	}
	return msg.Message, nil
}
