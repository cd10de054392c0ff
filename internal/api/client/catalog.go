package client

import (
	"context"

	"github.com/donaldgifford/mtg-price-tracker/internal/api/handlers"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// PriceHistory returns a printing's snapshots, oldest first.
func (c *Client) PriceHistory(ctx context.Context, externalID string) ([]domain.PriceHistoryPoint, error) {
	var points []domain.PriceHistoryPoint
	if err := c.get(ctx, "/api/v1/history/"+pathEscape(externalID), &points); err != nil {
		return nil, err
	}
	return points, nil
}

// Printings lists a card's printings, newest first.
func (c *Client) Printings(ctx context.Context, cardName string) ([]handlers.PrintingSummary, error) {
	var printings []handlers.PrintingSummary
	if err := c.get(ctx, "/api/v1/printings/"+pathEscape(cardName), &printings); err != nil {
		return nil, err
	}
	return printings, nil
}

type scrapeRequest struct {
	ExternalID string `json:"external_id"`
	Save       bool   `json:"save,omitempty"`
}

// Scrape prices one printing now. With save set the result is appended
// to its price history.
func (c *Client) Scrape(ctx context.Context, externalID string, save bool) (*domain.AnalysisResult, error) {
	var result domain.AnalysisResult
	req := scrapeRequest{ExternalID: externalID, Save: save}
	if err := c.post(ctx, "/api/v1/scrape", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
