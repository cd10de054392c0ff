package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/mtg-price-tracker/internal/scryfall"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// Scraper prices a single printing outside the watcher cycle.
type Scraper interface {
	ScrapeOnce(ctx context.Context, externalID string, persist bool) (*domain.AnalysisResult, error)
}

// ScrapeHandler handles one-off scrapes.
type ScrapeHandler struct {
	scraper Scraper
}

// NewScrapeHandler creates a new ScrapeHandler.
func NewScrapeHandler(s Scraper) *ScrapeHandler {
	return &ScrapeHandler{scraper: s}
}

// ScrapeInput is the request body for POST /api/v1/scrape.
type ScrapeInput struct {
	Body struct {
		ExternalID string `json:"external_id" minLength:"1" doc:"Scryfall printing id" example:"e3285e6b-3e79-4d7c-bf96-d920f973b122"`
		Save       bool   `json:"save,omitempty" doc:"Append the result to price history"`
	}
}

// ScrapeOutput is the response for POST /api/v1/scrape.
type ScrapeOutput struct {
	Body *domain.AnalysisResult
}

// Scrape runs every enabled vendor for one printing.
func (h *ScrapeHandler) Scrape(ctx context.Context, input *ScrapeInput) (*ScrapeOutput, error) {
	result, err := h.scraper.ScrapeOnce(ctx, input.Body.ExternalID, input.Body.Save)
	switch {
	case errors.Is(err, scryfall.ErrNotFound):
		return nil, huma.Error404NotFound("no printing with id " + input.Body.ExternalID)
	case err != nil && result != nil:
		return nil, huma.Error500InternalServerError("scrape succeeded but saving failed: " + err.Error())
	case err != nil:
		return nil, huma.Error502BadGateway("scrape failed: " + err.Error())
	}

	return &ScrapeOutput{Body: result}, nil
}

// RegisterScrapeRoutes registers the scrape route on the Huma API.
func RegisterScrapeRoutes(api huma.API, h *ScrapeHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "scrape-printing",
		Method:      http.MethodPost,
		Path:        "/api/v1/scrape",
		Summary:     "Scrape one printing",
		Description: "Prices a printing across every enabled vendor in a dedicated browser session.",
		Tags:        []string{"watcher"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway, http.StatusInternalServerError},
	}, h.Scrape)
}
