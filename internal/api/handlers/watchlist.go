package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/mtg-price-tracker/internal/scryfall"
	"github.com/donaldgifford/mtg-price-tracker/internal/store"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// PrintingLookup fetches one printing from the reference catalog.
type PrintingLookup interface {
	GetCard(ctx context.Context, id string) (*scryfall.Printing, error)
}

// WatchlistHandler manages the watchlist.
type WatchlistHandler struct {
	store   store.Store
	catalog PrintingLookup
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(s store.Store, catalog PrintingLookup) *WatchlistHandler {
	return &WatchlistHandler{store: s, catalog: catalog}
}

// ListWatchlistOutput is the response for GET /api/v1/watchlist.
type ListWatchlistOutput struct {
	Body []domain.WatchlistEntry
}

// List returns every watched printing in insertion order.
func (h *WatchlistHandler) List(ctx context.Context, _ *struct{}) (*ListWatchlistOutput, error) {
	entries, err := h.store.GetWatchlist(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing watchlist: " + err.Error())
	}
	if entries == nil {
		entries = []domain.WatchlistEntry{}
	}
	return &ListWatchlistOutput{Body: entries}, nil
}

// AddWatchlistInput is the request body for POST /api/v1/watchlist.
type AddWatchlistInput struct {
	Body struct {
		ExternalID string `json:"external_id" minLength:"1" doc:"Scryfall printing id" example:"e3285e6b-3e79-4d7c-bf96-d920f973b122"`
	}
}

// MessageOutput wraps a MessageBody.
type MessageOutput struct {
	Body MessageBody
}

// Add resolves a printing and puts it on the watchlist.
func (h *WatchlistHandler) Add(ctx context.Context, input *AddWatchlistInput) (*MessageOutput, error) {
	printing, err := h.catalog.GetCard(ctx, input.Body.ExternalID)
	if err != nil {
		if errors.Is(err, scryfall.ErrNotFound) {
			return nil, huma.Error404NotFound("no printing with id " + input.Body.ExternalID)
		}
		return nil, huma.Error502BadGateway("scryfall error: " + err.Error())
	}

	msg, err := h.store.AddToWatchlist(ctx, printing.WatchlistEntry())
	if err != nil {
		return nil, huma.Error500InternalServerError("adding to watchlist: " + err.Error())
	}

	return &MessageOutput{Body: MessageBody{Message: msg}}, nil
}

// RemoveWatchlistInput selects printings to remove by card name.
type RemoveWatchlistInput struct {
	Name string `query:"name" required:"true" minLength:"1" doc:"Card name, case-insensitive" example:"Lightning Bolt"`
}

// Remove deletes every watched printing of a card.
func (h *WatchlistHandler) Remove(ctx context.Context, input *RemoveWatchlistInput) (*MessageOutput, error) {
	msg, err := h.store.RemoveFromWatchlist(ctx, input.Name)
	if err != nil {
		return nil, huma.Error500InternalServerError("removing from watchlist: " + err.Error())
	}
	return &MessageOutput{Body: MessageBody{Message: msg}}, nil
}

// RegisterWatchlistRoutes registers watchlist endpoints with the Huma API.
func RegisterWatchlistRoutes(api huma.API, h *WatchlistHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-watchlist",
		Method:      http.MethodGet,
		Path:        "/api/v1/watchlist",
		Summary:     "List watchlist",
		Description: "Returns every watched printing in the order it was added.",
		Tags:        []string{"watchlist"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "add-to-watchlist",
		Method:      http.MethodPost,
		Path:        "/api/v1/watchlist",
		Summary:     "Add a printing",
		Description: "Looks the printing up on Scryfall and adds it to the watchlist.",
		Tags:        []string{"watchlist"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway, http.StatusInternalServerError},
	}, h.Add)

	huma.Register(api, huma.Operation{
		OperationID: "remove-from-watchlist",
		Method:      http.MethodDelete,
		Path:        "/api/v1/watchlist",
		Summary:     "Remove a card",
		Description: "Removes every watched printing with the given card name. Price history is kept.",
		Tags:        []string{"watchlist"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Remove)
}
