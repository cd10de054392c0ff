package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/mtg-price-tracker/internal/store"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// HistoryHandler serves price history.
type HistoryHandler struct {
	store store.Store
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(s store.Store) *HistoryHandler {
	return &HistoryHandler{store: s}
}

// HistoryInput selects a printing.
type HistoryInput struct {
	ExternalID string `path:"externalId" doc:"Scryfall printing id"`
}

// HistoryOutput is the response for GET /api/v1/history/{externalId}.
type HistoryOutput struct {
	Body []domain.PriceHistoryPoint
}

// Get returns a printing's snapshots, oldest first.
func (h *HistoryHandler) Get(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	points, err := h.store.GetPriceHistory(ctx, input.ExternalID)
	if err != nil {
		return nil, huma.Error500InternalServerError("loading price history: " + err.Error())
	}
	if points == nil {
		points = []domain.PriceHistoryPoint{}
	}
	return &HistoryOutput{Body: points}, nil
}

// RegisterHistoryRoutes registers the history route on the Huma API.
func RegisterHistoryRoutes(api huma.API, h *HistoryHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-price-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/history/{externalId}",
		Summary:     "Get price history",
		Description: "Returns every price snapshot for a printing in timestamp order.",
		Tags:        []string{"history"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Get)
}
