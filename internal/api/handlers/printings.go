package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/mtg-price-tracker/internal/scryfall"
)

// PrintingSearcher lists the printings of a card.
type PrintingSearcher interface {
	SearchPrintings(ctx context.Context, name string) ([]scryfall.Printing, error)
}

// PrintingsHandler lists printings so callers can pick an external id.
type PrintingsHandler struct {
	catalog PrintingSearcher
}

// NewPrintingsHandler creates a new PrintingsHandler.
func NewPrintingsHandler(c PrintingSearcher) *PrintingsHandler {
	return &PrintingsHandler{catalog: c}
}

// PrintingSummary is one selectable printing.
type PrintingSummary struct {
	ExternalID      string `json:"external_id" doc:"Scryfall printing id"`
	CardName        string `json:"card_name"`
	SetName         string `json:"set_name"`
	SetCode         string `json:"set_code"`
	CollectorNumber string `json:"collector_number"`
	ReleasedAt      string `json:"released_at,omitempty"`
	USD             string `json:"usd,omitempty" doc:"Scryfall nonfoil USD price"`
	HasProductID    bool   `json:"has_product_id" doc:"Whether TCGplayer-keyed vendors can be scraped"`
}

// PrintingsInput selects a card by exact name.
type PrintingsInput struct {
	CardName string `path:"cardName" doc:"Exact card name" example:"Lightning Bolt"`
}

// PrintingsOutput is the response for GET /api/v1/printings/{cardName}.
type PrintingsOutput struct {
	Body []PrintingSummary
}

// List returns the card's printings, newest first.
func (h *PrintingsHandler) List(ctx context.Context, input *PrintingsInput) (*PrintingsOutput, error) {
	name, err := url.PathUnescape(input.CardName)
	if err != nil {
		name = input.CardName
	}

	printings, err := h.catalog.SearchPrintings(ctx, name)
	if err != nil {
		return nil, huma.Error502BadGateway("scryfall error: " + err.Error())
	}

	out := &PrintingsOutput{Body: make([]PrintingSummary, 0, len(printings))}
	for i := range printings {
		out.Body = append(out.Body, summarize(&printings[i]))
	}
	return out, nil
}

func summarize(p *scryfall.Printing) PrintingSummary {
	s := PrintingSummary{
		ExternalID:      p.ID,
		CardName:        p.Name,
		SetName:         p.SetName,
		SetCode:         p.SetCode,
		CollectorNumber: p.CollectorNumber,
		ReleasedAt:      p.ReleasedAt,
		HasProductID:    p.TCGPlayerID > 0,
	}
	if usd, ok := p.USD(); ok {
		s.USD = usd.StringFixed(2)
	}
	return s
}

// RegisterPrintingsRoutes registers the printings route on the Huma API.
func RegisterPrintingsRoutes(api huma.API, h *PrintingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-printings",
		Method:      http.MethodGet,
		Path:        "/api/v1/printings/{cardName}",
		Summary:     "List printings of a card",
		Description: "Searches Scryfall for every paper printing with the exact name.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusBadGateway},
	}, h.List)
}
