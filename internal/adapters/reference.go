package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/mtg-price-tracker/internal/browser"
	"github.com/donaldgifford/mtg-price-tracker/internal/scryfall"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// CardFetcher fetches a printing from the reference catalog.
type CardFetcher interface {
	GetCard(ctx context.Context, id string) (*scryfall.Printing, error)
}

// Reference reports the Scryfall daily USD price as the NM entry of its
// quote. It never touches the browser.
type Reference struct {
	cards CardFetcher
	log   *slog.Logger
}

// NewReference creates the reference price adapter.
func NewReference(cards CardFetcher, log *slog.Logger) *Reference {
	if log == nil {
		log = slog.Default()
	}
	return &Reference{cards: cards, log: log.With("vendor", string(domain.VendorScryfall))}
}

// Vendor implements Adapter.
func (a *Reference) Vendor() domain.Vendor { return domain.VendorScryfall }

// NeedsPage implements Adapter.
func (a *Reference) NeedsPage() bool { return false }

// Scrape implements Adapter.
func (a *Reference) Scrape(
	ctx context.Context,
	_ browser.Page,
	card *domain.CardDescriptor,
) (*domain.PriceQuote, error) {
	printing, err := a.cards.GetCard(ctx, card.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("fetching reference price: %w", err)
	}

	quote := domain.NewPriceQuote(domain.VendorScryfall)
	if usd, ok := printing.USD(); ok {
		quote.LowestPriceByCondition[domain.ConditionNM] = usd
	}
	return quote, nil
}
