package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/mtg-price-tracker/internal/browser"
	"github.com/donaldgifford/mtg-price-tracker/pkg/pricing"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

const (
	tcgListing      = ".listing-item"
	tcgCondition    = ".listing-item__listing-data__info__condition"
	tcgPrice        = ".listing-item__listing-data__info__price"
	tcgLastSold     = `tr:contains("Most Recent Sale") .price-points__upper__price`
	tcgTotalSold    = `tr:contains("Total Sold") .sales-data__price, tr:contains("Total Sales") .sales-data__price`
	tcgListingCount = `tr:contains("Current Quantity:") .price-points__lower__price`
	tcgVolatility   = ".volatility__label"
)

// Signal regions render after the listings. The browser probes use plain
// CSS; the :contains filters above only run against the snapshot.
var tcgSignalProbes = []string{
	".price-points__upper__price",
	".sales-data__price",
	".price-points__lower__price",
	tcgVolatility,
}

// TCGPlayer scrapes a TCGplayer product page. Besides per-condition lowest
// prices it reads the market signals shown in the price-points panel.
type TCGPlayer struct {
	base
}

// NewTCGPlayer creates the TCGplayer adapter.
func NewTCGPlayer(opts ...Option) *TCGPlayer {
	return &TCGPlayer{base: newBase(domain.VendorTCGPlayer, opts)}
}

// URL returns the English-language product page for the card.
func (a *TCGPlayer) URL(card *domain.CardDescriptor) string {
	return fmt.Sprintf("https://www.tcgplayer.com/product/%s?Language=English", card.ExternalProductID)
}

// Scrape implements Adapter.
func (a *TCGPlayer) Scrape(
	ctx context.Context,
	page browser.Page,
	card *domain.CardDescriptor,
) (*domain.PriceQuote, error) {
	if card.ExternalProductID == "" {
		return nil, fmt.Errorf("%w: tcgplayer product id", ErrMissingHint)
	}

	url := a.URL(card)
	if err := a.navigate(ctx, page, url); err != nil {
		return nil, err
	}

	found, err := a.probe(ctx, page, tcgListing, a.timeouts.Listing)
	if err != nil {
		return nil, err
	}
	if !found {
		a.log.DebugContext(ctx, "listing container not found", "card", card.Label(), "url", url)
	}

	for _, sel := range tcgSignalProbes {
		// A missing signal region only defaults that signal.
		if _, err := a.probe(ctx, page, sel, a.timeouts.Signal); err != nil {
			return nil, err
		}
	}

	doc, err := a.snapshot(ctx, page)
	if err != nil {
		return nil, err
	}

	quote := domain.NewPriceQuote(a.vendor)
	quote.LowestPriceByCondition = parseTCGListings(doc)
	readTCGSignals(doc, quote)

	return quote, nil
}

func parseTCGListings(doc *goquery.Document) map[domain.Condition]decimal.Decimal {
	lowest := pricing.NewLowestPrices()

	doc.Find(tcgListing).Each(func(_ int, item *goquery.Selection) {
		if tcgIsFoil(item) {
			return
		}

		cond, ok := pricing.TCGPlayerConditions.Lookup(text(item.Find(tcgCondition).First()))
		if !ok {
			return
		}

		price, err := pricing.ParsePrice(text(item.Find(tcgPrice).First()))
		if err != nil {
			return
		}

		lowest.Observe(cond, price)
	})

	return lowest.Result()
}

func tcgIsFoil(item *goquery.Selection) bool {
	return item.Find("span").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), "Foil")
	}).Length() > 0
}

// readTCGSignals fills the optional market signals. Each one defaults
// independently when its region is missing or unparseable.
func readTCGSignals(doc *goquery.Document, q *domain.PriceQuote) {
	if raw := text(doc.Find(tcgLastSold).First()); raw != "" {
		if p, err := pricing.ParsePrice(raw); err == nil {
			q.LastSoldPrice = &p
		}
	}

	if raw := text(doc.Find(tcgTotalSold).First()); raw != "" {
		if n, err := pricing.ParseCount(raw); err == nil {
			q.TotalSold = n
		}
	}

	if raw := text(doc.Find(tcgListingCount).First()); raw != "" {
		if n, err := pricing.ParseCount(raw); err == nil {
			q.CurrentListingCount = n
		}
	}

	q.VolatilityLabel = text(doc.Find(tcgVolatility).First())
}
