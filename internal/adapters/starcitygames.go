package adapters

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/mtg-price-tracker/internal/browser"
	"github.com/donaldgifford/mtg-price-tracker/pkg/pricing"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

const (
	scgResult    = ".hawk-results-item"
	scgTitle     = ".hawk-results-item__title"
	scgCondition = ".hawk-results-item__options-table-cell--name"
	scgPrice     = ".hawk-results-item__options-table-cell--price"
)

// StarCityGames scrapes the Star City Games search results for a card
// name and keeps results whose title names the printing's set.
type StarCityGames struct {
	base
}

// NewStarCityGames creates the Star City Games adapter.
func NewStarCityGames(opts ...Option) *StarCityGames {
	return &StarCityGames{base: newBase(domain.VendorStarCityGames, opts)}
}

// URL returns the name search page.
func (a *StarCityGames) URL(card *domain.CardDescriptor) string {
	q := url.Values{"card_name": {pricing.FrontFace(card.CardName)}}
	return "https://starcitygames.com/search/?" + q.Encode()
}

// Scrape implements Adapter.
func (a *StarCityGames) Scrape(
	ctx context.Context,
	page browser.Page,
	card *domain.CardDescriptor,
) (*domain.PriceQuote, error) {
	doc, err := a.openListings(ctx, page, card, a.URL(card), scgResult)
	if err != nil {
		return nil, err
	}

	quote := domain.NewPriceQuote(a.vendor)
	if doc != nil {
		quote.LowestPriceByCondition = parseStarCityGamesResults(doc, card.SetName)
	}
	return quote, nil
}

func parseStarCityGamesResults(doc *goquery.Document, setName string) map[domain.Condition]decimal.Decimal {
	lowest := pricing.NewLowestPrices()

	doc.Find(scgResult).Each(func(_ int, item *goquery.Selection) {
		title := text(item.Find(scgTitle).First())
		if !strings.Contains(title, setName) || strings.Contains(title, "Foil") {
			return
		}

		cond, ok := pricing.StarCityGamesConditions.Lookup(text(item.Find(scgCondition).First()))
		if !ok {
			return
		}

		price, err := pricing.ParsePrice(text(item.Find(scgPrice).First()))
		if err != nil {
			return
		}

		lowest.Observe(cond, price)
	})

	return lowest.Result()
}
