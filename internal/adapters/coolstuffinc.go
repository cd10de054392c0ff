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
	csiRow     = ".card-set-row"
	csiSet     = ".ItemSet"
	csiOffer   = `[itemprop="offers"]`
	csiFixtype = ".fixtype"
	csiPrice   = `.darkred [itemprop="price"]`
)

// CoolStuffInc scrapes the CoolStuffInc product page for a card name. The
// page lists one row per set, each with offers per condition and finish.
type CoolStuffInc struct {
	base
}

// NewCoolStuffInc creates the CoolStuffInc adapter.
func NewCoolStuffInc(opts ...Option) *CoolStuffInc {
	return &CoolStuffInc{base: newBase(domain.VendorCoolStuffInc, opts)}
}

// URL returns the product page for the card's front face.
func (a *CoolStuffInc) URL(card *domain.CardDescriptor) string {
	return "https://www.coolstuffinc.com/p/" + url.PathEscape(pricing.FrontFace(card.CardName))
}

// Scrape implements Adapter.
func (a *CoolStuffInc) Scrape(
	ctx context.Context,
	page browser.Page,
	card *domain.CardDescriptor,
) (*domain.PriceQuote, error) {
	doc, err := a.openListings(ctx, page, card, a.URL(card), csiRow)
	if err != nil {
		return nil, err
	}

	quote := domain.NewPriceQuote(a.vendor)
	if doc != nil {
		quote.LowestPriceByCondition = parseCoolStuffIncRows(doc, card.SetName)
	}
	return quote, nil
}

func parseCoolStuffIncRows(doc *goquery.Document, setName string) map[domain.Condition]decimal.Decimal {
	lowest := pricing.NewLowestPrices()

	doc.Find(csiRow).Each(func(_ int, row *goquery.Selection) {
		if !strings.Contains(text(row.Find(csiSet).First()), setName) {
			return
		}

		row.Find(csiOffer).Each(func(_ int, offer *goquery.Selection) {
			fixtypes := offer.Find(csiFixtype)
			foil := fixtypes.FilterFunction(func(_ int, s *goquery.Selection) bool {
				return text(s) == "Foil"
			}).Length() > 0
			if foil || fixtypes.Length() < 2 {
				return
			}

			cond, ok := pricing.CoolStuffIncConditions.Lookup(text(fixtypes.Eq(1)))
			if !ok {
				return
			}

			priceNode := offer.Find(csiPrice).First()
			raw := text(priceNode)
			if raw == "" {
				raw, _ = priceNode.Attr("content")
			}
			price, err := pricing.ParsePrice(raw)
			if err != nil {
				return
			}

			lowest.Observe(cond, price)
		})
	})

	return lowest.Result()
}
