package adapters

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/donaldgifford/mtg-price-tracker/internal/browser"
	"github.com/donaldgifford/mtg-price-tracker/pkg/pricing"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

const (
	ckProduct   = ".product-card"
	ckTitle     = ".product-card-title"
	ckRow       = "table.product-card-table tbody tr"
	ckQty       = ".product-card-qty"
	ckCondition = ".product-card-condition"
	ckPrice     = ".product-card-price"
)

// CardKingdom scrapes a Card Kingdom product page. Each product card holds
// one finish with a row per condition.
type CardKingdom struct {
	base
}

// NewCardKingdom creates the Card Kingdom adapter.
func NewCardKingdom(opts ...Option) *CardKingdom {
	return &CardKingdom{base: newBase(domain.VendorCardKingdom, opts)}
}

// URL returns the set/name slug page. Double-faced cards are listed under
// their front face.
func (a *CardKingdom) URL(card *domain.CardDescriptor) string {
	return fmt.Sprintf("https://www.cardkingdom.com/mtg/%s/%s",
		pricing.Slug(card.SetName), pricing.Slug(pricing.FrontFace(card.CardName)))
}

// Scrape implements Adapter.
func (a *CardKingdom) Scrape(
	ctx context.Context,
	page browser.Page,
	card *domain.CardDescriptor,
) (*domain.PriceQuote, error) {
	doc, err := a.openListings(ctx, page, card, a.URL(card), ckProduct)
	if err != nil {
		return nil, err
	}

	quote := domain.NewPriceQuote(a.vendor)
	if doc != nil {
		quote.LowestPriceByCondition = parseCardKingdomListings(doc)
	}
	return quote, nil
}

func parseCardKingdomListings(doc *goquery.Document) map[domain.Condition]decimal.Decimal {
	lowest := pricing.NewLowestPrices()

	doc.Find(ckProduct).Each(func(_ int, product *goquery.Selection) {
		title := product.Find(ckTitle).First()
		if title.Length() == 0 || containsFold(title.Text(), "foil") {
			return
		}

		product.Find(ckRow).Each(func(_ int, row *goquery.Selection) {
			if containsFold(text(row.Find(ckQty).First()), "out of stock") {
				return
			}

			cond, ok := pricing.CardKingdomConditions.Lookup(text(row.Find(ckCondition).First()))
			if !ok {
				return
			}

			price, err := pricing.ParsePrice(text(row.Find(ckPrice).First()))
			if err != nil {
				return
			}

			lowest.Observe(cond, price)
		})
	})

	return lowest.Result()
}
