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
	manaPoolReady   = "li .font-bold.text-green-700"
	manaPoolListing = ".flow-root li"
	manaPoolPrice   = ".font-bold.text-green-700"
	manaPoolBadge   = `span[class*="rounded-"]`
)

// ManaPool scrapes a ManaPool printing page. Condition and finish are
// shown as badges on each listing.
type ManaPool struct {
	base
}

// NewManaPool creates the ManaPool adapter.
func NewManaPool(opts ...Option) *ManaPool {
	return &ManaPool{base: newBase(domain.VendorManaPool, opts)}
}

// URL returns the printing page, keyed by set code and collector number.
func (a *ManaPool) URL(card *domain.CardDescriptor) string {
	return fmt.Sprintf("https://manapool.com/card/%s/%s/%s",
		card.URLHints.SetCode, card.URLHints.CollectorNumber, pricing.Slug(card.CardName))
}

// Scrape implements Adapter.
func (a *ManaPool) Scrape(
	ctx context.Context,
	page browser.Page,
	card *domain.CardDescriptor,
) (*domain.PriceQuote, error) {
	if card.URLHints.SetCode == "" || card.URLHints.CollectorNumber == "" {
		return nil, fmt.Errorf("%w: set code and collector number", ErrMissingHint)
	}

	doc, err := a.openListings(ctx, page, card, a.URL(card), manaPoolReady)
	if err != nil {
		return nil, err
	}

	quote := domain.NewPriceQuote(a.vendor)
	if doc != nil {
		quote.LowestPriceByCondition = parseManaPoolListings(doc)
	}
	return quote, nil
}

func parseManaPoolListings(doc *goquery.Document) map[domain.Condition]decimal.Decimal {
	lowest := pricing.NewLowestPrices()

	doc.Find(manaPoolListing).Each(func(_ int, item *goquery.Selection) {
		var (
			cond    domain.Condition
			hasCond bool
			foil    bool
		)
		item.Find(manaPoolBadge).Each(func(_ int, badge *goquery.Selection) {
			label := text(badge)
			if label == "Foil" {
				foil = true
				return
			}
			if c, ok := pricing.ManaPoolConditions.Lookup(label); ok {
				cond, hasCond = c, true
			}
		})
		if foil || !hasCond {
			return
		}

		price, err := pricing.ParsePrice(text(item.Find(manaPoolPrice).First()))
		if err != nil {
			return
		}

		lowest.Observe(cond, price)
	})

	return lowest.Result()
}
