// Package adapters implements one price adapter per vendor. Listing-page
// adapters drive a browser.Page, snapshot the rendered document and
// extract the lowest non-foil price per condition with goquery.
//
// Every adapter follows the same failure policy: a top-level navigation
// failure is returned as an error, while a listing container that never
// appears, or one holding no qualifying listings, yields an empty quote
// without error.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/donaldgifford/mtg-price-tracker/internal/browser"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// Sentinel errors.
var (
	ErrNavigation  = errors.New("navigation failed")
	ErrMissingHint = errors.New("missing url hint")
	ErrNoPage      = errors.New("page required")
)

// Adapter produces a PriceQuote for one vendor.
type Adapter interface {
	Vendor() domain.Vendor
	// NeedsPage reports whether Scrape drives a browser page. Adapters
	// that return false accept a nil page.
	NeedsPage() bool
	Scrape(ctx context.Context, page browser.Page, card *domain.CardDescriptor) (*domain.PriceQuote, error)
}

// Timeouts bound each browser wait an adapter performs.
type Timeouts struct {
	Navigation time.Duration
	Listing    time.Duration
	Signal     time.Duration
}

// DefaultTimeouts are used when no Timeouts option is given.
var DefaultTimeouts = Timeouts{
	Navigation: 30 * time.Second,
	Listing:    20 * time.Second,
	Signal:     3 * time.Second,
}

// Option configures a listing-page adapter.
type Option func(*base)

// WithTimeouts overrides the browser wait bounds.
func WithTimeouts(t Timeouts) Option {
	return func(b *base) { b.timeouts = t }
}

// WithLogger sets the adapter logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *base) { b.log = l }
}

type base struct {
	vendor   domain.Vendor
	timeouts Timeouts
	log      *slog.Logger
}

func newBase(v domain.Vendor, opts []Option) base {
	b := base{
		vendor:   v,
		timeouts: DefaultTimeouts,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	b.log = b.log.With("vendor", string(v))
	return b
}

func (b *base) Vendor() domain.Vendor { return b.vendor }

func (b *base) NeedsPage() bool { return true }

func (b *base) navigate(ctx context.Context, page browser.Page, url string) error {
	if page == nil {
		return ErrNoPage
	}

	navCtx, cancel := context.WithTimeout(ctx, b.timeouts.Navigation)
	defer cancel()

	if err := page.Navigate(navCtx, url); err != nil {
		return fmt.Errorf("%w: %w", ErrNavigation, err)
	}
	return nil
}

// probe waits up to d for selector. It reports false when the wait timed
// out and returns an error only when ctx itself is done or the page broke.
func (b *base) probe(ctx context.Context, page browser.Page, selector string, d time.Duration) (bool, error) {
	probeCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	err := page.WaitVisible(probeCtx, selector)
	switch {
	case err == nil:
		return true, nil
	case ctx.Err() != nil:
		return false, fmt.Errorf("waiting for %s: %w", selector, ctx.Err())
	case errors.Is(err, context.DeadlineExceeded):
		return false, nil
	default:
		return false, fmt.Errorf("waiting for %s: %w", selector, err)
	}
}

func (b *base) snapshot(ctx context.Context, page browser.Page) (*goquery.Document, error) {
	html, err := page.HTML(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return doc, nil
}

// openListings navigates to url and snapshots the document once the
// listing container is visible. A nil document with no error means the
// container never appeared.
func (b *base) openListings(
	ctx context.Context,
	page browser.Page,
	card *domain.CardDescriptor,
	url, container string,
) (*goquery.Document, error) {
	if err := b.navigate(ctx, page, url); err != nil {
		return nil, err
	}

	found, err := b.probe(ctx, page, container, b.timeouts.Listing)
	if err != nil {
		return nil, err
	}
	if !found {
		b.log.DebugContext(ctx, "listing container not found",
			"card", card.Label(), "url", url)
		return nil, nil
	}

	return b.snapshot(ctx, page)
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
