// Package analyzer runs every configured vendor adapter against one card
// and folds their outcomes into a single AnalysisResult.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/mtg-price-tracker/internal/adapters"
	"github.com/donaldgifford/mtg-price-tracker/internal/browser"
	"github.com/donaldgifford/mtg-price-tracker/internal/metrics"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// ErrMissingProductID is reported when a card has no TCGplayer product id.
var ErrMissingProductID = errors.New("missing TCGplayer product id")

// Analyzer fans a card out to vendor adapters.
type Analyzer struct {
	adapters []adapters.Adapter
	timeout  time.Duration
	log      *slog.Logger
	tracer   trace.Tracer
}

// Option configures the Analyzer.
type Option func(*Analyzer)

// WithAdapterTimeout bounds each adapter call. Default 90s.
func WithAdapterTimeout(d time.Duration) Option {
	return func(a *Analyzer) { a.timeout = d }
}

// WithLogger sets the analyzer logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.log = l }
}

// New creates an Analyzer over the given adapters. Sequential runs visit
// them in this order.
func New(list []adapters.Adapter, opts ...Option) *Analyzer {
	a := &Analyzer{
		adapters: list,
		timeout:  90 * time.Second,
		log:      slog.Default(),
		tracer:   otel.Tracer("github.com/donaldgifford/mtg-price-tracker/internal/analyzer"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Vendors returns the configured vendors in order.
func (a *Analyzer) Vendors() []domain.Vendor {
	out := make([]domain.Vendor, len(a.adapters))
	for i, ad := range a.adapters {
		out[i] = ad.Vendor()
	}
	return out
}

// Analyze scrapes card with every adapter. With a single page the
// adapters run one after another on it; with more, vendors run
// concurrently, each borrowing a page from the pool. A vendor failure is
// recorded in its quote and never stops the others. The result's Error is
// set only when the card cannot be scraped at all, in which case no
// adapter runs.
func (a *Analyzer) Analyze(
	ctx context.Context,
	pages []browser.Page,
	card *domain.CardDescriptor,
) *domain.AnalysisResult {
	result := &domain.AnalysisResult{
		Card:   *card,
		Quotes: make(map[domain.Vendor]domain.PriceQuote, len(a.adapters)),
	}

	if card.ExternalProductID == "" {
		result.Error = ErrMissingProductID.Error()
		a.log.WarnContext(ctx, "skipping analysis", "card", card.Label(), "reason", result.Error)
		return result
	}

	ctx, span := a.tracer.Start(ctx, "analyzer.Analyze", trace.WithAttributes(
		attribute.String("card.id", card.ExternalID),
		attribute.String("card.label", card.Label()),
		attribute.Int("pages", len(pages)),
	))
	defer span.End()

	if len(pages) <= 1 {
		a.analyzeSequential(ctx, pages, card, result)
	} else {
		a.analyzeConcurrent(ctx, pages, card, result)
	}

	return result
}

func (a *Analyzer) analyzeSequential(
	ctx context.Context,
	pages []browser.Page,
	card *domain.CardDescriptor,
	result *domain.AnalysisResult,
) {
	var page browser.Page
	if len(pages) == 1 {
		page = pages[0]
	}

	for _, ad := range a.adapters {
		result.Quotes[ad.Vendor()] = a.run(ctx, ad, page, card)
	}
}

func (a *Analyzer) analyzeConcurrent(
	ctx context.Context,
	pages []browser.Page,
	card *domain.CardDescriptor,
	result *domain.AnalysisResult,
) {
	pool := make(chan browser.Page, len(pages))
	for _, p := range pages {
		pool <- p
	}

	var mu sync.Mutex
	record := func(q domain.PriceQuote) {
		mu.Lock()
		defer mu.Unlock()
		result.Quotes[q.Vendor] = q
	}

	// Every branch returns nil so Wait collects all vendors.
	var g errgroup.Group
	for _, ad := range a.adapters {
		g.Go(func() error {
			if !ad.NeedsPage() {
				record(a.run(ctx, ad, nil, card))
				return nil
			}

			var page browser.Page
			select {
			case page = <-pool:
			case <-ctx.Done():
				record(a.fail(ctx, ad.Vendor(), card, fmt.Errorf("waiting for page: %w", ctx.Err()), 0))
				return nil
			}
			defer func() { pool <- page }()

			record(a.run(ctx, ad, page, card))
			return nil
		})
	}
	_ = g.Wait()
}

// run executes one adapter under its own timeout and converts any error or
// panic into a failed quote.
func (a *Analyzer) run(
	ctx context.Context,
	ad adapters.Adapter,
	page browser.Page,
	card *domain.CardDescriptor,
) (quote domain.PriceQuote) {
	vendor := ad.Vendor()
	start := time.Now()

	ctx, span := a.tracer.Start(ctx, "vendor."+string(vendor))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			quote = a.fail(ctx, vendor, card, fmt.Errorf("adapter panic: %v", r), time.Since(start))
			span.SetStatus(codes.Error, quote.Error)
		}
	}()

	if ad.NeedsPage() && page == nil {
		return a.fail(ctx, vendor, card, adapters.ErrNoPage, 0)
	}

	q, err := ad.Scrape(ctx, page, card)
	elapsed := time.Since(start)
	metrics.VendorDuration.WithLabelValues(string(vendor)).Observe(elapsed.Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return a.fail(ctx, vendor, card, err, elapsed)
	}
	if q == nil {
		q = domain.NewPriceQuote(vendor)
	}
	q.Vendor = vendor

	outcome := metrics.OutcomeSuccess
	if len(q.LowestPriceByCondition) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.VendorQuotesTotal.WithLabelValues(string(vendor), outcome).Inc()
	span.SetAttributes(attribute.Int("conditions", len(q.LowestPriceByCondition)))

	a.log.InfoContext(ctx, "vendor scraped",
		"vendor", vendor,
		"card", card.Label(),
		"outcome", outcome,
		"conditions", len(q.LowestPriceByCondition),
		"duration", elapsed.Round(time.Millisecond),
	)

	return *q
}

func (a *Analyzer) fail(
	ctx context.Context,
	vendor domain.Vendor,
	card *domain.CardDescriptor,
	err error,
	elapsed time.Duration,
) domain.PriceQuote {
	metrics.VendorQuotesTotal.WithLabelValues(string(vendor), metrics.OutcomeError).Inc()
	a.log.WarnContext(ctx, "vendor failed",
		"vendor", vendor,
		"card", card.Label(),
		"error", err,
		"duration", elapsed.Round(time.Millisecond),
	)
	return domain.FailedQuote(vendor, err)
}
