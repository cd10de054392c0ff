// Package engine runs the watcher cycle: it walks the watchlist, prices
// each printing across vendors, persists the snapshots and refreshes the
// dashboards. The Scheduler fires cycles on a fixed period.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/mtg-price-tracker/internal/browser"
	"github.com/donaldgifford/mtg-price-tracker/internal/metrics"
	"github.com/donaldgifford/mtg-price-tracker/internal/notify"
	"github.com/donaldgifford/mtg-price-tracker/internal/store"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

// ErrCycleRunning is returned when a cycle is requested while another is
// in progress.
var ErrCycleRunning = errors.New("watcher cycle already running")

// CardResolver turns a watchlist external id into a live descriptor.
type CardResolver interface {
	Describe(ctx context.Context, externalID string) (*domain.CardDescriptor, error)
}

// CardAnalyzer prices one card across vendors using the given pages.
type CardAnalyzer interface {
	Analyze(ctx context.Context, pages []browser.Page, card *domain.CardDescriptor) *domain.AnalysisResult
}

// Watcher walks the watchlist once per cycle. Cards are processed strictly
// one at a time; vendors of a single card may run concurrently inside the
// analyzer.
type Watcher struct {
	store     store.Store
	resolver  CardResolver
	analyzer  CardAnalyzer
	launcher  browser.Launcher
	presenter notify.Presenter

	status  *StatusTracker
	running atomic.Bool

	pages     int
	itemDelay time.Duration
	now       func() time.Time
	log       *slog.Logger
	tracer    trace.Tracer
}

// WatcherOption configures the Watcher.
type WatcherOption func(*Watcher)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		w.log = l
	}
}

// WithPresenter enables the dashboard pass at the end of each cycle.
func WithPresenter(p notify.Presenter) WatcherOption {
	return func(w *Watcher) {
		w.presenter = p
	}
}

// WithPages sets how many browser pages a cycle opens. Default 2.
func WithPages(n int) WatcherOption {
	return func(w *Watcher) {
		w.pages = n
	}
}

// WithItemDelay sets the pause between watchlist entries. Default 2s.
func WithItemDelay(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.itemDelay = d
	}
}

// WithNowFunc overrides the clock used for last_scraped_at.
func WithNowFunc(fn func() time.Time) WatcherOption {
	return func(w *Watcher) {
		w.now = fn
	}
}

// NewWatcher creates a Watcher with injected dependencies.
func NewWatcher(
	s store.Store,
	r CardResolver,
	a CardAnalyzer,
	l browser.Launcher,
	opts ...WatcherOption,
) *Watcher {
	w := &Watcher{
		store:     s,
		resolver:  r,
		analyzer:  a,
		launcher:  l,
		status:    NewStatusTracker(),
		pages:     2,
		itemDelay: 2 * time.Second,
		now:       time.Now,
		log:       slog.Default(),
		tracer:    otel.Tracer("github.com/donaldgifford/mtg-price-tracker/internal/engine"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Status returns a copy of the current run status.
func (w *Watcher) Status() domain.WatcherRunStatus {
	return w.status.Snapshot()
}

// Running reports whether a cycle is in progress.
func (w *Watcher) Running() bool {
	return w.running.Load()
}

// RunCycle performs one pass over the watchlist. A call made while another
// cycle is running returns ErrCycleRunning without touching any state.
func (w *Watcher) RunCycle(ctx context.Context) error {
	if !w.running.CompareAndSwap(false, true) {
		w.log.Info("watcher cycle already running, skipping")
		metrics.CyclesTotal.WithLabelValues(metrics.OutcomeSkipped).Inc()
		return ErrCycleRunning
	}
	defer w.running.Store(false)

	log := w.log.With("cycle", uuid.NewString())

	ctx, span := w.tracer.Start(ctx, "watcher.cycle")
	defer span.End()

	start := time.Now()
	metrics.WatcherRunning.Set(1)
	defer metrics.WatcherRunning.Set(0)

	w.status.initializing()
	defer w.status.reset()

	err := w.runCycle(ctx, log, span)

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("watcher cycle failed", "error", err)
	} else {
		metrics.CycleDuration.Observe(time.Since(start).Seconds())
		log.Info("watcher cycle complete", "duration", time.Since(start).Round(time.Millisecond))
	}
	metrics.CyclesTotal.WithLabelValues(outcome).Inc()

	return err
}

func (w *Watcher) runCycle(ctx context.Context, log *slog.Logger, span trace.Span) error {
	entries, err := w.store.GetWatchlist(ctx)
	if err != nil {
		return fmt.Errorf("loading watchlist: %w", err)
	}
	metrics.WatchlistSize.Set(float64(len(entries)))
	span.SetAttributes(attribute.Int("watchlist.size", len(entries)))

	if len(entries) == 0 {
		log.Info("watchlist is empty, nothing to scrape")
		return nil
	}

	session, err := w.launcher.Launch(ctx)
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}
	closeSession := sync.OnceFunc(func() {
		if err := session.Close(); err != nil {
			log.Warn("closing browser session", "error", err)
		}
	})
	defer closeSession()

	pages, err := browser.OpenPages(ctx, session, w.pages)
	if err != nil {
		return fmt.Errorf("opening browser pages: %w", err)
	}

	w.status.running(len(entries))
	log.Info("watcher cycle starting", "entries", len(entries), "pages", len(pages))

	for i := range entries {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("watcher cycle interrupted: %w", err)
		}

		w.processEntry(ctx, log, pages, &entries[i])

		if i < len(entries)-1 && w.itemDelay > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("watcher cycle interrupted: %w", ctx.Err())
			case <-time.After(w.itemDelay):
			}
		}
	}

	closeSession()
	w.present(ctx, log)

	return nil
}

func (w *Watcher) processEntry(
	ctx context.Context,
	log *slog.Logger,
	pages []browser.Page,
	e *domain.WatchlistEntry,
) {
	start := time.Now()
	w.status.current(e.Label())

	ctx, span := w.tracer.Start(ctx, "watcher.item",
		trace.WithAttributes(attribute.String("card.external_id", e.ExternalID)),
	)
	defer span.End()

	log = log.With("external_id", e.ExternalID, "card", e.Label())

	outcome := w.scrapeEntry(ctx, log, pages, e)
	span.SetAttributes(attribute.String("outcome", outcome))

	elapsed := time.Since(start)
	metrics.CycleItemsTotal.WithLabelValues(outcome).Inc()
	metrics.ItemDuration.Observe(elapsed.Seconds())
	w.status.completed(elapsed)
}

func (w *Watcher) scrapeEntry(
	ctx context.Context,
	log *slog.Logger,
	pages []browser.Page,
	e *domain.WatchlistEntry,
) string {
	card, err := w.resolver.Describe(ctx, e.ExternalID)
	if err != nil {
		log.Warn("could not resolve card, skipping", "error", err)
		return metrics.OutcomeSkipped
	}
	if card.ExternalProductID == "" {
		log.Warn("card has no TCGplayer product id, skipping")
		return metrics.OutcomeSkipped
	}

	result := w.analyzer.Analyze(ctx, pages, card)
	if result.Error != "" {
		log.Warn("analysis failed, skipping", "error", result.Error)
		return metrics.OutcomeSkipped
	}

	outcome := metrics.OutcomeSuccess
	if err := w.store.SaveScrapeData(ctx, e.ExternalID, result); err != nil {
		log.Error("saving price history", "error", err)
		metrics.PersistenceFailuresTotal.Inc()
		outcome = metrics.OutcomeError
	} else {
		metrics.HistoryPointsTotal.Inc()
	}

	if err := w.store.MarkScraped(ctx, e.ExternalID, w.now()); err != nil {
		log.Warn("marking entry scraped", "error", err)
	}

	return outcome
}

// present refreshes every dashboard message from the re-read watchlist.
// Failures are logged per entry and never stop the pass.
func (w *Watcher) present(ctx context.Context, log *slog.Logger) {
	if w.presenter == nil {
		return
	}

	w.status.presenting()

	entries, err := w.store.GetWatchlist(ctx)
	if err != nil {
		log.Error("loading watchlist for dashboards", "error", err)
		return
	}

	for i := range entries {
		e := &entries[i]

		history, err := w.store.GetPriceHistory(ctx, e.ExternalID)
		if err != nil {
			log.Warn("loading price history for dashboard", "card", e.Label(), "error", err)
			metrics.DashboardUpdatesTotal.WithLabelValues(metrics.OutcomeError).Inc()
			continue
		}

		ref, err := w.presenter.Present(ctx, e, history)
		if err != nil {
			log.Warn("updating dashboard", "card", e.Label(), "error", err)
			metrics.DashboardUpdatesTotal.WithLabelValues(metrics.OutcomeError).Inc()
			continue
		}

		if ref != "" && ref != e.DashboardMessageRef {
			if err := w.store.SetDashboardMessageRef(ctx, e.ExternalID, ref); err != nil {
				log.Warn("saving dashboard message ref", "card", e.Label(), "error", err)
			}
		}
		metrics.DashboardUpdatesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	}
}

// ScrapeOnce prices a single printing in its own browser session,
// independent of any running cycle. The result is persisted when persist
// is true and the analysis succeeded.
func (w *Watcher) ScrapeOnce(
	ctx context.Context,
	externalID string,
	persist bool,
) (*domain.AnalysisResult, error) {
	ctx, span := w.tracer.Start(ctx, "watcher.scrape_once",
		trace.WithAttributes(attribute.String("card.external_id", externalID)),
	)
	defer span.End()

	card, err := w.resolver.Describe(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("resolving card %s: %w", externalID, err)
	}

	session, err := w.launcher.Launch(ctx)
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			w.log.Warn("closing browser session", "error", err)
		}
	}()

	pages, err := browser.OpenPages(ctx, session, w.pages)
	if err != nil {
		return nil, fmt.Errorf("opening browser pages: %w", err)
	}

	result := w.analyzer.Analyze(ctx, pages, card)
	if result.Error != "" || !persist {
		return result, nil
	}

	if err := w.store.SaveScrapeData(ctx, externalID, result); err != nil {
		metrics.PersistenceFailuresTotal.Inc()
		return result, fmt.Errorf("saving price history: %w", err)
	}
	metrics.HistoryPointsTotal.Inc()

	return result, nil
}
