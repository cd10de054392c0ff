package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/mtg-price-tracker/internal/adapters"
	"github.com/donaldgifford/mtg-price-tracker/internal/analyzer"
	"github.com/donaldgifford/mtg-price-tracker/internal/browser"
	"github.com/donaldgifford/mtg-price-tracker/internal/config"
	"github.com/donaldgifford/mtg-price-tracker/internal/engine"
	"github.com/donaldgifford/mtg-price-tracker/internal/notify"
	"github.com/donaldgifford/mtg-price-tracker/internal/scryfall"
	"github.com/donaldgifford/mtg-price-tracker/internal/store"
)

// app holds the wired core shared by serve and scrape.
type app struct {
	store     *store.SQLStore
	catalog   *scryfall.Client
	watcher   *engine.Watcher
	scheduler *engine.Scheduler
}

func openStore(ctx context.Context, db *config.DatabaseConfig, log *slog.Logger) (*store.SQLStore, error) {
	switch db.Driver {
	case config.DriverPostgres:
		log.Info("opening postgres store", "host", db.Host, "database", db.Name)
		return store.OpenPostgres(ctx, db.DSN(), db.PoolSize, store.WithLogger(log))
	default:
		log.Info("opening sqlite store", "path", db.Path)
		return store.OpenSQLite(ctx, db.Path, store.WithLogger(log))
	}
}

func newPresenter(d *config.DashboardConfig, log *slog.Logger) notify.Presenter {
	if d.Discord.Enabled && d.Discord.WebhookURL != "" {
		log.Info("discord dashboard enabled")
		return notify.NewDiscordPresenter(d.Discord.WebhookURL, notify.WithLogger(log))
	}
	log.Info("no dashboard configured")
	return notify.NewNoOpPresenter(log)
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app, error) {
	s, err := openStore(ctx, &cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	if err := s.Migrate(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	catalog, err := scryfall.NewClient(
		scryfall.WithBaseURL(cfg.Scryfall.BaseURL),
		scryfall.WithUserAgent(cfg.Scryfall.UserAgent),
		scryfall.WithTimeout(cfg.Scryfall.Timeout),
		scryfall.WithRateLimit(cfg.Scryfall.PerSecond, cfg.Scryfall.Burst),
		scryfall.WithCacheSize(cfg.Scryfall.CacheSize),
		scryfall.WithLogger(log),
	)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating scryfall client: %w", err)
	}

	list, err := adapters.Build(cfg.Vendors.Enabled, catalog,
		adapters.WithTimeouts(adapters.Timeouts{
			Navigation: cfg.Vendors.NavigationTimeout,
			Listing:    cfg.Vendors.ListingTimeout,
			Signal:     cfg.Vendors.SignalTimeout,
		}),
		adapters.WithLogger(log),
	)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("building vendor adapters: %w", err)
	}

	az := analyzer.New(list,
		analyzer.WithAdapterTimeout(cfg.Vendors.AdapterTimeout),
		analyzer.WithLogger(log),
	)

	launcher := browser.NewChromeLauncher(
		browser.WithHeadless(cfg.Browser.IsHeadless()),
		browser.WithExecPath(cfg.Browser.ExecPath),
		browser.WithUserAgent(cfg.Browser.UserAgent),
		browser.WithLogger(log),
	)

	w := engine.NewWatcher(s, catalog, az, launcher,
		engine.WithLogger(log),
		engine.WithPresenter(newPresenter(&cfg.Dashboard, log)),
		engine.WithPages(cfg.Browser.Pages),
		engine.WithItemDelay(cfg.Watcher.ItemDelay),
	)

	sched, err := engine.NewScheduler(w, cfg.Watcher.Interval, cfg.Watcher.StartupDelay, log)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}

	log.Info("vendors enabled", "vendors", az.Vendors())

	return &app{store: s, catalog: catalog, watcher: w, scheduler: sched}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
