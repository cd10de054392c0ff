package cmd

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/mtg-price-tracker/internal/api/handlers"
	mw "github.com/donaldgifford/mtg-price-tracker/internal/api/middleware"
	"github.com/donaldgifford/mtg-price-tracker/internal/config"
)

// newServer builds the Echo instance with probes, metrics and the typed
// /api/v1 operations. The OpenAPI document is served at /openapi.json and
// interactive docs at /docs.
func newServer(a *app, cfg *config.ServerConfig, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	// Recovery runs innermost so the logged and counted status is the 500
	// it writes.
	e.Use(mw.Metrics())
	e.Use(mw.RequestLog(log))
	e.Use(mw.Recovery(log))

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(a.store))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("MTG Price Tracker API", Version)
	humaCfg.Info.Description = "Watchlist management, price history and watcher control."
	api := humaecho.New(e, humaCfg)

	handlers.RegisterWatcherRoutes(api, handlers.NewWatcherHandler(a.watcher, a.scheduler))
	handlers.RegisterWatchlistRoutes(api, handlers.NewWatchlistHandler(a.store, a.catalog))
	handlers.RegisterHistoryRoutes(api, handlers.NewHistoryHandler(a.store))
	handlers.RegisterPrintingsRoutes(api, handlers.NewPrintingsHandler(a.catalog))
	handlers.RegisterScrapeRoutes(api, handlers.NewScrapeHandler(a.watcher))

	return e
}
