// Package metrics defines Prometheus metrics for mtg-price-tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mpt"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"
)

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Watcher cycle metrics.
var (
	CycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cycle_duration_seconds",
		Help:      "Duration of watcher cycles in seconds.",
		Buckets:   prometheus.ExponentialBuckets(30, 2, 10), // 30s .. ~4h
	})

	CyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cycles_total",
		Help:      "Total number of watcher cycle invocations by outcome.",
	}, []string{"outcome"})

	CycleItemsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cycle_items_total",
		Help:      "Total number of watchlist entries processed by outcome.",
	}, []string{"outcome"})

	ItemDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "item_duration_seconds",
		Help:      "Wall time spent per watchlist entry in seconds.",
		Buckets:   prometheus.LinearBuckets(5, 10, 12),
	})

	WatchlistSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "watchlist_size",
		Help:      "Number of entries on the watchlist at the start of the last cycle.",
	})

	WatcherRunning = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "watcher_running",
		Help:      "1 while a watcher cycle is in progress.",
	})

	NextCycleTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "next_cycle_timestamp",
		Help:      "Unix timestamp of the next scheduled watcher cycle.",
	})
)

// Vendor metrics.
var (
	VendorQuotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vendor_quotes_total",
		Help:      "Total number of vendor quotes by vendor and outcome.",
	}, []string{"vendor", "outcome"})

	VendorDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "vendor_duration_seconds",
		Help:      "Duration of a single vendor scrape in seconds.",
		Buckets:   prometheus.LinearBuckets(1, 5, 12),
	}, []string{"vendor"})
)

// Reference catalog metrics.
var (
	ScryfallRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scryfall_requests_total",
		Help:      "Total number of Scryfall API requests by endpoint and status class.",
	}, []string{"endpoint", "status"})

	ScryfallCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scryfall_cache_hits_total",
		Help:      "Total number of printing searches served from cache.",
	})
)

// Persistence and presentation metrics.
var (
	PersistenceFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "persistence_failures_total",
		Help:      "Total number of failed price history writes.",
	})

	HistoryPointsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "history_points_total",
		Help:      "Total number of price history points written.",
	})

	DashboardUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_updates_total",
		Help:      "Total number of dashboard refreshes by outcome.",
	}, []string{"outcome"})
)

// Health metrics.
var (
	HealthyGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthy",
		Help:      "1 if the process is serving.",
	})

	ReadyGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ready",
		Help:      "1 if the store is reachable.",
	})
)
