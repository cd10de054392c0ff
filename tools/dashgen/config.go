package main

import "errors"

// KnownMetrics is the set of metric names exported by mtg-price-tracker
// plus recording rule names referenced in dashboards and alerts. Histogram
// series suffixes are resolved against the base name.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"mpt_http_request_duration_seconds": true,
	"mpt_http_requests_total":           true,

	// Health metrics.
	"mpt_healthy": true,
	"mpt_ready":   true,

	// Watcher metrics.
	"mpt_cycle_duration_seconds": true,
	"mpt_cycles_total":           true,
	"mpt_cycle_items_total":      true,
	"mpt_item_duration_seconds":  true,
	"mpt_watchlist_size":         true,
	"mpt_watcher_running":        true,
	"mpt_next_cycle_timestamp":   true,

	// Vendor metrics.
	"mpt_vendor_quotes_total":     true,
	"mpt_vendor_duration_seconds": true,

	// Reference catalog metrics.
	"mpt_scryfall_requests_total":   true,
	"mpt_scryfall_cache_hits_total": true,

	// Persistence and dashboard metrics.
	"mpt_persistence_failures_total": true,
	"mpt_history_points_total":       true,
	"mpt_dashboard_updates_total":    true,

	// Recording rules.
	"mpt:http_requests:rate5m":  true,
	"mpt:http_errors:rate5m":    true,
	"mpt:cycle_items:rate1h":    true,
	"mpt:vendor_quotes:rate1h":  true,
	"mpt:vendor_errors:ratio6h": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
