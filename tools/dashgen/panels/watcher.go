package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// WatcherRunning returns a stat panel showing whether a cycle is in progress.
func WatcherRunning() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Cycle Running").
		Description("1 while a watcher cycle is in progress").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`max(mpt_watcher_running{job="`+Job+`"})`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// NextCycle returns a stat panel showing time until the next scheduled cycle.
func NextCycle() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Cycle").
		Description("Time until the next scheduled watcher cycle").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`max(mpt_next_cycle_timestamp{job="`+Job+`"}) - time()`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}

// CycleDuration returns a timeseries panel showing the p95 cycle duration.
func CycleDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cycle Duration (p95)").
		Description("95th percentile duration of a full watchlist pass").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(P95("mpt_cycle_duration_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ItemOutcomes returns a timeseries panel showing per-card outcomes per
// hour, stacked by outcome.
func ItemOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cards / hour").
		Description("Watchlist entries processed per hour by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`mpt:cycle_items:rate1h`, "{{outcome}}", "A")).
		FillOpacity(30).
		LineWidth(1).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// ItemDuration returns a timeseries panel showing the p95 time to scrape one
// card across every vendor.
func ItemDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Per-card Duration (p95)").
		Description("95th percentile time to scrape one printing across all vendors").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(P95("mpt_item_duration_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(60, 120)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
