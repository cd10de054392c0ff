package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ScryfallRequests returns a timeseries panel showing catalog API requests
// by endpoint and status class.
func ScryfallRequests() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Scryfall Requests").
		Description("Reference catalog requests per second by endpoint and status").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(mpt_scryfall_requests_total{job="`+Job+`"}[5m])) by (endpoint, status)`,
			"{{endpoint}} {{status}}", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// HistoryPoints returns a stat panel showing price snapshots written in the
// last day.
func HistoryPoints() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Snapshots (24h)").
		Description("Price history points written in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(increase(mpt_history_points_total{job="`+Job+`"}[24h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// PersistenceFailures returns a timeseries panel showing failed snapshot
// writes.
func PersistenceFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Persistence Failures").
		Description("Snapshot writes that failed, per 5 minutes").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(5).
		WithTarget(PromQuery(
			`sum(increase(mpt_persistence_failures_total{job="`+Job+`"}[5m]))`,
			"failures", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleBars)
}

// DashboardUpdates returns a timeseries panel showing Discord dashboard
// message edits by outcome.
func DashboardUpdates() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Dashboard Updates").
		Description("Discord dashboard message edits per 5 minutes by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(5).
		WithTarget(PromQuery(
			`sum(increase(mpt_dashboard_updates_total{job="`+Job+`"}[5m])) by (outcome)`,
			"{{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}
