package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// VendorFailureRatio returns a bar gauge showing the share of failed quotes
// per vendor over the last day.
func VendorFailureRatio() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Vendor Failure % (24h)").
		Description("Quotes that failed to load as a share of all quotes, per vendor").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(increase(mpt_vendor_quotes_total{job="`+Job+`",outcome="error"}[24h])) by (vendor) / sum(increase(mpt_vendor_quotes_total{job="`+Job+`"}[24h])) by (vendor) * 100`,
			"{{vendor}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsGreenYellowRed(10, 50)).
		ColorScheme(ColorSchemeThresholds())
}

// VendorQuotes returns a timeseries panel showing quote outcomes per vendor.
func VendorQuotes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Quotes / hour").
		Description("Vendor quotes per hour by vendor and outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`mpt:vendor_quotes:rate1h`, "{{vendor}} {{outcome}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// VendorLatency returns a timeseries panel showing p95 page load and
// extraction time per vendor.
func VendorLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Vendor Latency (p95)").
		Description("95th percentile page load and extraction time per vendor").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(P95("mpt_vendor_duration_seconds", "vendor"), "{{vendor}}", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
