package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

func upStat(title, description, metric string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(metric+`{job="`+Job+`"}`, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthyStat returns a stat panel showing the liveness probe status.
func HealthyStat() *stat.PanelBuilder {
	return upStat("Healthy", "Liveness probe status (1 = ok, 0 = failing)", "mpt_healthy")
}

// ReadyStat returns a stat panel showing the readiness probe status.
func ReadyStat() *stat.PanelBuilder {
	return upStat("Ready", "Readiness probe status (1 = ready, 0 = database unreachable)", "mpt_ready")
}

// WatchlistSize returns a stat panel showing the number of tracked printings.
func WatchlistSize() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Watchlist").
		Description("Printings tracked at the start of the last cycle").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`max(mpt_watchlist_size{job="`+Job+`"})`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// UptimeStat returns a stat panel showing process uptime.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since process start").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`time() - process_start_time_seconds{job="`+Job+`"}`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
