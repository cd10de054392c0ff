// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/mtg-price-tracker/tools/dashgen/panels"
)

// BuildOverview constructs the MPT Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("MPT Overview").
		Uid("mpt-overview").
		Tags([]string{"mpt", "mtg-price-tracker"}).
		Refresh("1m").
		Time("now-24h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthyStat()).
		WithPanel(panels.ReadyStat()).
		WithPanel(panels.WatchlistSize()).
		WithPanel(panels.UptimeStat()))

	// Row 2: Watcher.
	b.WithRow(dashboard.NewRowBuilder("Watcher").
		WithPanel(panels.WatcherRunning()).
		WithPanel(panels.NextCycle()).
		WithPanel(panels.CycleDuration()).
		WithPanel(panels.ItemOutcomes()).
		WithPanel(panels.ItemDuration()))

	// Row 3: Vendors.
	b.WithRow(dashboard.NewRowBuilder("Vendors").
		WithPanel(panels.VendorFailureRatio()).
		WithPanel(panels.VendorQuotes()).
		WithPanel(panels.VendorLatency()))

	// Row 4: Catalog and storage.
	b.WithRow(dashboard.NewRowBuilder("Catalog & Storage").
		WithPanel(panels.ScryfallRequests()).
		WithPanel(panels.HistoryPoints()).
		WithPanel(panels.PersistenceFailures()).
		WithPanel(panels.DashboardUpdates()))

	// Row 5: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
