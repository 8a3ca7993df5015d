// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/target-inventory/tools/dashgen/panels"
)

// UID is the stable dashboard identifier.
const UID = "tgt-overview"

// BuildOverview constructs the Target Inventory overview dashboard.
// dailyLimit scales the quota panels.
func BuildOverview(dailyLimit int) *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Target Inventory Overview").
		Uid(UID).
		Tags([]string{"tgt", "target-inventory"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge(dailyLimit)).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Target API.
	b.WithRow(dashboard.NewRowBuilder("Target API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APILatency()).
		WithPanel(panels.DailyUsage(dailyLimit)).
		WithPanel(panels.LimitHits()))

	// Row 4: Locations.
	b.WithRow(dashboard.NewRowBuilder("Locations").
		WithPanel(panels.RegistryLocations()).
		WithPanel(panels.RegistryFetches()).
		WithPanel(panels.ResolutionMisses()))

	// Row 5: Watches.
	b.WithRow(dashboard.NewRowBuilder("Watches").
		WithPanel(panels.WatchChecks()).
		WithPanel(panels.CycleDuration()))

	// Row 6: Alerts.
	b.WithRow(dashboard.NewRowBuilder("Alerts").
		WithPanel(panels.AlertsRate()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
