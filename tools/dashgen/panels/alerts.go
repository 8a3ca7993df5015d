package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AlertsRate returns a timeseries panel showing the rate of stock alerts
// fired.
func AlertsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Stock Alerts Rate").
		Description("Rate of in-stock alerts fired per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery("sum(rate(tgt_alerts_fired_total"+JobSelector()+"[5m]))", "alerts/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// NotificationLatency returns a timeseries panel showing the p95 notification
// webhook latency.
func NotificationLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Notification Latency (p95)").
		Description("95th percentile Discord webhook latency").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`tgt:notification_duration:p95_5m`, "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// NotificationFailures returns a stat panel showing notification failures
// in the past 24 hours.
func NotificationFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Notification Failures (24h)").
		Description("Failed alert notification deliveries in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery("increase(tgt_notification_failures_total"+JobSelector()+"[24h])", "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
