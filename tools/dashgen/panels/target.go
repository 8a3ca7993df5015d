package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate returns a timeseries panel showing the Target API call rate
// split by host.
func APICallsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("API Calls Rate").
		Description("Target API calls per second by host").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`tgt:target_api_calls:rate5m`, "{{host}}", "A")).
		WithTarget(PromQuery(`tgt:target_api_errors:rate5m`, "{{host}} errors", "B")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// APILatency returns a timeseries panel showing the p95 Target API call
// duration.
func APILatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("API Latency (p95)").
		Description("95th percentile Target API call duration by host").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(tgt_target_api_call_duration_seconds_bucket`+JobSelector()+`[5m])) by (le, host))`,
			"{{host}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DailyUsage returns a timeseries panel showing the rolling 24h Target API
// usage with a threshold line at dailyLimit.
func DailyUsage(dailyLimit int) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Daily Usage vs Limit").
		Description(fmt.Sprintf("Rolling 24h Target API call count (limit: %d)", dailyLimit)).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery("tgt_target_daily_usage"+JobSelector(), "usage", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(float64(dailyLimit)*0.8, float64(dailyLimit))).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LimitHits returns a stat panel showing the number of daily limit hits
// in the past 24 hours.
func LimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Limit Hits (24h)").
		Description("Times the daily Target API limit was reached in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery("increase(tgt_target_daily_limit_hits_total"+JobSelector()+"[24h])", "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
