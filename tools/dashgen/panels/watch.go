package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// WatchChecks returns a timeseries panel showing watch check results.
func WatchChecks() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Watch Checks").
		Description("Stock checks per second by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`tgt:watch_checks:rate5m`, "{{result}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CycleDuration returns a timeseries panel showing watch cycle duration
// percentiles.
func CycleDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cycle Duration").
		Description("Watch cycle duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(quantile("0.50", "tgt_watch_cycle_duration_seconds_bucket"), "p50", "A")).
		WithTarget(PromQuery(quantile("0.95", "tgt_watch_cycle_duration_seconds_bucket"), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
