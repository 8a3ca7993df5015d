package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RegistryLocations returns a stat panel showing the size of the loaded
// location registry.
func RegistryLocations() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Known Locations").
		Description("Locations in the current registry snapshot").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery("tgt_registry_locations"+JobSelector(), "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// RegistryFetches returns a timeseries panel showing registry fetches by
// result.
func RegistryFetches() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Registry Fetches").
		Description("Ship location fetches by result (success, empty, error)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			"sum(increase(tgt_registry_fetches_total"+JobSelector()+"[1h])) by (result)",
			"{{result}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// ResolutionMisses returns a timeseries panel showing lookups that resolved
// to nothing, split by kind (location or variant).
func ResolutionMisses() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Resolution Misses").
		Description("Location ids missing from the registry and tcins matching no variant").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			"sum(rate(tgt_resolution_misses_total"+JobSelector()+"[5m])) by (kind)",
			"{{kind}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
