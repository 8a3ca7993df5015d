package main

import "errors"

// KnownMetrics is the set of metric names exported by target-inventory
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"tgt_http_request_duration_seconds": true,
	"tgt_http_requests_total":           true,

	// Health metrics.
	"tgt_healthz_up": true,
	"tgt_readyz_up":  true,

	// Target API metrics.
	"tgt_target_api_calls_total":           true,
	"tgt_target_api_call_duration_seconds": true,
	"tgt_target_daily_usage":               true,
	"tgt_target_daily_limit_hits_total":    true,

	// Location registry and resolution metrics.
	"tgt_registry_fetches_total":  true,
	"tgt_registry_locations":      true,
	"tgt_resolution_misses_total": true,

	// Watch metrics.
	"tgt_watch_checks_total":           true,
	"tgt_watch_cycle_duration_seconds": true,

	// Alert metrics.
	"tgt_alerts_fired_total":            true,
	"tgt_notification_failures_total":   true,
	"tgt_notification_duration_seconds": true,

	// Recording rules.
	"tgt:http_requests:rate5m":         true,
	"tgt:http_errors:rate5m":           true,
	"tgt:target_api_calls:rate5m":      true,
	"tgt:target_api_errors:rate5m":     true,
	"tgt:watch_checks:rate5m":          true,
	"tgt:watch_errors:rate5m":          true,
	"tgt:notification_duration:p95_5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool

	// DailyLimit drives the quota panels and alerts. It should match
	// target.rate_limit.daily_limit in the server config.
	DailyLimit int
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
		DailyLimit:       5000,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	if c.DailyLimit <= 0 {
		return errors.New("daily limit must be positive")
	}
	return nil
}
