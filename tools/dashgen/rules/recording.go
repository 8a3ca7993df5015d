package rules

// RecordingRules returns the pre-computed rates the dashboard and alert
// rules read.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("tgt-recording-rules", "tgt-recording",
		record("tgt:http_requests:rate5m",
			`sum(rate(tgt_http_requests_total[5m]))`),
		record("tgt:http_errors:rate5m",
			`sum(rate(tgt_http_requests_total{status=~"5.."}[5m]))`),
		record("tgt:target_api_calls:rate5m",
			`sum(rate(tgt_target_api_calls_total[5m])) by (host)`),
		record("tgt:target_api_errors:rate5m",
			`sum(rate(tgt_target_api_calls_total{status!~"2.."}[5m])) by (host)`),
		record("tgt:watch_checks:rate5m",
			`sum(rate(tgt_watch_checks_total[5m])) by (result)`),
		record("tgt:watch_errors:rate5m",
			`sum(rate(tgt_watch_checks_total{result="error"}[5m]))`),
		record("tgt:notification_duration:p95_5m",
			`histogram_quantile(0.95, sum(rate(tgt_notification_duration_seconds_bucket[5m])) by (le))`),
	)
}
