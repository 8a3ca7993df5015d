package rules

import "fmt"

// AlertRules returns the operational alerts for target-inventory. Quota
// alerts fire at 80% of dailyLimit.
func AlertRules(dailyLimit int) PrometheusRule {
	warnAt := dailyLimit * 8 / 10

	return newPrometheusRule("tgt-alerts", "tgt-alerts",
		alert("TgtDown",
			`absent(up{job="target-inventory"})`, "2m", SeverityCritical,
			"Target Inventory is down",
			"The target-inventory job has been absent for more than 2 minutes."),
		alert("TgtReadinessDown",
			`tgt_readyz_up == 0`, "5m", SeverityCritical,
			"Target Inventory cannot load the location registry",
			"The readiness probe has been reporting not-ready for more than 5 minutes."),
		alert("TgtHighErrorRate",
			`tgt:http_errors:rate5m / tgt:http_requests:rate5m > 0.05`, "5m", SeverityWarning,
			"High HTTP error rate on Target Inventory",
			"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
		alert("TgtTargetAPIErrors",
			`sum(tgt:target_api_errors:rate5m) / sum(tgt:target_api_calls:rate5m) > 0.1`, "10m", SeverityWarning,
			"Target API calls are failing",
			"More than 10% of Target API calls have returned a non-2xx status for 10 minutes."),
		alert("TgtWatchErrors",
			`tgt:watch_errors:rate5m > 0`, "15m", SeverityWarning,
			"Stock watch checks are failing",
			"Watch cycles have been producing check errors for more than 15 minutes."),
		alert("TgtQuotaHigh",
			fmt.Sprintf(`tgt_target_daily_usage > %d`, warnAt), "5m", SeverityWarning,
			"Target API daily usage is above 80% of the quota",
			fmt.Sprintf("Daily Target API usage has exceeded %d calls (limit is %d).", warnAt, dailyLimit)),
		alert("TgtLimitReached",
			`increase(tgt_target_daily_limit_hits_total[5m]) > 0`, "0m", SeverityCritical,
			"Target API daily limit has been reached",
			"The configured daily Target API quota is exhausted. Queries fail until the window rolls over."),
		alert("TgtNotificationFailures",
			`increase(tgt_notification_failures_total[5m]) > 0`, "1m", SeverityWarning,
			"Notification delivery failures detected",
			"One or more stock alerts (Discord webhooks) have failed to send."),
	)
}
