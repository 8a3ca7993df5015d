// Package middleware provides Echo middleware for the target-inventory server.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/target-inventory/internal/metrics"
)

// Probe and scrape endpoints are excluded from request metrics.
var metricsSkipPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status
// against the route template, so /api/v1/products/{tcin}/availability is one
// series regardless of tcin. Probe paths only update their up/down gauge.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := routePath(c)

			if _, skip := metricsSkipPaths[path]; skip {
				err := next(c)
				updateHealthGauge(path, c.Response().Status)
				return err
			}

			start := time.Now()
			err := next(c)

			status := strconv.Itoa(responseStatus(c, err))
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

// routePath returns the matched route template, or "unmatched" for requests
// that hit no route, keeping arbitrary URLs out of the label set.
func routePath(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	if _, ok := metricsSkipPaths[c.Request().URL.Path]; ok {
		return c.Request().URL.Path
	}
	return "unmatched"
}

// responseStatus reports the status the client will see. Errors returned
// before the response is committed are rendered later by Echo's error
// handler, so their status comes from the error itself.
func responseStatus(c echo.Context, err error) int {
	if err != nil && !c.Response().Committed {
		if he, ok := err.(*echo.HTTPError); ok { //nolint:errorlint // echo returns the concrete type
			return he.Code
		}
		return http.StatusInternalServerError
	}
	return c.Response().Status
}

func updateHealthGauge(path string, status int) {
	gauge, ok := healthGauges[path]
	if !ok {
		return
	}

	if status >= 200 && status < 300 {
		gauge.Set(1)
	} else {
		gauge.Set(0)
	}
}
