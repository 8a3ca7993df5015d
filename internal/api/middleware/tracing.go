package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/donaldgifford/target-inventory/internal/api"

// Tracing returns Echo middleware that starts a server span per API request,
// continuing any trace propagated by the caller. Probe and scrape paths are
// not traced. A nil provider uses the global one.
func Tracing(tp trace.TracerProvider) echo.MiddlewareFunc {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(tracerName)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, skip := metricsSkipPaths[c.Request().URL.Path]; skip {
				return next(c)
			}

			req := c.Request()
			ctx := otel.GetTextMapPropagator().Extract(req.Context(), propagation.HeaderCarrier(req.Header))

			route := routePath(c)
			ctx, span := tracer.Start(ctx, fmt.Sprintf("%s %s", req.Method, route),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", req.Method),
					attribute.String("http.route", route),
					attribute.String("url.path", req.URL.Path),
				),
			)
			defer span.End()

			c.SetRequest(req.WithContext(ctx))
			if id, ok := c.Get(requestIDKey).(string); ok {
				span.SetAttributes(attribute.String("request.id", id))
			}

			err := next(c)

			status := responseStatus(c, err)
			span.SetAttributes(attribute.Int("http.response.status_code", status))
			if status >= 500 {
				span.SetStatus(codes.Error, fmt.Sprintf("status %d", status))
			}
			if err != nil {
				span.RecordError(err)
			}
			return err
		}
	}
}
