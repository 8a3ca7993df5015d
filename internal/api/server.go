// Package api assembles the Echo server: middleware, the Huma API and the
// operational endpoints.
package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/target-inventory/api/openapi"
	"github.com/donaldgifford/target-inventory/internal/api/handlers"
	"github.com/donaldgifford/target-inventory/internal/api/middleware"
	"github.com/donaldgifford/target-inventory/internal/transport"
	"github.com/donaldgifford/target-inventory/pkg/logger"
)

const title = "Target Inventory API"

// Target is the query façade as served over HTTP. *redsky.Client
// satisfies it.
type Target interface {
	handlers.LocationService
	handlers.ProductService
}

type serverOptions struct {
	log     *slog.Logger
	version string
	limiter *transport.RateLimiter
	watches handlers.WatchRunner
	tp      trace.TracerProvider
}

// Option configures NewServer.
type Option func(*serverOptions)

// WithLogger sets the logger for request logs and panics.
func WithLogger(l *slog.Logger) Option {
	return func(o *serverOptions) {
		o.log = l
	}
}

// WithVersion sets the version reported in the OpenAPI document.
func WithVersion(v string) Option {
	return func(o *serverOptions) {
		o.version = v
	}
}

// WithRateLimiter exposes the transport's quota at /api/v1/quota.
func WithRateLimiter(rl *transport.RateLimiter) Option {
	return func(o *serverOptions) {
		o.limiter = rl
	}
}

// WithWatchRunner enables the /api/v1/watches endpoints.
func WithWatchRunner(r handlers.WatchRunner) Option {
	return func(o *serverOptions) {
		o.watches = r
	}
}

// WithTracerProvider sets the provider for server spans. The global provider
// is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *serverOptions) {
		o.tp = tp
	}
}

// NewServer returns an Echo instance serving the Target API façade.
func NewServer(t Target, opts ...Option) (*echo.Echo, huma.API) {
	o := &serverOptions{
		log:     logger.Discard(),
		version: "dev",
	}
	for _, opt := range opts {
		opt(o)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(o.log))
	e.Use(middleware.RequestLog(o.log))
	e.Use(middleware.Metrics())
	e.Use(middleware.Tracing(o.tp))

	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(t))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig(title, o.version))
	openapi.RegisterRoutes(e, title, "/openapi.json")

	handlers.RegisterLocationRoutes(api, handlers.NewLocationHandler(t))
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(t))
	handlers.RegisterAvailabilityRoutes(api, handlers.NewAvailabilityHandler(t))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(o.limiter))
	if o.watches != nil {
		handlers.RegisterWatchRoutes(api, handlers.NewWatchHandler(o.watches))
	}

	return e, api
}
