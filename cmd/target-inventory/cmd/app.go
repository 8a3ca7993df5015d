package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/donaldgifford/target-inventory/internal/config"
	"github.com/donaldgifford/target-inventory/internal/redsky"
	"github.com/donaldgifford/target-inventory/internal/transport"
	"github.com/donaldgifford/target-inventory/pkg/logger"
)

// app holds what every command builds from the config file.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	limiter *transport.RateLimiter
	target  *redsky.Client
}

func loadApp() (*app, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Logging.Level
	if l := viper.GetString("log_level"); l != "" {
		level = l
	}
	log := logger.New(level, cfg.Logging.Format)

	a := &app{cfg: cfg, log: log}
	a.limiter, a.target = newTarget(&cfg.Target, log)
	return a, nil
}

// newTarget wires the transport, rate limiter and query façade. Transport
// spans go to the global tracer provider installed by tracing.Setup.
func newTarget(cfg *config.TargetConfig, log *slog.Logger) (*transport.RateLimiter, *redsky.Client) {
	rl := transport.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst, cfg.RateLimit.DailyLimit)

	tc := transport.New(cfg.APIKey,
		transport.WithCatalogURL(cfg.CatalogURL),
		transport.WithAggregationURL(cfg.AggregationURL),
		transport.WithTimeout(cfg.Timeout),
		transport.WithRateLimiter(rl),
		transport.WithLogger(log),
	)

	return rl, redsky.New(tc,
		redsky.WithDefaultPricingStore(cfg.DefaultStoreID),
		redsky.WithVisitorID(cfg.VisitorID),
		redsky.WithLogger(log),
	)
}
