// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// Config is the top-level application configuration.
type Config struct {
	Target        TargetConfig        `yaml:"target"`
	Server        ServerConfig        `yaml:"server"`
	Watch         WatchConfig         `yaml:"watch"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Tracing       TracingConfig       `yaml:"tracing"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// TargetConfig defines Target API settings.
type TargetConfig struct {
	APIKey         string          `yaml:"api_key"`
	CatalogURL     string          `yaml:"catalog_url"`
	AggregationURL string          `yaml:"aggregation_url"`
	DefaultStoreID string          `yaml:"default_store_id"` // pricing store for digital queries
	VisitorID      string          `yaml:"visitor_id"`       // generated per process when empty
	Timeout        time.Duration   `yaml:"timeout"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines Target API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"` // 0 disables the daily quota
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// WatchConfig defines the stock watch schedule and watched items.
type WatchConfig struct {
	Interval time.Duration  `yaml:"interval"`
	Stagger  time.Duration  `yaml:"stagger"`
	Items    []domain.Watch `yaml:"items"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// TracingConfig defines OpenTelemetry export settings.
type TracingConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"` // OTLP/gRPC collector, host:port
	Insecure    bool   `yaml:"insecure"`
	ServiceName string `yaml:"service_name"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. Variables missing from the environment are
// looked up in a .env file next to the config file, then in the working
// directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	dotenv := readDotEnv(filepath.Join(filepath.Dir(path), ".env"), ".env")
	expanded := os.Expand(string(data), func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	})

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// readDotEnv merges the given .env files, earlier files winning. Missing or
// unreadable files are skipped.
func readDotEnv(paths ...string) map[string]string {
	out := map[string]string{}
	for _, p := range paths {
		vals, err := godotenv.Read(p)
		if err != nil {
			continue
		}
		for k, v := range vals {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return out
}

// Addr returns the listen address for the HTTP server.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func applyDefaults(cfg *Config) {
	applyTargetDefaults(&cfg.Target)
	applyServerDefaults(&cfg.Server)
	applyWatchDefaults(&cfg.Watch)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyTargetDefaults(t *TargetConfig) {
	if t.CatalogURL == "" {
		t.CatalogURL = "https://api.target.com/"
	}
	if t.AggregationURL == "" {
		t.AggregationURL = "https://redsky.target.com/"
	}
	if t.DefaultStoreID == "" {
		t.DefaultStoreID = "1928"
	}
	if t.Timeout == 0 {
		t.Timeout = 30 * time.Second
	}
	applyRateLimitDefaults(&t.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 2.0
	}
	if r.Burst == 0 {
		r.Burst = 5
	}
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyWatchDefaults(w *WatchConfig) {
	if w.Interval == 0 {
		w.Interval = 15 * time.Minute
	}
	if w.Stagger == 0 {
		w.Stagger = 2 * time.Second
	}
	for i := range w.Items {
		if w.Items[i].DesiredQuantity == 0 {
			w.Items[i].DesiredQuantity = 1
		}
		if w.Items[i].Name == "" {
			w.Items[i].Name = w.Items[i].TCIN
		}
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "target-inventory"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Target.APIKey == "" {
		errs = append(errs, fmt.Errorf("target.api_key is required"))
	}
	if cfg.Target.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("target.rate_limit.per_second must not be negative"))
	}
	if cfg.Target.RateLimit.DailyLimit < 0 {
		errs = append(errs, fmt.Errorf("target.rate_limit.daily_limit must not be negative"))
	}

	if cfg.Watch.Interval < time.Minute {
		errs = append(errs, fmt.Errorf("watch.interval must be at least 1m (got %s)", cfg.Watch.Interval))
	}
	if cfg.Watch.Stagger < 0 || cfg.Watch.Stagger >= cfg.Watch.Interval {
		errs = append(errs, fmt.Errorf("watch.stagger must be between 0 and watch.interval (got %s)", cfg.Watch.Stagger))
	}
	for i, w := range cfg.Watch.Items {
		if w.TCIN == "" {
			errs = append(errs, fmt.Errorf("watch.items[%d].tcin is required", i))
		}
		if w.StoreID == "" {
			errs = append(errs, fmt.Errorf("watch.items[%d].store_id is required", i))
		}
		if w.DesiredQuantity < 1 {
			errs = append(errs, fmt.Errorf("watch.items[%d].desired_quantity must be at least 1", i))
		}
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		errs = append(errs, fmt.Errorf("tracing.endpoint is required when tracing is enabled"))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be one of: text, json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
