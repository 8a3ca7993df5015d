package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/target-inventory/internal/metrics"
)

const tracerName = "github.com/donaldgifford/target-inventory/internal/transport"

// Client implements Fetcher over net/http.
type Client struct {
	apiKey      string
	baseURLs    map[Host]string
	client      *http.Client
	rateLimiter *RateLimiter
	log         *slog.Logger
	tracer      trace.Tracer
}

// Option configures the Client.
type Option func(*Client)

// WithCatalogURL overrides the catalog host base URL.
func WithCatalogURL(u string) Option {
	return func(c *Client) {
		c.baseURLs[CatalogHost] = u
	}
}

// WithAggregationURL overrides the aggregation host base URL.
func WithAggregationURL(u string) Option {
	return func(c *Client) {
		c.baseURLs[AggregationHost] = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithTimeout sets the timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithRateLimiter injects a rate limiter. When set, every Get call goes
// through Wait first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// WithLogger sets the logger used for request debugging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithTracerProvider sets the provider used for client spans. Defaults to the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// New creates a transport client that injects apiKey into every request.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey: apiKey,
		baseURLs: map[Host]string{
			CatalogHost:     DefaultCatalogURL,
			AggregationHost: DefaultAggregationURL,
		},
		client: &http.Client{Timeout: 30 * time.Second},
		log:    slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get implements Fetcher.Get. The caller's params are never modified.
func (c *Client) Get(
	ctx context.Context,
	host Host,
	endpoint string,
	params url.Values,
) (json.RawMessage, error) {
	base, ok := c.baseURLs[host]
	if !ok {
		return nil, fmt.Errorf("unknown host %q", host)
	}

	ctx, span := c.tracer.Start(ctx, "target.get",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("target.host", string(host)),
			attribute.String("target.endpoint", endpoint),
		),
	)
	defer span.End()

	body, err := c.get(ctx, host, base, endpoint, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return body, nil
}

func (c *Client) get(
	ctx context.Context,
	host Host,
	base, endpoint string,
	params url.Values,
) (json.RawMessage, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.TargetDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.TargetDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	q := url.Values{}
	for k, v := range params {
		q[k] = append([]string(nil), v...)
	}
	q.Set("key", c.apiKey)

	u := JoinURL(base, endpoint) + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.TargetAPICallDuration.WithLabelValues(string(host)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TargetAPICallsTotal.WithLabelValues(string(host), "error").Inc()
		return nil, fmt.Errorf("executing request to %s: %w", endpoint, redactKey(err))
	}
	defer resp.Body.Close()

	metrics.TargetAPICallsTotal.WithLabelValues(string(host), strconv.Itoa(resp.StatusCode)).Inc()
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.log.Debug("target api call",
		"host", host,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Host:       host,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: %w", endpoint, ErrMalformedBody)
	}

	return json.RawMessage(body), nil
}

// redactKey strips the request URL from url.Error so the API key never
// reaches logs or callers.
func redactKey(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s: %w", ue.Op, ue.Err)
	}
	return err
}
