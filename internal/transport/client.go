// Package transport issues keyed GET requests against the Target catalog and
// aggregation hosts, abstracted behind an interface for testability.
package transport

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// Host selects which Target API surface a request is sent to.
type Host string

const (
	// CatalogHost serves locations and nearby availability.
	CatalogHost Host = "catalog"
	// AggregationHost serves the redsky search and product aggregations.
	AggregationHost Host = "aggregation"
)

// Default base URLs for each host.
const (
	DefaultCatalogURL     = "https://api.target.com/"
	DefaultAggregationURL = "https://redsky.target.com/"
)

// Fetcher performs a GET against one host and returns the decoded-but-raw
// JSON body.
type Fetcher interface {
	Get(ctx context.Context, host Host, endpoint string, params url.Values) (json.RawMessage, error)
}

// JoinURL joins a base URL and an endpoint with exactly one slash between them.
func JoinURL(base, endpoint string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(endpoint, "/")
}
