package client

import (
	"context"
	"net/url"

	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// LocationList is the response of the location and store listing endpoints.
type LocationList struct {
	Locations []domain.Location `json:"locations"`
	Count     int               `json:"count"`
}

// Locations lists registry locations, optionally of one type
// (STORE, VENDOR, SELLER).
func (c *Client) Locations(ctx context.Context, locType string) (*LocationList, error) {
	q := url.Values{}
	if locType != "" {
		q.Set("type", locType)
	}

	var resp LocationList
	if err := c.get(ctx, "/api/v1/locations", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FindStores lists stores whose name contains query. An empty query lists
// every store.
func (c *Client) FindStores(ctx context.Context, query string, caseSensitive bool) (*LocationList, error) {
	q := url.Values{}
	if query != "" {
		q.Set("q", query)
	}
	if caseSensitive {
		q.Set("case_sensitive", "true")
	}

	var resp LocationList
	if err := c.get(ctx, "/api/v1/stores", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Store returns a single store by id.
func (c *Client) Store(ctx context.Context, id string) (*domain.Location, error) {
	var loc domain.Location
	if err := c.get(ctx, "/api/v1/stores/"+url.PathEscape(id), nil, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// RefreshLocations asks the server to reload the location registry and
// returns the new location count.
func (c *Client) RefreshLocations(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := c.post(ctx, "/api/v1/locations/refresh", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
