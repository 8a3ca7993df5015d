package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// SearchParams defines query parameters for product search.
type SearchParams struct {
	Query       string
	StoreID     string
	StoreSearch bool
	SortBy      string
	Page        int
}

// SearchResponse is the response of the search endpoint.
type SearchResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

// Search runs a keyword search through the server.
func (c *Client) Search(ctx context.Context, params *SearchParams) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("q", params.Query)
	if params.StoreID != "" {
		q.Set("store_id", params.StoreID)
	}
	if params.StoreSearch {
		q.Set("store_search", "true")
	}
	if params.SortBy != "" {
		q.Set("sort_by", params.SortBy)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}

	var resp SearchResponse
	if err := c.get(ctx, "/api/v1/search", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OnlineAvailability returns a product's online availability.
func (c *Client) OnlineAvailability(ctx context.Context, tcin string) (*domain.OnlineProduct, error) {
	var p domain.OnlineProduct
	if err := c.get(ctx, "/api/v1/products/"+url.PathEscape(tcin)+"/availability", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// StoreAvailability returns the store-scoped record for a product or variant.
func (c *Client) StoreAvailability(ctx context.Context, tcin, storeID string) (*domain.StoreProduct, error) {
	path := "/api/v1/products/" + url.PathEscape(tcin) + "/stores/" + url.PathEscape(storeID)

	var p domain.StoreProduct
	if err := c.get(ctx, path, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// NearbyAvailability returns the available-to-promise record around a store.
func (c *Client) NearbyAvailability(ctx context.Context, tcin, nearbyStore string) (*domain.Availability, error) {
	q := url.Values{}
	if nearbyStore != "" {
		q.Set("nearby_store", nearbyStore)
	}

	var a domain.Availability
	if err := c.get(ctx, "/api/v1/products/"+url.PathEscape(tcin)+"/nearby", q, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
