// Package redsky queries the Target search and availability aggregations
// and maps their responses into domain types.
package redsky

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/donaldgifford/target-inventory/internal/locations"
	"github.com/donaldgifford/target-inventory/internal/metrics"
	"github.com/donaldgifford/target-inventory/internal/transport"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// API endpoints.
const (
	EndpointSearch      = "redsky_aggregations/v1/web/plp_search_v1"
	EndpointFulfillment = "redsky_aggregations/v1/web_platform/product_fulfillment_v1"
	EndpointStore       = "redsky_aggregations/v1/web/pdp_client_v1"
	EndpointNearby      = "available_to_promise/v2/"
)

const (
	defaultSortBy  = "relevance"
	defaultChannel = "WEB"
	inventoryAll   = "ALL"
)

// SearchRequest defines the parameters for a product search.
type SearchRequest struct {
	Keyword     string
	Store       *domain.Location // nil searches with digital pricing
	StoreSearch bool             // restrict results to items sold in Store
	SortBy      string           // default "relevance"
	Page        int              // 1-based, default 1
}

// NearbyRequest defines the parameters for a catalog-host availability query.
type NearbyRequest struct {
	NearbyStore   string
	InventoryType string // default "ALL"
	Multichannel  string // default "ALL"
}

// Client is the query façade over the Target API.
type Client struct {
	fetcher        transport.Fetcher
	registry       *locations.Registry
	defaultStoreID string
	visitorID      string
	log            *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithRegistry shares an existing location registry.
func WithRegistry(r *locations.Registry) Option {
	return func(c *Client) {
		c.registry = r
	}
}

// WithDefaultPricingStore overrides the store used for digital pricing.
func WithDefaultPricingStore(id string) Option {
	return func(c *Client) {
		if id != "" {
			c.defaultStoreID = id
		}
	}
}

// WithVisitorID sets the visitor id sent with aggregation queries.
func WithVisitorID(id string) Option {
	return func(c *Client) {
		if id != "" {
			c.visitorID = id
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// New creates a Client. Without WithRegistry it builds its own registry over
// the same fetcher.
func New(fetcher transport.Fetcher, opts ...Option) *Client {
	c := &Client{
		fetcher:        fetcher,
		defaultStoreID: DefaultPricingStoreID,
		visitorID:      strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")),
		log:            slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = locations.New(fetcher, locations.WithLogger(c.log))
	}
	return c
}

// Search returns the products matching req.Keyword in API order. An empty
// keyword returns an empty slice without calling the API.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]domain.Product, error) {
	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		return []domain.Product{}, nil
	}

	sortBy := lo.CoalesceOrEmpty(req.SortBy, defaultSortBy)
	page := max(req.Page, 1)
	pc, pricingStore := pricing(req.Store, c.defaultStoreID)

	params := c.baseParams()
	params.Set("keyword", keyword)
	params.Set("page", "/s/"+keyword)
	params.Set("pageNumber", strconv.Itoa(page))
	params.Set("storeSearch", strconv.FormatBool(req.StoreSearch))
	params.Set("sortBy", sortBy)
	params.Set("pricing_context", string(pc))
	params.Set("pricing_store_id", pricingStore)
	if req.Store != nil {
		params.Set("storeId", req.Store.ID)
	}

	raw, err := c.fetcher.Get(ctx, transport.AggregationHost, EndpointSearch, params)
	if err != nil {
		if transport.IsNotFound(err) {
			return []domain.Product{}, nil
		}
		return nil, fmt.Errorf("searching %q: %w", keyword, err)
	}

	var env searchEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decoding search response: %w: %w", domain.ErrSchemaMismatch, err)
	}
	if env.Products == nil {
		c.log.Warn("search redirected to a category page, try rewording the keyword", "keyword", keyword)
		return []domain.Product{}, nil
	}

	products := make([]domain.Product, 0, len(*env.Products))
	for i := range *env.Products {
		p, err := toProduct(&(*env.Products)[i])
		if err != nil {
			return nil, fmt.Errorf("mapping search result %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// OnlineAvailability returns the digital-context product and fulfillment
// record for tcin, or nil when the API has no data for it.
func (c *Client) OnlineAvailability(ctx context.Context, tcin string) (*domain.OnlineProduct, error) {
	if tcin == "" {
		return nil, fmt.Errorf("online availability: tcin: %w", domain.ErrMissingIdentity)
	}

	pc, pricingStore := pricing(nil, c.defaultStoreID)
	params := c.baseParams()
	params.Set("is_bot", "false")
	params.Set("tcin", tcin)
	params.Set("pricing_context", string(pc))
	params.Set("pricing_store_id", pricingStore)

	w, err := c.getProduct(ctx, EndpointFulfillment, params)
	if err != nil || w == nil {
		return nil, err
	}

	conv := converter{lookup: c.lookupFor(ctx, w)}
	p, err := conv.toOnlineProduct(w)
	if err != nil {
		return nil, fmt.Errorf("mapping online availability for %s: %w", tcin, err)
	}
	return p, nil
}

// StoreAvailability returns the store-scoped record for tcin at store. The
// record may be the product itself or one of its variants; nil means
// neither matched.
func (c *Client) StoreAvailability(ctx context.Context, tcin string, store domain.Location) (*domain.StoreProduct, error) {
	if tcin == "" {
		return nil, fmt.Errorf("store availability: tcin: %w", domain.ErrMissingIdentity)
	}
	if store.ID == "" {
		return nil, fmt.Errorf("store availability: store id: %w", domain.ErrMissingIdentity)
	}

	pc, pricingStore := pricing(&store, c.defaultStoreID)
	params := c.baseParams()
	params.Set("tcin", tcin)
	params.Set("pricing_context", string(pc))
	params.Set("store_id", store.ID)
	params.Set("pricing_store_id", pricingStore)
	params.Set("scheduled_delivery_store_id", store.ID)

	w, err := c.getProduct(ctx, EndpointStore, params)
	if err != nil || w == nil {
		return nil, err
	}

	conv := converter{lookup: c.lookupFor(ctx, w)}
	parent, err := conv.toStoreProduct(w, &store)
	if err != nil {
		return nil, fmt.Errorf("mapping store availability for %s: %w", tcin, err)
	}

	resolved, err := ResolveVariant(tcin, parent)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		metrics.ResolutionMissesTotal.WithLabelValues("variant").Inc()
		c.log.Debug("no product or variant matched tcin", "tcin", tcin, "parent", parent.TCIN, "store", store.ID)
	}
	return resolved, nil
}

// NearbyAvailability returns the catalog-host availability record for tcin,
// or nil when the API has no data for it.
func (c *Client) NearbyAvailability(ctx context.Context, tcin string, req NearbyRequest) (*domain.Availability, error) {
	if tcin == "" {
		return nil, fmt.Errorf("nearby availability: tcin: %w", domain.ErrMissingIdentity)
	}

	params := url.Values{}
	params.Set("inventory_type", lo.CoalesceOrEmpty(req.InventoryType, inventoryAll))
	params.Set("multichannel_option", lo.CoalesceOrEmpty(req.Multichannel, inventoryAll))
	if req.NearbyStore != "" {
		params.Set("nearby_store", req.NearbyStore)
	}

	raw, err := c.fetcher.Get(ctx, transport.CatalogHost, EndpointNearby+url.PathEscape(tcin), params)
	if err != nil {
		if transport.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("nearby availability for %s: %w", tcin, err)
	}

	var env nearbyEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decoding nearby availability: %w: %w", domain.ErrSchemaMismatch, err)
	}
	if len(env.Products) == 0 {
		return nil, nil
	}

	first := &env.Products[0]
	var lookup locations.Lookup
	if len(first.Locations) > 0 {
		lookup = c.registry.Snapshot(ctx)
	}
	a, err := converter{lookup: lookup}.toAvailability(first)
	if err != nil {
		return nil, fmt.Errorf("mapping nearby availability for %s: %w", tcin, err)
	}
	return a, nil
}

// Locations returns every location in the registry.
func (c *Client) Locations(ctx context.Context) ([]domain.Location, error) {
	return c.registry.Locations(ctx)
}

// Stores returns every store in the registry.
func (c *Client) Stores(ctx context.Context) ([]domain.Location, error) {
	return c.registry.Stores(ctx)
}

// Vendors returns every vendor location in the registry.
func (c *Client) Vendors(ctx context.Context) ([]domain.Location, error) {
	return c.registry.Vendors(ctx)
}

// Sellers returns every seller location in the registry.
func (c *Client) Sellers(ctx context.Context) ([]domain.Location, error) {
	return c.registry.Sellers(ctx)
}

// StoreByID returns the store with the given id, or nil.
func (c *Client) StoreByID(ctx context.Context, id string) (*domain.Location, error) {
	return c.registry.StoreByID(ctx, id)
}

// FindStores returns the stores whose name contains substr.
func (c *Client) FindStores(ctx context.Context, substr string, opts ...locations.FindOption) ([]domain.Location, error) {
	return c.registry.FindStores(ctx, substr, opts...)
}

// RefreshLocations drops and refetches the location registry.
func (c *Client) RefreshLocations(ctx context.Context) ([]domain.Location, error) {
	return c.registry.Refresh(ctx)
}

func (c *Client) baseParams() url.Values {
	params := url.Values{}
	params.Set("channel", defaultChannel)
	params.Set("visitor_id", c.visitorID)
	return params
}

// getProduct fetches an aggregation endpoint wrapped in data.product. It
// returns nil, nil for a 404 or an envelope without a product.
func (c *Client) getProduct(ctx context.Context, endpoint string, params url.Values) (*wireProduct, error) {
	tcin := params.Get("tcin")

	raw, err := c.fetcher.Get(ctx, transport.AggregationHost, endpoint, params)
	if err != nil {
		if transport.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching %s for %s: %w", endpoint, tcin, err)
	}

	var env productEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w: %w", endpoint, domain.ErrSchemaMismatch, err)
	}
	if env.Data == nil || env.Data.Product == nil {
		return nil, nil
	}
	return env.Data.Product, nil
}

func (c *Client) lookupFor(ctx context.Context, w *wireProduct) locations.Lookup {
	if !hasLocations(w) {
		return nil
	}
	return c.registry.Snapshot(ctx)
}
