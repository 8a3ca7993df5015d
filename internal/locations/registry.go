// Package locations provides a lazily fetched, memoized registry of Target
// ship locations (stores, vendors and seller locations).
package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/target-inventory/internal/jsonx"
	"github.com/donaldgifford/target-inventory/internal/metrics"
	"github.com/donaldgifford/target-inventory/internal/transport"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// Endpoint is the catalog-host path of the ship locations list.
const Endpoint = "ship_locations/v1"

type wireLocation struct {
	LocationID   jsonx.String  `json:"location_id"`
	LocationName string        `json:"location_name"`
	LocationType string        `json:"location_type"`
	AddressLine1 string        `json:"address_line_1"`
	City         string        `json:"city"`
	Region       string        `json:"region"`
	PostalCode   jsonx.String  `json:"postal_code"`
	Latitude     jsonx.Decimal `json:"latitude"`
	Longitude    jsonx.Decimal `json:"longitude"`
	IsActive     jsonx.Bool    `json:"is_active"`
	OBGDEnabled  jsonx.Bool    `json:"obgd_enabled"`
	Phone        jsonx.String  `json:"phone"`
}

func toLocation(w wireLocation) domain.Location {
	return domain.Location{
		ID:          string(w.LocationID),
		Name:        w.LocationName,
		Type:        domain.LocationType(w.LocationType),
		Address:     w.AddressLine1,
		City:        w.City,
		Region:      w.Region,
		ZipCode:     string(w.PostalCode),
		Latitude:    w.Latitude.Decimal,
		Longitude:   w.Longitude.Decimal,
		Active:      bool(w.IsActive),
		OBGDEnabled: bool(w.OBGDEnabled),
		PhoneNumber: string(w.Phone),
	}
}

// Lookup resolves a location id against a fixed snapshot without I/O.
type Lookup interface {
	StoreByID(id string) *domain.Location
}

// Registry memoizes the ship locations list after the first successful,
// non-empty fetch. It is safe for concurrent use.
type Registry struct {
	fetcher transport.Fetcher
	log     *slog.Logger
	group   singleflight.Group

	mu         sync.RWMutex
	locations  []domain.Location
	loaded     bool
	generation uint64
}

// Option configures the Registry.
type Option func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		r.log = l
	}
}

// New creates a registry that fetches through fetcher on first use.
func New(fetcher transport.Fetcher, opts ...Option) *Registry {
	r := &Registry{
		fetcher: fetcher,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Locations returns every known location in registry order. A failed or
// empty fetch returns an empty slice and leaves the registry unloaded so the
// next call fetches again.
func (r *Registry) Locations(ctx context.Context) ([]domain.Location, error) {
	locs, err := r.load(ctx)
	if err != nil {
		return []domain.Location{}, err
	}
	return slices.Clone(locs), nil
}

// Stores returns locations of type STORE.
func (r *Registry) Stores(ctx context.Context) ([]domain.Location, error) {
	return r.ofType(ctx, domain.LocationStore)
}

// Vendors returns locations of type VENDOR.
func (r *Registry) Vendors(ctx context.Context) ([]domain.Location, error) {
	return r.ofType(ctx, domain.LocationVendor)
}

// Sellers returns locations of type SELLER_LOCATION.
func (r *Registry) Sellers(ctx context.Context) ([]domain.Location, error) {
	return r.ofType(ctx, domain.LocationSeller)
}

// StoreByID returns the store with the given id, or nil when absent.
func (r *Registry) StoreByID(ctx context.Context, id string) (*domain.Location, error) {
	locs, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return storeByID(locs, id), nil
}

type findOptions struct {
	caseSensitive bool
}

// FindOption configures FindStores.
type FindOption func(*findOptions)

// CaseSensitive makes FindStores match names exactly as written.
func CaseSensitive() FindOption {
	return func(o *findOptions) {
		o.caseSensitive = true
	}
}

// FindStores returns every store whose name contains substr, in registry
// order. Matching ignores case unless CaseSensitive is given.
func (r *Registry) FindStores(ctx context.Context, substr string, opts ...FindOption) ([]domain.Location, error) {
	var o findOptions
	for _, opt := range opts {
		opt(&o)
	}

	stores, err := r.Stores(ctx)
	if err != nil {
		return stores, err
	}

	needle := substr
	if !o.caseSensitive {
		needle = strings.ToLower(substr)
	}
	return lo.Filter(stores, func(l domain.Location, _ int) bool {
		if o.caseSensitive {
			return strings.Contains(l.Name, needle)
		}
		return strings.Contains(strings.ToLower(l.Name), needle)
	}), nil
}

// Invalidate drops the memoized snapshot. A fetch already in flight will
// not repopulate it.
func (r *Registry) Invalidate() {
	r.mu.Lock()
	r.locations = nil
	r.loaded = false
	r.generation++
	r.mu.Unlock()
	r.group.Forget(Endpoint)
	metrics.RegistryLocations.Set(0)
}

// Refresh invalidates the snapshot and fetches it again.
func (r *Registry) Refresh(ctx context.Context) ([]domain.Location, error) {
	r.Invalidate()
	return r.Locations(ctx)
}

// Snapshot returns a Lookup over the current stores. A fetch failure yields
// an empty lookup.
func (r *Registry) Snapshot(ctx context.Context) Lookup {
	locs, err := r.load(ctx)
	if err != nil {
		r.log.Warn("location registry unavailable, store references will not resolve", "error", err)
		return snapshot{}
	}
	return StaticLookup(locs)
}

func (r *Registry) ofType(ctx context.Context, t domain.LocationType) ([]domain.Location, error) {
	locs, err := r.load(ctx)
	if err != nil {
		return []domain.Location{}, err
	}
	return lo.Filter(locs, func(l domain.Location, _ int) bool { return l.Type == t }), nil
}

func (r *Registry) cached() ([]domain.Location, uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locations, r.generation, r.loaded
}

func (r *Registry) load(ctx context.Context) ([]domain.Location, error) {
	if locs, _, ok := r.cached(); ok {
		return locs, nil
	}

	// The shared fetch outlives any single caller; each caller still honors
	// its own cancellation while waiting.
	fetchCtx := context.WithoutCancel(ctx)
	ch := r.group.DoChan(Endpoint, func() (any, error) {
		locs, gen, ok := r.cached()
		if ok {
			return locs, nil
		}
		return r.fetch(fetchCtx, gen)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.Location), nil
	}
}

func (r *Registry) fetch(ctx context.Context, gen uint64) ([]domain.Location, error) {
	raw, err := r.fetcher.Get(ctx, transport.CatalogHost, Endpoint, nil)
	if err != nil {
		metrics.RegistryFetchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("fetching locations: %w", err)
	}

	var wire []wireLocation
	if err := json.Unmarshal(raw, &wire); err != nil {
		metrics.RegistryFetchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("decoding locations: %w: %w", domain.ErrSchemaMismatch, err)
	}

	locs := lo.Map(wire, func(w wireLocation, _ int) domain.Location { return toLocation(w) })
	if len(locs) == 0 {
		metrics.RegistryFetchesTotal.WithLabelValues("empty").Inc()
		r.log.Warn("location registry fetch returned no locations")
		return locs, nil
	}

	r.mu.Lock()
	if r.generation == gen {
		r.locations = locs
		r.loaded = true
		metrics.RegistryLocations.Set(float64(len(locs)))
	}
	r.mu.Unlock()

	metrics.RegistryFetchesTotal.WithLabelValues("success").Inc()
	r.log.Debug("location registry loaded", "locations", len(locs))
	return locs, nil
}

func storeByID(locs []domain.Location, id string) *domain.Location {
	l, ok := lo.Find(locs, func(l domain.Location) bool {
		return l.IsStore() && l.ID == id
	})
	if !ok {
		return nil
	}
	return &l
}

type snapshot struct {
	byID map[string]domain.Location
}

func (s snapshot) StoreByID(id string) *domain.Location {
	l, ok := s.byID[id]
	if !ok {
		return nil
	}
	return &l
}

// StaticLookup builds a Lookup over a fixed list of locations.
func StaticLookup(locs []domain.Location) Lookup {
	stores := lo.Filter(locs, func(l domain.Location, _ int) bool { return l.IsStore() })
	return snapshot{
		byID: lo.SliceToMap(stores, func(l domain.Location) (string, domain.Location) {
			return l.ID, l
		}),
	}
}
