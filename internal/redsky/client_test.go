package redsky_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/target-inventory/internal/locations"
	"github.com/donaldgifford/target-inventory/internal/redsky"
	"github.com/donaldgifford/target-inventory/internal/transport"
	"github.com/donaldgifford/target-inventory/internal/transport/mocks"
	"github.com/donaldgifford/target-inventory/pkg/logger"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

func newClient(t *testing.T, f transport.Fetcher) *redsky.Client {
	t.Helper()
	return redsky.New(f,
		redsky.WithVisitorID("VISITOR"),
		redsky.WithLogger(logger.Discard()),
	)
}

func expectGet(f *mocks.MockFetcher, host transport.Host, endpoint, body string) *mocks.MockFetcher_Get_Call {
	return f.EXPECT().
		Get(mock.Anything, host, endpoint, mock.Anything).
		Return(json.RawMessage(body), nil)
}

func expectShipLocations(f *mocks.MockFetcher) *mocks.MockFetcher_Get_Call {
	return expectGet(f, transport.CatalogHost, locations.Endpoint, shipLocations)
}

var sanFrancisco = domain.Location{ID: "3991", Name: "San Francisco Central", Type: domain.LocationStore}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	f.EXPECT().
		Get(mock.Anything, transport.AggregationHost, redsky.EndpointSearch, mock.Anything).
		Run(func(_ context.Context, _ transport.Host, _ string, params url.Values) {
			assert.Equal(t, "lego", params.Get("keyword"))
			assert.Equal(t, "1", params.Get("pageNumber"))
			assert.Equal(t, "false", params.Get("storeSearch"))
			assert.Equal(t, "relevance", params.Get("sortBy"))
			assert.Equal(t, "digital", params.Get("pricing_context"))
			assert.Equal(t, redsky.DefaultPricingStoreID, params.Get("pricing_store_id"))
			assert.Equal(t, "WEB", params.Get("channel"))
			assert.Equal(t, "/s/lego", params.Get("page"))
			assert.Equal(t, "VISITOR", params.Get("visitor_id"))
			assert.False(t, params.Has("storeId"))
		}).
		Return(json.RawMessage(searchResponse), nil).Once()

	products, err := newClient(t, f).Search(context.Background(), redsky.SearchRequest{Keyword: "lego"})
	require.NoError(t, err)

	require.Len(t, products, 3)
	assert.Equal(t, []string{"81114477", "123", "456"}, []string{products[0].TCIN, products[1].TCIN, products[2].TCIN})

	p := products[0]
	assert.Equal(t, "087-10-1234", p.DPCI)
	assert.Equal(t, "673419340304", p.UPC)
	assert.Equal(t, "LEGO Star Wars Millennium Falcon 75257", p.Name)
	assert.Equal(t, "READY_FOR_LAUNCH", p.State)
	assert.Equal(t, "Building Sets", p.ItemType)
	assert.Equal(t, "Each", p.UnitOfMeasure)
	assert.Equal(t, &domain.Price{Price: "$159.99", Type: "reg"}, p.Price)
	assert.Equal(t, &domain.OnlineInfo{Availability: "IN_STOCK", InStorePickup: "AVAILABLE", FreeShipping: true}, p.Online)
	assert.Equal(t, []domain.Promotion{{ID: "PROMO-1", LocationID: "3991", Channel: "STORE", Message: "Save 20%"}}, p.Promotions)
	require.Len(t, p.Features, 2)
	assert.Equal(t, "Pieces: 1351", p.Features[0].String())
	assert.Equal(t, []domain.Video{{Title: "Build video", Links: []string{"https://example.test/v.mp4"}}}, p.Videos)
	assert.False(t, p.HasRecall)
	assert.True(t, p.CanBuy)
	assert.True(t, p.StorePickup)
	assert.True(t, p.ShipFromStore)
	require.NotNil(t, p.LaunchDate)
	assert.Equal(t, time.Date(2019, 10, 1, 0, 0, 0, 0, time.UTC), *p.LaunchDate)

	require.NotNil(t, p.Reviews)
	assert.Equal(t, 412, p.Reviews.Count)
	assert.InDelta(t, 4.8, p.Reviews.Average, 0.0001)
	assert.Equal(t, map[int]int{1: 3, 2: 1, 3: 6, 4: 40, 5: 362}, p.Reviews.Stars)
	require.Len(t, p.Reviews.MostHelpful, 1)
	assert.Equal(t, 5, p.Reviews.MostHelpful[0].Rating)
	assert.Equal(t, time.Date(2023, 7, 4, 18, 22, 5, 0, time.UTC), p.Reviews.MostHelpful[0].SubmittedAt)

	// Sparse records degrade to nil objects and empty lists.
	w := products[1]
	assert.Nil(t, w.Price)
	assert.Nil(t, w.Online)
	assert.Nil(t, w.Reviews)
	assert.Nil(t, w.LaunchDate)
	assert.NotNil(t, w.Promotions)
	assert.Empty(t, w.Promotions)
	assert.NotNil(t, w.Features)
	assert.NotNil(t, w.Videos)

	assert.Equal(t, "001-02-0003", products[2].DPCI)
}

func TestClient_Search_SingleProduct(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	expectGet(f, transport.AggregationHost, redsky.EndpointSearch, `{"products":[{"tcin":"123","title":"Widget"}]}`).Once()

	products, err := newClient(t, f).Search(context.Background(), redsky.SearchRequest{Keyword: "widget"})
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "123", products[0].TCIN)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Nil(t, products[0].Price)
}

func TestClient_Search_ReviewsWithoutStars(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	expectGet(f, transport.AggregationHost, redsky.EndpointSearch,
		`{"products":[{"tcin":"123","title":"Widget","reviews":{"count":0}}]}`).Once()

	products, err := newClient(t, f).Search(context.Background(), redsky.SearchRequest{Keyword: "widget"})
	require.NoError(t, err)

	require.Len(t, products, 1)
	require.NotNil(t, products[0].Reviews)
	assert.Equal(t, 0, products[0].Reviews.Count)
	assert.Nil(t, products[0].Reviews.Stars)
}

func TestClient_Search_InStore(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	f.EXPECT().
		Get(mock.Anything, transport.AggregationHost, redsky.EndpointSearch, mock.Anything).
		Run(func(_ context.Context, _ transport.Host, _ string, params url.Values) {
			assert.Equal(t, "in_store", params.Get("pricing_context"))
			assert.Equal(t, "3991", params.Get("pricing_store_id"))
			assert.Equal(t, "3991", params.Get("storeId"))
			assert.Equal(t, "true", params.Get("storeSearch"))
			assert.Equal(t, "PriceLow", params.Get("sortBy"))
			assert.Equal(t, "3", params.Get("pageNumber"))
		}).
		Return(json.RawMessage(`{"products":[]}`), nil).Once()

	store := sanFrancisco
	products, err := newClient(t, f).Search(context.Background(), redsky.SearchRequest{
		Keyword:     "socks",
		Store:       &store,
		StoreSearch: true,
		SortBy:      "PriceLow",
		Page:        3,
	})
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestClient_Search_Degenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		keyword string
		body    string
		err     error
		wantErr error
		noCall  bool
	}{
		{name: "empty keyword makes no call", keyword: "  ", noCall: true},
		{name: "missing products key is a redirect", keyword: "toys", body: `{"category":"toys"}`},
		{name: "null products is a redirect", keyword: "toys", body: `{"products":null}`},
		{name: "404 is no data", keyword: "toys", err: &transport.StatusError{StatusCode: http.StatusNotFound}},
		{name: "array payload is a schema mismatch", keyword: "toys", body: `[]`, wantErr: domain.ErrSchemaMismatch},
		{
			name:    "bad review date is a schema mismatch",
			keyword: "toys",
			body:    `{"products":[{"tcin":"1","reviews":{"mostHelpful":[{"submissionTime":"yesterday"}]}}]}`,
			wantErr: domain.ErrSchemaMismatch,
		},
		{name: "transport failure is returned", keyword: "toys", err: errors.New("connection reset"), wantErr: errTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := mocks.NewMockFetcher(t)
			if !tt.noCall {
				call := f.EXPECT().Get(mock.Anything, transport.AggregationHost, redsky.EndpointSearch, mock.Anything)
				if tt.err != nil {
					call.Return(nil, tt.err).Once()
				} else {
					call.Return(json.RawMessage(tt.body), nil).Once()
				}
			}

			products, err := newClient(t, f).Search(context.Background(), redsky.SearchRequest{Keyword: tt.keyword})
			switch {
			case tt.wantErr == errTransport:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.err)
				assert.Contains(t, err.Error(), "searching")
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.NotNil(t, products)
				assert.Empty(t, products)
			}
		})
	}
}

// errTransport marks table cases that expect the injected transport error.
var errTransport = errors.New("transport")

func TestClient_OnlineAvailability(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	f.EXPECT().
		Get(mock.Anything, transport.AggregationHost, redsky.EndpointFulfillment, mock.Anything).
		Run(func(_ context.Context, _ transport.Host, _ string, params url.Values) {
			assert.Equal(t, "81114477", params.Get("tcin"))
			assert.Equal(t, "false", params.Get("is_bot"))
			assert.Equal(t, "digital", params.Get("pricing_context"))
			assert.Equal(t, redsky.DefaultPricingStoreID, params.Get("pricing_store_id"))
		}).
		Return(json.RawMessage(onlineResponse), nil).Once()
	expectShipLocations(f).Once()

	p, err := newClient(t, f).OnlineAvailability(context.Background(), "81114477")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "81114477", p.TCIN)
	assert.Equal(t, "$159.99", p.Price.Price)

	a := p.Availability
	require.NotNil(t, a)
	assert.Equal(t, "AVAILABLE - IN_STOCK", a.String())
	assert.False(t, a.LimitedQuantity)
	assert.Equal(t, 230, *a.TotalQuantity)
	assert.Equal(t, 120, *a.OnlineQuantity)
	assert.Equal(t, 110, *a.InStoreQuantity)
	assert.Nil(t, a.PreorderQuantity)
	require.NotNil(t, a.ReleaseDate)
	assert.Equal(t, "2019-10-01T00:00:00.000Z", a.ReleaseDate.Format(redsky.AvailabilityLayout))
	assert.Nil(t, a.BackorderStartDate)

	require.Len(t, a.Locations, 2)

	known := a.Locations[0]
	assert.Equal(t, "3991", known.LocationID)
	assert.Equal(t, 4, known.OnHand)
	assert.Equal(t, "1.5", known.Demand.String())
	assert.Equal(t, "0.5", known.SoftDemand.String())
	assert.Equal(t, "2", known.WalkInReserve.String())
	require.NotNil(t, known.Store)
	assert.Equal(t, "San Francisco Central", known.Store.Name)

	// Unknown location: store stays nil, every other field is populated.
	unknown := a.Locations[1]
	assert.Equal(t, "999", unknown.LocationID)
	assert.Nil(t, unknown.Store)
	assert.Equal(t, 7, unknown.OnHand)
	assert.Equal(t, "2", unknown.Demand.String())
	assert.Equal(t, "LIMITED_STOCK", unknown.Status)
}

func TestClient_OnlineAvailability_NoData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		err  error
	}{
		{name: "empty data", body: `{"data":{}}`},
		{name: "no data key", body: `{}`},
		{name: "404", err: &transport.StatusError{StatusCode: http.StatusNotFound}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := mocks.NewMockFetcher(t)
			call := f.EXPECT().Get(mock.Anything, transport.AggregationHost, redsky.EndpointFulfillment, mock.Anything)
			if tt.err != nil {
				call.Return(nil, tt.err).Once()
			} else {
				call.Return(json.RawMessage(tt.body), nil).Once()
			}

			p, err := newClient(t, f).OnlineAvailability(context.Background(), "1")
			require.NoError(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestClient_OnlineAvailability_RegistryDown(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	expectGet(f, transport.AggregationHost, redsky.EndpointFulfillment, onlineResponse).Once()
	f.EXPECT().
		Get(mock.Anything, transport.CatalogHost, locations.Endpoint, mock.Anything).
		Return(nil, errors.New("registry unavailable")).Once()

	p, err := newClient(t, f).OnlineAvailability(context.Background(), "81114477")
	require.NoError(t, err)
	require.NotNil(t, p)

	for _, loc := range p.Availability.Locations {
		assert.Nil(t, loc.Store)
	}
}

func TestClient_OnlineAvailability_MissingLocationID(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	expectGet(f, transport.AggregationHost, redsky.EndpointFulfillment,
		`{"data":{"product":{"tcin":"1","fulfillment":{"locations":[{"onhand_quantity":3}]}}}}`).Once()
	expectShipLocations(f).Once()

	_, err := newClient(t, f).OnlineAvailability(context.Background(), "1")
	require.ErrorIs(t, err, domain.ErrMissingIdentity)
}

func TestClient_StoreAvailability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		tcin        string
		wantNil     bool
		wantName    string
		wantVariant string
	}{
		{name: "parent tcin returns parent", tcin: "A", wantName: "Crew Socks"},
		{name: "child tcin returns child", tcin: "B", wantName: "Crew Socks - Small", wantVariant: "A"},
		{name: "unrelated tcin returns nil", tcin: "Z", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := mocks.NewMockFetcher(t)
			f.EXPECT().
				Get(mock.Anything, transport.AggregationHost, redsky.EndpointStore, mock.Anything).
				Run(func(_ context.Context, _ transport.Host, _ string, params url.Values) {
					assert.Equal(t, tt.tcin, params.Get("tcin"))
					assert.Equal(t, "in_store", params.Get("pricing_context"))
					assert.Equal(t, "3991", params.Get("store_id"))
					assert.Equal(t, "3991", params.Get("pricing_store_id"))
					assert.Equal(t, "3991", params.Get("scheduled_delivery_store_id"))
				}).
				Return(json.RawMessage(storeResponse), nil).Once()
			expectShipLocations(f).Once()

			got, err := newClient(t, f).StoreAvailability(context.Background(), tt.tcin, sanFrancisco)
			require.NoError(t, err)

			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.tcin, got.TCIN)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantVariant, got.VariantOf)
			require.NotNil(t, got.Store)
			assert.Equal(t, "3991", got.Store.ID)
		})
	}
}

func TestClient_StoreAvailability_ChildDetails(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	expectGet(f, transport.AggregationHost, redsky.EndpointStore, storeResponse).Once()
	expectShipLocations(f).Once()

	got, err := newClient(t, f).StoreAvailability(context.Background(), "B", sanFrancisco)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "$8.00", got.Price.Price)
	require.NotNil(t, got.Availability)
	assert.Equal(t, 4, *got.Availability.InStoreQuantity)
	require.Len(t, got.Availability.Locations, 1)
	require.NotNil(t, got.Availability.Locations[0].Store)
	assert.Equal(t, "San Francisco Central", got.Availability.Locations[0].Store.Name)
}

func TestClient_StoreAvailability_ParentCarriesVariants(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	expectGet(f, transport.AggregationHost, redsky.EndpointStore, storeResponse).Once()
	expectShipLocations(f).Once()

	got, err := newClient(t, f).StoreAvailability(context.Background(), "A", sanFrancisco)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.False(t, got.IsVariant())
	require.Len(t, got.Variants, 2)
	assert.Equal(t, "B", got.Variants[0].TCIN)
	assert.Equal(t, "C", got.Variants[1].TCIN)
	assert.Nil(t, got.Variants[1].Availability)
}

func TestClient_StoreAvailability_MissingIdentity(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	c := newClient(t, f)

	_, err := c.StoreAvailability(context.Background(), "", sanFrancisco)
	require.ErrorIs(t, err, domain.ErrMissingIdentity)

	_, err = c.StoreAvailability(context.Background(), "A", domain.Location{})
	require.ErrorIs(t, err, domain.ErrMissingIdentity)
}

func TestClient_StoreAvailability_NoLocationsSkipsRegistry(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	expectGet(f, transport.AggregationHost, redsky.EndpointStore,
		`{"data":{"product":{"tcin":"A","fulfillment":{"availability_status":"OUT_OF_STOCK"}}}}`).Once()

	got, err := newClient(t, f).StoreAvailability(context.Background(), "A", sanFrancisco)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "OUT_OF_STOCK", got.Availability.Status)
}

func TestClient_NearbyAvailability(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	f.EXPECT().
		Get(mock.Anything, transport.CatalogHost, redsky.EndpointNearby+"81114477", mock.Anything).
		Run(func(_ context.Context, _ transport.Host, _ string, params url.Values) {
			assert.Equal(t, "ALL", params.Get("inventory_type"))
			assert.Equal(t, "ALL", params.Get("multichannel_option"))
			assert.Equal(t, "55403", params.Get("nearby_store"))
		}).
		Return(json.RawMessage(nearbyResponse), nil).Once()
	expectShipLocations(f).Once()

	a, err := newClient(t, f).NearbyAvailability(context.Background(), "81114477", redsky.NearbyRequest{NearbyStore: "55403"})
	require.NoError(t, err)
	require.NotNil(t, a)

	assert.Equal(t, "IN_STOCK", a.Status)
	assert.Equal(t, 18, *a.TotalQuantity)
	require.Len(t, a.Locations, 2)
	assert.Equal(t, "Minneapolis Nicollet Mall", a.Locations[1].Store.Name)
}

func TestClient_NearbyAvailability_Empty(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	f.EXPECT().
		Get(mock.Anything, transport.CatalogHost, redsky.EndpointNearby+"1", mock.Anything).
		Run(func(_ context.Context, _ transport.Host, _ string, params url.Values) {
			assert.Equal(t, "STORE", params.Get("inventory_type"))
			assert.False(t, params.Has("nearby_store"))
		}).
		Return(json.RawMessage(`{"products":[]}`), nil).Once()

	a, err := newClient(t, f).NearbyAvailability(context.Background(), "1", redsky.NearbyRequest{InventoryType: "STORE"})
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestClient_RegistryDelegates(t *testing.T) {
	t.Parallel()

	f := mocks.NewMockFetcher(t)
	expectShipLocations(f).Times(2)

	c := newClient(t, f)
	ctx := context.Background()

	stores, err := c.Stores(ctx)
	require.NoError(t, err)
	assert.Len(t, stores, 2)

	vendors, err := c.Vendors(ctx)
	require.NoError(t, err)
	assert.Len(t, vendors, 1)

	sellers, err := c.Sellers(ctx)
	require.NoError(t, err)
	assert.Empty(t, sellers)

	store, err := c.StoreByID(ctx, "2468")
	require.NoError(t, err)
	require.NotNil(t, store)

	found, err := c.FindStores(ctx, "central")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "3991", found[0].ID)

	all, err := c.RefreshLocations(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
