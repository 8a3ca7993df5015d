package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListWatches(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"Not Found","detail":"store 999 not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Store(context.Background(), "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 404)")
	assert.Contains(t, err.Error(), "store 999 not found")
	assert.True(t, IsNotFound(err))
}

func TestClient_Requests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		method    string
		path      string
		query     map[string]string
		response  any
		call      func(*Client) (any, error)
		checkFunc func(t *testing.T, got any)
	}{
		{
			name:     "locations by type",
			method:   http.MethodGet,
			path:     "/api/v1/locations",
			query:    map[string]string{"type": "VENDOR"},
			response: LocationList{Locations: []domain.Location{{ID: "552"}}, Count: 1},
			call: func(c *Client) (any, error) {
				return c.Locations(context.Background(), "VENDOR")
			},
			checkFunc: func(t *testing.T, got any) {
				t.Helper()
				assert.Equal(t, 1, got.(*LocationList).Count)
			},
		},
		{
			name:     "find stores case sensitive",
			method:   http.MethodGet,
			path:     "/api/v1/stores",
			query:    map[string]string{"q": "San", "case_sensitive": "true"},
			response: LocationList{Locations: []domain.Location{{ID: "3991"}, {ID: "1"}}, Count: 2},
			call: func(c *Client) (any, error) {
				return c.FindStores(context.Background(), "San", true)
			},
			checkFunc: func(t *testing.T, got any) {
				t.Helper()
				assert.Len(t, got.(*LocationList).Locations, 2)
			},
		},
		{
			name:     "store by id",
			method:   http.MethodGet,
			path:     "/api/v1/stores/3991",
			response: domain.Location{ID: "3991", Name: "San Francisco Central"},
			call: func(c *Client) (any, error) {
				return c.Store(context.Background(), "3991")
			},
			checkFunc: func(t *testing.T, got any) {
				t.Helper()
				assert.Equal(t, "San Francisco Central", got.(*domain.Location).Name)
			},
		},
		{
			name:     "refresh locations",
			method:   http.MethodPost,
			path:     "/api/v1/locations/refresh",
			response: map[string]any{"status": "refreshed", "count": 1900},
			call: func(c *Client) (any, error) {
				return c.RefreshLocations(context.Background())
			},
			checkFunc: func(t *testing.T, got any) {
				t.Helper()
				assert.Equal(t, 1900, got)
			},
		},
		{
			name:     "search in store",
			method:   http.MethodGet,
			path:     "/api/v1/search",
			query:    map[string]string{"q": "lego", "store_id": "3991", "store_search": "true", "page": "2"},
			response: SearchResponse{Products: []domain.Product{{TCIN: "1"}}, Count: 1},
			call: func(c *Client) (any, error) {
				return c.Search(context.Background(), &SearchParams{Query: "lego", StoreID: "3991", StoreSearch: true, Page: 2})
			},
			checkFunc: func(t *testing.T, got any) {
				t.Helper()
				assert.Equal(t, "1", got.(*SearchResponse).Products[0].TCIN)
			},
		},
		{
			name:     "online availability",
			method:   http.MethodGet,
			path:     "/api/v1/products/81114477/availability",
			response: domain.OnlineProduct{Product: domain.Product{TCIN: "81114477"}},
			call: func(c *Client) (any, error) {
				return c.OnlineAvailability(context.Background(), "81114477")
			},
			checkFunc: func(t *testing.T, got any) {
				t.Helper()
				assert.Equal(t, "81114477", got.(*domain.OnlineProduct).TCIN)
			},
		},
		{
			name:     "store availability",
			method:   http.MethodGet,
			path:     "/api/v1/products/B/stores/3991",
			response: domain.StoreProduct{Product: domain.Product{TCIN: "B"}, VariantOf: "A"},
			call: func(c *Client) (any, error) {
				return c.StoreAvailability(context.Background(), "B", "3991")
			},
			checkFunc: func(t *testing.T, got any) {
				t.Helper()
				assert.True(t, got.(*domain.StoreProduct).IsVariant())
			},
		},
		{
			name:     "nearby availability",
			method:   http.MethodGet,
			path:     "/api/v1/products/1/nearby",
			query:    map[string]string{"nearby_store": "3991"},
			response: domain.Availability{Status: "IN_STOCK"},
			call: func(c *Client) (any, error) {
				return c.NearbyAvailability(context.Background(), "1", "3991")
			},
			checkFunc: func(t *testing.T, got any) {
				t.Helper()
				assert.Equal(t, "IN_STOCK", got.(*domain.Availability).Status)
			},
		},
		{
			name:     "check watches",
			method:   http.MethodPost,
			path:     "/api/v1/watches/check",
			response: CheckResult{Checks: []domain.StockCheck{{InStock: true}}, InStock: 1},
			call: func(c *Client) (any, error) {
				return c.CheckWatches(context.Background())
			},
			checkFunc: func(t *testing.T, got any) {
				t.Helper()
				assert.Equal(t, 1, got.(*CheckResult).InStock)
			},
		},
		{
			name:   "quota",
			method: http.MethodGet,
			path:   "/api/v1/quota",
			response: Quota{
				DailyLimit: 5000, DailyUsed: 142, Remaining: 4858,
				ResetAt: time.Date(2025, 6, 16, 14, 30, 0, 0, time.UTC),
			},
			call: func(c *Client) (any, error) {
				return c.GetQuota(context.Background())
			},
			checkFunc: func(t *testing.T, got any) {
				t.Helper()
				q := got.(*Quota)
				assert.Equal(t, int64(4858), q.Remaining)
				assert.Equal(t, 2025, q.ResetAt.Year())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.method, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				for k, v := range tt.query {
					assert.Equal(t, v, r.URL.Query().Get(k), k)
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(tt.response)
			}))
			defer srv.Close()

			got, err := tt.call(New(srv.URL + "/"))
			require.NoError(t, err)
			tt.checkFunc(t, got)
		})
	}
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
