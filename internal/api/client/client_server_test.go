package client_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/target-inventory/internal/api"
	"github.com/donaldgifford/target-inventory/internal/api/client"
	"github.com/donaldgifford/target-inventory/internal/api/handlers/mocks"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

type fakeTarget struct {
	*mocks.MockLocationService
	*mocks.MockProductService
}

func (f fakeTarget) StoreByID(ctx context.Context, id string) (*domain.Location, error) {
	return f.MockLocationService.StoreByID(ctx, id)
}

// TestClient_AgainstServer checks the client's paths and response types
// against the real handlers.
func TestClient_AgainstServer(t *testing.T) {
	t.Parallel()

	sf := domain.Location{ID: "3991", Name: "San Francisco Central", Type: domain.LocationStore}

	locs := mocks.NewMockLocationService(t)
	prods := mocks.NewMockProductService(t)
	locs.EXPECT().FindStores(mock.Anything, "san").Return([]domain.Location{sf}, nil).Once()
	locs.EXPECT().StoreByID(mock.Anything, "3991").Return(&sf, nil).Once()
	locs.EXPECT().StoreByID(mock.Anything, "404").Return(nil, nil).Once()
	prods.EXPECT().StoreAvailability(mock.Anything, "B", sf).
		Return(&domain.StoreProduct{Product: domain.Product{TCIN: "B"}, VariantOf: "A", Store: &sf}, nil).Once()

	e, _ := api.NewServer(fakeTarget{MockLocationService: locs, MockProductService: prods})
	srv := httptest.NewServer(e)
	defer srv.Close()

	c := client.New(srv.URL)
	ctx := context.Background()

	stores, err := c.FindStores(ctx, "san", false)
	require.NoError(t, err)
	assert.Equal(t, 1, stores.Count)
	assert.Equal(t, "3991", stores.Locations[0].ID)

	p, err := c.StoreAvailability(ctx, "B", "3991")
	require.NoError(t, err)
	assert.Equal(t, "A", p.VariantOf)
	assert.Equal(t, "San Francisco Central", p.Store.Name)

	_, err = c.Store(ctx, "404")
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))

	q, err := c.GetQuota(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), q.Remaining)
}
