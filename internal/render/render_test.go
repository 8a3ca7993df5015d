package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/target-inventory/internal/render"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "Lego", max: 10, want: "Lego"},
		{name: "exact", in: "0123456789", max: 10, want: "0123456789"},
		{name: "long", in: "LEGO Star Wars Millennium Falcon", max: 10, want: "LEGO St..."},
		{name: "multibyte", in: "Café Crème Brûlée", max: 8, want: "Café ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, render.Truncate(tt.in, tt.max))
		})
	}
}

func TestLocations(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := render.Locations(&buf, []domain.Location{
		{ID: "3991", Name: "San Francisco Central", Type: domain.LocationStore, City: "San Francisco", Region: "CA", ZipCode: "94103"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "3991")
	assert.Contains(t, out, "San Francisco Central")
	assert.Contains(t, out, "94103")
}

func TestStoreProduct_Variants(t *testing.T) {
	t.Parallel()

	four := 4
	p := &domain.StoreProduct{
		Product: domain.Product{TCIN: "A", Name: "Crew Socks"},
		Store:   &domain.Location{ID: "3991", Name: "San Francisco Central"},
		Variants: []domain.StoreProduct{
			{
				Product:      domain.Product{TCIN: "B", Name: "Crew Socks - Small", Price: &domain.Price{Price: "$8.00"}},
				Availability: &domain.Availability{Status: "IN_STOCK", InStoreQuantity: &four},
				VariantOf:    "A",
			},
			{Product: domain.Product{TCIN: "C", Name: "Crew Socks - Large"}, VariantOf: "A"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, render.StoreProduct(&buf, p))

	out := buf.String()
	assert.Contains(t, out, "San Francisco Central (3991)")
	assert.Contains(t, out, "Variants:")
	assert.Contains(t, out, "$8.00")
	assert.Contains(t, out, "IN_STOCK")
	assert.NotContains(t, out, "Variant Of:")
}

func TestStockChecks(t *testing.T) {
	t.Parallel()

	w := domain.Watch{Name: "Falcon", TCIN: "81114477", StoreID: "3991", DesiredQuantity: 2}

	var buf bytes.Buffer
	require.NoError(t, render.StockChecks(&buf, []domain.StockCheck{
		{Watch: w, StoreName: "San Francisco Central", OnHand: 3, InStock: true, Found: true},
		{Watch: domain.Watch{Name: "Gone", TCIN: "1", StoreID: "2468", DesiredQuantity: 1}},
	}))

	out := buf.String()
	assert.Contains(t, out, "San Francisco Central")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "2468")
}

func TestAvailability(t *testing.T) {
	t.Parallel()

	five := 5
	sf := &domain.Location{ID: "3991", Name: "San Francisco Central"}

	tests := []struct {
		name     string
		in       *domain.Availability
		wantBody []string
		notBody  []string
	}{
		{
			name:     "nil availability",
			in:       nil,
			wantBody: []string{"Availability:", "-"},
			notBody:  []string{"LOCATION"},
		},
		{
			name: "with locations",
			in: &domain.Availability{
				Status:        "IN_STOCK",
				TotalQuantity: &five,
				Locations: []domain.AvailabilityLocation{
					{LocationID: "3991", OnHand: 5, Status: "IN_STOCK", Store: sf},
					{LocationID: "999", OnHand: 7},
				},
			},
			wantBody: []string{"IN_STOCK", "LOCATION", "San Francisco Central", "999"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, render.Availability(&buf, tt.in))
			for _, want := range tt.wantBody {
				assert.Contains(t, buf.String(), want)
			}
			for _, not := range tt.notBody {
				assert.NotContains(t, buf.String(), not)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, domain.Location{ID: "3991", Name: "San Francisco Central"}))
	assert.Contains(t, buf.String(), "\n  \"id\": \"3991\"")
}
