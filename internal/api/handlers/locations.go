package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/target-inventory/internal/locations"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// LocationHandler serves the location registry.
type LocationHandler struct {
	svc LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{svc: svc}
}

// ListLocationsInput is the request for GET /api/v1/locations.
type ListLocationsInput struct {
	Type string `query:"type" enum:"STORE,VENDOR,SELLER" doc:"Only return locations of this type"`
}

// LocationsOutput is a list of locations.
type LocationsOutput struct {
	Body struct {
		Locations []domain.Location `json:"locations" doc:"Locations in registry order"`
		Count     int               `json:"count"     doc:"Number of locations returned"`
	}
}

func locationsOutput(locs []domain.Location) *LocationsOutput {
	out := &LocationsOutput{}
	if locs == nil {
		locs = []domain.Location{}
	}
	out.Body.Locations = locs
	out.Body.Count = len(locs)
	return out
}

// List returns every registry location, optionally filtered by type.
func (h *LocationHandler) List(ctx context.Context, input *ListLocationsInput) (*LocationsOutput, error) {
	var (
		locs []domain.Location
		err  error
	)
	switch domain.LocationType(input.Type) {
	case domain.LocationStore:
		locs, err = h.svc.Stores(ctx)
	case domain.LocationVendor:
		locs, err = h.svc.Vendors(ctx)
	case domain.LocationSeller:
		locs, err = h.svc.Sellers(ctx)
	default:
		locs, err = h.svc.Locations(ctx)
	}
	if err != nil {
		return nil, upstreamError("location registry unavailable", err)
	}
	return locationsOutput(locs), nil
}

// FindStoresInput is the request for GET /api/v1/stores.
type FindStoresInput struct {
	Query         string `query:"q"              doc:"Substring of the store name" example:"Minneapolis"`
	CaseSensitive bool   `query:"case_sensitive" doc:"Match the name case-sensitively"`
}

// Stores returns stores, filtered by name when q is set.
func (h *LocationHandler) Stores(ctx context.Context, input *FindStoresInput) (*LocationsOutput, error) {
	var (
		locs []domain.Location
		err  error
	)
	switch {
	case input.Query == "":
		locs, err = h.svc.Stores(ctx)
	case input.CaseSensitive:
		locs, err = h.svc.FindStores(ctx, input.Query, locations.CaseSensitive())
	default:
		locs, err = h.svc.FindStores(ctx, input.Query)
	}
	if err != nil {
		return nil, upstreamError("location registry unavailable", err)
	}
	return locationsOutput(locs), nil
}

// GetStoreInput is the request for GET /api/v1/stores/{id}.
type GetStoreInput struct {
	ID string `path:"id" doc:"Store location id" example:"3991"`
}

// StoreOutput is a single store.
type StoreOutput struct {
	Body *domain.Location
}

// GetStore returns a single store by id.
func (h *LocationHandler) GetStore(ctx context.Context, input *GetStoreInput) (*StoreOutput, error) {
	store, err := h.svc.StoreByID(ctx, input.ID)
	if err != nil {
		return nil, upstreamError("location registry unavailable", err)
	}
	if store == nil {
		return nil, huma.Error404NotFound("store " + input.ID + " not found")
	}
	return &StoreOutput{Body: store}, nil
}

// RefreshOutput is the response for POST /api/v1/locations/refresh.
type RefreshOutput struct {
	Body struct {
		Status string `json:"status" example:"refreshed" doc:"Refresh status"`
		Count  int    `json:"count"  example:"1962"      doc:"Locations now in the registry"`
	}
}

// Refresh drops the memoized registry and fetches it again.
func (h *LocationHandler) Refresh(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	locs, err := h.svc.RefreshLocations(ctx)
	if err != nil {
		return nil, upstreamError("refreshing locations", err)
	}
	out := &RefreshOutput{}
	out.Body.Status = "refreshed"
	out.Body.Count = len(locs)
	return out, nil
}

// RegisterLocationRoutes registers location endpoints with the Huma API.
func RegisterLocationRoutes(api huma.API, h *LocationHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-locations",
		Method:      http.MethodGet,
		Path:        "/api/v1/locations",
		Summary:     "List locations",
		Description: "Returns every ship location in the registry, optionally filtered by type.",
		Tags:        []string{"locations"},
		Errors:      upstreamErrors,
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "list-stores",
		Method:      http.MethodGet,
		Path:        "/api/v1/stores",
		Summary:     "List or find stores",
		Description: "Returns stores in registry order. With q, only stores whose name contains q.",
		Tags:        []string{"locations"},
		Errors:      upstreamErrors,
	}, h.Stores)

	huma.Register(api, huma.Operation{
		OperationID: "get-store",
		Method:      http.MethodGet,
		Path:        "/api/v1/stores/{id}",
		Summary:     "Get a store",
		Tags:        []string{"locations"},
		Errors:      append([]int{http.StatusNotFound}, upstreamErrors...),
	}, h.GetStore)

	huma.Register(api, huma.Operation{
		OperationID: "refresh-locations",
		Method:      http.MethodPost,
		Path:        "/api/v1/locations/refresh",
		Summary:     "Refresh the location registry",
		Description: "Discards the memoized location list and fetches it again.",
		Tags:        []string{"locations"},
		Errors:      upstreamErrors,
	}, h.Refresh)
}
