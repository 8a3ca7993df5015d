package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/target-inventory/internal/redsky"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// AvailabilityHandler serves online, store and nearby availability.
type AvailabilityHandler struct {
	svc ProductService
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(svc ProductService) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

// OnlineInput is the request for GET /api/v1/products/{tcin}/availability.
type OnlineInput struct {
	TCIN string `path:"tcin" doc:"Target item number" example:"81114477"`
}

// OnlineOutput is the online availability of a product.
type OnlineOutput struct {
	Body *domain.OnlineProduct
}

// Online returns the digital-context availability of a product.
func (h *AvailabilityHandler) Online(ctx context.Context, input *OnlineInput) (*OnlineOutput, error) {
	p, err := h.svc.OnlineAvailability(ctx, input.TCIN)
	if err != nil {
		return nil, upstreamError("Target API error", err)
	}
	if p == nil {
		return nil, huma.Error404NotFound("no availability data for " + input.TCIN)
	}
	return &OnlineOutput{Body: p}, nil
}

// StoreInput is the request for GET /api/v1/products/{tcin}/stores/{store_id}.
type StoreInput struct {
	TCIN    string `path:"tcin"     doc:"Target item number"  example:"81114477"`
	StoreID string `path:"store_id" doc:"Store location id"   example:"3991"`
}

// StoreProductOutput is the store-scoped record of a product or variant.
type StoreProductOutput struct {
	Body *domain.StoreProduct
}

// Store returns the store-scoped record for a product or one of its
// variants. Stores missing from the registry are queried by id.
func (h *AvailabilityHandler) Store(ctx context.Context, input *StoreInput) (*StoreProductOutput, error) {
	store, err := h.svc.StoreByID(ctx, input.StoreID)
	if err != nil {
		return nil, upstreamError("location registry unavailable", err)
	}
	if store == nil {
		store = &domain.Location{ID: input.StoreID, Type: domain.LocationStore}
	}

	p, err := h.svc.StoreAvailability(ctx, input.TCIN, *store)
	if err != nil {
		return nil, upstreamError("Target API error", err)
	}
	if p == nil {
		return nil, huma.Error404NotFound("no product or variant " + input.TCIN + " at store " + input.StoreID)
	}
	return &StoreProductOutput{Body: p}, nil
}

// NearbyInput is the request for GET /api/v1/products/{tcin}/nearby.
type NearbyInput struct {
	TCIN          string `path:"tcin"                  doc:"Target item number"             example:"81114477"`
	NearbyStore   string `query:"nearby_store"         doc:"Store id to search around"      example:"3991"`
	InventoryType string `query:"inventory_type"       doc:"Inventory type (default ALL)"`
	Multichannel  string `query:"multichannel_option"  doc:"Multichannel option (default ALL)"`
}

// NearbyOutput is a catalog-host availability record.
type NearbyOutput struct {
	Body *domain.Availability
}

// Nearby returns the catalog-host availability record for a product.
func (h *AvailabilityHandler) Nearby(ctx context.Context, input *NearbyInput) (*NearbyOutput, error) {
	a, err := h.svc.NearbyAvailability(ctx, input.TCIN, redsky.NearbyRequest{
		NearbyStore:   input.NearbyStore,
		InventoryType: input.InventoryType,
		Multichannel:  input.Multichannel,
	})
	if err != nil {
		return nil, upstreamError("Target API error", err)
	}
	if a == nil {
		return nil, huma.Error404NotFound("no nearby availability for " + input.TCIN)
	}
	return &NearbyOutput{Body: a}, nil
}

// RegisterAvailabilityRoutes registers availability endpoints with the Huma API.
func RegisterAvailabilityRoutes(api huma.API, h *AvailabilityHandler) {
	errs := append([]int{http.StatusNotFound}, upstreamErrors...)

	huma.Register(api, huma.Operation{
		OperationID: "get-online-availability",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{tcin}/availability",
		Summary:     "Online availability",
		Description: "Returns the product with its digital fulfillment state and per-location inventory.",
		Tags:        []string{"availability"},
		Errors:      errs,
	}, h.Online)

	huma.Register(api, huma.Operation{
		OperationID: "get-store-availability",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{tcin}/stores/{store_id}",
		Summary:     "Store availability",
		Description: "Returns the store-scoped record for the product, or the variant matching tcin.",
		Tags:        []string{"availability"},
		Errors:      errs,
	}, h.Store)

	huma.Register(api, huma.Operation{
		OperationID: "get-nearby-availability",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{tcin}/nearby",
		Summary:     "Nearby availability",
		Description: "Returns the catalog-host available-to-promise record for the product.",
		Tags:        []string{"availability"},
		Errors:      errs,
	}, h.Nearby)
}
