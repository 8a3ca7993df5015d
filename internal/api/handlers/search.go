package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/target-inventory/internal/redsky"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// SearchHandler handles product search requests.
type SearchHandler struct {
	svc ProductService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(svc ProductService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// SearchInput is the request for GET /api/v1/search.
type SearchInput struct {
	Query       string `query:"q"            required:"true" doc:"Search keyword"                       example:"lego star wars"`
	StoreID     string `query:"store_id"     doc:"Price and filter against this store"                  example:"3991"`
	StoreSearch bool   `query:"store_search" doc:"Only return items sold at store_id"`
	SortBy      string `query:"sort_by"      doc:"Sort order (default relevance)"                       example:"price_low"`
	Page        int    `query:"page"         minimum:"1"     doc:"1-based result page (default 1)"      example:"1"`
}

// SearchOutput is the response body for the search endpoint.
type SearchOutput struct {
	Body struct {
		Products []domain.Product `json:"products" doc:"Products in API order"`
		Count    int              `json:"count"    doc:"Number of products returned"`
	}
}

// Search runs a keyword search, in a store's pricing context when store_id
// is given.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	req := redsky.SearchRequest{
		Keyword:     input.Query,
		StoreSearch: input.StoreSearch,
		SortBy:      input.SortBy,
		Page:        input.Page,
	}

	if input.StoreID != "" {
		store, err := h.svc.StoreByID(ctx, input.StoreID)
		if err != nil {
			return nil, upstreamError("location registry unavailable", err)
		}
		if store == nil {
			return nil, huma.Error404NotFound("store " + input.StoreID + " not found")
		}
		req.Store = store
	}

	products, err := h.svc.Search(ctx, req)
	if err != nil {
		return nil, upstreamError("Target API error", err)
	}
	if products == nil {
		products = []domain.Product{}
	}

	out := &SearchOutput{}
	out.Body.Products = products
	out.Body.Count = len(products)
	return out, nil
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search Target products",
		Description: "Runs a keyword search against the Target aggregation API.",
		Tags:        []string{"search"},
		Errors:      append([]int{http.StatusNotFound}, upstreamErrors...),
	}, h.Search)
}
