package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/target-inventory/internal/locations"
	"github.com/donaldgifford/target-inventory/internal/redsky"
	"github.com/donaldgifford/target-inventory/internal/transport"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// LocationService is the location registry half of the query façade.
type LocationService interface {
	Locations(ctx context.Context) ([]domain.Location, error)
	Stores(ctx context.Context) ([]domain.Location, error)
	Vendors(ctx context.Context) ([]domain.Location, error)
	Sellers(ctx context.Context) ([]domain.Location, error)
	StoreByID(ctx context.Context, id string) (*domain.Location, error)
	FindStores(ctx context.Context, substr string, opts ...locations.FindOption) ([]domain.Location, error)
	RefreshLocations(ctx context.Context) ([]domain.Location, error)
}

// ProductService is the product half of the query façade.
type ProductService interface {
	Search(ctx context.Context, req redsky.SearchRequest) ([]domain.Product, error)
	OnlineAvailability(ctx context.Context, tcin string) (*domain.OnlineProduct, error)
	StoreAvailability(ctx context.Context, tcin string, store domain.Location) (*domain.StoreProduct, error)
	NearbyAvailability(ctx context.Context, tcin string, req redsky.NearbyRequest) (*domain.Availability, error)
	StoreByID(ctx context.Context, id string) (*domain.Location, error)
}

// upstreamError maps a façade error onto an HTTP status.
func upstreamError(msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingIdentity):
		return huma.Error422UnprocessableEntity(msg + ": " + err.Error())
	case errors.Is(err, transport.ErrDailyLimitReached):
		return huma.Error429TooManyRequests(msg + ": " + err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return huma.Error504GatewayTimeout(msg + ": " + err.Error())
	default:
		return huma.Error502BadGateway(msg + ": " + err.Error())
	}
}

var upstreamErrors = []int{
	http.StatusUnprocessableEntity,
	http.StatusTooManyRequests,
	http.StatusBadGateway,
	http.StatusGatewayTimeout,
}
