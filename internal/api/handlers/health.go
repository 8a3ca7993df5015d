// Package handlers implements HTTP handlers for the target-inventory API.
package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// StoreLister reports whether the location registry can be served.
type StoreLister interface {
	Stores(ctx context.Context) ([]domain.Location, error)
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	stores StoreLister
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s StoreLister) *HealthHandler {
	return &HealthHandler{stores: s}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 once the location registry has loaded, 503 otherwise.
// The registry is memoized, so only the first successful probe reaches the
// Target API.
func (h *HealthHandler) Readyz(c echo.Context) error {
	stores, err := h.stores.Stores(c.Request().Context())
	if err != nil || len(stores) == 0 {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}

// RegisterHealthRoutes adds the probe endpoints to the Echo instance.
func RegisterHealthRoutes(e *echo.Echo, h *HealthHandler) {
	e.GET("/healthz", h.Healthz)
	e.GET("/readyz", h.Readyz)
}
