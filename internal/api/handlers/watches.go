package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

// WatchRunner is the stock tracker as seen by the API.
type WatchRunner interface {
	Watches() []domain.Watch
	LastChecks() []domain.StockCheck
	RunCycle(ctx context.Context) ([]domain.StockCheck, error)
}

// WatchHandler exposes the configured stock watches.
type WatchHandler struct {
	runner WatchRunner
}

// NewWatchHandler creates a new WatchHandler.
func NewWatchHandler(r WatchRunner) *WatchHandler {
	return &WatchHandler{runner: r}
}

// WatchesOutput is the response for GET /api/v1/watches.
type WatchesOutput struct {
	Body struct {
		Watches    []domain.Watch      `json:"watches"     doc:"Configured watches"`
		LastChecks []domain.StockCheck `json:"last_checks" doc:"Results of the most recent cycle"`
	}
}

// List returns the configured watches and the last cycle's results.
func (h *WatchHandler) List(_ context.Context, _ *struct{}) (*WatchesOutput, error) {
	out := &WatchesOutput{}
	out.Body.Watches = nonNil(h.runner.Watches())
	out.Body.LastChecks = nonNil(h.runner.LastChecks())
	return out, nil
}

// CheckOutput is the response for POST /api/v1/watches/check.
type CheckOutput struct {
	Body struct {
		Checks  []domain.StockCheck `json:"checks"   doc:"Result per watch"`
		InStock int                 `json:"in_stock" doc:"Watches at or above the desired quantity"`
	}
}

// Check runs one watch cycle immediately, sending alerts as the schedule would.
func (h *WatchHandler) Check(ctx context.Context, _ *struct{}) (*CheckOutput, error) {
	checks, err := h.runner.RunCycle(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("watch cycle failed: " + err.Error())
	}

	out := &CheckOutput{}
	out.Body.Checks = nonNil(checks)
	for i := range checks {
		if checks[i].InStock {
			out.Body.InStock++
		}
	}
	return out, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// RegisterWatchRoutes registers watch endpoints with the Huma API.
func RegisterWatchRoutes(api huma.API, h *WatchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-watches",
		Method:      http.MethodGet,
		Path:        "/api/v1/watches",
		Summary:     "List stock watches",
		Description: "Returns the configured watches and the results of the most recent check.",
		Tags:        []string{"watches"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "check-watches",
		Method:      http.MethodPost,
		Path:        "/api/v1/watches/check",
		Summary:     "Check watches now",
		Description: "Runs one watch cycle immediately. Alerts fire for watches that moved into stock.",
		Tags:        []string{"watches"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Check)
}
