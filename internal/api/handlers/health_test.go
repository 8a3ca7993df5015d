package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/target-inventory/internal/api/handlers"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

type storeListerFunc func(ctx context.Context) ([]domain.Location, error)

func (f storeListerFunc) Stores(ctx context.Context) ([]domain.Location, error) { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		stores     storeListerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name:       "healthz always ok",
			path:       "/healthz",
			stores:     func(context.Context) ([]domain.Location, error) { return nil, errors.New("down") },
			wantStatus: http.StatusOK,
			wantBody:   `"ok"`,
		},
		{
			name:       "ready once stores load",
			path:       "/readyz",
			stores:     func(context.Context) ([]domain.Location, error) { return []domain.Location{sf}, nil },
			wantStatus: http.StatusOK,
			wantBody:   `"ready"`,
		},
		{
			name:       "registry error",
			path:       "/readyz",
			stores:     func(context.Context) ([]domain.Location, error) { return nil, errors.New("down") },
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"unavailable"`,
		},
		{
			name:       "empty registry",
			path:       "/readyz",
			stores:     func(context.Context) ([]domain.Location, error) { return nil, nil },
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"unavailable"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(tt.stores))

			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
