package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/target-inventory/internal/api/handlers"
	"github.com/donaldgifford/target-inventory/internal/transport"
)

func TestQuotaHandler_GetQuota(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	rl := transport.NewRateLimiter(100, 10, 50, transport.WithRateLimiterNowFunc(func() time.Time { return now }))
	for range 3 {
		require.NoError(t, rl.Wait(context.Background()))
	}

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rl))

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	assert.Contains(t, body, `"daily_limit":50`)
	assert.Contains(t, body, `"daily_used":3`)
	assert.Contains(t, body, `"remaining":47`)
	assert.Contains(t, body, `"reset_at":"2025-06-16T14:30:00Z"`)
}

func TestQuotaHandler_NoLimiter(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(nil))

	resp := api.Get("/api/v1/quota")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"remaining":-1`)
}
