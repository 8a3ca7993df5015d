package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/target-inventory/internal/api/handlers"
	"github.com/donaldgifford/target-inventory/internal/api/handlers/mocks"
	"github.com/donaldgifford/target-inventory/internal/redsky"
	"github.com/donaldgifford/target-inventory/internal/transport"
	domain "github.com/donaldgifford/target-inventory/pkg/types"
)

func TestSearchHandler_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*mocks.MockProductService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "keyword search with digital pricing",
			path: "/api/v1/search?q=lego",
			setupMock: func(m *mocks.MockProductService) {
				m.EXPECT().
					Search(mock.Anything, mock.MatchedBy(func(r redsky.SearchRequest) bool {
						return r.Keyword == "lego" && r.Store == nil && r.Page == 0
					})).
					Return([]domain.Product{{TCIN: "1"}, {TCIN: "2"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"count":2`,
		},
		{
			name: "store search resolves the store",
			path: "/api/v1/search?q=lego&store_id=3991&store_search=true&sort_by=price_low&page=2",
			setupMock: func(m *mocks.MockProductService) {
				m.EXPECT().StoreByID(mock.Anything, "3991").Return(&sf, nil).Once()
				m.EXPECT().
					Search(mock.Anything, mock.MatchedBy(func(r redsky.SearchRequest) bool {
						return r.Store != nil && r.Store.ID == "3991" && r.StoreSearch &&
							r.SortBy == "price_low" && r.Page == 2
					})).
					Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"products":[]`,
		},
		{
			name: "unknown store returns 404",
			path: "/api/v1/search?q=lego&store_id=999",
			setupMock: func(m *mocks.MockProductService) {
				m.EXPECT().StoreByID(mock.Anything, "999").Return(nil, nil).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "store 999 not found",
		},
		{
			name:       "missing keyword returns 422",
			path:       "/api/v1/search",
			setupMock:  func(_ *mocks.MockProductService) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "page below one returns 422",
			path:       "/api/v1/search?q=lego&page=0",
			setupMock:  func(_ *mocks.MockProductService) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "upstream error returns 502",
			path: "/api/v1/search?q=lego",
			setupMock: func(m *mocks.MockProductService) {
				m.EXPECT().Search(mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   "Target API error",
		},
		{
			name: "daily limit returns 429",
			path: "/api/v1/search?q=lego",
			setupMock: func(m *mocks.MockProductService) {
				m.EXPECT().Search(mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("searching: %w", transport.ErrDailyLimitReached)).Once()
			},
			wantStatus: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockProductService(t)
			tt.setupMock(svc)

			_, api := humatest.New(t)
			handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(svc))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
