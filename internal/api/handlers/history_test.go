package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/donaldgifford/mtg-price-tracker/internal/api/handlers"
	storeMocks "github.com/donaldgifford/mtg-price-tracker/internal/store/mocks"
	domain "github.com/donaldgifford/mtg-price-tracker/pkg/types"
)

func TestHistoryHandler_Get(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "returns points",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetPriceHistory(mock.Anything, boltID).Return([]domain.PriceHistoryPoint{
					{
						ExternalID: boltID,
						Timestamp:  ts,
						Prices: map[domain.Vendor]map[domain.Condition]decimal.Decimal{
							domain.VendorTCGPlayer: {domain.ConditionNM: decimal.RequireFromString("2.10")},
						},
					},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"timestamp":"2026-03-14T12:00:00Z"`, `"tcgplayer":{"NM":"2.1"}`},
		},
		{
			name: "no history is an empty array",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetPriceHistory(mock.Anything, boltID).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`[]`},
		},
		{
			name: "store error",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetPriceHistory(mock.Anything, boltID).Return(nil, errors.New("no such table")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"no such table"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := storeMocks.NewMockStore(t)
			tt.setupMock(m)

			_, api := humatest.New(t)
			handlers.RegisterHistoryRoutes(api, handlers.NewHistoryHandler(m))

			resp := api.Get("/api/v1/history/" + boltID)
			assert.Equal(t, tt.wantStatus, resp.Code)
			for _, s := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), s)
			}
		})
	}
}
