package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/artvault/artvault-api/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPriceSource struct {
	prices map[string]decimal.Decimal
	err    error
}

func (s stubPriceSource) Source() string { return "stub" }

func (s stubPriceSource) USDPrices(context.Context, []string) (map[string]decimal.Decimal, error) {
	return s.prices, s.err
}

func TestPriceHandler_GetPrices(t *testing.T) {
	tests := []struct {
		name           string
		prices         *services.PriceService
		expectedStatus int
	}{
		{
			name: "quotes",
			prices: services.NewPriceService(nil, time.Minute, stubPriceSource{prices: map[string]decimal.Decimal{
				"SOL": decimal.RequireFromString("151.2"),
				"ETH": decimal.RequireFromString("3050"),
			}}),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "source down",
			prices:         services.NewPriceService(nil, time.Minute, stubPriceSource{err: errors.New("502")}),
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "not configured",
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			e.common.prices = tt.prices
			h := NewPriceHandler(e.common)

			w := serve(nil, http.MethodGet, "/prices", "/prices", nil, h.GetPrices)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				assert.Contains(t, w.Body.String(), `"code":"price_unavailable"`)
				return
			}

			resp := decode[listEnvelope[services.PriceQuote]](t, w)
			require.Len(t, resp.Data, 2)
			assert.Equal(t, "SOL", resp.Data[0].Symbol)
			assert.Equal(t, "151.2", resp.Data[0].USD.String())
			assert.Equal(t, "stub", resp.Data[0].Source)
			assert.Equal(t, "ETH", resp.Data[1].Symbol)
		})
	}
}
