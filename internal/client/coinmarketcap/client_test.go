package coinmarketcap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	httpClient "github.com/artvault/artvault-api/internal/client/http"
	"github.com/artvault/artvault-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

func TestClient_USDPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cmc-key", r.Header.Get("X-CMC_PRO_API_KEY"))
		assert.Equal(t, "SOL,ETH", r.URL.Query().Get("symbol"))
		assert.Equal(t, "USD", r.URL.Query().Get("convert"))
		_, _ = w.Write([]byte(`{
			"status": {"error_code": 0},
			"data": {
				"SOL": [{"id": 5426, "symbol": "SOL", "quote": {"USD": {"price": 151.5}}}],
				"ETH": [{"id": 1027, "symbol": "ETH", "quote": {"USD": {"price": 3100}}}]
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient("cmc-key", httpClient.WithBaseURL(srv.URL))
	prices, err := c.USDPrices(context.Background(), []string{"SOL", "ETH"})
	require.NoError(t, err)
	assert.Equal(t, "151.5", prices["SOL"].String())
	assert.Equal(t, "3100", prices["ETH"].String())
}

func TestClient_APIStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": {"error_code": 1002, "error_message": "API key missing."}}`))
	}))
	defer srv.Close()

	c := NewClient("", httpClient.WithBaseURL(srv.URL))
	_, err := c.GetLatestQuotes(context.Background(), []string{"SOL"}, nil)

	var cmcErr *Error
	require.ErrorAs(t, err, &cmcErr)
	assert.Equal(t, 1002, cmcErr.StatusCode)
}

func TestClient_EmptySymbols(t *testing.T) {
	c := NewClient("k")
	_, err := c.GetLatestQuotes(context.Background(), nil, nil)
	assert.Error(t, err)
}
