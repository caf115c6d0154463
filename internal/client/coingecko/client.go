package coingecko

import (
	"context"
	"fmt"
	"strings"

	httpClient "github.com/artvault/artvault-api/internal/client/http"
	"github.com/artvault/artvault-api/internal/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// coinIDs maps ticker symbols to CoinGecko coin ids.
var coinIDs = map[string]string{
	"SOL": "solana",
	"ETH": "ethereum",
}

// Client calls the CoinGecko public API.
type Client struct {
	httpClient *httpClient.HTTPClient
}

// NewClient builds a client. apiKey is optional and sent as the demo key header.
func NewClient(apiKey string, options ...httpClient.ClientOption) *Client {
	opts := []httpClient.ClientOption{httpClient.WithBaseURL(defaultBaseURL)}
	if apiKey != "" {
		opts = append(opts, httpClient.WithDefaultHeader("x-cg-demo-api-key", apiKey))
	}
	return &Client{httpClient: httpClient.NewHTTPClient(append(opts, options...)...)}
}

// simplePriceResponse is keyed by coin id then by fiat currency.
type simplePriceResponse map[string]map[string]float64

// Source names the feed in logs and responses.
func (c *Client) Source() string { return "coingecko" }

// USDPrices returns the USD price for each known symbol. Unknown symbols are skipped.
func (c *Client) USDPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	ids := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if id, ok := coinIDs[strings.ToUpper(s)]; ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no supported symbols in %v", symbols)
	}

	var resp simplePriceResponse
	err := c.httpClient.GetJSON(ctx, "/simple/price", &resp,
		httpClient.WithQueryParam("ids", strings.Join(ids, ",")),
		httpClient.WithQueryParam("vs_currencies", "usd"),
	)
	if err != nil {
		logger.Error("CoinGecko price request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to get prices from CoinGecko: %w", err)
	}

	prices := make(map[string]decimal.Decimal, len(ids))
	for symbol, id := range coinIDs {
		if quote, ok := resp[id]["usd"]; ok {
			prices[symbol] = decimal.NewFromFloat(quote)
		}
	}
	return prices, nil
}
