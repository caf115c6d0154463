package coinmarketcap

import (
	"context"
	"fmt"
	"strings"

	httpClient "github.com/artvault/artvault-api/internal/client/http"
	"github.com/artvault/artvault-api/internal/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://pro-api.coinmarketcap.com"

// Client manages communication with the CoinMarketCap API.
type Client struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
}

func NewClient(apiKey string, options ...httpClient.ClientOption) *Client {
	opts := append([]httpClient.ClientOption{httpClient.WithBaseURL(defaultBaseURL)}, options...)
	return &Client{
		apiKey:     apiKey,
		httpClient: httpClient.NewHTTPClient(opts...),
	}
}

type CmcQuote struct {
	Price       float64 `json:"price"`
	LastUpdated string  `json:"last_updated"`
}

type CmcTokenData struct {
	ID     int                 `json:"id"`
	Name   string              `json:"name"`
	Symbol string              `json:"symbol"`
	Quote  map[string]CmcQuote `json:"quote"`
}

type CmcStatus struct {
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// CmcAPIResponse is the v2 quotes payload. Data is keyed by symbol and holds an array
// even for a single symbol.
type CmcAPIResponse struct {
	Status CmcStatus                 `json:"status"`
	Data   map[string][]CmcTokenData `json:"data"`
}

// Error represents an API error returned by CoinMarketCap.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("CoinMarketCap API Error: Status %d, Message: %s", e.StatusCode, e.Message)
}

func (c *Client) Source() string { return "coinmarketcap" }

// GetLatestQuotes fetches the latest quotes for the given symbols.
func (c *Client) GetLatestQuotes(ctx context.Context, tokenSymbols []string, convertSymbols []string) (*CmcAPIResponse, error) {
	if len(tokenSymbols) == 0 {
		return nil, fmt.Errorf("tokenSymbols cannot be empty")
	}

	options := []httpClient.RequestOption{
		httpClient.WithQueryParam("symbol", strings.ToUpper(strings.Join(tokenSymbols, ","))),
		httpClient.WithHeader("X-CMC_PRO_API_KEY", c.apiKey),
	}
	if len(convertSymbols) > 0 {
		options = append(options, httpClient.WithQueryParam("convert", strings.ToUpper(strings.Join(convertSymbols, ","))))
	}

	var resp CmcAPIResponse
	if err := c.httpClient.GetJSON(ctx, "/v2/cryptocurrency/quotes/latest", &resp, options...); err != nil {
		logger.Error("CoinMarketCap API request failed", zap.Error(err))
		return nil, fmt.Errorf("failed to get latest quotes from CoinMarketCap: %w", err)
	}
	if resp.Status.ErrorCode != 0 {
		return nil, &Error{StatusCode: resp.Status.ErrorCode, Message: resp.Status.ErrorMessage}
	}
	return &resp, nil
}

// USDPrices returns the USD price keyed by upper-case symbol.
func (c *Client) USDPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	resp, err := c.GetLatestQuotes(ctx, symbols, []string{"USD"})
	if err != nil {
		return nil, err
	}

	prices := make(map[string]decimal.Decimal, len(symbols))
	for _, s := range symbols {
		symbol := strings.ToUpper(s)
		data, ok := resp.Data[symbol]
		if !ok || len(data) == 0 {
			continue
		}
		if quote, ok := data[0].Quote["USD"]; ok {
			prices[symbol] = decimal.NewFromFloat(quote.Price)
		}
	}
	return prices, nil
}
