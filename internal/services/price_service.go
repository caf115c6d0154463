package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	redisClient "github.com/artvault/artvault-api/internal/client/redis"
	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const priceCacheKey = "artvault:prices:usd"

// PriceSource returns USD prices keyed by upper case ticker symbol.
type PriceSource interface {
	Source() string
	USDPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
}

// PriceQuote is a display-only USD price.
type PriceQuote struct {
	Symbol    string          `json:"symbol"`
	USD       decimal.Decimal `json:"usd"`
	Source    string          `json:"source"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type cachedPrices struct {
	Quotes    map[string]PriceQuote `json:"quotes"`
	ExpiresAt time.Time             `json:"expires_at"`
}

// PriceService fetches SOL and ETH prices from the first source that answers.
type PriceService struct {
	sources []PriceSource
	rdb     redis.Cmdable
	logger  *zap.Logger

	cache      *cachedPrices
	cacheMutex sync.RWMutex
	cacheTTL   time.Duration
	now        func() time.Time
}

// NewPriceService tries sources in order. rdb may be nil.
func NewPriceService(rdb redis.Cmdable, cacheTTL time.Duration, sources ...PriceSource) *PriceService {
	return &PriceService{
		sources:  sources,
		rdb:      rdb,
		logger:   logger.Log,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

var priceSymbols = []string{transfer.ChainSolana.Symbol(), transfer.ChainEthereum.Symbol()}

// Prices returns the current quotes keyed by symbol.
func (s *PriceService) Prices(ctx context.Context) (map[string]PriceQuote, error) {
	if quotes := s.getCached(); quotes != nil {
		return quotes, nil
	}
	if quotes := s.getShared(ctx); quotes != nil {
		s.setCached(quotes)
		return quotes, nil
	}

	var lastErr error
	for _, source := range s.sources {
		prices, err := source.USDPrices(ctx, priceSymbols)
		if err != nil || len(prices) == 0 {
			s.logger.Warn("Price source failed, trying next",
				zap.String("source", source.Source()),
				zap.Error(err),
			)
			lastErr = err
			continue
		}

		now := s.now()
		quotes := make(map[string]PriceQuote, len(prices))
		for symbol, usd := range prices {
			quotes[symbol] = PriceQuote{Symbol: symbol, USD: usd, Source: source.Source(), UpdatedAt: now}
		}
		s.setCached(quotes)
		s.setShared(ctx, quotes)
		return quotes, nil
	}

	if lastErr == nil {
		return nil, ErrPriceUnavailable
	}
	return nil, fmt.Errorf("%w: %w", ErrPriceUnavailable, lastErr)
}

// USDValue converts amount of chain's native currency to USD.
func (s *PriceService) USDValue(ctx context.Context, amount decimal.Decimal, chain transfer.Chain) (decimal.Decimal, error) {
	quotes, err := s.Prices(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	quote, ok := quotes[chain.Symbol()]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no quote for %s", ErrPriceUnavailable, chain.Symbol())
	}
	return amount.Mul(quote.USD), nil
}

func (s *PriceService) getCached() map[string]PriceQuote {
	s.cacheMutex.RLock()
	defer s.cacheMutex.RUnlock()
	if s.cache != nil && s.now().Before(s.cache.ExpiresAt) {
		return s.cache.Quotes
	}
	return nil
}

func (s *PriceService) setCached(quotes map[string]PriceQuote) {
	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()
	s.cache = &cachedPrices{Quotes: quotes, ExpiresAt: s.now().Add(s.cacheTTL)}
}

func (s *PriceService) getShared(ctx context.Context) map[string]PriceQuote {
	if s.rdb == nil {
		return nil
	}
	var quotes map[string]PriceQuote
	found, err := redisClient.GetCache(ctx, s.rdb, priceCacheKey, &quotes)
	if err != nil {
		s.logger.Warn("Failed to read price cache", zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}
	return quotes
}

func (s *PriceService) setShared(ctx context.Context, quotes map[string]PriceQuote) {
	if s.rdb == nil {
		return
	}
	if err := redisClient.SetCache(ctx, s.rdb, priceCacheKey, quotes, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to write price cache", zap.Error(err))
	}
}
