package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// WalletBalance is one wallet's balance. Error is set instead of Balance when the read failed.
type WalletBalance struct {
	Chain     transfer.Chain  `json:"chain"`
	Address   string          `json:"address"`
	Symbol    string          `json:"symbol"`
	Balance   decimal.Decimal `json:"balance"`
	USDValue  *string         `json:"usd_value,omitempty"`
	Error     string          `json:"error,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type cachedBalance struct {
	value     WalletBalance
	expiresAt time.Time
}

// BalanceService reads balances across chains with a short TTL cache.
type BalanceService struct {
	reader *transfer.BalanceReader
	prices *PriceService
	logger *zap.Logger

	cache      map[string]cachedBalance
	cacheMutex sync.RWMutex
	cacheTTL   time.Duration
	now        func() time.Time
}

// NewBalanceService builds the service. prices may be nil.
func NewBalanceService(reader *transfer.BalanceReader, prices *PriceService, cacheTTL time.Duration) *BalanceService {
	return &BalanceService{
		reader:   reader,
		prices:   prices,
		logger:   logger.Log,
		cache:    make(map[string]cachedBalance),
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

func balanceKey(chain transfer.Chain, address string) string {
	return string(chain) + ":" + address
}

// Balances reads every wallet concurrently, serving fresh cache entries where present.
func (s *BalanceService) Balances(ctx context.Context, wallets map[transfer.Chain]string) []WalletBalance {
	return s.read(ctx, wallets, false)
}

// Refresh bypasses the cache.
func (s *BalanceService) Refresh(ctx context.Context, wallets map[transfer.Chain]string) []WalletBalance {
	return s.read(ctx, wallets, true)
}

// Invalidate drops cached balances so the next read goes to the network.
func (s *BalanceService) Invalidate(chain transfer.Chain, addresses ...string) {
	s.cacheMutex.Lock()
	defer s.cacheMutex.Unlock()
	for _, address := range addresses {
		delete(s.cache, balanceKey(chain, address))
	}
}

func (s *BalanceService) read(ctx context.Context, wallets map[transfer.Chain]string, fresh bool) []WalletBalance {
	results := make([]WalletBalance, 0, len(wallets))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for chain, address := range wallets {
		g.Go(func() error {
			wb := s.one(gctx, chain, address, fresh)
			mu.Lock()
			results = append(results, wb)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Chain > results[j].Chain })
	s.attachUSD(ctx, results)
	return results
}

func (s *BalanceService) one(ctx context.Context, chain transfer.Chain, address string, fresh bool) WalletBalance {
	key := balanceKey(chain, address)
	now := s.now()

	if !fresh {
		s.cacheMutex.RLock()
		entry, ok := s.cache[key]
		s.cacheMutex.RUnlock()
		if ok && now.Before(entry.expiresAt) {
			return entry.value
		}
	}

	wb := WalletBalance{Chain: chain, Address: address, Symbol: chain.Symbol(), UpdatedAt: now}
	balance, err := s.reader.Balance(ctx, chain, address)
	if err != nil {
		s.logger.Warn("Failed to read balance",
			zap.String("chain", string(chain)),
			zap.String("address", address),
			zap.Error(err),
		)
		wb.Error = err.Error()
		return wb
	}
	wb.Balance = balance

	s.cacheMutex.Lock()
	s.cache[key] = cachedBalance{value: wb, expiresAt: now.Add(s.cacheTTL)}
	s.cacheMutex.Unlock()
	return wb
}

func (s *BalanceService) attachUSD(ctx context.Context, balances []WalletBalance) {
	if s.prices == nil {
		return
	}
	for i := range balances {
		if balances[i].Error != "" {
			continue
		}
		usd, err := s.prices.USDValue(ctx, balances[i].Balance, balances[i].Chain)
		if err != nil {
			continue
		}
		v := usd.StringFixed(2)
		balances[i].USDValue = &v
	}
}

// Watch calls emit with fresh balances immediately and then every interval until ctx is done or
// emit returns an error. It blocks for the lifetime of ctx.
func (s *BalanceService) Watch(ctx context.Context, wallets map[transfer.Chain]string, interval time.Duration, emit func([]WalletBalance) error) error {
	if err := emit(s.Refresh(ctx, wallets)); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := emit(s.Refresh(ctx, wallets)); err != nil {
				return err
			}
		}
	}
}
