package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/artvault/artvault-api/internal/services"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePriceSource struct {
	name   string
	prices map[string]decimal.Decimal
	err    error
	calls  int
}

func (f *fakePriceSource) Source() string { return f.name }

func (f *fakePriceSource) USDPrices(_ context.Context, _ []string) (map[string]decimal.Decimal, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.prices, nil
}

func quotes(sol, eth string) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"SOL": decimal.RequireFromString(sol),
		"ETH": decimal.RequireFromString(eth),
	}
}

func TestPriceService_Prices(t *testing.T) {
	tests := []struct {
		name       string
		sources    func() []*fakePriceSource
		wantErr    error
		wantSource string
		wantSOL    string
	}{
		{
			name: "first source answers",
			sources: func() []*fakePriceSource {
				return []*fakePriceSource{
					{name: "coingecko", prices: quotes("150.25", "3200")},
					{name: "coinmarketcap", prices: quotes("1", "1")},
				}
			},
			wantSource: "coingecko",
			wantSOL:    "150.25",
		},
		{
			name: "falls back when the first source fails",
			sources: func() []*fakePriceSource {
				return []*fakePriceSource{
					{name: "coingecko", err: errors.New("429 too many requests")},
					{name: "coinmarketcap", prices: quotes("149", "3199")},
				}
			},
			wantSource: "coinmarketcap",
			wantSOL:    "149",
		},
		{
			name: "falls back on an empty answer",
			sources: func() []*fakePriceSource {
				return []*fakePriceSource{
					{name: "coingecko", prices: map[string]decimal.Decimal{}},
					{name: "coinmarketcap", prices: quotes("148", "3100")},
				}
			},
			wantSource: "coinmarketcap",
			wantSOL:    "148",
		},
		{
			name: "every source fails",
			sources: func() []*fakePriceSource {
				return []*fakePriceSource{
					{name: "coingecko", err: errors.New("timeout")},
					{name: "coinmarketcap", err: errors.New("invalid key")},
				}
			},
			wantErr: services.ErrPriceUnavailable,
		},
		{
			name:    "no sources configured",
			sources: func() []*fakePriceSource { return nil },
			wantErr: services.ErrPriceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sources []services.PriceSource
			for _, s := range tt.sources() {
				sources = append(sources, s)
			}
			svc := services.NewPriceService(nil, time.Minute, sources...)

			got, err := svc.Prices(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, got["SOL"].Source)
			assert.Equal(t, tt.wantSOL, got["SOL"].USD.String())
		})
	}
}

func TestPriceService_MemoryCache(t *testing.T) {
	source := &fakePriceSource{name: "coingecko", prices: quotes("150", "3000")}
	svc := services.NewPriceService(nil, time.Minute, source)

	for i := 0; i < 3; i++ {
		_, err := svc.Prices(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 1, source.calls)
}

func TestPriceService_SharedCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	first := &fakePriceSource{name: "coingecko", prices: quotes("150", "3000")}
	_, err := services.NewPriceService(rdb, time.Minute, first).Prices(context.Background())
	require.NoError(t, err)
	assert.True(t, mr.Exists("artvault:prices:usd"))

	// A second instance is served from Redis without calling its source.
	second := &fakePriceSource{name: "coingecko", err: errors.New("should not be called")}
	got, err := services.NewPriceService(rdb, time.Minute, second).Prices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.calls)
	assert.Equal(t, "150", got["SOL"].USD.String())
}

func TestPriceService_USDValue(t *testing.T) {
	source := &fakePriceSource{name: "coingecko", prices: map[string]decimal.Decimal{"SOL": decimal.RequireFromString("100")}}
	svc := services.NewPriceService(nil, time.Minute, source)

	usd, err := svc.USDValue(context.Background(), decimal.RequireFromString("1.5"), transfer.ChainSolana)
	require.NoError(t, err)
	assert.Equal(t, "150", usd.String())

	_, err = svc.USDValue(context.Background(), decimal.RequireFromString("1"), transfer.ChainEthereum)
	assert.ErrorIs(t, err, services.ErrPriceUnavailable)
}
