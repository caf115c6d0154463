package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const guardPrefix = "artvault:transfer:inflight:"

// releaseScript deletes the key only when it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Guard is a transfer.Guard shared across API instances. The TTL bounds how long a crashed
// holder can block a key.
type Guard struct {
	rdb guardClient
	ttl time.Duration
}

type guardClient interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

func NewGuard(rdb guardClient, ttl time.Duration) *Guard {
	if ttl <= 0 {
		ttl = 3 * time.Minute
	}
	return &Guard{rdb: rdb, ttl: ttl}
}

func (g *Guard) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	acquired, err := g.rdb.SetNX(ctx, guardPrefix+key, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire transfer guard: %w", err)
	}
	if !acquired {
		return nil, transfer.ErrAttemptInFlight
	}

	return func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, g.rdb, []string{guardPrefix + key}, token).Err(); err != nil {
			logger.Log.Warn("Failed to release transfer guard", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

var _ transfer.Guard = (*Guard)(nil)
