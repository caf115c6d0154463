package transfer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
)

// Guard allows at most one in-flight attempt per request key.
type Guard interface {
	// Acquire returns ErrAttemptInFlight when key is already held.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// RequestKey returns req.Key or a key derived from the fields that identify the send action.
func RequestKey(req Request) string {
	if req.Key != "" {
		return req.Key
	}
	h := sha256.New()
	h.Write([]byte(strings.Join([]string{
		string(req.Chain),
		req.Sender,
		req.Recipient,
		req.Amount.String(),
		string(req.Kind),
		req.ItemRef.String(),
	}, "|")))
	return hex.EncodeToString(h.Sum(nil))
}

// MemoryGuard is a process local Guard.
type MemoryGuard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{inflight: make(map[string]struct{})}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, held := g.inflight[key]; held {
		return nil, ErrAttemptInFlight
	}
	g.inflight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inflight, key)
			g.mu.Unlock()
		})
	}, nil
}

// Held reports whether key is currently held.
func (g *MemoryGuard) Held(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, held := g.inflight[key]
	return held
}
