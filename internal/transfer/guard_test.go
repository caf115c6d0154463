package transfer_test

import (
	"context"
	"testing"

	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGuard(t *testing.T) {
	g := transfer.NewMemoryGuard()
	ctx := context.Background()

	release, err := g.Acquire(ctx, "k")
	require.NoError(t, err)

	_, err = g.Acquire(ctx, "k")
	assert.ErrorIs(t, err, transfer.ErrAttemptInFlight)

	other, err := g.Acquire(ctx, "other")
	require.NoError(t, err)
	other()

	release()
	release()
	assert.False(t, g.Held("k"))

	release, err = g.Acquire(ctx, "k")
	require.NoError(t, err)
	release()
}

func TestRequestKey(t *testing.T) {
	base := transfer.Request{
		Chain:     transfer.ChainSolana,
		Sender:    "a",
		Recipient: "b",
		Amount:    decimal.RequireFromString("1.5"),
		Kind:      transfer.KindPurchase,
		ItemRef:   uuid.MustParse("7d3c1f5e-7a88-4b43-9a49-6a1b0f7e4c11"),
	}

	assert.Equal(t, transfer.RequestKey(base), transfer.RequestKey(base))

	changed := base
	changed.Amount = decimal.RequireFromString("1.6")
	assert.NotEqual(t, transfer.RequestKey(base), transfer.RequestKey(changed))

	explicit := base
	explicit.Key = "client-key"
	assert.Equal(t, "client-key", transfer.RequestKey(explicit))
}
