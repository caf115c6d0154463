package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

var errNotYetConfirmed = errors.New("signature not yet at target level")

// WaiterConfig controls how long and how often a signature is polled.
type WaiterConfig struct {
	Level           ConfirmationLevel
	Timeout         time.Duration
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultWaiterConfig waits up to a minute for the confirmed level.
func DefaultWaiterConfig() WaiterConfig {
	return WaiterConfig{
		Level:           LevelConfirmed,
		Timeout:         60 * time.Second,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     4 * time.Second,
	}
}

// ConfirmationWaiter polls the network until a signature reaches the target level.
type ConfirmationWaiter struct {
	network Network
	config  WaiterConfig
}

func NewConfirmationWaiter(network Network, config WaiterConfig) *ConfirmationWaiter {
	if config.InitialInterval <= 0 {
		config.InitialInterval = DefaultWaiterConfig().InitialInterval
	}
	if config.MaxInterval < config.InitialInterval {
		config.MaxInterval = config.InitialInterval
	}
	if config.Level == LevelPending {
		config.Level = LevelConfirmed
	}
	return &ConfirmationWaiter{network: network, config: config}
}

// Wait blocks until signature reaches the configured level.
// It returns ErrConfirmationTimeout when the timeout elapses first and ErrOnChain when the
// network reports the transaction failed. Status query errors are retried until the timeout.
func (w *ConfirmationWaiter) Wait(ctx context.Context, signature string) (SignatureStatus, error) {
	waitCtx := ctx
	var cancel context.CancelFunc
	if w.config.Timeout > 0 {
		waitCtx, cancel = context.WithTimeout(ctx, w.config.Timeout)
		defer cancel()
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = w.config.InitialInterval
	b.MaxInterval = w.config.MaxInterval
	b.Multiplier = 1.5
	b.MaxElapsedTime = 0
	b.Reset()

	var last SignatureStatus
	operation := func() error {
		status, err := w.network.SignatureStatus(waitCtx, signature)
		if err != nil {
			logger.Log.Debug("Signature status query failed, retrying",
				zap.String("signature", signature),
				zap.Error(err),
			)
			return err
		}
		last = status
		if status.OnChainErr != "" {
			return backoff.Permanent(fmt.Errorf("%w: %s", ErrOnChain, status.OnChainErr))
		}
		if status.Level < w.config.Level {
			return errNotYetConfirmed
		}
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(b, waitCtx))
	switch {
	case err == nil:
		return last, nil
	case errors.Is(err, ErrOnChain):
		return last, err
	case ctx.Err() != nil:
		return last, fmt.Errorf("%w: %v", ErrTransport, ctx.Err())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(waitCtx.Err(), context.DeadlineExceeded):
		return last, fmt.Errorf("%w after %s (last seen %s)", ErrConfirmationTimeout, w.config.Timeout, last.Level)
	}
	return last, fmt.Errorf("%w: %v", ErrTransport, err)
}
